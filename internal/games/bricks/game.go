package bricks

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/brickout/internal/config"
	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/levels"
	"github.com/vovakirdan/brickout/internal/registry"
	"github.com/vovakirdan/brickout/internal/rules"
)

// Visual characters for rendering
const (
	PaddleChar  = '='
	BallChar    = '●'
	HazardChar  = '◆'
	BorderHoriz = '─'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 2

// GameState constants
const (
	StateServe    = "serve"    // Ball on paddle, waiting for launch
	StatePlaying  = "playing"  // Ball in play
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // All levels completed (campaign only)
	StatePaused   = "paused"   // Game paused
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through the pack, win at end
	ModeEndless                  // Cycle the pack forever, score until game over
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// levelsDir stores a custom level pack directory set via CLI
var levelsDir string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p := config.DifficultyPreset(preset)
	if config.ValidPreset(p) {
		difficultyPreset = p
	} else {
		difficultyPreset = ""
	}
}

// SetLevelsDir sets a custom level pack directory. Empty restores the
// bundled pack.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// Game implements the brick game logic on top of the rules engine.
type Game struct {
	// Game mode
	mode GameMode

	// Game objects
	paddle  *Paddle
	ball    *Ball
	board   *rules.Board
	hazards []*Hazard

	// Rule engine
	resolver  *rules.Resolver
	ledger    *rules.ScoringLedger
	scheduler *rules.HazardScheduler
	rng       *rules.SimpleRNG
	effects   *EffectState

	// Level pack
	levels     []*levels.Level
	levelIndex int

	// Game state
	state            string
	lives            int
	tickCount        int
	serveDelay       int        // Countdown before allowing serve after miss
	destroyedRun     int        // Bricks destroyed this run, for speed-up steps
	endlessCycle     int        // Number of times the pack has cycled (endless mode)
	basePaddleWidth  int        // Paddle width before effects
	currentBallSpeed core.Fixed // Current base ball speed
	nextEntityID     rules.EntityID

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.Config

	// Layout (computed from screen size)
	brickW         int // Width of each grid cell in screen cells
	brickH         int // Height of each grid cell in screen cells
	fieldW         int // Playfield width in screen cells
	paddleRow      int // Grid row the paddle travels on
	paddleY        int // Screen Y position of paddle
	drainY         int // Screen Y past which the ball is lost
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "brickout_endless"
	}
	return "brickout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Brickout (Endless)"
	}
	return "Brickout"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.Default()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.calculateLayout()

	g.minScreenW = cfg.Grid.Cols * 2
	g.minScreenH = hudRows + cfg.Grid.Rows*g.brickH + 2
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// Load the level pack
	g.levels = loadPack()
	g.levelIndex = g.startLevelIndex(runtime.Level)

	// Initialize game state
	g.tickCount = 0
	g.serveDelay = 0
	g.lives = cfg.Gameplay.Lives
	g.destroyedRun = 0
	g.endlessCycle = 0
	g.basePaddleWidth = cfg.Paddle.Width
	g.currentBallSpeed = core.Fixed(cfg.Physics.BallSpeed)
	g.nextEntityID = 0
	g.hazards = nil

	// Rule engine: ledger, scheduler and RNG live for the whole run
	g.rng = rules.NewSimpleRNG(runtime.Seed)
	g.ledger = rules.NewScoringLedger(cfg.Scoring.MilestoneEvery)
	g.scheduler = rules.NewHazardScheduler(core.Fixed(cfg.Hazards.MinSpeed))
	g.effects = NewEffectState()
	g.resolver = nil

	g.loadLevel(g.levelIndex)

	// Initialize paddle
	g.paddle = &Paddle{
		X:     core.ToFixed((g.fieldW - cfg.Paddle.Width) / 2),
		Y:     g.paddleY,
		Width: cfg.Paddle.Width,
	}

	g.placeBallOnPaddle()
	g.state = StateServe
}

// calculateLayout computes the grid-to-screen mapping.
func (g *Game) calculateLayout() {
	g.brickH = 1
	g.brickW = g.runtime.ScreenW / g.cfg.Grid.Cols
	if g.brickW < 2 {
		g.brickW = 2
	}
	g.fieldW = g.brickW * g.cfg.Grid.Cols

	// The paddle travels on the second-to-last grid row; the last row is
	// the drain gap under it.
	g.paddleRow = g.cfg.Grid.Rows - 2
	if g.paddleRow < 0 {
		g.paddleRow = 0
	}
	g.paddleY = hudRows + g.paddleRow*g.brickH
	g.drainY = g.paddleY + 2
}

// loadPack loads the active level pack: a custom directory when set,
// otherwise the bundled pack, with a hardcoded fallback level if both
// fail.
func loadPack() []*levels.Level {
	if levelsDir != "" {
		if pack, err := levels.LoadDir(levelsDir); err == nil && len(pack) > 0 {
			return pack
		}
	}
	if pack, err := levels.Builtin(); err == nil && len(pack) > 0 {
		return pack
	}
	return []*levels.Level{levels.Fallback()}
}

// startLevelIndex resolves the runtime starting level (a level number
// as a string) to a pack index. Unknown or empty selects the first.
func (g *Game) startLevelIndex(levelID string) int {
	if levelID == "" {
		return 0
	}
	n, err := strconv.Atoi(levelID)
	if err != nil {
		return 0
	}
	for i, lvl := range g.levels {
		if lvl.Number == n {
			return i
		}
	}
	return 0
}

// loadLevel builds the board for a pack index and points the resolver
// at it. Score and milestone progress carry across levels.
func (g *Game) loadLevel(index int) {
	lvl := g.levels[index]
	grid, _ := levels.Normalize(lvl.Grid, g.cfg.Grid.Rows, g.cfg.Grid.Cols)
	board, err := rules.NewBoard(grid)
	if err != nil {
		// Packs are validated at load time, so this is unreachable for
		// bundled levels. Fall back to the built-in layout anyway.
		grid, _ = levels.Normalize(levels.Fallback().Grid, g.cfg.Grid.Rows, g.cfg.Grid.Cols)
		board, _ = rules.NewBoard(grid)
	}
	g.board = board

	if g.resolver == nil {
		g.resolver = rules.NewResolver(g.ruleConfig(), board, g.ledger, g.scheduler, g.rng)
	} else {
		g.resolver.ResetBoard(board)
	}
}

// ruleConfig maps the YAML config onto the rule engine parameters.
func (g *Game) ruleConfig() rules.Config {
	return rules.Config{
		MilestoneEvery: g.cfg.Scoring.MilestoneEvery,
		HazardDelay:    core.Fixed(g.cfg.Hazards.SpawnDelay),
		HazardVariance: g.cfg.Hazards.VarianceDeg,
		HazardMinSpeed: core.Fixed(g.cfg.Hazards.MinSpeed),
	}
}

// placeBallOnPaddle creates a new ball riding the paddle.
func (g *Game) placeBallOnPaddle() {
	g.nextEntityID++
	g.ball = &Ball{
		ID:    g.nextEntityID,
		X:     g.paddle.CenterX(),
		Y:     core.ToFixed(g.paddle.Y - 1),
		Stuck: true,
	}
}

// launchBall releases a stuck ball upward with a slight horizontal bias.
func (g *Game) launchBall() {
	speed := g.currentBallSpeed
	g.ball.VX = speed / 4
	g.ball.VY = -speed
	g.ball.Stuck = false
	g.state = StatePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	// Don't update if paused or game over
	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	// Handle serve delay countdown
	if g.serveDelay > 0 {
		g.serveDelay--
		return core.StepResult{State: g.State()}
	}

	// Level skip cheats
	if g.cfg.Gameplay.Cheats {
		if in.Has(core.ActionLevelFwd) {
			g.jumpLevel(1)
			return core.StepResult{State: g.State()}
		}
		if in.Has(core.ActionLevelBack) {
			g.jumpLevel(-1)
			return core.StepResult{State: g.State()}
		}
	}

	g.resolver.BeginFrame(g.ball.ID)

	// Expire timed effects
	for _, kind := range g.effects.Expire(g.tickCount) {
		g.onEffectExpired(kind)
	}

	// Paddle movement and paddle-brick contacts
	g.updatePaddle(in)
	g.resolver.ResolveAll(g.paddleContacts())

	// Falling hazards
	g.hazards = UpdateHazards(g.hazards, g.fieldW, g.drainY)
	hits := CheckHazardPaddleCollision(g.hazards, g.paddle)
	for range hits {
		g.resolver.HazardTouched()
	}
	for _, spawn := range g.scheduler.Tick(g.tickDt()) {
		g.hazards = append(g.hazards, NewHazard(spawn, hudRows, g.brickW, g.brickH, g.runtime.TickRate))
	}

	// Handle ball launch in serve state
	if g.state == StateServe {
		if g.ball.Stuck {
			g.ball.X = g.paddle.CenterX()
			g.ball.Y = core.ToFixed(g.paddle.Y - 1)
		}
		if in.Has(core.ActionLaunch) {
			g.launchBall()
		}
		g.processEvents()
		return core.StepResult{State: g.State()}
	}

	g.updateBall()
	g.processEvents()

	return core.StepResult{State: g.State()}
}

// tickDt returns the simulated seconds per tick in fixed-point.
func (g *Game) tickDt() core.Fixed {
	tr := g.runtime.TickRate
	if tr <= 0 {
		tr = 60
	}
	return core.Fixed(core.Scale / tr)
}

// updatePaddle handles paddle movement.
func (g *Game) updatePaddle(in core.InputFrame) {
	speed := core.Fixed(g.cfg.Physics.PaddleSpeed)

	if in.Has(core.ActionLeft) {
		g.paddle.X = g.paddle.X.Sub(speed)
	}
	if in.Has(core.ActionRight) {
		g.paddle.X = g.paddle.X.Add(speed)
	}

	// Clamp paddle to the playfield
	maxX := core.ToFixed(g.fieldW - g.paddle.Width)
	g.paddle.X = core.ClampFixed(g.paddle.X, 0, maxX)
}

// paddleContacts reports every live brick the paddle currently overlaps
// on its travel row.
func (g *Game) paddleContacts() []rules.Contact {
	var contacts []rules.Contact

	left := g.paddle.CellX()
	right := left + g.paddle.Width - 1
	colFrom := left / g.brickW
	colTo := right / g.brickW

	for col := colFrom; col <= colTo; col++ {
		if in, ok := g.board.At(g.paddleRow, col); ok {
			contacts = append(contacts, rules.Contact{
				Kind:  rules.ContactPaddleBrick,
				Actor: paddleEntity,
				Brick: in.ID,
			})
		}
	}
	return contacts
}

// paddleEntity is the handle used for the paddle in contact reports.
const paddleEntity rules.EntityID = -1

// updateBall handles ball movement and collisions.
func (g *Game) updateBall() {
	ball := g.ball
	if ball.Stuck {
		return
	}

	ball.Move()

	side, drained := CheckWallCollision(ball, g.fieldW, hudRows, g.drainY)
	if drained {
		g.resolver.BallDrained(ball.ID)
		return
	}
	if side != CollisionNone {
		ApplyCollisionBounce(ball, side)
	}

	if CheckPaddleCollision(ball, g.paddle, g.currentBallSpeed) {
		// A magnet-armed paddle catches the ball instead of bouncing it
		if g.effects.Has(rules.EffectStickyPaddle) {
			ball.Stuck = true
			ball.VX = 0
			ball.VY = 0
			ball.X = g.paddle.CenterX()
			ball.Y = core.ToFixed(g.paddle.Y - 1)
			g.state = StateServe
		}
		return
	}

	if contact, side, ok := g.ballBrickContact(ball); ok {
		// The ball bounces off every brick; the resolver decides the
		// gameplay outcome.
		ApplyCollisionBounce(ball, side)
		g.resolver.Resolve(contact)
	}
}

// ballBrickContact finds the live brick under the ball, if any, along
// with the bounce side.
func (g *Game) ballBrickContact(ball *Ball) (rules.Contact, CollisionSide, bool) {
	row := (ball.CellY() - hudRows) / g.brickH
	col := ball.CellX() / g.brickW

	in, ok := g.board.At(row, col)
	if !ok {
		return rules.Contact{}, CollisionNone, false
	}

	left := col * g.brickW
	top := hudRows + row*g.brickH
	side := BrickCollisionSide(ball, left, left+g.brickW, top, top+g.brickH)

	return rules.Contact{
		Kind:  rules.ContactBallBrick,
		Actor: ball.ID,
		Brick: in.ID,
	}, side, true
}

// processEvents drains the resolver's event stream and applies the
// shell-side outcomes: lives, effects, speed-up steps and level flow.
func (g *Game) processEvents() {
	cleared := false

	for _, ev := range g.resolver.Events() {
		switch ev := ev.(type) {
		case rules.BrickDestroyed:
			g.destroyedRun++
			if n := g.cfg.Gameplay.SpeedUpEveryN; n > 0 && g.destroyedRun%n == 0 {
				g.speedUp()
			}
		case rules.BoardCleared:
			cleared = true
		case rules.MilestoneReached:
			g.grantLife()
		case rules.ExtraLifeEarned:
			g.grantLife()
		case rules.EffectTriggered:
			g.applyEffect(ev.Effect)
		case rules.LifeLost:
			g.handleLifeLoss()
		}
	}

	if cleared && g.state != StateGameOver {
		g.advanceLevel()
	}
}

// speedUp raises the base ball speed by one step, up to the maximum.
func (g *Game) speedUp() {
	g.currentBallSpeed = core.ClampFixed(
		g.currentBallSpeed.Add(core.Fixed(g.cfg.Gameplay.SpeedUpAmount)),
		core.Fixed(g.cfg.Physics.BallSpeed),
		core.Fixed(g.cfg.Physics.MaxBallSpeed),
	)
}

// grantLife adds a life up to the configured cap.
func (g *Game) grantLife() {
	if g.lives < g.cfg.Gameplay.MaxLives {
		g.lives++
	}
}

// applyEffect starts a timed paddle effect.
func (g *Game) applyEffect(kind rules.EffectKind) {
	g.effects.Apply(kind, g.tickCount, g.cfg.Effects.DurationTicks)
	if kind == rules.EffectShrinkPaddle || kind == rules.EffectEnlargePaddle {
		g.applyPaddleWidth()
	}
}

// onEffectExpired handles effect expiration.
func (g *Game) onEffectExpired(kind rules.EffectKind) {
	if kind == rules.EffectShrinkPaddle || kind == rules.EffectEnlargePaddle {
		g.applyPaddleWidth()
	}
}

// applyPaddleWidth recomputes the paddle width from the base width and
// active effects, clamped to the configured bounds.
func (g *Game) applyPaddleWidth() {
	width := g.basePaddleWidth
	switch {
	case g.effects.Has(rules.EffectShrinkPaddle):
		width = width * g.cfg.Effects.ShrinkFactor / core.Scale
	case g.effects.Has(rules.EffectEnlargePaddle):
		width = width * g.cfg.Effects.EnlargeFactor / core.Scale
	}
	width = core.Clamp(width, g.cfg.Paddle.MinWidth, g.cfg.Paddle.MaxWidth)

	g.paddle.Width = width
	g.paddle.X = core.ClampFixed(g.paddle.X, 0, core.ToFixed(g.fieldW-width))
}

// handleLifeLoss applies one life loss and resets the round, or ends
// the run when no lives remain.
func (g *Game) handleLifeLoss() {
	if g.state == StateGameOver {
		return
	}

	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.state = StateGameOver
		return
	}

	g.resetRound()
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// resetRound clears transient round state: hazards in flight and
// scheduled, active effects, ball speed progression and positions.
func (g *Game) resetRound() {
	g.hazards = g.hazards[:0]
	g.scheduler.CancelAll()
	g.effects.Clear()
	g.currentBallSpeed = g.baseBallSpeed()
	g.applyPaddleWidth()
	g.paddle.X = core.ToFixed((g.fieldW - g.paddle.Width) / 2)
	g.placeBallOnPaddle()
	g.state = StateServe
}

// baseBallSpeed returns the ball speed a fresh round starts at,
// including the endless-mode cycle bonus.
func (g *Game) baseBallSpeed() core.Fixed {
	speed := core.Fixed(g.cfg.Physics.BallSpeed)
	if g.mode == ModeEndless && g.endlessCycle > 0 {
		speed = speed.Add(core.Fixed(g.endlessCycle * g.cfg.Gameplay.SpeedUpAmount))
	}
	return core.ClampFixed(speed, core.Fixed(g.cfg.Physics.BallSpeed), core.Fixed(g.cfg.Physics.MaxBallSpeed))
}

// advanceLevel moves to the next level after a clear. Campaign mode
// wins after the last level; endless mode cycles the pack and speeds
// the ball up each cycle.
func (g *Game) advanceLevel() {
	g.levelIndex++

	if g.mode == ModeCampaign {
		if g.levelIndex >= len(g.levels) {
			g.state = StateWin
			return
		}
	} else {
		if g.levelIndex >= len(g.levels) {
			g.levelIndex = 0
			g.endlessCycle++
		}
	}

	g.loadLevel(g.levelIndex)
	g.resetRound()
	g.serveDelay = g.cfg.Gameplay.ServeDelay
}

// jumpLevel switches levels directly (cheat keys). Campaign clamps at
// the pack edges; endless wraps around.
func (g *Game) jumpLevel(delta int) {
	next := g.levelIndex + delta
	if g.mode == ModeEndless {
		n := len(g.levels)
		next = ((next % n) + n) % n
	} else {
		next = core.Clamp(next, 0, len(g.levels)-1)
	}
	if next == g.levelIndex {
		return
	}

	g.levelIndex = next
	g.loadLevel(next)
	g.resetRound()
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)
	g.renderBricks(dst)
	g.renderHazards(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score, lives, and level indicator.
func (g *Game) renderHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf("Score: %d", g.ledger.Score())
	dst.DrawText(1, 0, scoreText)

	livesText := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawTextCentered(0, livesText)

	var levelText string
	if g.mode == ModeEndless {
		totalLevel := g.endlessCycle*len(g.levels) + g.levelIndex + 1
		levelText = fmt.Sprintf("Level: %d", totalLevel)
	} else {
		levelText = fmt.Sprintf("Level: %d/%d", g.levelIndex+1, len(g.levels))
	}
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText)

	// Active effects on row 1, separator line otherwise
	effectsStr := g.effects.HUDString(g.tickCount, g.runtime.TickRate)
	if effectsStr != "" {
		dst.DrawText(1, 1, effectsStr)
	} else {
		for x := range g.fieldW {
			dst.Set(x, 1, BorderHoriz)
		}
	}
}

// brickGlyph picks the glyph and color for a brick.
func brickGlyph(in *rules.Instance) (rune, core.Color) {
	switch in.Type {
	case rules.BrickHard2, rules.BrickHard3, rules.BrickHard4, rules.BrickHard5:
		if in.HitsLeft > 1 {
			return '▓', core.ColorWhite
		}
		return '▒', core.ColorWhite
	case rules.BrickSimple:
		return '█', core.ColorGreen
	case rules.BrickLimestone:
		return '█', core.ColorYellow
	case rules.BrickGranite:
		return '█', core.ColorBlue
	case rules.BrickShrink:
		return '░', core.ColorRed
	case rules.BrickEnlarge:
		return '░', core.ColorGreen
	case rules.BrickRotor:
		return '*', core.ColorMagenta
	case rules.BrickExtraLife:
		return '♥', core.ColorBrightRed
	case rules.BrickThorn:
		return '#', core.ColorRed
	case rules.BrickQuestion:
		return '?', core.ColorCyan
	case rules.BrickMagnet:
		return 'U', core.ColorBrightBlue
	case rules.BrickPlate:
		return '▄', core.ColorGray
	case rules.BrickWall:
		return '█', core.ColorWhite
	case rules.BrickThornWall:
		return '█', core.ColorRed
	default:
		return '█', core.ColorDefault
	}
}

// renderBricks draws all alive bricks.
func (g *Game) renderBricks(dst *core.Screen) {
	g.board.ForEachAlive(func(in *rules.Instance) {
		glyph, color := brickGlyph(in)

		screenY := hudRows + in.Row*g.brickH
		screenX := in.Col * g.brickW

		for dy := range g.brickH {
			for dx := range g.brickW {
				if screenX+dx < dst.Width() && screenY+dy < dst.Height() {
					dst.SetCell(screenX+dx, screenY+dy, glyph, color)
				}
			}
		}
	})
}

// renderHazards draws falling hazards.
func (g *Game) renderHazards(dst *core.Screen) {
	for _, h := range g.hazards {
		if !h.Active {
			continue
		}
		x, y := h.CellX(), h.CellY()
		if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
			dst.SetCell(x, y, HazardChar, core.ColorBrightMagenta)
		}
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	paddleX := g.paddle.CellX()
	for i := range g.paddle.Width {
		if paddleX+i < dst.Width() {
			dst.SetCell(paddleX+i, g.paddle.Y, PaddleChar, core.ColorCyan)
		}
	}
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	x, y := g.ball.CellX(), g.ball.CellY()
	if x >= 0 && x < dst.Width() && y >= 0 && y < dst.Height() {
		dst.SetCell(x, y, BallChar, core.ColorBrightWhite)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StateServe:
		if g.serveDelay <= 0 {
			dst.DrawTextCentered(dst.Height()-1, "Press SPACE to launch")
		} else {
			dst.DrawTextCentered(dst.Height()-1, "Get ready...")
		}

	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.ledger.Score())
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.ledger.Score())
		g.drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	level := g.levelIndex + 1
	if g.mode == ModeEndless {
		level = g.endlessCycle*len(g.levels) + g.levelIndex + 1
	}
	return core.GameState{
		Score:    g.ledger.Score(),
		Lives:    g.lives,
		Level:    level,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("brickout", func() registry.Game {
		return New()
	})
	registry.Register("brickout_endless", func() registry.Game {
		return NewEndless()
	})
}
