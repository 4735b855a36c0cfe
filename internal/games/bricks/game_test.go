package bricks

import (
	"testing"

	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/registry"
	"github.com/vovakirdan/brickout/internal/rules"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func newTestGame() *Game {
	g := New()
	g.Reset(testRuntime())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestResetStartsInServe(t *testing.T) {
	g := newTestGame()

	if g.state != StateServe {
		t.Errorf("state = %q, expected %q", g.state, StateServe)
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("lives = %d, expected %d", g.lives, g.cfg.Gameplay.Lives)
	}
	if g.ledger.Score() != 0 {
		t.Errorf("score = %d, expected 0", g.ledger.Score())
	}
	if !g.ball.Stuck {
		t.Error("ball should start stuck to the paddle")
	}
	if g.board.Alive() == 0 {
		t.Error("board should start with bricks")
	}
}

func TestLaunchEntersPlaying(t *testing.T) {
	g := newTestGame()

	g.Step(frame(core.ActionLaunch))

	if g.state != StatePlaying {
		t.Errorf("state = %q, expected %q", g.state, StatePlaying)
	}
	if g.ball.Stuck {
		t.Error("ball should be released after launch")
	}
	if g.ball.VY >= 0 {
		t.Errorf("ball VY = %d, expected upward (negative)", g.ball.VY)
	}
}

func TestPaddleMovesAndClamps(t *testing.T) {
	g := newTestGame()

	for range 300 {
		g.Step(frame(core.ActionRight))
	}

	wantX := core.ToFixed(g.fieldW - g.paddle.Width)
	if g.paddle.X != wantX {
		t.Errorf("paddle X = %d, expected clamp at %d", g.paddle.X, wantX)
	}
	// Stuck ball follows the paddle
	if g.ball.X != g.paddle.CenterX() {
		t.Errorf("ball X = %d, expected paddle center %d", g.ball.X, g.paddle.CenterX())
	}

	for range 300 {
		g.Step(frame(core.ActionLeft))
	}
	if g.paddle.X != 0 {
		t.Errorf("paddle X = %d, expected clamp at 0", g.paddle.X)
	}
}

func TestBallDestroysBrickAndScores(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionLaunch))

	// Aim the ball straight up under the simple brick at row 4, col 10
	// of the first bundled level (cells 40-43 on an 80-wide screen).
	g.ball.X = core.ToFixed(42)
	g.ball.Y = core.Fixed(7500)
	g.ball.VX = 0
	g.ball.VY = -core.Fixed(300)

	for range 4 {
		g.Step(core.NewInputFrame())
	}

	if got := g.ledger.Score(); got != 25 {
		t.Errorf("score = %d, expected 25 for one simple brick", got)
	}
	if _, ok := g.board.At(4, 10); ok {
		t.Error("brick at row 4 col 10 should be destroyed")
	}
	if g.ball.VY <= 0 {
		t.Errorf("ball VY = %d, expected downward bounce after brick hit", g.ball.VY)
	}
}

func TestBallDrainCostsLife(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionLaunch))

	livesBefore := g.lives
	g.ball.Y = core.ToFixed(g.drainY)
	g.ball.VY = core.Fixed(300)

	g.Step(core.NewInputFrame())

	if g.lives != livesBefore-1 {
		t.Errorf("lives = %d, expected %d", g.lives, livesBefore-1)
	}
	if g.state != StateServe {
		t.Errorf("state = %q, expected %q after losing a life", g.state, StateServe)
	}
	if g.serveDelay != g.cfg.Gameplay.ServeDelay {
		t.Errorf("serve delay = %d, expected %d", g.serveDelay, g.cfg.Gameplay.ServeDelay)
	}
	if !g.ball.Stuck {
		t.Error("a fresh ball should be stuck to the paddle")
	}
}

func TestGameOverOnLastLife(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionLaunch))

	g.lives = 1
	g.ball.Y = core.ToFixed(g.drainY)
	g.ball.VY = core.Fixed(300)

	g.Step(core.NewInputFrame())

	if g.state != StateGameOver {
		t.Errorf("state = %q, expected %q", g.state, StateGameOver)
	}
	st := g.State()
	if !st.GameOver {
		t.Error("State().GameOver should be true")
	}
	if st.Won {
		t.Error("State().Won should be false on game over")
	}
}

func TestHazardHitCostsLife(t *testing.T) {
	g := newTestGame()

	g.hazards = append(g.hazards, &Hazard{
		X:      g.paddle.CenterX(),
		Y:      core.ToFixed(g.paddle.Y - 1),
		VY:     core.Fixed(100),
		Active: true,
	})
	livesBefore := g.lives

	g.Step(core.NewInputFrame())

	if g.lives != livesBefore-1 {
		t.Errorf("lives = %d, expected %d after hazard hit", g.lives, livesBefore-1)
	}
	if len(g.hazards) != 0 {
		t.Errorf("hazards = %d, expected round reset to clear them", len(g.hazards))
	}
	if g.state != StateServe {
		t.Errorf("state = %q, expected %q", g.state, StateServe)
	}
}

func TestPaddleDrivesIntoThornAndPlate(t *testing.T) {
	// The third bundled level keeps a plate and a thorn brick on the
	// paddle row at each end of the track.
	g := New()
	rt := testRuntime()
	rt.Level = "3"
	g.Reset(rt)

	if _, ok := g.board.At(g.paddleRow, 0); !ok {
		t.Fatal("expected a plate brick at the paddle row's left end")
	}

	livesBefore := g.lives
	for range 300 {
		g.Step(frame(core.ActionLeft))
	}

	// Thorn: destroyed for 90 points and one life lost. Plate: broken by
	// the paddle for 250 points.
	if got := g.ledger.Score(); got != 340 {
		t.Errorf("score = %d, expected 340 (thorn 90 + plate 250)", got)
	}
	if g.lives != livesBefore-1 {
		t.Errorf("lives = %d, expected %d", g.lives, livesBefore-1)
	}
	if _, ok := g.board.At(g.paddleRow, 0); ok {
		t.Error("plate at col 0 should be destroyed")
	}
	if _, ok := g.board.At(g.paddleRow, 1); ok {
		t.Error("thorn at col 1 should be destroyed")
	}
}

func TestStickyPaddleCatchesBall(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionLaunch))
	g.applyEffect(rules.EffectStickyPaddle)

	g.ball.X = g.paddle.CenterX()
	g.ball.Y = core.ToFixed(g.paddle.Y - 3)
	g.ball.VX = 0
	g.ball.VY = core.Fixed(300)

	caught := false
	for range 12 {
		g.Step(core.NewInputFrame())
		if g.ball.Stuck {
			caught = true
			break
		}
	}

	if !caught {
		t.Fatal("sticky paddle should catch the descending ball")
	}
	if g.state != StateServe {
		t.Errorf("state = %q, expected %q after catch", g.state, StateServe)
	}

	// Relaunch works
	g.Step(frame(core.ActionLaunch))
	if g.state != StatePlaying || g.ball.Stuck {
		t.Error("ball should launch again after a sticky catch")
	}
}

func TestShrinkEffectNarrowsAndExpires(t *testing.T) {
	g := newTestGame()

	base := g.basePaddleWidth
	g.applyEffect(rules.EffectShrinkPaddle)

	want := core.Clamp(base*g.cfg.Effects.ShrinkFactor/core.Scale, g.cfg.Paddle.MinWidth, g.cfg.Paddle.MaxWidth)
	if g.paddle.Width != want {
		t.Errorf("paddle width = %d, expected %d while shrunk", g.paddle.Width, want)
	}

	for range g.cfg.Effects.DurationTicks + 10 {
		g.Step(core.NewInputFrame())
	}
	if g.paddle.Width != base {
		t.Errorf("paddle width = %d, expected base %d after expiry", g.paddle.Width, base)
	}
}

func TestEnlargeCancelsShrink(t *testing.T) {
	g := newTestGame()

	g.applyEffect(rules.EffectShrinkPaddle)
	g.applyEffect(rules.EffectEnlargePaddle)

	if g.effects.Has(rules.EffectShrinkPaddle) {
		t.Error("shrink should be cancelled by enlarge")
	}
	want := core.Clamp(g.basePaddleWidth*g.cfg.Effects.EnlargeFactor/core.Scale,
		g.cfg.Paddle.MinWidth, g.cfg.Paddle.MaxWidth)
	if g.paddle.Width != want {
		t.Errorf("paddle width = %d, expected %d while enlarged", g.paddle.Width, want)
	}
}

func TestGrantLifeRespectsCap(t *testing.T) {
	g := newTestGame()

	g.lives = g.cfg.Gameplay.MaxLives
	g.grantLife()
	if g.lives != g.cfg.Gameplay.MaxLives {
		t.Errorf("lives = %d, expected cap %d", g.lives, g.cfg.Gameplay.MaxLives)
	}

	g.lives = 1
	g.grantLife()
	if g.lives != 2 {
		t.Errorf("lives = %d, expected 2", g.lives)
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionLaunch))

	g.Step(frame(core.ActionPause))
	if g.state != StatePaused {
		t.Errorf("state = %q, expected %q", g.state, StatePaused)
	}
	tickAtPause := g.tickCount

	g.Step(core.NewInputFrame())
	if g.tickCount != tickAtPause {
		t.Error("simulation should not advance while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.state != StatePlaying {
		t.Errorf("state = %q, expected %q after unpause", g.state, StatePlaying)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := newTestGame()
	g.Step(frame(core.ActionLaunch))

	g.lives = 1
	g.ball.Y = core.ToFixed(g.drainY)
	g.ball.VY = core.Fixed(300)
	g.Step(core.NewInputFrame())

	if g.state != StateGameOver {
		t.Fatalf("state = %q, expected %q", g.state, StateGameOver)
	}

	g.Step(frame(core.ActionRestart))

	if g.state != StateServe {
		t.Errorf("state = %q, expected %q after restart", g.state, StateServe)
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("lives = %d, expected %d", g.lives, g.cfg.Gameplay.Lives)
	}
	if g.ledger.Score() != 0 {
		t.Errorf("score = %d, expected 0 after restart", g.ledger.Score())
	}
}

func TestCheatLevelSkip(t *testing.T) {
	g := newTestGame()
	g.cfg.Gameplay.Cheats = true

	g.Step(frame(core.ActionLevelFwd))
	if g.levelIndex != 1 {
		t.Errorf("level index = %d, expected 1 after skip", g.levelIndex)
	}
	if g.state != StateServe {
		t.Errorf("state = %q, expected %q after level switch", g.state, StateServe)
	}

	g.Step(frame(core.ActionLevelBack))
	if g.levelIndex != 0 {
		t.Errorf("level index = %d, expected 0 after skip back", g.levelIndex)
	}

	// Campaign clamps at the first level
	g.Step(frame(core.ActionLevelBack))
	if g.levelIndex != 0 {
		t.Errorf("level index = %d, expected clamp at 0", g.levelIndex)
	}
}

func TestCheatsDisabledByDefault(t *testing.T) {
	g := newTestGame()
	if g.cfg.Gameplay.Cheats {
		t.Skip("cheats enabled by local config")
	}

	g.Step(frame(core.ActionLevelFwd))
	if g.levelIndex != 0 {
		t.Errorf("level index = %d, expected cheat keys to be ignored", g.levelIndex)
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 60})

	if !g.screenTooSmall {
		t.Fatal("30x10 should be too small")
	}

	g.Step(frame(core.ActionLaunch))
	if g.tickCount != 0 {
		t.Error("simulation should not run on a too-small screen")
	}

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	found := false
	for y := range screen.Height() {
		if containsText(screen.Row(y), "Window too small") {
			found = true
			break
		}
	}
	if !found {
		t.Error("render should show the too-small message")
	}
}

func containsText(row, text string) bool {
	for i := 0; i+len(text) <= len(row); i++ {
		if row[i:i+len(text)] == text {
			return true
		}
	}
	return false
}

func TestStepDeterminism(t *testing.T) {
	script := func(tick int) core.InputFrame {
		if tick == 0 {
			return frame(core.ActionLaunch)
		}
		if (tick/30)%2 == 0 {
			return frame(core.ActionLeft)
		}
		return frame(core.ActionRight)
	}

	run := func() []uint64 {
		g := New()
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7})
		var hashes []uint64
		for tick := range 600 {
			g.Step(script(tick))
			if tick%150 == 0 {
				snap := g.Snapshot()
				hashes = append(hashes, snap.Hash())
			}
		}
		return hashes
	}

	first := run()
	second := run()

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("hash %d: %d != %d, runs diverged", i, first[i], second[i])
		}
	}
	if first[0] == first[len(first)-1] {
		t.Error("hashes should change as the simulation advances")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	rt := testRuntime()
	rt.Seed = 11

	g1 := New()
	g1.Reset(rt)

	// Play far enough for bricks, score and speed to change
	g1.Step(frame(core.ActionLaunch))
	for range 240 {
		g1.Step(frame())
	}

	snap := g1.Snapshot()

	g2 := New()
	g2.Reset(rt)
	g2.ApplySnapshot(snap)

	snap2 := g2.Snapshot()
	if snap.Hash() != snap2.Hash() {
		t.Fatalf("restored snapshot hash = %d, want %d", snap2.Hash(), snap.Hash())
	}

	// Restored and original games must stay in lockstep
	for tick := range 120 {
		g1.Step(frame())
		g2.Step(frame())
		s1, s2 := g1.Snapshot(), g2.Snapshot()
		if s1.Hash() != s2.Hash() {
			t.Fatalf("tick %d after restore: games diverged", tick)
		}
	}
}

func TestEndlessModeCyclesLevels(t *testing.T) {
	g := NewEndless()
	g.Reset(testRuntime())
	g.cfg.Gameplay.Cheats = true

	// Skip forward past the last level; endless wraps to the first.
	for range len(g.levels) {
		g.Step(frame(core.ActionLevelFwd))
	}

	if g.levelIndex != 0 {
		t.Errorf("level index = %d, expected wrap to 0", g.levelIndex)
	}
}

func TestRegistryRegistration(t *testing.T) {
	for _, id := range []string{"brickout", "brickout_endless"} {
		if !registry.Exists(id) {
			t.Errorf("game %q not registered", id)
		}
		game, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if game.ID() != id {
			t.Errorf("ID() = %q, expected %q", game.ID(), id)
		}
	}
}
