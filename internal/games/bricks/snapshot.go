package bricks

import (
	"github.com/vovakirdan/brickout/internal/core"
	"github.com/vovakirdan/brickout/internal/rules"
)

// Snapshot is a flattened copy of the full game state, used to compare
// runs in determinism tests and to restore a saved game. Primitive
// types only.
type Snapshot struct {
	Tick            uint64
	PaddleX         int
	PaddleWidth     int
	BasePaddleWidth int
	Score           int
	Lives           int
	LevelIndex      int
	BricksRemaining int
	State           string
	ServeDelay      int
	DestroyedRun    int

	Mode         int // 0=Campaign, 1=Endless
	EndlessCycle int
	BallSpeed    int // Current base ball speed (fixed-point)
	NextEntityID int
	RNGState     uint64

	// Ball state
	BallID         int
	BallX, BallY   int
	BallVX, BallVY int
	BallStuck      bool

	// Hazards in flight (each hazard is 5 ints: X, Y, VX, VY, Active)
	HazardCount int
	HazardData  []int

	// Scheduled hazard spawns (each entry is 4 ints: PosX, PosY,
	// Variance, Remaining)
	PendingCount  int
	PendingData   []int
	SchedulerFlip bool

	// Effect state (each effect is 2 ints: Kind, UntilTick)
	EffectCount int
	EffectData  []int

	// Brick state (each live brick is 3 ints: ID, Type, HitsLeft)
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	hazardData := make([]int, 0, len(g.hazards)*5)
	for _, h := range g.hazards {
		active := 0
		if h.Active {
			active = 1
		}
		hazardData = append(hazardData, int(h.X), int(h.Y), int(h.VX), int(h.VY), active)
	}

	pending, flip := g.scheduler.State()
	pendingData := make([]int, 0, len(pending)*4)
	for _, p := range pending {
		pendingData = append(pendingData, int(p.Pos.X), int(p.Pos.Y), p.Variance, int(p.Remaining))
	}

	effectData := make([]int, 0, g.effects.Count()*2)
	for _, e := range g.effects.active {
		effectData = append(effectData, int(e.Kind), e.UntilTick)
	}

	var brickData []int
	g.board.ForEachAlive(func(in *rules.Instance) {
		brickData = append(brickData, int(in.ID), int(in.Type), in.HitsLeft)
	})

	return Snapshot{
		Tick:            uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		PaddleX:         int(g.paddle.X),
		PaddleWidth:     g.paddle.Width,
		BasePaddleWidth: g.basePaddleWidth,
		Score:           g.ledger.Score(),
		Lives:           g.lives,
		LevelIndex:      g.levelIndex,
		BricksRemaining: g.board.Alive(),
		State:           g.state,
		ServeDelay:      g.serveDelay,
		DestroyedRun:    g.destroyedRun,

		Mode:         int(g.mode),
		EndlessCycle: g.endlessCycle,
		BallSpeed:    int(g.currentBallSpeed),
		NextEntityID: int(g.nextEntityID),
		RNGState:     g.rng.State(),

		BallID:    int(g.ball.ID),
		BallX:     int(g.ball.X),
		BallY:     int(g.ball.Y),
		BallVX:    int(g.ball.VX),
		BallVY:    int(g.ball.VY),
		BallStuck: g.ball.Stuck,

		HazardCount: len(g.hazards),
		HazardData:  hazardData,

		PendingCount:  len(pending),
		PendingData:   pendingData,
		SchedulerFlip: flip,

		EffectCount: g.effects.Count(),
		EffectData:  effectData,

		BrickData: brickData,
	}
}

// ApplySnapshot restores game state from a snapshot. The receiver must
// have been Reset with the same runtime config and level pack the
// snapshot was taken under.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.lives = snap.Lives
	g.state = snap.State
	g.serveDelay = snap.ServeDelay
	g.destroyedRun = snap.DestroyedRun

	g.mode = GameMode(snap.Mode)
	g.endlessCycle = snap.EndlessCycle
	g.currentBallSpeed = core.Fixed(snap.BallSpeed)
	g.nextEntityID = rules.EntityID(snap.NextEntityID)
	g.rng.Restore(snap.RNGState)
	g.ledger.Restore(snap.Score)

	// Rebuild the level fresh, then knock out the bricks the snapshot
	// recorded as gone
	g.levelIndex = core.Clamp(snap.LevelIndex, 0, len(g.levels)-1)
	g.loadLevel(g.levelIndex)
	alive := make(map[rules.EntityID]int, len(snap.BrickData)/3)
	for i := 0; i+2 < len(snap.BrickData); i += 3 {
		alive[rules.EntityID(snap.BrickData[i])] = snap.BrickData[i+2]
	}
	g.resolver.RestoreBoard(alive)

	// Restore paddle
	g.basePaddleWidth = snap.BasePaddleWidth
	g.paddle.X = core.Fixed(snap.PaddleX)
	g.paddle.Width = snap.PaddleWidth

	// Restore ball
	g.ball = &Ball{
		ID:    rules.EntityID(snap.BallID),
		X:     core.Fixed(snap.BallX),
		Y:     core.Fixed(snap.BallY),
		VX:    core.Fixed(snap.BallVX),
		VY:    core.Fixed(snap.BallVY),
		Stuck: snap.BallStuck,
	}

	// Restore hazards in flight
	g.hazards = make([]*Hazard, 0, snap.HazardCount)
	for i := range snap.HazardCount {
		idx := i * 5
		if idx+4 >= len(snap.HazardData) {
			break
		}
		g.hazards = append(g.hazards, &Hazard{
			X:      core.Fixed(snap.HazardData[idx]),
			Y:      core.Fixed(snap.HazardData[idx+1]),
			VX:     core.Fixed(snap.HazardData[idx+2]),
			VY:     core.Fixed(snap.HazardData[idx+3]),
			Active: snap.HazardData[idx+4] == 1,
		})
	}

	// Restore the scheduled spawn queue
	pending := make([]rules.PendingHazard, 0, snap.PendingCount)
	for i := range snap.PendingCount {
		idx := i * 4
		if idx+3 >= len(snap.PendingData) {
			break
		}
		pending = append(pending, rules.PendingHazard{
			Pos: rules.Vec{
				X: core.Fixed(snap.PendingData[idx]),
				Y: core.Fixed(snap.PendingData[idx+1]),
			},
			Variance:  snap.PendingData[idx+2],
			Remaining: core.Fixed(snap.PendingData[idx+3]),
		})
	}
	g.scheduler.Restore(pending, snap.SchedulerFlip)

	// Restore effect timers
	g.effects.Clear()
	for i := range snap.EffectCount {
		idx := i * 2
		if idx+1 >= len(snap.EffectData) {
			break
		}
		g.effects.active = append(g.effects.active, &activeEffect{
			Kind:      rules.EffectKind(snap.EffectData[idx]),
			UntilTick: snap.EffectData[idx+1],
		})
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.PaddleX)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleWidth)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BasePaddleWidth) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.LevelIndex)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ServeDelay)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DestroyedRun)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EndlessCycle)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallSpeed)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextEntityID)    //#nosec G115 -- hash computation
	h = h*31 + snap.RNGState
	h = h*31 + uint64(snap.BallID)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallX)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.HazardCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PendingCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EffectCount)  //#nosec G115 -- hash computation

	if snap.BallStuck {
		h = h*31 + 1
	}
	if snap.SchedulerFlip {
		h = h*31 + 1
	}
	for _, b := range []byte(snap.State) {
		h = h*31 + uint64(b)
	}

	for _, v := range snap.HazardData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PendingData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.EffectData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
