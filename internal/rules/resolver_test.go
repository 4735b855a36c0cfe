package rules

import (
	"testing"

	"github.com/vovakirdan/brickout/internal/core"
)

// newTestRig builds a resolver over the given grid with collaborators
// wired the way the game shell wires them.
func newTestRig(t *testing.T, grid [][]BrickType, cfg Config, seed int64) (*Resolver, *Board, *ScoringLedger, *HazardScheduler) {
	t.Helper()
	board, err := NewBoard(grid)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	ledger := NewScoringLedger(cfg.MilestoneEvery)
	hazards := NewHazardScheduler(cfg.HazardMinSpeed)
	rng := NewSimpleRNG(seed)
	return NewResolver(cfg, board, ledger, hazards, rng), board, ledger, hazards
}

func countDestroyed(evs []Event) int {
	n := 0
	for _, ev := range evs {
		if _, ok := ev.(BrickDestroyed); ok {
			n++
		}
	}
	return n
}

func countDamaged(evs []Event) int {
	n := 0
	for _, ev := range evs {
		if _, ok := ev.(BrickDamaged); ok {
			n++
		}
	}
	return n
}

func lifeLosses(evs []Event) []LifeLost {
	var out []LifeLost
	for _, ev := range evs {
		if l, ok := ev.(LifeLost); ok {
			out = append(out, l)
		}
	}
	return out
}

func hasCleared(evs []Event) bool {
	for _, ev := range evs {
		if _, ok := ev.(BoardCleared); ok {
			return true
		}
	}
	return false
}

func TestBallDestroysSimpleBrick(t *testing.T) {
	r, board, ledger, _ := newTestRig(t, [][]BrickType{{BrickSimple}}, DefaultConfig(), 1)

	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: 1})

	evs := r.Events()
	if countDestroyed(evs) != 1 {
		t.Fatalf("expected 1 BrickDestroyed event, got %d", countDestroyed(evs))
	}

	var destroyed BrickDestroyed
	for _, ev := range evs {
		if d, ok := ev.(BrickDestroyed); ok {
			destroyed = d
		}
	}
	if destroyed.By != DestroyedByBall {
		t.Errorf("By = %v, expected ball", destroyed.By)
	}
	if destroyed.Points != 25 {
		t.Errorf("Points = %d, expected 25", destroyed.Points)
	}
	if ledger.Score() != 25 {
		t.Errorf("Score = %d, expected 25", ledger.Score())
	}

	in, _ := board.Get(1)
	if !in.Destroyed() {
		t.Error("brick should be marked destroyed")
	}
	if _, ok := board.At(0, 0); ok {
		t.Error("destroyed brick should not occupy its cell")
	}
	if !hasCleared(evs) {
		t.Error("destroying the only counting brick should clear the board")
	}
}

func TestDestructionIsIdempotent(t *testing.T) {
	r, _, ledger, _ := newTestRig(t, [][]BrickType{{BrickSimple}}, DefaultConfig(), 1)

	// Two balls report the same brick in one frame.
	r.BeginFrame(100)
	r.ResolveAll([]Contact{
		{Kind: ContactBallBrick, Actor: 100, Brick: 1},
		{Kind: ContactBallBrick, Actor: 101, Brick: 1},
	})

	evs := r.Events()
	if countDestroyed(evs) != 1 {
		t.Errorf("duplicate contacts produced %d destruction events, expected 1", countDestroyed(evs))
	}
	if ledger.Score() != 25 {
		t.Errorf("Score = %d, expected 25 (points awarded once)", ledger.Score())
	}
	if r.Tracker().Destroyed() != 1 {
		t.Errorf("completion count = %d, expected 1", r.Tracker().Destroyed())
	}
}

func TestStaleContactAcrossFrames(t *testing.T) {
	r, _, ledger, _ := newTestRig(t, [][]BrickType{{BrickSimple}}, DefaultConfig(), 1)

	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: 1})

	// Next frame the physics step still reports the dead brick.
	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: 1})
	r.Resolve(Contact{Kind: ContactPaddleBrick, Actor: 1000, Brick: 1})

	if len(r.Events()) != 0 {
		t.Errorf("stale contacts emitted %d events, expected 0", len(r.Events()))
	}
	if ledger.Score() != 25 {
		t.Errorf("Score = %d, expected 25", ledger.Score())
	}
}

func TestUnknownHandleIgnored(t *testing.T) {
	r, _, _, _ := newTestRig(t, [][]BrickType{{BrickSimple}}, DefaultConfig(), 1)

	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: 999})
	r.Resolve(Contact{Kind: ContactPaddleBrick, Actor: 1000, Brick: 999})

	if len(r.Events()) != 0 {
		t.Errorf("unknown handles emitted %d events, expected 0", len(r.Events()))
	}
}

func TestDurabilityCountsBallHits(t *testing.T) {
	r, board, _, _ := newTestRig(t, [][]BrickType{{BrickHard3}}, DefaultConfig(), 1)

	// Three contacts in one frame on a durability-3 brick: first two
	// damage it, the third destroys it.
	r.BeginFrame(100)
	r.ResolveAll([]Contact{
		{Kind: ContactBallBrick, Actor: 100, Brick: 1},
		{Kind: ContactBallBrick, Actor: 100, Brick: 1},
		{Kind: ContactBallBrick, Actor: 100, Brick: 1},
	})

	evs := r.Events()
	if countDamaged(evs) != 2 {
		t.Errorf("expected 2 BrickDamaged events, got %d", countDamaged(evs))
	}
	if countDestroyed(evs) != 1 {
		t.Errorf("expected 1 BrickDestroyed event, got %d", countDestroyed(evs))
	}

	// Damaged events report descending remaining hits.
	var remaining []int
	for _, ev := range evs {
		if d, ok := ev.(BrickDamaged); ok {
			remaining = append(remaining, d.HitsLeft)
		}
	}
	if len(remaining) == 2 && (remaining[0] != 2 || remaining[1] != 1) {
		t.Errorf("HitsLeft sequence = %v, expected [2 1]", remaining)
	}

	in, _ := board.Get(1)
	if !in.Destroyed() {
		t.Error("brick should be destroyed after 3 hits")
	}
}

func TestPlateIgnoresBallButBreaksForPaddle(t *testing.T) {
	r, board, ledger, _ := newTestRig(t, [][]BrickType{{BrickPlate}}, DefaultConfig(), 1)

	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: 1})
	if len(r.Events()) != 0 {
		t.Errorf("ball contact on plate emitted %d events, expected 0 (bounce only)", len(r.Events()))
	}
	if in, _ := board.Get(1); in.Destroyed() {
		t.Fatal("ball contact must not destroy a plate brick")
	}

	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactPaddleBrick, Actor: 1000, Brick: 1})
	evs := r.Events()
	if countDestroyed(evs) != 1 {
		t.Fatalf("paddle contact should destroy the plate, got %d destruction events", countDestroyed(evs))
	}
	if ledger.Score() != 250 {
		t.Errorf("Score = %d, expected 250", ledger.Score())
	}
	if losses := lifeLosses(evs); len(losses) != 0 {
		t.Errorf("plate destruction cost %d lives, expected 0", len(losses))
	}
}

func TestThornPaddleContactDestroysAndCostsLife(t *testing.T) {
	r, board, ledger, _ := newTestRig(t, [][]BrickType{{BrickThorn}}, DefaultConfig(), 1)

	r.BeginFrame(7)
	r.Resolve(Contact{Kind: ContactPaddleBrick, Actor: 1000, Brick: 1})

	evs := r.Events()
	if countDestroyed(evs) != 1 {
		t.Errorf("expected thorn destroyed on paddle contact, got %d destruction events", countDestroyed(evs))
	}
	losses := lifeLosses(evs)
	if len(losses) != 1 {
		t.Fatalf("expected 1 life loss, got %d", len(losses))
	}
	if losses[0].Cause != LossBrickContact {
		t.Errorf("Cause = %v, expected brick contact", losses[0].Cause)
	}
	if losses[0].Ball != 7 {
		t.Errorf("Ball = %d, expected reference ball 7", losses[0].Ball)
	}
	if ledger.Score() != 90 {
		t.Errorf("Score = %d, expected 90", ledger.Score())
	}
	if in, _ := board.Get(1); !in.Destroyed() {
		t.Error("thorn brick should be destroyed")
	}
}

func TestThornWallCostsLifeWithoutDestruction(t *testing.T) {
	r, board, ledger, _ := newTestRig(t, [][]BrickType{{BrickThornWall}}, DefaultConfig(), 1)

	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactPaddleBrick, Actor: 1000, Brick: 1})
	r.Resolve(Contact{Kind: ContactPaddleBrick, Actor: 1000, Brick: 1})

	evs := r.Events()
	if countDestroyed(evs) != 0 {
		t.Errorf("thorn wall destroyed %d times, expected 0 (indestructible)", countDestroyed(evs))
	}
	if len(lifeLosses(evs)) != 1 {
		t.Errorf("expected exactly 1 life loss this frame, got %d", len(lifeLosses(evs)))
	}
	if ledger.Score() != 0 {
		t.Errorf("Score = %d, expected 0", ledger.Score())
	}
	if in, _ := board.Get(1); in.Destroyed() {
		t.Error("thorn wall must never be destroyed")
	}

	// A later frame can claim a fresh loss on the same wall.
	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactPaddleBrick, Actor: 1000, Brick: 1})
	if len(lifeLosses(r.Events())) != 1 {
		t.Errorf("expected a new life loss next frame, got %d", len(lifeLosses(r.Events())))
	}
}

func TestPaddleHitsPlateAndThornWallSameFrame(t *testing.T) {
	r, board, ledger, _ := newTestRig(t, [][]BrickType{{BrickPlate, BrickThornWall}}, DefaultConfig(), 1)

	// One frame, two paddle contacts: the plate breaks for points, the
	// thorn wall claims the life. Neither effect suppresses the other.
	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactPaddleBrick, Actor: 1000, Brick: 1})
	r.Resolve(Contact{Kind: ContactPaddleBrick, Actor: 1000, Brick: 2})

	evs := r.Events()
	if countDestroyed(evs) != 1 {
		t.Errorf("expected exactly 1 destruction (the plate), got %d", countDestroyed(evs))
	}
	for _, ev := range evs {
		if d, ok := ev.(BrickDestroyed); ok {
			if d.Brick != 1 || d.By != DestroyedByPaddle || d.Points != 250 {
				t.Errorf("destroyed = %+v, expected plate 1 by paddle for 250", d)
			}
		}
	}
	if len(lifeLosses(evs)) != 1 {
		t.Errorf("expected exactly 1 life loss, got %d", len(lifeLosses(evs)))
	}
	if ledger.Score() != 250 {
		t.Errorf("Score = %d, expected 250", ledger.Score())
	}
	if in, _ := board.Get(2); in.Destroyed() {
		t.Error("thorn wall must survive the frame")
	}
}

func TestWallIgnoresBallAndPaddle(t *testing.T) {
	r, board, _, _ := newTestRig(t, [][]BrickType{{BrickWall, BrickSimple}}, DefaultConfig(), 1)

	if board.Required() != 1 {
		t.Fatalf("Required = %d, expected 1 (walls do not count)", board.Required())
	}

	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: 1})
	r.Resolve(Contact{Kind: ContactPaddleBrick, Actor: 1000, Brick: 1})
	if len(r.Events()) != 0 {
		t.Errorf("wall contact emitted %d events, expected 0", len(r.Events()))
	}

	// Clearing the level must not require the wall.
	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: 2})
	if !hasCleared(r.Events()) {
		t.Error("board should clear with the wall still standing")
	}
}

func TestSingleHazardLossPerFrame(t *testing.T) {
	r, _, _, _ := newTestRig(t, [][]BrickType{{BrickThornWall, BrickThornWall}}, DefaultConfig(), 1)

	// Paddle touches two harmful bricks and a falling hazard in the
	// same frame; only the first costs a life.
	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactPaddleBrick, Actor: 1000, Brick: 1})
	r.Resolve(Contact{Kind: ContactPaddleBrick, Actor: 1000, Brick: 2})
	r.HazardTouched()

	if len(lifeLosses(r.Events())) != 1 {
		t.Errorf("expected 1 life loss for the frame, got %d", len(lifeLosses(r.Events())))
	}

	// Next frame the claim is available again.
	r.BeginFrame(100)
	r.HazardTouched()
	losses := lifeLosses(r.Events())
	if len(losses) != 1 {
		t.Fatalf("expected 1 life loss after frame reset, got %d", len(losses))
	}
	if losses[0].Cause != LossHazardContact {
		t.Errorf("Cause = %v, expected hazard contact", losses[0].Cause)
	}
}

func TestBallDrainedBypassesFrameClaim(t *testing.T) {
	r, _, _, _ := newTestRig(t, [][]BrickType{{BrickThornWall}}, DefaultConfig(), 1)

	// A hazard claim earlier in the frame must not swallow a drained
	// ball, and vice versa.
	r.BeginFrame(5)
	r.Resolve(Contact{Kind: ContactPaddleBrick, Actor: 1000, Brick: 1})
	r.BallDrained(5)

	losses := lifeLosses(r.Events())
	if len(losses) != 2 {
		t.Fatalf("expected 2 life losses (hazard + drain), got %d", len(losses))
	}
	if losses[1].Cause != LossBallDrained {
		t.Errorf("second loss Cause = %v, expected ball drained", losses[1].Cause)
	}
	if losses[1].Ball != 5 {
		t.Errorf("drained Ball = %d, expected 5", losses[1].Ball)
	}
}

func TestScoringAcrossBricks(t *testing.T) {
	grid := [][]BrickType{{BrickThorn, BrickThorn, BrickThorn}}
	r, _, ledger, _ := newTestRig(t, grid, DefaultConfig(), 1)

	r.BeginFrame(100)
	for id := EntityID(1); id <= 3; id++ {
		r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: id})
	}

	if ledger.Score() != 270 {
		t.Errorf("Score = %d, expected 270 (3 x 90)", ledger.Score())
	}
}

func TestQuestionBrickRollsWithinRange(t *testing.T) {
	desc, ok := Classify(BrickQuestion)
	if !ok {
		t.Fatal("question brick should be classifiable")
	}

	roll := func(seed int64) int {
		r, _, _, _ := newTestRig(t, [][]BrickType{{BrickQuestion}}, DefaultConfig(), seed)
		r.BeginFrame(100)
		r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: 1})
		for _, ev := range r.Events() {
			if d, okEv := ev.(BrickDestroyed); okEv {
				return d.Points
			}
		}
		t.Fatal("question brick was not destroyed")
		return 0
	}

	for seed := int64(1); seed <= 20; seed++ {
		points := roll(seed)
		if points < desc.MinPoints || points > desc.MaxPoints {
			t.Errorf("seed %d rolled %d points, expected within [%d, %d]",
				seed, points, desc.MinPoints, desc.MaxPoints)
		}
	}

	if roll(42) != roll(42) {
		t.Error("same seed should roll the same points")
	}
}

func TestExtraLifeBrick(t *testing.T) {
	r, _, ledger, _ := newTestRig(t, [][]BrickType{{BrickExtraLife}}, DefaultConfig(), 1)

	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: 1})

	earned := 0
	for _, ev := range r.Events() {
		if _, ok := ev.(ExtraLifeEarned); ok {
			earned++
		}
	}
	if earned != 1 {
		t.Errorf("expected 1 ExtraLifeEarned event, got %d", earned)
	}
	if ledger.Score() != 0 {
		t.Errorf("Score = %d, expected 0 (extra life awards no points)", ledger.Score())
	}
}

func TestEffectBricks(t *testing.T) {
	tests := []struct {
		name     string
		brick    BrickType
		expected EffectKind
	}{
		{"shrink trap", BrickShrink, EffectShrinkPaddle},
		{"enlarge bonus", BrickEnlarge, EffectEnlargePaddle},
		{"magnet", BrickMagnet, EffectStickyPaddle},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, _, _, _ := newTestRig(t, [][]BrickType{{tc.brick}}, DefaultConfig(), 1)
			r.BeginFrame(100)
			r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: 1})

			found := false
			for _, ev := range r.Events() {
				if e, ok := ev.(EffectTriggered); ok {
					found = true
					if e.Effect != tc.expected {
						t.Errorf("Effect = %v, expected %v", e.Effect, tc.expected)
					}
				}
			}
			if !found {
				t.Error("expected an EffectTriggered event")
			}
		})
	}
}

func TestRotorSchedulesHazard(t *testing.T) {
	cfg := DefaultConfig()
	r, _, _, hazards := newTestRig(t, [][]BrickType{{BrickRotor}}, cfg, 1)

	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: 1})

	if hazards.Pending() != 1 {
		t.Fatalf("Pending = %d, expected 1 after rotor destruction", hazards.Pending())
	}

	// Not yet: half the delay.
	if spawns := hazards.Tick(cfg.HazardDelay.Div(2)); len(spawns) != 0 {
		t.Errorf("spawned %d hazards before the delay elapsed", len(spawns))
	}
	// The rest of the delay elapses.
	spawns := hazards.Tick(cfg.HazardDelay)
	if len(spawns) != 1 {
		t.Fatalf("expected 1 hazard spawn, got %d", len(spawns))
	}

	// The spawn appears at the rotor's cell center.
	want := core.ToFixed(0).Add(core.Scale / 2)
	if spawns[0].Pos.X != want || spawns[0].Pos.Y != want {
		t.Errorf("spawn at (%d, %d), expected cell center (%d, %d)",
			spawns[0].Pos.X, spawns[0].Pos.Y, want, want)
	}
}

func TestBoardClearedFiresOnce(t *testing.T) {
	grid := [][]BrickType{{BrickSimple, BrickSimple}}
	r, _, _, _ := newTestRig(t, grid, DefaultConfig(), 1)

	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: 1})
	if hasCleared(r.Events()) {
		t.Error("board cleared with a counting brick still alive")
	}

	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: 2})
	if !hasCleared(r.Events()) {
		t.Error("destroying the last counting brick should clear the board")
	}
	if !r.Tracker().Complete() {
		t.Error("tracker should report complete")
	}
}

func TestMilestoneEventsEmitted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MilestoneEvery = 100

	// Granite is worth 250: one destruction crosses tiers 1 and 2.
	r, _, _, _ := newTestRig(t, [][]BrickType{{BrickGranite}}, cfg, 1)

	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: 1})

	var tiers []int
	for _, ev := range r.Events() {
		if m, ok := ev.(MilestoneReached); ok {
			tiers = append(tiers, m.Tier)
			if m.Score != 250 {
				t.Errorf("milestone Score = %d, expected 250", m.Score)
			}
		}
	}
	if len(tiers) != 2 || tiers[0] != 1 || tiers[1] != 2 {
		t.Errorf("milestone tiers = %v, expected [1 2]", tiers)
	}
}

func TestResetBoardKeepsScore(t *testing.T) {
	r, _, ledger, _ := newTestRig(t, [][]BrickType{{BrickSimple}}, DefaultConfig(), 1)

	r.BeginFrame(100)
	r.Resolve(Contact{Kind: ContactBallBrick, Actor: 100, Brick: 1})
	if ledger.Score() != 25 {
		t.Fatalf("Score = %d, expected 25", ledger.Score())
	}

	next, err := NewBoard([][]BrickType{{BrickSimple, BrickSimple}})
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	r.ResetBoard(next)

	if r.Tracker().Destroyed() != 0 {
		t.Errorf("new tracker Destroyed = %d, expected 0", r.Tracker().Destroyed())
	}
	if r.Tracker().Required() != 2 {
		t.Errorf("new tracker Required = %d, expected 2", r.Tracker().Required())
	}
	if ledger.Score() != 25 {
		t.Errorf("Score = %d after board swap, expected 25 (carries over)", ledger.Score())
	}
}
