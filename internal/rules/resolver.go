package rules

import (
	"github.com/vovakirdan/brickout/internal/core"
)

// ContactKind classifies a collision pair reported by the physics step.
type ContactKind int

const (
	ContactBallBrick ContactKind = iota
	ContactPaddleBrick
)

// String returns a human-readable name for the contact kind.
func (k ContactKind) String() string {
	switch k {
	case ContactBallBrick:
		return "ball-brick"
	case ContactPaddleBrick:
		return "paddle-brick"
	default:
		return "unknown"
	}
}

// Contact is one collision report. Actor is the ball or paddle handle;
// Brick is the brick handle. Contacts may arrive late: the physics step
// detects them before destruction outcomes apply, so a contact can name
// a brick destroyed earlier in the same frame. The resolver ignores
// those silently.
type Contact struct {
	Kind  ContactKind
	Actor EntityID
	Brick EntityID
}

// Config holds the tunable rule engine parameters.
type Config struct {
	MilestoneEvery int        // Points per score milestone; <= 0 disables
	HazardDelay    core.Fixed // Seconds between rotor destruction and hazard spawn
	HazardVariance int        // Hazard launch angle variance in degrees
	HazardMinSpeed core.Fixed // Hazard minimum forward speed, cells per second
}

// DefaultConfig returns the standard rule parameters.
func DefaultConfig() Config {
	return Config{
		MilestoneEvery: 5000,
		HazardDelay:    core.Fixed(500), // 0.5s
		HazardVariance: 20,
		HazardMinSpeed: core.Fixed(5000), // 5 cells/s
	}
}

// Resolver turns collision contacts into gameplay outcomes: brick
// damage and destruction, completion tracking, scoring, hazard
// scheduling and life-loss arbitration. It owns no physics; callers
// feed it contacts and drain the resulting events every frame.
//
// Per-frame protocol:
//
//	r.BeginFrame(refBall)    // reset per-frame state
//	r.ResolveAll(contacts)   // apply this frame's collisions
//	for _, ev := range r.Events() { ... }
type Resolver struct {
	cfg     Config
	board   *Board
	tracker *CompletionTracker
	ledger  *ScoringLedger
	losses  *LifeLossCoordinator
	hazards *HazardScheduler
	rng     *SimpleRNG

	events  []Event
	refBall EntityID
}

// NewResolver creates a resolver for a board. The ledger, scheduler and
// RNG are owned by the caller and survive board swaps; the completion
// tracker is created here and replaced on ResetBoard.
func NewResolver(cfg Config, board *Board, ledger *ScoringLedger, hazards *HazardScheduler, rng *SimpleRNG) *Resolver {
	return &Resolver{
		cfg:     cfg,
		board:   board,
		tracker: NewCompletionTracker(board.Required()),
		ledger:  ledger,
		losses:  &LifeLossCoordinator{},
		hazards: hazards,
		rng:     rng,
	}
}

// ResetBoard swaps in a new board and a fresh completion tracker.
// Score and milestone progress carry over; the caller is responsible
// for cancelling pending hazards when switching levels.
func (r *Resolver) ResetBoard(board *Board) {
	r.board = board
	r.tracker = NewCompletionTracker(board.Required())
}

// RestoreBoard applies a saved board state without emitting events or
// scoring: bricks missing from the alive set are removed and the
// completion tracker is moved forward to match.
func (r *Resolver) RestoreBoard(alive map[EntityID]int) {
	dropped := r.board.Restore(alive)
	for range dropped {
		r.tracker.Record()
	}
}

// Tracker returns the current level's completion tracker.
func (r *Resolver) Tracker() *CompletionTracker {
	return r.tracker
}

// BeginFrame opens a new frame: it resets the per-frame life-loss claim,
// drops events from the previous frame and records the reference ball
// used in life-loss events without a specific ball.
func (r *Resolver) BeginFrame(refBall EntityID) {
	r.losses.BeginFrame()
	r.events = r.events[:0]
	r.refBall = refBall
}

// ResolveAll applies a batch of contacts in order.
func (r *Resolver) ResolveAll(contacts []Contact) {
	for _, c := range contacts {
		r.Resolve(c)
	}
}

// Resolve applies a single contact.
func (r *Resolver) Resolve(c Contact) {
	switch c.Kind {
	case ContactBallBrick:
		r.resolveBallBrick(c.Brick)
	case ContactPaddleBrick:
		r.resolvePaddleBrick(c.Brick)
	}
}

// HazardTouched reports that a falling hazard struck the paddle. At
// most one hazard life loss is granted per frame, shared with harmful
// brick contacts.
func (r *Resolver) HazardTouched() {
	if r.losses.Claim() {
		r.emit(LifeLost{Ball: r.refBall, Cause: LossHazardContact})
	}
}

// BallDrained reports that a ball crossed below the paddle line. Drain
// losses are not hazard losses and do not consume the per-frame claim.
func (r *Resolver) BallDrained(ball EntityID) {
	r.emit(LifeLost{Ball: ball, Cause: LossBallDrained})
}

// Events returns the events emitted since BeginFrame, in emission order.
// The returned slice is reused on the next BeginFrame.
func (r *Resolver) Events() []Event {
	return r.events
}

func (r *Resolver) resolveBallBrick(brick EntityID) {
	in, ok := r.board.Get(brick)
	if !ok || in.destroyed {
		return // Stale or unknown handle
	}
	desc, ok := Classify(in.Type)
	if !ok {
		return
	}
	if !desc.ByBall {
		return // Bounce only; physics already handled it
	}

	if in.HitsLeft > 1 {
		in.HitsLeft--
		r.emit(BrickDamaged{Brick: in.ID, Type: in.Type, HitsLeft: in.HitsLeft})
		return
	}
	r.destroy(in, desc, DestroyedByBall)
}

func (r *Resolver) resolvePaddleBrick(brick EntityID) {
	in, ok := r.board.Get(brick)
	if !ok || in.destroyed {
		return
	}
	desc, ok := Classify(in.Type)
	if !ok {
		return
	}

	// Destruction and life loss are independent outcomes: a thorn brick
	// touched by the paddle is destroyed AND costs a life.
	if desc.ByPaddle {
		r.destroy(in, desc, DestroyedByPaddle)
	}
	if desc.LossOnTouch && r.losses.Claim() {
		r.emit(LifeLost{Ball: r.refBall, Cause: LossBrickContact})
	}
}

// destroy removes a brick from play and emits every outcome its
// descriptor carries. Paddle destruction skips durability: it is
// immediate regardless of remaining hits.
func (r *Resolver) destroy(in *Instance, desc Descriptor, by DestroyedBy) {
	in.destroyed = true
	in.HitsLeft = 0
	r.board.clear(in)

	points := desc.Points
	if desc.MaxPoints > desc.MinPoints {
		points = desc.MinPoints + r.rng.Intn(desc.MaxPoints-desc.MinPoints+1)
	}

	r.emit(BrickDestroyed{
		Brick:  in.ID,
		Type:   in.Type,
		By:     by,
		Points: points,
		Row:    in.Row,
		Col:    in.Col,
	})

	if desc.Counts && r.tracker.Record() {
		r.emit(BoardCleared{Destroyed: r.tracker.Destroyed()})
	}
	for _, tier := range r.ledger.Award(points) {
		r.emit(MilestoneReached{Tier: tier, Score: r.ledger.Score()})
	}
	if desc.ExtraLife {
		r.emit(ExtraLifeEarned{Brick: in.ID})
	}
	if desc.Effect != EffectNone {
		r.emit(EffectTriggered{Brick: in.ID, Effect: desc.Effect})
	}
	if desc.SpawnsHazard {
		pos := Vec{
			X: core.ToFixed(in.Col).Add(core.Scale / 2),
			Y: core.ToFixed(in.Row).Add(core.Scale / 2),
		}
		r.hazards.Enqueue(pos, r.cfg.HazardVariance, r.cfg.HazardDelay)
	}
}

func (r *Resolver) emit(ev Event) {
	r.events = append(r.events, ev)
}
