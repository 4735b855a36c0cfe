package rules

// Event is the interface implemented by all rule engine events.
// The unexported marker method keeps the set of events closed: only
// this package can define new ones, so consumers can switch over the
// concrete types exhaustively.
type Event interface {
	ruleEvent()
}

// DestroyedBy identifies which actor destroyed a brick.
type DestroyedBy int

const (
	DestroyedByBall DestroyedBy = iota
	DestroyedByPaddle
)

// String returns a human-readable name for the destroyer.
func (d DestroyedBy) String() string {
	switch d {
	case DestroyedByBall:
		return "ball"
	case DestroyedByPaddle:
		return "paddle"
	default:
		return "unknown"
	}
}

// LossCause identifies why a life was lost.
type LossCause int

const (
	LossBallDrained   LossCause = iota // Ball crossed below the paddle line
	LossBrickContact                   // Paddle touched a harmful brick
	LossHazardContact                  // Paddle struck by a falling hazard
)

// String returns a human-readable name for the loss cause.
func (c LossCause) String() string {
	switch c {
	case LossBallDrained:
		return "ball drained"
	case LossBrickContact:
		return "brick contact"
	case LossHazardContact:
		return "hazard contact"
	default:
		return "unknown"
	}
}

// BrickDamaged is emitted when a multi-hit brick absorbs a ball hit
// without being destroyed.
type BrickDamaged struct {
	Brick    EntityID
	Type     BrickType
	HitsLeft int // Remaining hits before destruction
}

// BrickDestroyed is emitted exactly once per brick, when it is removed
// from play.
type BrickDestroyed struct {
	Brick    EntityID
	Type     BrickType
	By       DestroyedBy
	Points   int // Final awarded points (random types already rolled)
	Row, Col int
}

// BoardCleared is emitted when the last completion-counting brick is
// destroyed.
type BoardCleared struct {
	Destroyed int // Total counting bricks destroyed this level
}

// MilestoneReached is emitted for every score milestone tier crossed.
// A single large award can emit several of these, in ascending order.
type MilestoneReached struct {
	Tier  int // 1 for the first milestone, 2 for the second, ...
	Score int // Total score after the award
}

// ExtraLifeEarned is emitted when an extra-life brick is destroyed.
type ExtraLifeEarned struct {
	Brick EntityID
}

// EffectTriggered is emitted when a brick carrying a paddle effect is
// destroyed.
type EffectTriggered struct {
	Brick  EntityID
	Effect EffectKind
}

// LifeLost is emitted when the player loses a life. Ball is the frame's
// reference ball; for causes other than LossBallDrained it merely
// identifies the ball in play when the loss happened.
type LifeLost struct {
	Ball  EntityID
	Cause LossCause
}

func (BrickDamaged) ruleEvent()     {}
func (BrickDestroyed) ruleEvent()   {}
func (BoardCleared) ruleEvent()     {}
func (MilestoneReached) ruleEvent() {}
func (ExtraLifeEarned) ruleEvent()  {}
func (EffectTriggered) ruleEvent()  {}
func (LifeLost) ruleEvent()         {}
