// Package rules implements the brick rule engine: brick type
// classification, collision outcome resolution, level completion
// tracking, scoring with milestone detection, life-loss arbitration and
// delayed hazard spawning. The package is pure simulation state; it
// performs no rendering, input handling or I/O.
package rules

// BrickType identifies a brick kind by its numeric code as used in
// level matrices. The codes form a closed set; level loading rejects
// anything not listed here.
type BrickType int

const (
	BrickEmpty BrickType = 0 // No brick

	BrickHard2     BrickType = 10 // Requires 2 ball hits
	BrickHard3     BrickType = 11 // Requires 3 ball hits
	BrickHard4     BrickType = 12 // Requires 4 ball hits
	BrickHard5     BrickType = 13 // Requires 5 ball hits
	BrickSimple    BrickType = 20 // Standard brick, destroyed in one hit
	BrickLimestone BrickType = 22 // Soft stone, slightly more valuable
	BrickGranite   BrickType = 25 // Dense stone, high value
	BrickShrink    BrickType = 30 // Shrinks the paddle when destroyed
	BrickEnlarge   BrickType = 32 // Enlarges the paddle when destroyed
	BrickRotor     BrickType = 36 // Schedules a falling hazard when destroyed
	BrickExtraLife BrickType = 41 // Grants an extra life when destroyed
	BrickThorn     BrickType = 42 // Destructible; paddle contact costs a life
	BrickQuestion  BrickType = 53 // Random point value
	BrickMagnet    BrickType = 55 // Makes the paddle catch the ball
	BrickPlate     BrickType = 57 // Only the paddle can break it; balls bounce
	BrickWall      BrickType = 90 // Indestructible
	BrickThornWall BrickType = 91 // Indestructible; paddle contact costs a life
)

// EffectKind identifies a timed paddle effect triggered by certain bricks.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectShrinkPaddle
	EffectEnlargePaddle
	EffectStickyPaddle
)

// String returns a human-readable name for the effect.
func (e EffectKind) String() string {
	switch e {
	case EffectShrinkPaddle:
		return "shrink"
	case EffectEnlargePaddle:
		return "enlarge"
	case EffectStickyPaddle:
		return "sticky"
	default:
		return "none"
	}
}

// Descriptor defines the full behavior of a brick type. All gameplay
// decisions about a brick are read from its descriptor; there is no
// per-type code anywhere else.
type Descriptor struct {
	Name         string
	ByBall       bool       // Ball contact can destroy it
	ByPaddle     bool       // Paddle contact destroys it immediately
	Durability   int        // Ball hits required to destroy (0 means 1)
	Points       int        // Score awarded on destruction
	MinPoints    int        // With MaxPoints set, roll in [MinPoints, MaxPoints] instead
	MaxPoints    int
	Counts       bool       // Counts toward level completion
	LossOnTouch  bool       // Paddle contact costs a life
	SpawnsHazard bool       // Destruction schedules a falling hazard
	ExtraLife    bool       // Destruction grants an extra life
	Effect       EffectKind // Paddle effect applied on destruction
}

// catalog maps every known brick type to its descriptor.
var catalog = map[BrickType]Descriptor{
	BrickHard2:     {Name: "hard x2", ByBall: true, Durability: 2, Points: 50, Counts: true},
	BrickHard3:     {Name: "hard x3", ByBall: true, Durability: 3, Points: 50, Counts: true},
	BrickHard4:     {Name: "hard x4", ByBall: true, Durability: 4, Points: 50, Counts: true},
	BrickHard5:     {Name: "hard x5", ByBall: true, Durability: 5, Points: 50, Counts: true},
	BrickSimple:    {Name: "simple", ByBall: true, Points: 25, Counts: true},
	BrickLimestone: {Name: "limestone", ByBall: true, Points: 75, Counts: true},
	BrickGranite:   {Name: "granite", ByBall: true, Points: 250, Counts: true},
	BrickShrink:    {Name: "shrink trap", ByBall: true, Points: 50, Counts: true, Effect: EffectShrinkPaddle},
	BrickEnlarge:   {Name: "enlarge bonus", ByBall: true, Points: 50, Counts: true, Effect: EffectEnlargePaddle},
	BrickRotor:     {Name: "rotor", ByBall: true, Points: 150, Counts: true, SpawnsHazard: true},
	BrickExtraLife: {Name: "extra life", ByBall: true, Points: 0, Counts: true, ExtraLife: true},
	BrickThorn:     {Name: "thorn", ByBall: true, ByPaddle: true, Points: 90, Counts: true, LossOnTouch: true},
	BrickQuestion:  {Name: "question", ByBall: true, MinPoints: 25, MaxPoints: 300, Counts: true},
	BrickMagnet:    {Name: "magnet", ByBall: true, Points: 0, Counts: true, Effect: EffectStickyPaddle},
	BrickPlate:     {Name: "plate", ByPaddle: true, Points: 250, Counts: true},
	BrickWall:      {Name: "wall"},
	BrickThornWall: {Name: "thorn wall", LossOnTouch: true},
}

// Classify returns the descriptor for a brick type. The second return
// value is false for BrickEmpty and any unknown code.
func Classify(t BrickType) (Descriptor, bool) {
	desc, ok := catalog[t]
	return desc, ok
}

// Known reports whether t is a valid, non-empty brick type.
func Known(t BrickType) bool {
	_, ok := catalog[t]
	return ok
}

// Types returns all known brick type codes in ascending order.
func Types() []BrickType {
	return []BrickType{
		BrickHard2, BrickHard3, BrickHard4, BrickHard5,
		BrickSimple, BrickLimestone, BrickGranite,
		BrickShrink, BrickEnlarge, BrickRotor,
		BrickExtraLife, BrickThorn, BrickQuestion,
		BrickMagnet, BrickPlate, BrickWall, BrickThornWall,
	}
}
