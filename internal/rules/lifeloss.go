package rules

// LifeLossCoordinator arbitrates hazard-driven life losses within a
// single frame. Several hazards can touch the paddle in the same tick
// (a thorn brick and a falling hazard, say); only the first claim wins,
// so the player never loses more than one life per frame to hazards.
//
// The flag must be reset at the start of every frame via BeginFrame;
// the resolver does this as its dedicated first step.
type LifeLossCoordinator struct {
	claimed bool
}

// BeginFrame resets the per-frame claim.
func (c *LifeLossCoordinator) BeginFrame() {
	c.claimed = false
}

// Claim attempts to register a hazard life loss for this frame.
// It returns true for the first caller after BeginFrame and false for
// every subsequent caller until the next reset.
func (c *LifeLossCoordinator) Claim() bool {
	if c.claimed {
		return false
	}
	c.claimed = true
	return true
}

// Claimed reports whether a hazard life loss already happened this
// frame.
func (c *LifeLossCoordinator) Claimed() bool {
	return c.claimed
}
