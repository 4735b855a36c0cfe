package rules

import "testing"

func TestLifeLossClaimOncePerFrame(t *testing.T) {
	var c LifeLossCoordinator
	c.BeginFrame()

	if !c.Claim() {
		t.Error("first claim of the frame should succeed")
	}
	if c.Claim() {
		t.Error("second claim of the same frame should fail")
	}
	if c.Claim() {
		t.Error("third claim of the same frame should fail")
	}
	if !c.Claimed() {
		t.Error("Claimed should report true after a successful claim")
	}
}

// The reset is its own step in the frame loop; a skipped reset would
// silently swallow every hazard loss after the first.
func TestLifeLossBeginFrameResetsClaim(t *testing.T) {
	var c LifeLossCoordinator

	c.BeginFrame()
	if !c.Claim() {
		t.Fatal("first claim should succeed")
	}

	c.BeginFrame()
	if c.Claimed() {
		t.Error("BeginFrame should clear the claim")
	}
	if !c.Claim() {
		t.Error("claim should succeed again after BeginFrame")
	}

	// Several empty frames in a row keep the claim available.
	c.BeginFrame()
	c.BeginFrame()
	if !c.Claim() {
		t.Error("claim should succeed after consecutive resets")
	}
}

func TestLifeLossZeroValueIsUsable(t *testing.T) {
	var c LifeLossCoordinator
	if c.Claimed() {
		t.Error("zero value should start unclaimed")
	}
	if !c.Claim() {
		t.Error("zero value should accept the first claim")
	}
}
