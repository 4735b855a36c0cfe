package rules

import (
	"github.com/vovakirdan/brickout/internal/core"
)

// Vec is a 2D position or velocity in fixed-point cell units.
type Vec struct {
	X, Y core.Fixed
}

// PendingHazard is a scheduled hazard spawn counting down to
// materialization.
type PendingHazard struct {
	Pos       Vec
	Variance  int        // Launch angle variance in degrees
	Remaining core.Fixed // Seconds until materialization
}

// HazardSpawn is a materialized spawn request: where a hazard appears
// and its initial velocity in cells per second. Y is positive toward
// the paddle.
type HazardSpawn struct {
	Pos Vec
	Vel Vec
}

// Hazard launch angle bounds in degrees. Requested variances outside
// this range are clamped at materialization time.
const (
	hazardMinAngle = 5
	hazardMaxAngle = 20
)

// hazardSpeedFloor is the absolute minimum forward speed in cells per
// second, applied even when the configured minimum is lower.
const hazardSpeedFloor = core.Fixed(100)

// HazardScheduler owns the queue of delayed hazard spawns. Bricks that
// spawn hazards enqueue an entry at destruction time; the entry
// materializes after its delay elapses. Spawns alternate their launch
// side so consecutive hazards do not stack on one trajectory.
type HazardScheduler struct {
	pending  []PendingHazard
	minSpeed core.Fixed // Minimum forward speed, cells per second
	flip     bool       // Launch side of the next spawn
}

// NewHazardScheduler creates a scheduler with the given minimum forward
// speed in fixed-point cells per second.
func NewHazardScheduler(minSpeed core.Fixed) *HazardScheduler {
	return &HazardScheduler{minSpeed: minSpeed}
}

// Enqueue schedules a hazard spawn at pos after delay seconds.
// A zero or negative delay materializes on the next Tick.
func (h *HazardScheduler) Enqueue(pos Vec, varianceDeg int, delay core.Fixed) {
	h.pending = append(h.pending, PendingHazard{
		Pos:       pos,
		Variance:  varianceDeg,
		Remaining: delay,
	})
}

// Tick advances all pending timers by dt seconds and returns the spawns
// whose delay elapsed, in enqueue order. Each entry materializes at
// most once.
func (h *HazardScheduler) Tick(dt core.Fixed) []HazardSpawn {
	if len(h.pending) == 0 {
		return nil
	}

	var spawns []HazardSpawn
	keep := h.pending[:0]
	for _, p := range h.pending {
		p.Remaining = p.Remaining.Sub(dt)
		if p.Remaining > 0 {
			keep = append(keep, p)
			continue
		}
		spawns = append(spawns, h.materialize(p))
	}
	h.pending = keep
	return spawns
}

// materialize converts a pending entry into a spawn request, choosing
// the launch angle and decomposing it into velocity components.
func (h *HazardScheduler) materialize(p PendingHazard) HazardSpawn {
	angleMax := core.Clamp(core.Abs(p.Variance), hazardMinAngle, hazardMaxAngle)

	// Launch at half the allowed angle, alternating sides per spawn.
	headingMilliDeg := angleMax * core.Scale / 2
	if h.flip {
		headingMilliDeg = -headingMilliDeg
	}
	h.flip = !h.flip

	forward := h.minSpeed
	if forward < hazardSpeedFloor {
		forward = hazardSpeedFloor
	}

	// Small-angle lateral drift: tan(a) ~ a for a <= 20 degrees.
	// 1 degree = 17.453 milliradians.
	rad := core.Fixed(headingMilliDeg * 17453 / 1000000)
	lateral := forward.MulFixed(rad)

	return HazardSpawn{
		Pos: p.Pos,
		Vel: Vec{X: lateral, Y: forward},
	}
}

// CancelAll drops every pending spawn without materializing it and
// returns how many were cancelled. Level transitions and life losses
// must not leak hazards scheduled under the old board.
func (h *HazardScheduler) CancelAll() int {
	n := len(h.pending)
	h.pending = h.pending[:0]
	return n
}

// Pending returns the number of spawns still counting down.
func (h *HazardScheduler) Pending() int {
	return len(h.pending)
}

// State returns a copy of the pending queue and the launch side of the
// next spawn, for snapshotting.
func (h *HazardScheduler) State() ([]PendingHazard, bool) {
	pending := make([]PendingHazard, len(h.pending))
	copy(pending, h.pending)
	return pending, h.flip
}

// Restore replaces the pending queue and launch side with snapshotted
// values.
func (h *HazardScheduler) Restore(pending []PendingHazard, flip bool) {
	h.pending = append(h.pending[:0], pending...)
	h.flip = flip
}

// MinSpeed returns the configured minimum forward speed in cells per
// second. Hazards already in flight are held to the same floor.
func (h *HazardScheduler) MinSpeed() core.Fixed {
	if h.minSpeed < hazardSpeedFloor {
		return hazardSpeedFloor
	}
	return h.minSpeed
}
