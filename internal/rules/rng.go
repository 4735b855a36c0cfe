package rules

// SimpleRNG is a deterministic linear congruential generator. Used
// instead of math/rand so replays with the same seed roll the same
// values on every platform.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	return &SimpleRNG{state: uint64(seed)} //#nosec G115 -- seed sign is irrelevant for LCG state
}

// Next advances the generator and returns the next raw value.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a deterministic value in [0, n). Returns 0 for n <= 0.
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is positive, result fits int
}

// State returns the raw generator state for snapshotting.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// Restore overwrites the generator state with a snapshotted value.
func (r *SimpleRNG) Restore(state uint64) {
	r.state = state
}
