package rules

// CompletionTracker counts destroyed completion-counting bricks for one
// level. The count is monotonic: it only ever moves toward completion,
// and completion fires exactly once.
type CompletionTracker struct {
	required  int
	destroyed int
}

// NewCompletionTracker creates a tracker for a level with the given
// number of counting bricks.
func NewCompletionTracker(required int) *CompletionTracker {
	if required < 0 {
		required = 0
	}
	return &CompletionTracker{required: required}
}

// Record registers one counting brick destroyed. It returns true
// exactly when this call completes the level; further calls are
// clamped and return false.
func (t *CompletionTracker) Record() bool {
	if t.destroyed >= t.required {
		return false
	}
	t.destroyed++
	return t.destroyed == t.required
}

// Complete reports whether every counting brick has been destroyed.
// A level with zero counting bricks is complete from the start.
func (t *CompletionTracker) Complete() bool {
	return t.destroyed >= t.required
}

// Remaining returns the number of counting bricks still in play.
func (t *CompletionTracker) Remaining() int {
	return t.required - t.destroyed
}

// Destroyed returns the number of counting bricks destroyed so far.
func (t *CompletionTracker) Destroyed() int {
	return t.destroyed
}

// Required returns the number of counting bricks the level started with.
func (t *CompletionTracker) Required() int {
	return t.required
}
