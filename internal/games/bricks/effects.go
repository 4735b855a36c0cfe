package bricks

import (
	"fmt"

	"github.com/vovakirdan/brickout/internal/rules"
)

// activeEffect is one running timed effect.
type activeEffect struct {
	Kind      rules.EffectKind
	UntilTick int
}

// TicksRemaining returns how many ticks until the effect expires.
func (e *activeEffect) TicksRemaining(currentTick int) int {
	remaining := e.UntilTick - currentTick
	if remaining < 0 {
		return 0
	}
	return remaining
}

// EffectState tracks the timed paddle effects triggered by bricks.
// Opposed width effects cancel each other; re-triggering an active
// effect restarts its timer.
type EffectState struct {
	active []*activeEffect
}

// NewEffectState creates an empty effect tracker.
func NewEffectState() *EffectState {
	return &EffectState{}
}

// Apply starts or restarts an effect expiring duration ticks from now.
func (s *EffectState) Apply(kind rules.EffectKind, currentTick, duration int) {
	switch kind {
	case rules.EffectShrinkPaddle:
		s.Remove(rules.EffectEnlargePaddle)
	case rules.EffectEnlargePaddle:
		s.Remove(rules.EffectShrinkPaddle)
	}

	for _, e := range s.active {
		if e.Kind == kind {
			e.UntilTick = currentTick + duration
			return
		}
	}
	s.active = append(s.active, &activeEffect{
		Kind:      kind,
		UntilTick: currentTick + duration,
	})
}

// Remove drops an effect by kind, if active.
func (s *EffectState) Remove(kind rules.EffectKind) {
	for i, e := range s.active {
		if e.Kind == kind {
			s.active = append(s.active[:i], s.active[i+1:]...)
			return
		}
	}
}

// Expire drops effects whose timer ran out and returns their kinds.
func (s *EffectState) Expire(currentTick int) []rules.EffectKind {
	var expired []rules.EffectKind
	keep := s.active[:0]
	for _, e := range s.active {
		if e.UntilTick <= currentTick {
			expired = append(expired, e.Kind)
		} else {
			keep = append(keep, e)
		}
	}
	s.active = keep
	return expired
}

// Has reports whether an effect is currently active.
func (s *EffectState) Has(kind rules.EffectKind) bool {
	for _, e := range s.active {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Remaining returns ticks left for an effect, or 0 if not active.
func (s *EffectState) Remaining(kind rules.EffectKind, currentTick int) int {
	for _, e := range s.active {
		if e.Kind == kind {
			return e.TicksRemaining(currentTick)
		}
	}
	return 0
}

// Clear drops every active effect. Life losses and level switches start
// with a clean paddle.
func (s *EffectState) Clear() {
	s.active = s.active[:0]
}

// Count returns the number of active effects.
func (s *EffectState) Count() int {
	return len(s.active)
}

// HUDString builds a compact display of active effects with seconds
// remaining, or empty when none are active.
func (s *EffectState) HUDString(currentTick, tickRate int) string {
	if len(s.active) == 0 {
		return ""
	}
	if tickRate <= 0 {
		tickRate = 60
	}

	result := ""
	for _, e := range s.active {
		secs := e.TicksRemaining(currentTick) / tickRate
		if result != "" {
			result += " "
		}
		result += fmt.Sprintf("%s(%ds)", e.Kind, secs)
	}
	return result
}
