package rules

// ScoringLedger accumulates the run score and detects milestone
// crossings. The ledger persists across levels; milestones are based on
// the total score, not per-level score.
type ScoringLedger struct {
	score    int
	interval int // Points per milestone tier; <= 0 disables milestones
	lastTier int // Highest tier already announced
}

// NewScoringLedger creates a ledger. interval is the number of points
// between milestones (for example 5000 announces at 5000, 10000, ...).
func NewScoringLedger(interval int) *ScoringLedger {
	return &ScoringLedger{interval: interval}
}

// Award adds points to the score and returns the milestone tiers
// crossed by this award, in ascending order. A single large award can
// cross several tiers at once; each tier is returned exactly once over
// the lifetime of the ledger. Negative awards are ignored.
func (l *ScoringLedger) Award(points int) []int {
	if points <= 0 {
		return nil
	}
	l.score += points

	if l.interval <= 0 {
		return nil
	}
	newTier := l.score / l.interval
	if newTier <= l.lastTier {
		return nil
	}

	crossed := make([]int, 0, newTier-l.lastTier)
	for tier := l.lastTier + 1; tier <= newTier; tier++ {
		crossed = append(crossed, tier)
	}
	l.lastTier = newTier
	return crossed
}

// Score returns the total accumulated score.
func (l *ScoringLedger) Score() int {
	return l.score
}

// Restore overwrites the score with a snapshotted total. The milestone
// position is recomputed so a restored run does not re-announce tiers
// the original run already crossed.
func (l *ScoringLedger) Restore(score int) {
	if score < 0 {
		score = 0
	}
	l.score = score
	if l.interval > 0 {
		l.lastTier = score / l.interval
	}
}

// NextMilestone returns the score at which the next milestone fires,
// or 0 if milestones are disabled.
func (l *ScoringLedger) NextMilestone() int {
	if l.interval <= 0 {
		return 0
	}
	return (l.lastTier + 1) * l.interval
}
