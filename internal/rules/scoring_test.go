package rules

import (
	"reflect"
	"testing"
)

func TestLedgerAccumulates(t *testing.T) {
	l := NewScoringLedger(5000)

	l.Award(25)
	l.Award(90)
	l.Award(250)

	if l.Score() != 365 {
		t.Errorf("Score = %d, expected 365", l.Score())
	}
}

func TestLedgerSingleMilestone(t *testing.T) {
	l := NewScoringLedger(100)

	if crossed := l.Award(99); crossed != nil {
		t.Errorf("Award(99) crossed %v, expected none", crossed)
	}
	if crossed := l.Award(1); !reflect.DeepEqual(crossed, []int{1}) {
		t.Errorf("Award(1) crossed %v, expected [1]", crossed)
	}
}

func TestLedgerMultiTierCrossing(t *testing.T) {
	l := NewScoringLedger(100)

	// One award of 250 crosses tiers 1 and 2 in ascending order.
	crossed := l.Award(250)
	if !reflect.DeepEqual(crossed, []int{1, 2}) {
		t.Errorf("Award(250) crossed %v, expected [1 2]", crossed)
	}

	// Reaching tier 2 again must not re-announce it.
	if crossed := l.Award(40); crossed != nil {
		t.Errorf("Award(40) crossed %v, expected none (tier 2 already announced)", crossed)
	}
	if crossed := l.Award(10); !reflect.DeepEqual(crossed, []int{3}) {
		t.Errorf("Award(10) crossed %v, expected [3]", crossed)
	}
}

func TestLedgerNoDuplicateTiers(t *testing.T) {
	l := NewScoringLedger(100)

	seen := make(map[int]int)
	for i := 0; i < 50; i++ {
		for _, tier := range l.Award(17) {
			seen[tier]++
		}
	}
	for tier, count := range seen {
		if count != 1 {
			t.Errorf("tier %d announced %d times, expected once", tier, count)
		}
	}
	if l.Score() != 850 {
		t.Errorf("Score = %d, expected 850", l.Score())
	}
}

func TestLedgerDisabledMilestones(t *testing.T) {
	l := NewScoringLedger(0)

	if crossed := l.Award(100000); crossed != nil {
		t.Errorf("disabled ledger crossed %v, expected none", crossed)
	}
	if l.Score() != 100000 {
		t.Errorf("Score = %d, expected 100000 (score still accumulates)", l.Score())
	}
	if l.NextMilestone() != 0 {
		t.Errorf("NextMilestone = %d, expected 0 when disabled", l.NextMilestone())
	}
}

func TestLedgerIgnoresNonPositiveAwards(t *testing.T) {
	l := NewScoringLedger(100)

	l.Award(0)
	l.Award(-50)

	if l.Score() != 0 {
		t.Errorf("Score = %d, expected 0", l.Score())
	}
}

func TestLedgerNextMilestone(t *testing.T) {
	l := NewScoringLedger(5000)

	if l.NextMilestone() != 5000 {
		t.Errorf("NextMilestone = %d, expected 5000", l.NextMilestone())
	}
	l.Award(5200)
	if l.NextMilestone() != 10000 {
		t.Errorf("NextMilestone = %d, expected 10000", l.NextMilestone())
	}
}

func TestLedgerRestore(t *testing.T) {
	l := NewScoringLedger(100)
	l.Restore(250)

	if l.Score() != 250 {
		t.Errorf("Score = %d, expected 250", l.Score())
	}
	// Tiers 1 and 2 count as already announced.
	if crossed := l.Award(40); crossed != nil {
		t.Errorf("Award(40) crossed %v, expected none", crossed)
	}
	if crossed := l.Award(10); !reflect.DeepEqual(crossed, []int{3}) {
		t.Errorf("Award(10) crossed %v, expected [3]", crossed)
	}

	l.Restore(-5)
	if l.Score() != 0 {
		t.Errorf("Score = %d after negative restore, expected 0", l.Score())
	}
}
