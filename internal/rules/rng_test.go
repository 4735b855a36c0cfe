package rules

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a := NewSimpleRNG(42)
	b := NewSimpleRNG(42)

	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}

	c := NewSimpleRNG(43)
	if NewSimpleRNG(42).Next() == c.Next() {
		t.Error("different seeds produced the same first value")
	}
}

func TestRNGIntnRange(t *testing.T) {
	r := NewSimpleRNG(7)

	for i := 0; i < 1000; i++ {
		v := r.Intn(10)
		if v < 0 || v >= 10 {
			t.Fatalf("Intn(10) = %d, out of range", v)
		}
	}

	if r.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
	if r.Intn(-5) != 0 {
		t.Error("Intn(-5) should return 0")
	}
}

func TestRNGStateRestore(t *testing.T) {
	r := NewSimpleRNG(42)
	r.Next()
	r.Next()

	saved := r.State()
	want := []int{r.Intn(100), r.Intn(100), r.Intn(100)}

	r.Restore(saved)
	for i, w := range want {
		if got := r.Intn(100); got != w {
			t.Fatalf("roll %d after restore = %d, expected %d", i, got, w)
		}
	}
}
