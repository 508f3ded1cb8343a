package rng

import "testing"

func TestSeedRepeatsSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Int0(1000), b.Int0(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}

	a.Seed(7)
	first := a.Int0(1 << 30)
	a.Seed(7)
	if got := a.Int0(1 << 30); got != first {
		t.Errorf("after reseed got %d, want %d", got, first)
	}
}

func TestRanges(t *testing.T) {
	r := New(1)
	for i := 0; i < 1000; i++ {
		if v := r.Int0(5); v < 0 || v >= 5 {
			t.Fatalf("Int0(5) = %d", v)
		}
		if v := r.Int1(5); v < 1 || v > 5 {
			t.Fatalf("Int1(5) = %d", v)
		}
		if v := r.Range(3, 6); v < 3 || v > 6 {
			t.Fatalf("Range(3, 6) = %d", v)
		}
		if v := r.Spread(10, 2); v < 8 || v > 12 {
			t.Fatalf("Spread(10, 2) = %d", v)
		}
	}
	if v := r.Int0(0); v != 0 {
		t.Errorf("Int0(0) = %d, want 0", v)
	}
	if v := r.Normal(9, 0); v != 9 {
		t.Errorf("Normal(9, 0) = %d, want 9", v)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	r := New(3)
	s := []int{0, 1, 2, 3, 4, 5, 6, 7}
	r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
	seen := make(map[int]bool)
	for _, v := range s {
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("shuffle lost elements: %v", s)
	}
}
