package galaxygen

import "testing"

func TestSeededRandomDeterministicSequence(t *testing.T) {
	a := NewSeededRandom(42)
	b := NewSeededRandom(42)

	for i := 0; i < 1000; i++ {
		if av, bv := a.Next(), b.Next(); av != bv {
			t.Fatalf("draw %d diverged: %v vs %v", i, av, bv)
		}
	}
}

func TestSeededRandomDifferentSeedsDiverge(t *testing.T) {
	a := NewSeededRandom(1)
	b := NewSeededRandom(2)

	same := true
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	if same {
		t.Error("seeds 1 and 2 produced identical first 10 draws")
	}
}

func TestNextStaysInUnitInterval(t *testing.T) {
	r := NewSeededRandom(7)
	for i := 0; i < 10000; i++ {
		v := r.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("Next() = %v, want value in [0, 1)", v)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	r := NewSeededRandom(7)
	for i := 0; i < 10000; i++ {
		v := r.Range(-3.5, 12.25)
		if v < -3.5 || v >= 12.25 {
			t.Fatalf("Range(-3.5, 12.25) = %v, out of bounds", v)
		}
	}
}

func TestIntRangeInclusiveBounds(t *testing.T) {
	r := NewSeededRandom(7)
	seen := make(map[int]bool)
	for i := 0; i < 10000; i++ {
		v := r.IntRange(2, 5)
		if v < 2 || v > 5 {
			t.Fatalf("IntRange(2, 5) = %d, out of bounds", v)
		}
		seen[v] = true
	}
	for want := 2; want <= 5; want++ {
		if !seen[want] {
			t.Errorf("IntRange(2, 5) never produced %d in 10000 draws", want)
		}
	}
}

func TestBooleanExtremeProbabilities(t *testing.T) {
	r := NewSeededRandom(7)
	for i := 0; i < 1000; i++ {
		if r.Boolean(0) {
			t.Fatal("Boolean(0) = true, want false")
		}
		if !r.Boolean(1) {
			t.Fatal("Boolean(1) = false, want true")
		}
	}
}
