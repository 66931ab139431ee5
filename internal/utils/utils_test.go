package utils

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4, 10)
	if x != 6 || y != 8 {
		t.Errorf("got (%v, %v)", x, y)
	}
	x, y = Normalize(0, 0, 5)
	if x != 0 || y != 0 {
		t.Errorf("zero vector should stay zero, got (%v, %v)", x, y)
	}
}

func TestAngleBetween(t *testing.T) {
	if a := AngleBetween(1, 0, -1, 0); math.Abs(a-math.Pi) > 1e-12 {
		t.Errorf("opposite vectors: %v", a)
	}
	if a := AngleBetween(1, 0, 0, 1); math.Abs(a-math.Pi/2) > 1e-12 {
		t.Errorf("perpendicular vectors: %v", a)
	}
	if a := AngleBetween(-1, 0.01, -1, -0.01); a > 0.1 {
		t.Errorf("angle across ±π should be small, got %v", a)
	}
}

func TestPRNGDeterministic(t *testing.T) {
	a, b := NewPRNGService(99), NewPRNGService(99)
	for k := 0; k < 50; k++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed, different sequence")
		}
	}
}

func TestIntRangeInclusive(t *testing.T) {
	r := NewPRNGService(1)
	seen := map[int]bool{}
	for k := 0; k < 1000; k++ {
		v := r.IntRange(2, 4)
		if v < 2 || v > 4 {
			t.Fatalf("out of range: %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 3 {
		t.Errorf("values seen: %v", seen)
	}
	if r.IntRange(5, 5) != 5 {
		t.Error("degenerate range")
	}
	if r.Chance(0) || !r.Chance(1) {
		t.Error("Chance bounds")
	}
}
