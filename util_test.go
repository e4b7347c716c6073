package daa

import (
	"math"
	"testing"
)

func TestAlmostEquals(t *testing.T) {
	if !almostEquals(1.0, 1.0+1e-15) {
		t.Fatalf("expected 1.0 and 1.0+1e-15 to be almost equal")
	}
	if almostEquals(1.0, 1.1) {
		t.Fatalf("expected 1.0 and 1.1 to NOT be almost equal")
	}
	if !almostEquals(0, 0) {
		t.Fatalf("expected 0 == 0")
	}
	if almostEquals(math.NaN(), math.NaN()) {
		t.Fatalf("NaN must never compare almost-equal")
	}
}

func TestModulo(t *testing.T) {
	cases := []struct{ x, m, want float64 }{
		{3, 2, 1},
		{-1, 2, 1},
		{-0.5, 1, 0.5},
		{2 * math.Pi, 2 * math.Pi, 0},
	}
	for _, c := range cases {
		got := modulo(c.x, c.m)
		if !almostEquals(got, c.want) {
			t.Errorf("modulo(%g, %g) = %g, want %g", c.x, c.m, got, c.want)
		}
		if got < 0 {
			t.Errorf("modulo(%g, %g) = %g, must be non-negative", c.x, c.m, got)
		}
	}
}

func TestTurnDelta(t *testing.T) {
	d := turnDelta(0, math.Pi/2, true)
	if !almostEquals(d, math.Pi/2) {
		t.Fatalf("turnDelta right 0->pi/2 = %g, want pi/2", d)
	}
	d = turnDelta(0, math.Pi/2, false)
	if !almostEquals(d, 3*math.Pi/2) {
		t.Fatalf("turnDelta left 0->pi/2 = %g, want 3pi/2", d)
	}
}

func TestClockwise(t *testing.T) {
	if !clockwise(0, math.Pi/4) {
		t.Fatalf("expected shorter arc from 0 to pi/4 to be clockwise")
	}
	if clockwise(0, 3*math.Pi/2) {
		t.Fatalf("expected shorter arc from 0 to 3pi/2 to be counter-clockwise")
	}
}
