package daa

import "testing"

func TestBreakSymmetryIsAntisymmetric(t *testing.T) {
	if BreakSymmetry("N12345", "N12345") {
		t.Fatalf("identical ids must not break symmetry either way")
	}
	a := BreakSymmetry("N111AA", "N222BB")
	b := BreakSymmetry("N222BB", "N111AA")
	if a == b {
		t.Fatalf("BreakSymmetry must give opposite answers for swapped arguments")
	}
}

func TestHorizontalCoordinationSign(t *testing.T) {
	s := NewVect2(0, 1)  // intruder north of ownship
	v := NewVect2(1, 0)  // relative velocity east
	eps := HorizontalCoordination(s, v)
	if eps != 1 && eps != -1 {
		t.Fatalf("HorizontalCoordination must return +-1, got %d", eps)
	}
}
