package daa

import (
	"math"
	"testing"
)

func TestVelocityTrkRoundTrip(t *testing.T) {
	for _, trk := range []float64{0, math.Pi / 6, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		v := MkTrkGsVs(trk, 100, -2)
		if !almostEquals(v.Trk(), trk) {
			t.Errorf("MkTrkGsVs(%g,...).Trk() = %g, want %g", trk, v.Trk(), trk)
		}
		if !almostEquals(v.Gs(), 100) {
			t.Errorf("Gs() = %g, want 100", v.Gs())
		}
		if !almostEquals(v.Vs(), -2) {
			t.Errorf("Vs() = %g, want -2", v.Vs())
		}
	}
}

func TestVect2Hat(t *testing.T) {
	v := NewVect2(3, 4)
	u := v.Hat()
	if !almostEquals(u.Norm(), 1) {
		t.Fatalf("Hat() norm = %g, want 1", u.Norm())
	}
	if Zero2.Hat() != Zero2 {
		t.Fatalf("Hat() of zero vector must be zero")
	}
}

func TestVect3LinearByDist2D(t *testing.T) {
	p := Zero3
	np := p.LinearByDist2D(0, 100)
	if !almostEquals(np.Y, 100) || !almostEquals(np.X, 0) {
		t.Fatalf("LinearByDist2D(trk=0) = %+v, want (0,100,0)", np)
	}
}
