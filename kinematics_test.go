package daa

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestTurnRadiusOutOfRange(t *testing.T) {
	_, err := TurnRadius(100, math.Pi/2)
	if err != NumericOutOfRange {
		t.Fatalf("expected NumericOutOfRange for bank >= pi/2, got %v", err)
	}
}

func TestTurnRadiusBankAngleRoundTrip(t *testing.T) {
	gs := 120.0
	bank := math.Pi / 6
	r, err := TurnRadius(gs, bank)
	if err != nil {
		t.Fatalf("TurnRadius: %v", err)
	}
	gotBank := BankAngleRadius(gs, r)
	if !almostEquals(gotBank, bank) {
		t.Fatalf("BankAngleRadius round trip = %g, want %g", gotBank, bank)
	}
}

func TestTurnOmegaPreservesGroundSpeedAndAltitudeRate(t *testing.T) {
	so := Zero3
	vo := MkTrkGsVs(0, 100, 5)
	np, nv := TurnOmega(so, vo, 10, 0.1)
	if !almostEquals(nv.Gs(), vo.Gs()) {
		t.Fatalf("TurnOmega must preserve ground speed: got %g, want %g", nv.Gs(), vo.Gs())
	}
	wantZ := so.Z + vo.Vs()*10
	if !almostEquals(np.Z, wantZ) {
		t.Fatalf("TurnOmega altitude = %g, want %g", np.Z, wantZ)
	}
}

func TestGsAccelUntilReachesGoal(t *testing.T) {
	so := Zero3
	vo := MkTrkGsVs(0, 50, 0)
	_, nv, tm := GsAccelUntil(so, vo, 80, 2)
	if !almostEquals(nv.Gs(), 80) {
		t.Fatalf("GsAccelUntil gs = %g, want 80", nv.Gs())
	}
	if tm <= 0 {
		t.Fatalf("expected positive acceleration time, got %g", tm)
	}
}

func TestVsLevelOutReachesTarget(t *testing.T) {
	z0, vs0 := 1000.0, 0.0
	target := 2000.0
	lot, err := VsLevelOutTimes(z0, vs0, target, 5, 5, 1, 1)
	if err != nil {
		t.Fatalf("VsLevelOutTimes: %v", err)
	}
	z, v := VsLevelOut(z0, vs0, target, lot.T3+10, lot)
	if !floats.EqualWithinAbs(v, 0, 1e-9) {
		t.Fatalf("expected vertical speed to settle at 0 after level-out, got %g", v)
	}
	if z <= z0 {
		t.Fatalf("expected altitude to have increased toward target, got %g", z)
	}
}
