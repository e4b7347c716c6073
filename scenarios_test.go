package daa

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

// Literal-value tests for the six worked scenarios in spec.md §8. Each
// test uses the exact inputs and expected outputs given there, rather
// than an analogous round-number stand-in.

// S1 — head-on at FL350, 300 kn each.
func TestScenarioS1HeadOnFL350(t *testing.T) {
	core := NewDaidalusCore() // D = 9260 m, H = 304.8 m, lookahead = 180 s
	own := NewTrafficState("ownship", NewVect3(0, 0, 10668), MkTrkGsVs(0, 154.3, 0), 0)
	intruder := NewTrafficState("intruder", NewVect3(0, 18520, 10668), MkTrkGsVs(math.Pi, 154.3, 0), 0)
	core.SetOwnship(own)
	core.SetTraffic([]TrafficState{intruder})

	if !core.InConflict() {
		t.Fatalf("expected head-on geometry to be flagged in conflict")
	}

	// Drive the classifier directly (rather than reasoning about wrapped
	// BandsRange intervals around the 0/2*pi seam) to check for a NEAR
	// track within [-10, +10] deg of the ownship's current heading.
	step := ToInternal(1, "deg")
	rb := DaidalusRealBands{
		Axis:      TrkBandsAxis{Step: step},
		Ownship:   own,
		Traffic:   core.Traffic,
		Detector:  core.Detector,
		Lookahead: core.Lookahead,
	}
	found := false
	for deg := -10; deg <= 10; deg++ {
		s := int(math.Round(float64(deg) * math.Pi / 180 / step))
		if rb.stepRegion(s) == RegionNear {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected a NEAR track region within [-10, +10] deg around 0")
	}
}

// S2 — turn radius.
func TestScenarioS2TurnRadius(t *testing.T) {
	r, err := TurnRadius(154.3, ToInternal(25, "deg"))
	if err != nil {
		t.Fatalf("TurnRadius: %v", err)
	}
	if !floats.EqualWithinAbs(r, 5207, 1) {
		t.Fatalf("turn radius = %g, want ~5207 m within 1 m", r)
	}
}

// S3 — gs accel to RTA.
func TestScenarioS3GsAccelToDist(t *testing.T) {
	gsIn, dist, a := 154.3, 18520.0, 0.5
	tm := GsAccelToDist(gsIn, a, dist)
	goalGs := gsIn + a*tm
	if !floats.EqualWithinAbs(gsIn*tm+0.5*a*tm*tm, dist, 1e-6) {
		t.Fatalf("gs accel distance = %g, want %g", gsIn*tm+0.5*a*tm*tm, dist)
	}
	if goalGs <= gsIn {
		t.Fatalf("expected goal_gs > gs_in under positive acceleration, got %g", goalGs)
	}
}

// S4 — vs level out.
func TestScenarioS4VsLevelOut(t *testing.T) {
	z0, v0z := 6096.0, -14.09
	targetAlt := 3360.4
	rate, a := 1.68, 2.0

	lot, err := VsLevelOutTimes(z0, v0z, targetAlt, rate, rate, a, a)
	if err != nil {
		t.Fatalf("VsLevelOutTimes: %v", err)
	}
	if !floats.EqualWithinAbs(lot.T1, 0, 1e-6) {
		t.Fatalf("T1 = %g, want 0", lot.T1)
	}
	if !floats.EqualWithinAbs(lot.T2, 190.67, 0.1) {
		t.Fatalf("T2 = %g, want ~190.67", lot.T2)
	}
	if !floats.EqualWithinAbs(lot.T3, 197.72, 0.1) {
		t.Fatalf("T3 = %g, want ~197.72", lot.T3)
	}

	alt, vs := VsLevelOut(z0, v0z, targetAlt, 198, lot)
	if !floats.EqualWithinAbs(alt, targetAlt, 1e-6) {
		t.Fatalf("final alt = %g, want %g", alt, targetAlt)
	}
	if !floats.EqualWithinAbs(vs, 0, 1e-9) {
		t.Fatalf("final vs = %g, want 0", vs)
	}
}

// S5 — IntervalSet union.
func TestScenarioS5IntervalSetUnion(t *testing.T) {
	s := NewIntervalSet()
	must(t, s.Union(Interval{1, 2}))
	must(t, s.Union(Interval{3, 4}))
	must(t, s.Union(Interval{0.5, 3.0}))

	if s.Size() != 1 {
		t.Fatalf("expected a single merged interval, got %d: %+v", s.Size(), s.Intervals())
	}
	got := s.Get(0)
	if !floats.EqualWithinAbs(got.Low, 0.5, 1e-9) || !floats.EqualWithinAbs(got.Up, 4, 1e-9) {
		t.Fatalf("merged interval = %+v, want [0.5, 4]", got)
	}
}

// S6 — recovery saturated.
func TestScenarioS6RecoverySaturated(t *testing.T) {
	pos := NewVect3(0, 0, 10668)
	vel := MkTrkGsVs(0, 154.3, 0)
	own := NewTrafficState("ownship", pos, vel, 0)
	intruder := NewTrafficState("intruder", pos, vel, 0)

	detector := NewCDCylinder(9260, 304.8)
	const maxNFactor = 5
	info := ComputeRecoveryInformation(own, []TrafficState{intruder}, detector, 180, maxNFactor, func(d, h float64) bool {
		relaxed := NewCDCylinder(d, h)
		return !relaxed.Violation(own.Position, intruder.Position, own.Velocity, intruder.Velocity)
	})

	if !info.RecoveryBandsSaturated {
		t.Fatalf("expected recovery bands to saturate when ownship and intruder are colocated and stationary")
	}
	if info.TimeToRecovery != math.Inf(-1) {
		t.Fatalf("recovery_time = %g, want -Inf", info.TimeToRecovery)
	}
	if info.NFactor != maxNFactor {
		t.Fatalf("nfactor = %d, want max shrinks attempted (%d)", info.NFactor, maxNFactor)
	}
}
