package daa

import "testing"

func TestCDCylinderViolation(t *testing.T) {
	c := NewCDCylinder(1000, 300)
	so := Zero3
	si := NewVect3(500, 0, 0)
	vo := MkTrkGsVs(0, 100, 0)
	vi := MkTrkGsVs(0, 100, 0)
	if !c.Violation(so, si, vo, vi) {
		t.Fatalf("expected aircraft 500m apart with 1000m radius to be in violation")
	}
}

func TestCDCylinderDetectionHeadOn(t *testing.T) {
	c := NewCDCylinder(1000, 300)
	so := NewVect3(0, -20000, 0)
	si := NewVect3(0, 20000, 0)
	vo := MkTrkGsVs(0, 100, 0) // flying north
	vi := MkTrkGsVs(180*deg, 100, 0) // flying south, toward ownship

	cd := c.Detection(so, si, vo, vi, 600)
	if !cd.Conflict {
		t.Fatalf("expected head-on closure to produce a conflict within lookahead")
	}
	if cd.TimeIn <= 0 || cd.TimeIn >= cd.TimeOut {
		t.Fatalf("expected 0 < TimeIn < TimeOut, got in=%g out=%g", cd.TimeIn, cd.TimeOut)
	}
}

func TestCDCylinderDetectionNoConflictWhenDiverging(t *testing.T) {
	c := NewCDCylinder(1000, 300)
	so := Zero3
	si := NewVect3(0, 20000, 0)
	vo := MkTrkGsVs(180*deg, 100, 0) // flying south, away
	vi := MkTrkGsVs(0, 100, 0)       // flying north, away

	cd := c.Detection(so, si, vo, vi, 600)
	if cd.Conflict {
		t.Fatalf("expected no conflict for diverging aircraft")
	}
}

const deg = 3.141592653589793 / 180
