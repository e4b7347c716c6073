package daa

import (
	"math"
	"testing"
)

func TestDaidalusCoreTrackBandsFlagsHeadOnConflict(t *testing.T) {
	core := NewDaidalusCore()
	own := NewTrafficState("ownship", Zero3, MkTrkGsVs(0, 100, 0), 0)
	intruder := NewTrafficState("intruder", NewVect3(0, 20000, 0), MkTrkGsVs(math.Pi, 100, 0), 0)
	core.SetOwnship(own)
	core.SetTraffic([]TrafficState{intruder})

	if !core.InConflict() {
		t.Fatalf("expected head-on geometry to be flagged in conflict")
	}

	bands := core.TrackBands(0, ToInternal(1, "deg"))
	foundConflict := false
	for _, b := range bands {
		if b.Region.Severity() > RegionNone.Severity() {
			foundConflict = true
		}
	}
	if !foundConflict {
		t.Fatalf("expected at least one non-NONE track band")
	}
}

func TestDaidalusCoreNoConflictWhenClear(t *testing.T) {
	core := NewDaidalusCore()
	own := NewTrafficState("ownship", Zero3, MkTrkGsVs(0, 100, 0), 0)
	far := NewTrafficState("far", NewVect3(1e6, 1e6, 0), MkTrkGsVs(0, 100, 0), 0)
	core.SetOwnship(own)
	core.SetTraffic([]TrafficState{far})

	if core.InConflict() {
		t.Fatalf("expected no conflict against traffic far outside the lookahead")
	}
}
