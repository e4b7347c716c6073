package daa

import "testing"

func TestBandsHysteresisSuppressesBriefFlicker(t *testing.T) {
	h := NewBandsHysteresis(5, 0)
	if got := h.Update(0, RegionNone); got != RegionNone {
		t.Fatalf("initial update = %v, want NONE", got)
	}
	if got := h.Update(1, RegionNear); got != RegionNone {
		t.Fatalf("brief flicker at t=1 should still report NONE, got %v", got)
	}
	if got := h.Update(6, RegionNear); got != RegionNear {
		t.Fatalf("persistent change past MinDuration should report NEAR, got %v", got)
	}
}

func TestRegionSeverityOrdering(t *testing.T) {
	if RegionNear.Severity() <= RegionMid.Severity() {
		t.Fatalf("NEAR must be more severe than MID")
	}
	if RegionMid.Severity() <= RegionFar.Severity() {
		t.Fatalf("MID must be more severe than FAR")
	}
	if RegionFar.Severity() <= RegionRecovery.Severity() {
		t.Fatalf("FAR must be more severe than RECOVERY")
	}
	if MostSevere(RegionFar, RegionNear) != RegionNear {
		t.Fatalf("MostSevere should pick NEAR over FAR")
	}
}
