package daa

import "testing"

func TestIntervalSetUnionMerges(t *testing.T) {
	s := NewIntervalSet()
	must(t, s.Union(Interval{0, 10}))
	must(t, s.Union(Interval{5, 15}))
	if s.Size() != 1 {
		t.Fatalf("expected overlapping intervals to merge into 1, got %d", s.Size())
	}
	got := s.Get(0)
	if got.Low != 0 || got.Up != 15 {
		t.Fatalf("merged interval = %v, want [0,15]", got)
	}
}

func TestIntervalSetUnionDisjoint(t *testing.T) {
	s := NewIntervalSet()
	must(t, s.Union(Interval{0, 5}))
	must(t, s.Union(Interval{10, 15}))
	if s.Size() != 2 {
		t.Fatalf("expected 2 disjoint intervals, got %d", s.Size())
	}
}

func TestIntervalSetDiffSplits(t *testing.T) {
	s := NewIntervalSet()
	must(t, s.Union(Interval{0, 10}))
	must(t, s.Diff(4, 6))
	if s.Size() != 2 {
		t.Fatalf("expected diff to split into 2 intervals, got %d", s.Size())
	}
	if s.Get(0).Up != 4 || s.Get(1).Low != 6 {
		t.Fatalf("split intervals = %v, %v, want [0,4] and [6,10]", s.Get(0), s.Get(1))
	}
}

func TestIntervalSetAlmostIntersect(t *testing.T) {
	a := NewIntervalSet()
	must(t, a.Union(Interval{0, 10}))
	b := NewIntervalSet()
	must(t, b.Union(Interval{5, 20}))
	inter := a.AlmostIntersect(b)
	if inter.Size() != 1 {
		t.Fatalf("expected 1 intersected interval, got %d", inter.Size())
	}
	if inter.Get(0).Low != 5 || inter.Get(0).Up != 10 {
		t.Fatalf("intersection = %v, want [5,10]", inter.Get(0))
	}
}

func TestIntervalSetRemoveSingleSplits(t *testing.T) {
	s := NewIntervalSet()
	must(t, s.Union(Interval{0, 10}))
	must(t, s.RemoveSingle(5))
	if s.Size() != 2 {
		t.Fatalf("expected RemoveSingle(5) to split, got %d intervals", s.Size())
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
