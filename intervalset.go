package daa

import (
	"errors"
	"math"
	"sort"
)

// maxIntervals bounds an IntervalSet, mirroring the reference engine's
// fixed-capacity array (originally a hard exit(1) on overflow; here it is
// a reported error instead, per spec.md §7).
const maxIntervals = 400

// CapacityExceeded is reported when an IntervalSet operation would grow
// the set past maxIntervals disjoint intervals.
var CapacityExceeded = errors.New("daa: interval set capacity exceeded")

// IntervalSet holds a sorted, pairwise-disjoint collection of closed
// intervals. The zero value is an empty set.
type IntervalSet struct {
	r []Interval
}

// NewIntervalSet returns an empty set.
func NewIntervalSet() *IntervalSet { return &IntervalSet{} }

// Size returns the number of disjoint intervals currently held.
func (s *IntervalSet) Size() int { return len(s.r) }

// IsEmpty reports whether the set holds no intervals.
func (s *IntervalSet) IsEmpty() bool { return len(s.r) == 0 }

// Get returns the i-th interval in ascending order.
func (s *IntervalSet) Get(i int) Interval { return s.r[i] }

// Clear empties the set.
func (s *IntervalSet) Clear() { s.r = s.r[:0] }

// Intervals returns a copy of the underlying ordered slice.
func (s *IntervalSet) Intervals() []Interval {
	out := make([]Interval, len(s.r))
	copy(out, s.r)
	return out
}

// order returns the index of the interval containing x, or -(k+1) where k
// is the index at which x would be inserted to keep s.r ordered, mirroring
// IntervalSet::order in the reference engine.
func (s *IntervalSet) order(x float64) int {
	for k, iv := range s.r {
		if iv.Contains(x) {
			return k
		}
		if x < iv.Low {
			return -(k + 1)
		}
	}
	return -(len(s.r) + 1)
}

func (s *IntervalSet) insertAt(k int, iv Interval) error {
	if len(s.r) >= maxIntervals {
		return CapacityExceeded
	}
	s.r = append(s.r, Interval{})
	copy(s.r[k+1:], s.r[k:])
	s.r[k] = iv
	return nil
}

func (s *IntervalSet) removeAt(k int) {
	s.r = append(s.r[:k], s.r[k+1:]...)
}

// Union merges iv into the set, combining it with any intervals it
// overlaps or touches.
func (s *IntervalSet) Union(iv Interval) error {
	return s.unionImpl(iv, false)
}

// AlmostUnion merges iv into the set using ULP-tolerant overlap testing,
// so intervals that abut to within floating-point noise are coalesced.
func (s *IntervalSet) AlmostUnion(iv Interval) error {
	return s.unionImpl(iv, true)
}

func (s *IntervalSet) unionImpl(iv Interval, ulp bool) error {
	if iv.IsEmpty() {
		return nil
	}
	low, up := iv.Low, iv.Up
	overlaps := func(a Interval) bool {
		if ulp {
			return almostLeq(a.Low, up) && almostLeq(low, a.Up)
		}
		return a.Low <= up && low <= a.Up
	}
	out := s.r[:0:0]
	inserted := false
	for _, a := range s.r {
		if !overlaps(a) {
			if !inserted && low < a.Low {
				out = append(out, Interval{low, up})
				inserted = true
			}
			out = append(out, a)
			continue
		}
		if a.Low < low {
			low = a.Low
		}
		if a.Up > up {
			up = a.Up
		}
	}
	if !inserted {
		out = append(out, Interval{low, up})
	}
	if len(out) > maxIntervals {
		return CapacityExceeded
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Low < out[j].Low })
	s.r = out
	return nil
}

// AlmostAdd rebuilds the set with [low, up] merged in, using ULP-tolerant
// comparisons throughout, mirroring IntervalSet::almost_add's single-pass
// rebuild.
func (s *IntervalSet) AlmostAdd(low, up float64) error {
	return s.AlmostUnion(Interval{low, up})
}

// AlmostIntersect returns the intersection of s and other, with ULP
// tolerance on the shared boundary, mirroring IntervalSet::almost_intersect
// (a two-pointer merge walk over both sorted lists).
func (s *IntervalSet) AlmostIntersect(other *IntervalSet) *IntervalSet {
	out := NewIntervalSet()
	i, j := 0, 0
	for i < len(s.r) && j < len(other.r) {
		a, b := s.r[i], other.r[j]
		lo := maxF(a.Low, b.Low)
		hi := minF(a.Up, b.Up)
		if almostLeq(lo, hi) {
			out.r = append(out.r, Interval{lo, hi})
		}
		if almostLess(a.Up, b.Up) {
			i++
		} else {
			j++
		}
	}
	return out
}

// Diff removes the open interval (low, up) from the set, splitting any
// interval that straddles it, mirroring IntervalSet::diff.
func (s *IntervalSet) Diff(low, up float64) error {
	if low >= up {
		return nil
	}
	out := s.r[:0:0]
	for _, a := range s.r {
		switch {
		case a.Up <= low || a.Low >= up:
			out = append(out, a)
		case a.Low < low && a.Up > up:
			out = append(out, Interval{a.Low, low})
			out = append(out, Interval{up, a.Up})
		case a.Low < low:
			out = append(out, Interval{a.Low, low})
		case a.Up > up:
			out = append(out, Interval{up, a.Up})
		default:
			// a fully contained in (low, up): dropped.
		}
	}
	if len(out) > maxIntervals {
		return CapacityExceeded
	}
	s.r = out
	return nil
}

// RemoveSingle removes the point x from the set, splitting its containing
// interval if x falls strictly inside it.
func (s *IntervalSet) RemoveSingle(x float64) error {
	k := s.order(x)
	if k < 0 {
		return nil
	}
	a := s.r[k]
	switch {
	case a.Low == a.Up:
		s.removeAt(k)
	case a.Low == x:
		s.r[k] = Interval{nextAfter(x), a.Up}
	case a.Up == x:
		s.r[k] = Interval{a.Low, prevBefore(x)}
	default:
		s.removeAt(k)
		if err := s.insertAt(k, Interval{a.Low, prevBefore(x)}); err != nil {
			return err
		}
		return s.insertAt(k+1, Interval{nextAfter(x), a.Up})
	}
	return nil
}

// SweepSingle reports whether x lies within any interval after expanding
// each interval's bounds by tolerance on both sides, mirroring
// IntervalSet::sweepSingle's "near miss still counts" semantics.
func (s *IntervalSet) SweepSingle(x, tolerance float64) bool {
	for _, a := range s.r {
		if x >= a.Low-tolerance && x <= a.Up+tolerance {
			return true
		}
	}
	return false
}

// SweepBreaks returns the sorted list of all interval boundaries (low and
// up endpoints) currently in the set, mirroring IntervalSet::sweepBreaks.
func (s *IntervalSet) SweepBreaks() []float64 {
	out := make([]float64, 0, 2*len(s.r))
	for _, a := range s.r {
		out = append(out, a.Low, a.Up)
	}
	return out
}

func nextAfter(x float64) float64  { return math.Nextafter(x, x+1) }
func prevBefore(x float64) float64 { return math.Nextafter(x, x-1) }
