package daa

import "fmt"

// Interval is a closed real interval [Low, Up]. An empty interval has
// Low > Up by convention (EmptyInterval below).
type Interval struct {
	Low, Up float64
}

// EmptyInterval is the canonical empty interval.
var EmptyInterval = Interval{Low: 0, Up: -1}

// NewInterval builds an Interval from explicit bounds.
func NewInterval(low, up float64) Interval { return Interval{Low: low, Up: up} }

// IsEmpty reports whether the interval contains no points.
func (i Interval) IsEmpty() bool { return i.Low > i.Up }

// Width returns Up - Low, or 0 for an empty interval.
func (i Interval) Width() float64 {
	if i.IsEmpty() {
		return 0
	}
	return i.Up - i.Low
}

// Contains reports whether x falls within [Low, Up].
func (i Interval) Contains(x float64) bool {
	return !i.IsEmpty() && i.Low <= x && x <= i.Up
}

// AlmostContains is Contains with ULP-tolerant bound comparison.
func (i Interval) AlmostContains(x float64) bool {
	if i.IsEmpty() {
		return false
	}
	return almostLeq(i.Low, x) && almostLeq(x, i.Up)
}

func (i Interval) String() string {
	if i.IsEmpty() {
		return "{}"
	}
	return fmt.Sprintf("[%g, %g]", i.Low, i.Up)
}
