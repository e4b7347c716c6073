package daa

import "math"

// RealBandsAxis generalizes the four physical axes (track, ground speed,
// vertical speed, altitude) that DaidalusRealBands can scan, following
// the "small interface, per-axis implementation" shape used throughout
// the reference engine's DirBands/HsBands/VsBands/AltBands quartet
// (spec.md §4.7).
type RealBandsAxis interface {
	// StepSize returns the real-valued width of one integer scan step.
	StepSize() float64
	// Min and Max bound the scan in real units (ignored when Mod > 0).
	Min() float64
	Max() float64
	// Mod returns the wraparound period in real units, or 0 if the axis
	// does not wrap (only the track axis wraps, at 2*pi).
	Mod() float64
	// CandidateAt returns the candidate ownship position and velocity for
	// the axis value at the given step, holding the other state
	// components fixed. Track/ground-speed/vertical-speed axes vary
	// velocity only; the altitude axis varies position.
	CandidateAt(ownship TrafficState, step int) (Vect3, Velocity)
}

// DaidalusRealBands drives a RealBandsAxis through DaidalusIntegerBands
// and converts the resulting Integervals into real-unit BandsRanges.
type DaidalusRealBands struct {
	Axis      RealBandsAxis
	Ownship   TrafficState
	Traffic   []TrafficState
	Detector  Detection3D
	Lookahead float64
}

// stepRegion classifies one scan step by testing the candidate ownship
// velocity against every traffic aircraft and keeping the worst outcome.
func (d DaidalusRealBands) stepRegion(step int) Region {
	pos, cand := d.Axis.CandidateAt(d.Ownship, step)
	worst := RegionNone
	for _, tf := range d.Traffic {
		cd := d.Detector.Detection(pos, tf.Position, cand, tf.Velocity, d.Lookahead)
		if !cd.Conflict {
			continue
		}
		region := RegionFar
		if cd.TimeToLoS <= d.Lookahead/3 {
			region = RegionNear
		} else if cd.TimeToLoS <= 2*d.Lookahead/3 {
			region = RegionMid
		}
		worst = MostSevere(worst, region)
	}
	return worst
}

// Compute runs the full scan and returns the output bands in real units,
// ascending along the axis, except that on a wrapping axis a band that
// straddles the 0/mod seam comes first and has Low > Up.
func (d DaidalusRealBands) Compute() []BandsRange {
	step := d.Axis.StepSize()
	if step <= 0 {
		return nil
	}
	mod := d.Axis.Mod()
	ib := DaidalusIntegerBands{Classify: d.stepRegion}
	var bands []Integerval
	if mod > 0 {
		ib.Min, ib.Max, ib.Mod = 0, int(math.Round(mod/step))-1, int(math.Round(mod/step))
		bands = ib.ScanWrapped()
	} else {
		ib.Min = int(math.Floor(d.Axis.Min() / step))
		ib.Max = int(math.Ceil(d.Axis.Max() / step))
		bands = ib.Scan()
	}

	out := make([]BandsRange, 0, len(bands))
	for _, iv := range bands {
		lo := float64(iv.Low) * step
		up := float64(iv.Up+1) * step
		if mod > 0 {
			lo = modulo(lo, mod)
			up = modulo(up, mod)
			if up == 0 {
				up = mod
			}
		}
		out = append(out, BandsRange{Interval: Interval{Low: lo, Up: up}, Region: iv.Region})
	}
	return out
}

// Resolution computes the preferred maneuver value on either side of
// ownVal from an already-computed band list (spec.md §4.7, "Resolutions"):
// if ownVal currently falls inside a NONE band, both directions return
// NaN since no maneuver is needed; otherwise each direction is the near
// edge of the nearest bordering NONE interval, nudged away from ownVal by
// maxDelta for stability, or +-Inf if no such interval exists on that
// side.
func Resolution(bands []BandsRange, ownVal, maxDelta float64) (up, down float64) {
	for _, b := range bands {
		if b.Region == RegionNone && b.Interval.Contains(ownVal) {
			return math.NaN(), math.NaN()
		}
	}
	up, down = math.Inf(1), math.Inf(-1)
	upEdge, downEdge := math.Inf(1), math.Inf(-1)
	for _, b := range bands {
		if b.Region != RegionNone {
			continue
		}
		if b.Interval.Low >= ownVal && b.Interval.Low < upEdge {
			upEdge = b.Interval.Low
			up = upEdge + maxDelta
		}
		if b.Interval.Up <= ownVal && b.Interval.Up > downEdge {
			downEdge = b.Interval.Up
			down = downEdge - maxDelta
		}
	}
	return up, down
}
