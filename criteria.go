package daa

import "math"

// CriteriaCore implements the direction-of-resolution criteria used to
// keep two coordinating aircraft from choosing conflicting resolutions
// (spec.md §4.5), grounded on the reference engine's CriteriaCore.

// HorizontalCoordination returns +1 if the ownship should resolve by
// turning right of the relative track, -1 for left, chosen so that both
// aircraft in a coordinated pair pick complementary sides.
func HorizontalCoordination(s, v Vect2) int {
	if s.IsZero() {
		return 1
	}
	return signi(s.Det(v))
}

// VerticalCoordinationConflict returns the coordination sign (+1 climb,
// -1 descend) the ownship should prefer, for a pair in predicted conflict
// (not yet in loss of well-clear), based on relative vertical position and
// rate.
func VerticalCoordinationConflict(sz, vz float64) int {
	if !almostEquals(vz, 0) {
		return signi(vz)
	}
	return signi(sz)
}

// VerticalCoordinationLoS mirrors VerticalCoordinationConflict for pairs
// already in loss of well-clear: prefer increasing separation.
func VerticalCoordinationLoS(sz, nz float64) int {
	return signi(nz - sz)
}

// R returns the relevance radius used by the horizontal criterion: the
// larger of the protection radius d and the minimum horizontal recovery
// distance sp (spec.md §4.5).
func R(sp, d float64) float64 { return math.Max(d, sp) }

// HorizontalCriterion reports whether a candidate relative velocity nv
// (the ownship's velocity under a proposed resolution, relative to the
// intruder) is on the coordinated side of the current relative position
// s, given the coordination epsilon epsh computed at detection time.
func HorizontalCriterion(s Vect2, nv Vect2, epsh int, d float64) bool {
	if s.IsZero() {
		return true
	}
	sign := signi(s.Det(nv))
	return sign == epsh || almostEquals(s.Det(nv), 0)
}

// ClosedRegion3D reports whether the pair is already separated vertically
// by at least h, or, if not, whether the candidate vertical relative speed
// nvz does not reduce the vertical separation sz (same sign as sz, or
// zero). It does not look ahead in time: a pair separated by at least h is
// accepted whatever nvz is.
func ClosedRegion3D(sz, vz, nvz, h float64) bool {
	if math.Abs(sz) >= h {
		return true
	}
	return signi(nvz) == signi(sz) || almostEquals(nvz, 0)
}

// VerticalCriterion reports whether a candidate vertical speed nvz is on
// the coordinated side of the current vertical geometry, given the
// coordination epsilon epsv.
func VerticalCriterion(sz, vz, nvz float64, epsv int) bool {
	cand := signi(nvz - vz)
	if almostEquals(nvz, vz) {
		return true
	}
	return cand == epsv
}

// HorizontalLoS reports whether the pair is currently in horizontal loss
// of well-clear (separation below d).
func HorizontalLoS(s Vect2, d float64) bool { return s.Norm() < d }

// VerticalLoS reports whether the pair is currently in vertical loss of
// well-clear (separation below h).
func VerticalLoS(sz, h float64) bool { return math.Abs(sz) < h }

// Criterion3D combines the horizontal and vertical criteria into the
// single accept/reject test applied to a candidate resolution velocity nv
// (spec.md §4.5's criterion_3D): a candidate is acceptable if it satisfies
// whichever of horizontal/vertical criterion is relevant given whether the
// pair is currently in a horizontal or vertical LoS.
func Criterion3D(s Vect3, v, nv Vect3, d, h float64, epsh, epsv int) bool {
	s2 := s.Vect2()
	nv2 := nv.Vect2()
	if HorizontalLoS(s2, d) {
		return ClosedRegion3D(s.Z, v.Z, nv.Z, h) && VerticalCriterion(s.Z, v.Z, nv.Z, epsv)
	}
	if VerticalLoS(s.Z, h) {
		return HorizontalCriterion(s2, nv2, epsh, d)
	}
	return HorizontalCriterion(s2, nv2, epsh, d) && VerticalCriterion(s.Z, v.Z, nv.Z, epsv)
}

// BreakSymmetry deterministically picks which of two aircraft in a
// perfectly symmetric conflict geometry yields the right of way, by
// comparing their identifiers as reversed strings (matching the
// reference engine's tie-break, which compares call signs back-to-front
// so that shared fleet-prefix names still separate quickly).
func BreakSymmetry(idOwn, idOther string) bool {
	return reverseString(idOwn) < reverseString(idOther)
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
