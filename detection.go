package daa

import "math"

// ConflictData reports the outcome of a pairwise conflict detection over
// a lookahead window: whether loss of well-clear occurs, and if so the
// entry/exit times and the separations at entry.
type ConflictData struct {
	Conflict   bool
	TimeIn     float64
	TimeOut    float64
	TimeToLoS  float64 // time to first loss of well-clear, +Inf if none
	Horizontal float64 // horizontal separation at TimeIn, meters
	Vertical   float64 // vertical separation at TimeIn, meters
}

// Detection3D is implemented by any well-clear volume definition able to
// test two relative trajectories for loss of separation over a lookahead
// window (spec.md §4.4). CDCylinder is the only concrete implementation
// shipped; external collaborators may supply their own.
type Detection3D interface {
	// Violation reports whether so/vo and si/vi are in violation (loss of
	// well-clear) at the instant described by the two states.
	Violation(so, si Vect3, vo, vi Velocity) bool
	// Detection returns the full conflict timeline over [0, lookahead]
	// assuming constant relative velocity.
	Detection(so, si Vect3, vo, vi Velocity, lookahead float64) ConflictData
}

// CDCylinder is a cylindrical well-clear volume: violation when
// horizontal separation is below D and vertical separation is below H
// simultaneously.
type CDCylinder struct {
	D float64 // horizontal protection radius, meters
	H float64 // vertical protection half-height, meters
}

// NewCDCylinder builds a cylinder detector with the given protection
// dimensions.
func NewCDCylinder(d, h float64) CDCylinder { return CDCylinder{D: d, H: h} }

// Violation reports whether the two aircraft are currently inside each
// other's protected cylinder.
func (c CDCylinder) Violation(so, si Vect3, vo, vi Velocity) bool {
	s := so.Sub(si)
	return s.Vect2().Norm() < c.D && math.Abs(s.Z) < c.H
}

// Detection computes the conflict interval over [0, lookahead], assuming
// both aircraft fly their current velocity unchanged (spec.md §4.4). The
// horizontal and vertical sub-problems are solved independently as
// quadratics in time and then intersected.
func (c CDCylinder) Detection(so, si Vect3, vo, vi Velocity, lookahead float64) ConflictData {
	s := so.Sub(si)
	v := Vect3{vo.X - vi.X, vo.Y - vi.Y, vo.Z - vi.Z}

	hIn, hOut, hHas := horizontalInOut(s.Vect2(), v.Vect2(), c.D, lookahead)
	vIn, vOut, vHas := verticalInOut(s.Z, v.Z, c.H, lookahead)

	cd := ConflictData{TimeToLoS: math.Inf(1)}
	if !hHas || !vHas {
		return cd
	}
	tIn := math.Max(hIn, vIn)
	tOut := math.Min(hOut, vOut)
	if tIn >= tOut || tOut < 0 || tIn > lookahead {
		return cd
	}
	tIn = math.Max(tIn, 0)
	tOut = math.Min(tOut, lookahead)
	cd.Conflict = true
	cd.TimeIn = tIn
	cd.TimeOut = tOut
	cd.TimeToLoS = tIn
	sAtIn := Vect3{s.X + v.X*tIn, s.Y + v.Y*tIn, s.Z + v.Z*tIn}
	cd.Horizontal = sAtIn.Vect2().Norm()
	cd.Vertical = math.Abs(sAtIn.Z)
	return cd
}

// horizontalInOut solves |s + v*t| < D for t, returning the entry/exit
// times of the (possibly empty) solution interval. The roots are not
// clipped to [0, lookahead]; only the zero-relative-velocity case returns
// [0, lookahead]. Detection does the clipping.
func horizontalInOut(s, v Vect2, d, lookahead float64) (tIn, tOut float64, has bool) {
	a := v.SqV()
	b := 2 * s.Dot(v)
	cc := s.SqV() - d*d
	if almostEquals(a, 0) {
		if cc < 0 {
			return 0, lookahead, true
		}
		return 0, 0, false
	}
	disc := b*b - 4*a*cc
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}

// verticalInOut solves |z + w*t| < h for t.
func verticalInOut(z, w, h, lookahead float64) (tIn, tOut float64, has bool) {
	if almostEquals(w, 0) {
		if math.Abs(z) < h {
			return 0, lookahead, true
		}
		return 0, 0, false
	}
	t1 := (-h - z) / w
	t2 := (h - z) / w
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return t1, t2, true
}

// TimeToCoAltitude returns the time at which the two aircraft reach the
// same altitude, or NaN if they never do (parallel vertical speeds at
// different altitudes).
func TimeToCoAltitude(zo, zi, wo, wi float64) float64 {
	w := wo - wi
	if almostEquals(w, 0) {
		return math.NaN()
	}
	return (zi - zo) / w
}
