package daa

import "math"

// Vect2 is a 2D Cartesian vector, x east, y north (meters or m/s).
type Vect2 struct {
	X, Y float64
}

// InvalidV2 is returned by kinematic functions on non-finite input.
var InvalidV2 = Vect2{math.NaN(), math.NaN()}

// Zero2 is the zero vector.
var Zero2 = Vect2{0, 0}

// NewVect2 builds a Vect2.
func NewVect2(x, y float64) Vect2 { return Vect2{x, y} }

// Add returns v+o.
func (v Vect2) Add(o Vect2) Vect2 { return Vect2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vect2) Sub(o Vect2) Vect2 { return Vect2{v.X - o.X, v.Y - o.Y} }

// Scal returns k*v.
func (v Vect2) Scal(k float64) Vect2 { return Vect2{k * v.X, k * v.Y} }

// Neg returns -v.
func (v Vect2) Neg() Vect2 { return Vect2{-v.X, -v.Y} }

// Dot returns the inner product v.o.
func (v Vect2) Dot(o Vect2) float64 { return v.X*o.X + v.Y*o.Y }

// Det returns the 2D "determinant" (z-component of the 3D cross product).
func (v Vect2) Det(o Vect2) float64 { return v.X*o.Y - v.Y*o.X }

// SqV returns the squared norm.
func (v Vect2) SqV() float64 { return v.X*v.X + v.Y*v.Y }

// Norm returns the Euclidean norm.
func (v Vect2) Norm() float64 { return math.Sqrt(v.SqV()) }

// IsZero reports whether v is exactly the zero vector.
func (v Vect2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// PerpL returns v rotated 90 degrees to the left (counter-clockwise).
func (v Vect2) PerpL() Vect2 { return Vect2{-v.Y, v.X} }

// PerpR returns v rotated 90 degrees to the right (clockwise).
func (v Vect2) PerpR() Vect2 { return Vect2{v.Y, -v.X} }

// Hat returns the unit vector in the direction of v, or the zero vector if
// v is (almost) zero.
func (v Vect2) Hat() Vect2 {
	n := v.Norm()
	if almostEquals(n, 0) {
		return Zero2
	}
	return v.Scal(1 / n)
}

// AlmostEquals reports ULP-tolerant equality on both components.
func (v Vect2) AlmostEquals(o Vect2) bool {
	return almostEquals(v.X, o.X) && almostEquals(v.Y, o.Y)
}

// Vect3 is a 3D Cartesian vector (meters or m/s), z up.
type Vect3 struct {
	X, Y, Z float64
}

// InvalidV3 is the sentinel returned on non-finite kinematic input.
var InvalidV3 = Vect3{math.NaN(), math.NaN(), math.NaN()}

// Zero3 is the zero vector.
var Zero3 = Vect3{0, 0, 0}

// NewVect3 builds a Vect3.
func NewVect3(x, y, z float64) Vect3 { return Vect3{x, y, z} }

// Vect2 projects out the z component.
func (v Vect3) Vect2() Vect2 { return Vect2{v.X, v.Y} }

// MkZ returns v with its z component replaced.
func (v Vect3) MkZ(z float64) Vect3 { return Vect3{v.X, v.Y, z} }

// Add returns v+o.
func (v Vect3) Add(o Vect3) Vect3 { return Vect3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v-o.
func (v Vect3) Sub(o Vect3) Vect3 { return Vect3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scal returns k*v.
func (v Vect3) Scal(k float64) Vect3 { return Vect3{k * v.X, k * v.Y, k * v.Z} }

// AddScal returns v + k*o.
func (v Vect3) AddScal(k float64, o Vect3) Vect3 { return v.Add(o.Scal(k)) }

// Dot returns the inner product.
func (v Vect3) Dot(o Vect3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns v x o.
func (v Vect3) Cross(o Vect3) Vect3 {
	return Vect3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

// Norm returns the Euclidean norm.
func (v Vect3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// IsZero reports whether v is exactly the zero vector.
func (v Vect3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// IsInvalid reports whether any component is NaN.
func (v Vect3) IsInvalid() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// DistanceH returns the horizontal (xy) distance to another point.
func (v Vect3) DistanceH(o Vect3) float64 { return v.Sub(o).Vect2().Norm() }

// Linear returns the position after moving at velocity v0 for time t.
func (v Vect3) Linear(v0 Velocity, t float64) Vect3 {
	return Vect3{v.X + v0.X*t, v.Y + v0.Y*t, v.Z + v0.Z*t}
}

// LinearByDist2D returns the point obtained by moving distance d along
// compass track trk from v, holding z fixed.
func (v Vect3) LinearByDist2D(trk, d float64) Vect3 {
	s, c := math.Sincos(trk)
	return Vect3{v.X + d*s, v.Y + d*c, v.Z}
}

// AlmostEquals reports ULP-tolerant equality on every component.
func (v Vect3) AlmostEquals(o Vect3) bool {
	return almostEquals(v.X, o.X) && almostEquals(v.Y, o.Y) && almostEquals(v.Z, o.Z)
}

// Velocity is a Vect3 paired with compass-convention accessors.
// x is east-ward speed, y north-ward speed, z vertical speed. Track is
// measured clockwise from north (0 = north, pi/2 = east).
type Velocity struct {
	Vect3
}

// InvalidVelocity is the sentinel returned on non-finite kinematic input.
var InvalidVelocity = Velocity{InvalidV3}

// MkTrkGsVs builds a Velocity from compass track (radians), ground speed
// (m/s, >= 0) and vertical speed (m/s).
func MkTrkGsVs(trk, gs, vs float64) Velocity {
	s, c := math.Sincos(trk)
	return Velocity{Vect3{gs * s, gs * c, vs}}
}

// MkVxyz builds a Velocity directly from Cartesian components.
func MkVxyz(x, y, z float64) Velocity { return Velocity{Vect3{x, y, z}} }

// Trk returns the compass track in [0, 2*pi).
func (v Velocity) Trk() float64 {
	return modulo(math.Atan2(v.X, v.Y), 2*math.Pi)
}

// Gs returns the (horizontal) ground speed.
func (v Velocity) Gs() float64 { return v.Vect2().Norm() }

// Vs returns the vertical speed.
func (v Velocity) Vs() float64 { return v.Z }

// MkTrk returns a copy of v with its track replaced, ground speed preserved.
func (v Velocity) MkTrk(trk float64) Velocity { return MkTrkGsVs(trk, v.Gs(), v.Vs()) }

// MkAddTrk returns a copy of v with delta added to its track.
func (v Velocity) MkAddTrk(delta float64) Velocity { return v.MkTrk(v.Trk() + delta) }

// MkGs returns a copy of v with its ground speed replaced, track preserved.
func (v Velocity) MkGs(gs float64) Velocity { return MkTrkGsVs(v.Trk(), gs, v.Vs()) }

// MkVs returns a copy of v with its vertical speed replaced.
func (v Velocity) MkVs(vs float64) Velocity { return Velocity{Vect3{v.X, v.Y, vs}} }

// MkVel returns the level velocity, at ground speed gs, whose track points
// from s0 toward s1.
func MkVel(s0, s1 Vect3, gs float64) Velocity {
	d := s1.Sub(s0)
	trk := math.Atan2(d.X, d.Y)
	return MkTrkGsVs(trk, gs, 0)
}
