// Package projection converts geodetic aircraft positions (latitude,
// longitude, altitude) into the flat local Cartesian frame the daa
// package operates in, and back. The core daa package does not import
// this package; daaio and the commands use it (spec.md §9).
package projection

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// EarthRadius is the mean Earth radius used by the tangent-plane
// approximation (meters).
const EarthRadius = 6371000.0

// Point is a geodetic position: latitude and longitude in radians,
// altitude in meters.
type Point struct {
	Lat, Lon, Alt float64
}

// Local is a flat Cartesian position in a Projector's tangent plane:
// X east, Y north, Z up, meters.
type Local struct {
	X, Y, Z float64
}

// R1 is a basic rotation about the first axis, reused verbatim from the
// attitude-kinematics convention the bands engine's own turn geometry
// follows.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R3 is a basic rotation about the third axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a 3x3 matrix with a 3-vector. No dimension check.
func MxV33(m *mat64.Dense, v []float64) []float64 {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// Projector is a tangent-plane projection centered at a fixed geodetic
// origin: positions are converted to ECEF, rotated into the origin's
// local east-north-up frame by rot, and the inverse rotation (its
// transpose, since rot is orthogonal) undoes the conversion.
type Projector struct {
	origin    Point
	originVec []float64
	rot       *mat64.Dense
	rotInv    *mat64.Dense
}

// NewProjector returns a Projector centered at origin. Positions near
// origin project to local coordinates with sub-meter error over
// ownship/traffic separations of a few tens of kilometers.
func NewProjector(origin Point) *Projector {
	rot := MxV33matrix(R1(math.Pi/2-origin.Lat), R3(math.Pi/2+origin.Lon))
	return &Projector{
		origin:    origin,
		originVec: ecef(origin, EarthRadius+origin.Alt),
		rot:       rot,
		rotInv:    transpose3(rot),
	}
}

// MxV33matrix composes two rotations, a small helper so NewProjector
// reads as one rotation-building expression rather than an inline product.
func MxV33matrix(a, b *mat64.Dense) *mat64.Dense {
	var out mat64.Dense
	out.Mul(a, b)
	return &out
}

func transpose3(m *mat64.Dense) *mat64.Dense {
	out := mat64.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out.Set(i, j, m.At(j, i))
		}
	}
	return out
}

// ecef converts a geodetic point to Earth-centered Cartesian coordinates
// on a sphere of radius r, the small-area stand-in for a full ellipsoid
// model.
func ecef(pt Point, r float64) []float64 {
	coslat, sinlat := math.Cos(pt.Lat), math.Sin(pt.Lat)
	coslon, sinlon := math.Cos(pt.Lon), math.Sin(pt.Lon)
	return []float64{r * coslat * coslon, r * coslat * sinlon, r * sinlat}
}

// Project converts a geodetic point into this Projector's local east-
// north-up frame.
func (p *Projector) Project(pt Point) Local {
	v := ecef(pt, EarthRadius+pt.Alt)
	d := []float64{v[0] - p.originVec[0], v[1] - p.originVec[1], v[2] - p.originVec[2]}
	enu := MxV33(p.rot, d)
	return Local{X: enu[0], Y: enu[1], Z: enu[2]}
}

// Inverse converts a local-frame position back into geodetic coordinates.
func (p *Projector) Inverse(l Local) Point {
	d := MxV33(p.rotInv, []float64{l.X, l.Y, l.Z})
	v := []float64{p.originVec[0] + d[0], p.originVec[1] + d[1], p.originVec[2] + d[2]}
	r := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	return Point{
		Lat: math.Asin(v[2] / r),
		Lon: math.Atan2(v[1], v[0]),
		Alt: r - EarthRadius,
	}
}
