package daa

import (
	"errors"
	"math"
)

// defaultULP is the default ULP tolerance used by almostEquals, matching
// the reference engine's "10 ULP at double precision" contract (spec.md
// §4.1).
const defaultULP = 10

// NumericOutOfRange is reported (never panicked) when a bank angle at or
// beyond pi/2 is used for a turn-radius computation (spec.md §4.1).
var NumericOutOfRange = errors.New("daa: numeric value out of range")

// ulpDiff returns the number of representable float64 values between a and
// b, using the standard IEEE-754 "distance in ULPs" trick: reinterpret the
// bit pattern as a signed magnitude integer so that adjacent floats map to
// adjacent integers, even across the zero crossing.
func ulpDiff(a, b float64) uint64 {
	ai := int64(math.Float64bits(a))
	bi := int64(math.Float64bits(b))
	if ai < 0 {
		ai = math.MinInt64 - ai
	}
	if bi < 0 {
		bi = math.MinInt64 - bi
	}
	d := ai - bi
	if d < 0 {
		d = -d
	}
	return uint64(d)
}

// almostEqualsULP reports whether a and b differ by no more than maxUlps
// representable float64 values.
func almostEqualsULP(a, b float64, maxUlps uint64) bool {
	if a == b {
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return ulpDiff(a, b) <= maxUlps
}

// almostEquals is almostEqualsULP at the default tolerance.
func almostEquals(a, b float64) bool {
	return almostEqualsULP(a, b, defaultULP)
}

// almostLess reports a < b with ULP-tolerant equality treated as false.
func almostLess(a, b float64) bool {
	return a < b && !almostEquals(a, b)
}

// almostLeq reports a <= b with ULP-tolerant equality treated as true.
func almostLeq(a, b float64) bool {
	return a < b || almostEquals(a, b)
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// sign returns +1 for non-negative inputs, -1 otherwise (the reference
// Util::sign convention used throughout CriteriaCore/Kinematics).
func sign(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}

// signi is sign as an int, for coordination epsilons (-1 or +1).
func signi(x float64) int {
	if x >= 0 {
		return 1
	}
	return -1
}

// modulo returns x mod m in [0, m) for m > 0 (always non-negative, unlike
// math.Mod).
func modulo(x, m float64) float64 {
	if m <= 0 {
		return x
	}
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}

// turnDelta returns the signed angle swept moving from `from` toward `to`
// in the specified direction, always in [0, 2*pi).
func turnDelta(from, to float64, right bool) float64 {
	if right {
		return modulo(to-from, 2*math.Pi)
	}
	return modulo(from-to, 2*math.Pi)
}

// signedTurnDelta returns the smallest-magnitude signed turn from `from` to
// `to`, in (-pi, pi].
func signedTurnDelta(from, to float64) float64 {
	d := modulo(to-from, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	return d
}

// clockwise reports whether the shorter arc from `from` to `to` runs
// clockwise (i.e. turning right is the minimal-angle choice).
func clockwise(from, to float64) bool {
	return turnDelta(from, to, true) < math.Pi
}

// root solves a*x^2 + b*x + c = 0, returning one of the two roots selected
// by sign (+1 for the "+sqrt" branch, -1 for the "-sqrt" branch), or NaN if
// the discriminant is negative. When a is (almost) zero it solves the
// linear b*x + c = 0 instead, returning NaN only if b is also (almost) zero.
func root(a, b, c float64, want int) float64 {
	if almostEquals(a, 0) {
		if almostEquals(b, 0) {
			return math.NaN()
		}
		return -c / b
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return math.NaN()
	}
	sq := math.Sqrt(disc)
	if want >= 0 {
		return (-b + sq) / (2 * a)
	}
	return (-b - sq) / (2 * a)
}

// atan2Safe is math.Atan2 with the (0,0) case mapped to 0 instead of NaN.
func atan2Safe(y, x float64) float64 {
	if y == 0 && x == 0 {
		return 0
	}
	return math.Atan2(y, x)
}

func finite3(v Vect3) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsNaN(v.Z) &&
		!math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0) && !math.IsInf(v.Z, 0)
}

func finiteVel(v Velocity) bool { return finite3(v.Vect3) }
