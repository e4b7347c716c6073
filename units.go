package daa

import (
	"math"
	"strings"
)

// unitFactors maps a recognized unit suffix to its multiplier into
// internal units (meters, seconds, radians, meters/second). Internal
// units are always SI; parsed values are converted on the way in and
// converted back out on the way to a report.
var unitFactors = map[string]float64{
	"unitless": 1,
	"m":        1,
	"meter":    1,
	"meters":   1,
	"ft":       0.3048,
	"foot":     0.3048,
	"feet":     0.3048,
	"nmi":      1852,
	"NM":       1852,
	"km":       1000,
	"s":        1,
	"sec":      1,
	"second":   1,
	"seconds":  1,
	"min":      60,
	"h":        3600,
	"hour":     3600,
	"rad":      1,
	"deg":      math.Pi / 180,
	"degree":   math.Pi / 180,
	"m/s":      1,
	"kn":       0.514444,
	"knot":     0.514444,
	"knots":    0.514444,
	"fpm":      0.00508,
	"fpm_vs":   0.00508,
}

// ToInternal converts a value expressed in the named unit into internal
// (SI) units. Unknown units are treated as "unitless" (factor 1).
func ToInternal(value float64, unit string) float64 {
	return value * factorOf(unit)
}

// FromInternal converts an internal (SI) value into the named unit.
func FromInternal(value float64, unit string) float64 {
	f := factorOf(unit)
	if f == 0 {
		return value
	}
	return value / f
}

func factorOf(unit string) float64 {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return 1
	}
	if f, ok := unitFactors[unit]; ok {
		return f
	}
	if f, ok := unitFactors[strings.ToLower(unit)]; ok {
		return f
	}
	return 1
}

// IsUnitCompatible reports whether u is a recognized unit name.
func IsUnitCompatible(u string) bool {
	if _, ok := unitFactors[u]; ok {
		return true
	}
	_, ok := unitFactors[strings.ToLower(u)]
	return ok
}
