package daa

import "math"

// RecoveryInformation reports the outcome of searching for a recovery
// band when the ownship is already in an active loss of well-clear,
// grounded on the reference engine's RecoveryInformation: how long until
// a conflict-free state is reachable, and the horizontal and vertical
// dimensions of the relaxed protection volume at which it was found
// (spec.md §4.8).
type RecoveryInformation struct {
	TimeToRecovery       float64
	NFactor              int
	HorizontalDistance   float64
	VerticalDistance     float64
	RecoveryBandsSaturated bool
}

// ComputeRecoveryInformation searches for the least-relaxed protection
// volume that yields at least one conflict-free candidate, following the
// reference engine's n-factor relaxation scheme: at attempt n the
// protection radius/height are scaled by 1/(n+1), so n=0 tries the full
// volume first and each subsequent attempt shrinks it further, asymptotically
// approaching (but never reaching) zero. If no attempt up to maxNFactor
// succeeds, the search is saturated: no recovery is available within the
// volumes tried.
func ComputeRecoveryInformation(ownship TrafficState, traffic []TrafficState, detector CDCylinder, lookahead float64, maxNFactor int, candidates func(d, h float64) bool) RecoveryInformation {
	for n := 0; n <= maxNFactor; n++ {
		factor := 1.0 / float64(n+1)
		d := detector.D * factor
		h := detector.H * factor
		if candidates(d, h) {
			return RecoveryInformation{
				TimeToRecovery:     0,
				NFactor:            n,
				HorizontalDistance: d,
				VerticalDistance:   h,
			}
		}
	}
	return RecoveryInformation{
		TimeToRecovery:         math.Inf(-1),
		NFactor:                maxNFactor,
		RecoveryBandsSaturated: true,
	}
}
