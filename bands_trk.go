package daa

import "math"

// TrkBandsAxis scans candidate ownship tracks over the full compass
// circle at fixed ground speed and vertical speed (spec.md §4.7).
type TrkBandsAxis struct {
	Step float64 // scan resolution, radians
}

func (a TrkBandsAxis) StepSize() float64 { return a.Step }
func (a TrkBandsAxis) Min() float64      { return 0 }
func (a TrkBandsAxis) Max() float64      { return 2 * math.Pi }
func (a TrkBandsAxis) Mod() float64      { return 2 * math.Pi }

func (a TrkBandsAxis) CandidateAt(ownship TrafficState, step int) (Vect3, Velocity) {
	trk := modulo(float64(step)*a.Step, 2*math.Pi)
	return ownship.Position, ownship.Velocity.MkTrk(trk)
}
