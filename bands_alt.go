package daa

// AltBandsAxis scans candidate ownship altitudes over [MinAlt, MaxAlt],
// holding track and ground speed fixed and zeroing vertical speed at the
// candidate altitude (spec.md §4.7): an altitude band reports the
// quality of *being* at that altitude, not of a maneuver to reach it, so
// the candidate's vertical speed is leveled off.
type AltBandsAxis struct {
	Step           float64 // scan resolution, meters
	MinAlt, MaxAlt float64
}

func (a AltBandsAxis) StepSize() float64 { return a.Step }
func (a AltBandsAxis) Min() float64      { return a.MinAlt }
func (a AltBandsAxis) Max() float64      { return a.MaxAlt }
func (a AltBandsAxis) Mod() float64      { return 0 }

func (a AltBandsAxis) CandidateAt(ownship TrafficState, step int) (Vect3, Velocity) {
	alt := float64(step) * a.Step
	if alt < a.MinAlt {
		alt = a.MinAlt
	}
	if alt > a.MaxAlt {
		alt = a.MaxAlt
	}
	return ownship.Position.MkZ(alt), ownship.Velocity.MkVs(0)
}
