package daa

// VsBandsAxis scans candidate ownship vertical speeds over [MinVs, MaxVs]
// at fixed track and ground speed (spec.md §4.7).
type VsBandsAxis struct {
	Step         float64 // scan resolution, m/s
	MinVs, MaxVs float64
}

func (a VsBandsAxis) StepSize() float64 { return a.Step }
func (a VsBandsAxis) Min() float64      { return a.MinVs }
func (a VsBandsAxis) Max() float64      { return a.MaxVs }
func (a VsBandsAxis) Mod() float64      { return 0 }

func (a VsBandsAxis) CandidateAt(ownship TrafficState, step int) (Vect3, Velocity) {
	vs := float64(step) * a.Step
	if vs < a.MinVs {
		vs = a.MinVs
	}
	if vs > a.MaxVs {
		vs = a.MaxVs
	}
	return ownship.Position, ownship.Velocity.MkVs(vs)
}
