package daa

// GsBandsAxis scans candidate ownship ground speeds over [MinGs, MaxGs]
// at fixed track and vertical speed (spec.md §4.7).
type GsBandsAxis struct {
	Step         float64 // scan resolution, m/s
	MinGs, MaxGs float64
}

func (a GsBandsAxis) StepSize() float64 { return a.Step }
func (a GsBandsAxis) Min() float64      { return a.MinGs }
func (a GsBandsAxis) Max() float64      { return a.MaxGs }
func (a GsBandsAxis) Mod() float64      { return 0 }

func (a GsBandsAxis) CandidateAt(ownship TrafficState, step int) (Vect3, Velocity) {
	gs := float64(step) * a.Step
	if gs < a.MinGs {
		gs = a.MinGs
	}
	if gs > a.MaxGs {
		gs = a.MaxGs
	}
	return ownship.Position, ownship.Velocity.MkGs(gs)
}
