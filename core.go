package daa

import "math"

// DaidalusCore owns one aircraft's view of the world: its own kinematic
// limits, the traffic it is tracking, and the per-axis hysteresis state
// (spec.md §2). Band results are not cached: every band query rescans the
// axis, and the stale flag set by the setters is not read by any query.
// A single instance is not safe for
// concurrent use from multiple goroutines; distinct instances (distinct
// ownship aircraft) are fully independent and may run on separate
// goroutines without coordination.
type DaidalusCore struct {
	Parameters *ParameterData
	Detector   CDCylinder
	Lookahead  float64

	Ownship TrafficState
	Traffic []TrafficState

	TrkHyst *AxisHysteresis
	GsHyst  *AxisHysteresis
	VsHyst  *AxisHysteresis
	AltHyst *AxisHysteresis

	Errors ErrorLog

	stale bool
}

// NewDaidalusCore builds a core with default well-clear parameters,
// ready to accept an ownship and traffic before its first query.
func NewDaidalusCore() *DaidalusCore {
	pd := NewParameterData()
	pd.SetInternal("D", 1852*5, "m")   // 5 NM horizontal protection
	pd.SetInternal("H", 304.8, "m")    // 1000 ft vertical protection
	pd.SetInternal("lookahead", 180, "s")
	return &DaidalusCore{
		Parameters: pd,
		Detector:   NewCDCylinder(pd.GetInternal("D"), pd.GetInternal("H")),
		Lookahead:  pd.GetInternal("lookahead"),
		TrkHyst:    NewAxisHysteresis(5, 0),
		GsHyst:     NewAxisHysteresis(5, 0),
		VsHyst:     NewAxisHysteresis(5, 0),
		AltHyst:    NewAxisHysteresis(5, 0),
	}
}

// SetOwnship installs the ownship state and sets the stale flag.
func (c *DaidalusCore) SetOwnship(ts TrafficState) {
	c.Ownship = ts
	c.stale = true
}

// SetTraffic replaces the tracked traffic list and sets the stale flag.
func (c *DaidalusCore) SetTraffic(traffic []TrafficState) {
	c.Traffic = traffic
	c.stale = true
}

// ApplyParameters reloads Detector/Lookahead from Parameters, for use
// after ParameterData has been mutated (e.g. by a loaded config file).
func (c *DaidalusCore) ApplyParameters() {
	d := c.Parameters.GetInternal("D")
	h := c.Parameters.GetInternal("H")
	if d <= 0 || h <= 0 {
		c.Errors.Warn("DaidalusCore", "non-positive protection volume (D=%g, H=%g); keeping previous values", d, h)
		return
	}
	c.Detector = NewCDCylinder(d, h)
	if la := c.Parameters.GetInternal("lookahead"); la > 0 {
		c.Lookahead = la
	}
	c.stale = true
}

// InConflict reports whether the ownship's current trajectory is in
// conflict with any tracked traffic within the lookahead window.
func (c *DaidalusCore) InConflict() bool {
	for _, tf := range c.Traffic {
		cd := c.Detector.Detection(c.Ownship.Position, tf.Position, c.Ownship.Velocity, tf.Velocity, c.Lookahead)
		if cd.Conflict {
			return true
		}
	}
	return false
}

// InLoS reports whether the ownship is currently inside a tracked
// aircraft's protected cylinder (an active loss of well-clear, as
// opposed to a predicted future conflict).
func (c *DaidalusCore) InLoS() bool {
	for _, tf := range c.Traffic {
		if c.Detector.Violation(c.Ownship.Position, tf.Position, c.Ownship.Velocity, tf.Velocity) {
			return true
		}
	}
	return false
}

// TrackBands computes the current track bands at the given scan
// resolution (radians), applying hysteresis at time t.
func (c *DaidalusCore) TrackBands(t, step float64) []BandsRange {
	rb := DaidalusRealBands{
		Axis:      TrkBandsAxis{Step: step},
		Ownship:   c.Ownship,
		Traffic:   c.Traffic,
		Detector:  c.Detector,
		Lookahead: c.Lookahead,
	}
	return c.computeHysteresis(t, step, 2*math.Pi, rb, c.TrkHyst)
}

// GroundSpeedBands computes the current ground-speed bands over
// [minGs, maxGs] at the given scan resolution (m/s).
func (c *DaidalusCore) GroundSpeedBands(t, step, minGs, maxGs float64) []BandsRange {
	rb := DaidalusRealBands{
		Axis:      GsBandsAxis{Step: step, MinGs: minGs, MaxGs: maxGs},
		Ownship:   c.Ownship,
		Traffic:   c.Traffic,
		Detector:  c.Detector,
		Lookahead: c.Lookahead,
	}
	return c.computeHysteresis(t, step, 0, rb, c.GsHyst)
}

// VerticalSpeedBands computes the current vertical-speed bands over
// [minVs, maxVs] at the given scan resolution (m/s).
func (c *DaidalusCore) VerticalSpeedBands(t, step, minVs, maxVs float64) []BandsRange {
	rb := DaidalusRealBands{
		Axis:      VsBandsAxis{Step: step, MinVs: minVs, MaxVs: maxVs},
		Ownship:   c.Ownship,
		Traffic:   c.Traffic,
		Detector:  c.Detector,
		Lookahead: c.Lookahead,
	}
	return c.computeHysteresis(t, step, 0, rb, c.VsHyst)
}

// AltitudeBands computes the current altitude bands over
// [minAlt, maxAlt] at the given scan resolution (m).
func (c *DaidalusCore) AltitudeBands(t, step, minAlt, maxAlt float64) []BandsRange {
	rb := DaidalusRealBands{
		Axis:      AltBandsAxis{Step: step, MinAlt: minAlt, MaxAlt: maxAlt},
		Ownship:   c.Ownship,
		Traffic:   c.Traffic,
		Detector:  c.Detector,
		Lookahead: c.Lookahead,
	}
	return c.computeHysteresis(t, step, 0, rb, c.AltHyst)
}

func (c *DaidalusCore) computeHysteresis(t, step, mod float64, rb DaidalusRealBands, hyst *AxisHysteresis) []BandsRange {
	ib := DaidalusIntegerBands{Classify: rb.stepRegion}
	var raw []Integerval
	if mod > 0 {
		n := int(math.Round(mod / step))
		ib.Min, ib.Max, ib.Mod = 0, n-1, n
		raw = ib.ScanWrapped()
	} else {
		ib.Min = int(math.Floor(rb.Axis.Min() / step))
		ib.Max = int(math.Ceil(rb.Axis.Max() / step))
		raw = ib.Scan()
	}
	filtered := hyst.Filter(t, raw)

	out := make([]BandsRange, 0, len(filtered))
	for _, iv := range filtered {
		lo := float64(iv.Low) * step
		up := float64(iv.Up+1) * step
		if mod > 0 {
			lo = modulo(lo, mod)
			up = modulo(up, mod)
			if up == 0 {
				up = mod
			}
		}
		out = append(out, BandsRange{Interval: Interval{Low: lo, Up: up}, Region: iv.Region})
	}
	return out
}

// TrackResolution returns the preferred track values clockwise (up) and
// counterclockwise (down) of the ownship's current track (spec.md §4.7):
// NaN in both directions when the current track lies in a NONE band, and
// +-Inf in a direction with no NONE band. The search in each direction
// stops at the 0/2*pi seam; it does not continue past it.
func (c *DaidalusCore) TrackResolution(t, step, maxDelta float64) (up, down float64) {
	bands := c.TrackBands(t, step)
	// A band reported across the 0/2*pi seam (Low > Up) is split into its
	// two plain pieces so that Resolution can test membership in it.
	plain := make([]BandsRange, 0, len(bands)+1)
	for _, b := range bands {
		if b.Interval.Low > b.Interval.Up {
			plain = append(plain,
				BandsRange{Interval: Interval{Low: 0, Up: b.Interval.Up}, Region: b.Region},
				BandsRange{Interval: Interval{Low: b.Interval.Low, Up: 2 * math.Pi}, Region: b.Region})
			continue
		}
		plain = append(plain, b)
	}
	return Resolution(plain, modulo(c.Ownship.Velocity.Trk(), 2*math.Pi), maxDelta)
}

// Recovery computes recovery-band diagnostics when the ownship is in an
// active loss of well-clear, otherwise returns a zero-value
// RecoveryInformation with RecoveryBandsSaturated left false.
func (c *DaidalusCore) Recovery(maxNFactor int) RecoveryInformation {
	if !c.InLoS() {
		return RecoveryInformation{}
	}
	return ComputeRecoveryInformation(c.Ownship, c.Traffic, c.Detector, c.Lookahead, maxNFactor, func(d, h float64) bool {
		relaxed := NewCDCylinder(d, h)
		for _, tf := range c.Traffic {
			if relaxed.Violation(c.Ownship.Position, tf.Position, c.Ownship.Velocity, tf.Velocity) {
				return false
			}
		}
		return true
	})
}
