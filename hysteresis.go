package daa

// BandsHysteresis smooths a sequence of raw band computations over time
// so that an aircraft flying near a band boundary does not see the bands
// flicker every cycle (spec.md §4.9): a region change is only accepted
// once at least MinDuration seconds have passed since the last accepted
// change. Margin is stored but not used by Update.
type BandsHysteresis struct {
	MinDuration float64
	Margin      float64

	lastRegion   Region
	lastChangeAt float64
	initialized  bool
}

// NewBandsHysteresis returns a hysteresis filter with the given
// persistence requirements.
func NewBandsHysteresis(minDuration, margin float64) *BandsHysteresis {
	return &BandsHysteresis{MinDuration: minDuration, Margin: margin}
}

// Update feeds one raw classification observed at time t and returns the
// hysteresis-filtered region: the previous stable region until at least
// MinDuration has passed since that region was accepted, after which a
// differing raw region becomes the new stable region at once.
func (h *BandsHysteresis) Update(t float64, raw Region) Region {
	if !h.initialized {
		h.lastRegion = raw
		h.lastChangeAt = t
		h.initialized = true
		return raw
	}
	if raw == h.lastRegion {
		return h.lastRegion
	}
	if t-h.lastChangeAt >= h.MinDuration {
		h.lastRegion = raw
		h.lastChangeAt = t
	}
	return h.lastRegion
}

// Reset clears all accumulated state, used when the ownship/traffic
// configuration changes discontinuously (e.g. a new scenario is loaded).
func (h *BandsHysteresis) Reset() {
	h.initialized = false
	h.lastChangeAt = 0
	h.lastRegion = RegionUnknown
}

// AxisHysteresis applies BandsHysteresis independently to every band in a
// sequence of classified axis values, matching contiguous raw indices to
// the filter instance tracking that physical location on the axis.
type AxisHysteresis struct {
	filters map[int]*BandsHysteresis
	minDur  float64
	margin  float64
}

// NewAxisHysteresis returns an AxisHysteresis whose per-index filters use
// the given persistence requirements.
func NewAxisHysteresis(minDuration, margin float64) *AxisHysteresis {
	return &AxisHysteresis{filters: make(map[int]*BandsHysteresis), minDur: minDuration, margin: margin}
}

// Filter applies hysteresis to every step of a raw integer-band scan at
// time t, returning the filtered per-step regions in a freshly built
// Integerval list ready for coalescing.
func (a *AxisHysteresis) Filter(t float64, raw []Integerval) []Integerval {
	out := make([]Integerval, 0, len(raw))
	for _, iv := range raw {
		for step := iv.Low; step <= iv.Up; step++ {
			f, ok := a.filters[step]
			if !ok {
				f = NewBandsHysteresis(a.minDur, a.margin)
				a.filters[step] = f
			}
			out = append(out, Integerval{Low: step, Up: step, Region: f.Update(t, iv.Region)})
		}
	}
	return coalesceIntegervals(out)
}
