package daa

// regionAt classifies a single discretized step along a scanned axis.
type regionAt func(step int) Region

// DaidalusIntegerBands performs the integer-step scan shared by every
// axis specialization (spec.md §4.6): step from min to max (inclusive),
// classify each step with classify, and coalesce the run into bands. When
// mod > 0 the axis wraps (track direction); if in addition Min == Max (a
// degenerate clamped axis), Scan reports one saturated band over the whole
// circle (steps 0..Mod-1), colored by the most severe region among those
// steps.
type DaidalusIntegerBands struct {
	Min, Max int
	Mod      int
	Classify regionAt
}

// Scan runs the classifier across every step and returns the coalesced
// bands.
func (b DaidalusIntegerBands) Scan() []Integerval {
	if b.Mod > 0 && b.Min == b.Max {
		worst := RegionNone
		for step := 0; step < b.Mod; step++ {
			worst = MostSevere(worst, b.Classify(step))
		}
		return []Integerval{{Low: 0, Up: b.Mod - 1, Region: worst}}
	}

	raw := make([]Integerval, 0, b.Max-b.Min+1)
	for step := b.Min; step <= b.Max; step++ {
		raw = append(raw, Integerval{Low: step, Up: step, Region: b.Classify(step)})
	}
	return coalesceIntegervals(raw)
}

// ScanWrapped is Scan for a modular axis (mod > 0, Min==0, Max==mod-1):
// adjacent bands that straddle the wraparound point (step mod-1 to step
// 0) are merged when they share a region.
func (b DaidalusIntegerBands) ScanWrapped() []Integerval {
	bands := b.Scan()
	if b.Mod <= 0 || len(bands) < 2 {
		return bands
	}
	first, last := bands[0], bands[len(bands)-1]
	if first.Low == 0 && last.Up == b.Mod-1 && first.Region == last.Region {
		merged := Integerval{Low: last.Low - b.Mod, Up: first.Up, Region: first.Region}
		out := append([]Integerval{merged}, bands[1:len(bands)-1]...)
		return out
	}
	return bands
}
