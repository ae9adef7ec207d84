package stats

// Progress reports how far an actual value has come toward a target.
// Active is false when no target is set, which callers must render as
// "no goal" rather than 0%.
type Progress struct {
	Active  bool
	Percent float64
}

// ComputeProgress returns the uncapped completion percentage. A target of
// zero or less means no goal was set.
func ComputeProgress(actual float64, target float64) Progress {
	if target <= 0 {
		return Progress{}
	}
	return Progress{Active: true, Percent: actual / target * 100}
}

// Capped clamps the percentage to [0, 100] for progress-bar display. The
// raw Percent stays available for overage messaging.
func (p Progress) Capped() float64 {
	if !p.Active || p.Percent < 0 {
		return 0
	}
	if p.Percent > 100 {
		return 100
	}
	return p.Percent
}
