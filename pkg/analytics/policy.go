package analytics

import "time"

// DelayBreakpoint maps a response delay up to and including UpTo onto Penalty.
type DelayBreakpoint struct {
	UpTo    time.Duration
	Penalty float64
}

// Policy holds every constant the scoring pipeline depends on.
type Policy struct {
	HighSeverityWeight   float64
	MediumSeverityWeight float64
	LowSeverityWeight    float64

	// sprays a single medium detection justifies; a high detection always justifies one
	MediumSprayDemand float64

	OverSprayPenalty   float64
	VolumePenaltyScale float64
	EfficiencyFloor    float64

	// penalty for a detection with no spray at or after it, and for delays past the last breakpoint
	UntreatedPenalty float64
	DelayBreakpoints []DelayBreakpoint

	WaterPerSprayLiters float64
}

func DefaultPolicy() Policy {
	return Policy{
		HighSeverityWeight:   6,
		MediumSeverityWeight: 3,
		LowSeverityWeight:    1,
		MediumSprayDemand:    0.7,
		OverSprayPenalty:     8,
		VolumePenaltyScale:   30,
		EfficiencyFloor:      40,
		UntreatedPenalty:     15,
		DelayBreakpoints: []DelayBreakpoint{
			{UpTo: 6 * time.Hour, Penalty: 0},
			{UpTo: 24 * time.Hour, Penalty: 4},
			{UpTo: 48 * time.Hour, Penalty: 8},
			{UpTo: 72 * time.Hour, Penalty: 12},
		},
		WaterPerSprayLiters: 15,
	}
}

// WithWaterPerSpray returns a copy of p using liters for both the manual baseline and actual sprays.
func (p Policy) WithWaterPerSpray(liters float64) Policy {
	p.WaterPerSprayLiters = liters
	return p
}
