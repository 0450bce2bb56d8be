package analytics

import "github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"

const unknownDisease = "Unknown"

// GlobalSprayEfficiency is the mean zone efficiency, 100 when there are no zones.
func GlobalSprayEfficiency(zones []ZoneAnalytics) float64 {
	if len(zones) == 0 {
		return 100
	}
	var sum float64
	for _, z := range zones {
		sum += z.ZoneEfficiency
	}
	return sum / float64(len(zones))
}

func DiseaseFrequency(detections []models.DetectionEvent) map[string]int {
	freq := make(map[string]int)
	for _, d := range detections {
		name := d.Disease
		if name == "" {
			name = unknownDisease
		}
		freq[name]++
	}
	return freq
}

// WaterModel compares a manual baseline of one spray per detection against the sprays
// actually performed.
func (p Policy) WaterModel(severity SeverityBreakdown, totalSprays int) WaterModel {
	manual := float64(severity.High+severity.Medium+severity.Low) * p.WaterPerSprayLiters
	ai := float64(totalSprays) * p.WaterPerSprayLiters
	saved := manual - ai

	var reduction float64
	if manual != 0 {
		reduction = saved / manual * 100
	}

	return WaterModel{
		ManualWater:           manual,
		AIWater:               ai,
		WaterSaved:            saved,
		WaterReductionPercent: reduction,
	}
}
