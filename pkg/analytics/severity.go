package analytics

import "github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"

// TallySeverity counts detections per severity class and derives the weighted risk.
// With no detections the denominator floors to 1 so the risk is 0.
func (p Policy) TallySeverity(detections []models.DetectionEvent) SeverityBreakdown {
	var b SeverityBreakdown
	for _, d := range detections {
		switch d.SeverityLevel {
		case models.SeverityHigh:
			b.High++
		case models.SeverityMedium:
			b.Medium++
		case models.SeverityLow:
			b.Low++
		}
	}

	b.SeverityPenalty = float64(b.High)*p.HighSeverityWeight +
		float64(b.Medium)*p.MediumSeverityWeight +
		float64(b.Low)*p.LowSeverityWeight

	denominator := float64(len(detections)) * p.HighSeverityWeight
	if denominator == 0 {
		denominator = 1
	}
	b.WeightedRiskPercent = b.SeverityPenalty / denominator * 100

	return b
}
