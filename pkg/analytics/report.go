package analytics

import (
	"go.uber.org/zap"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/common"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
)

type SeverityBreakdown struct {
	High                int     `json:"high"`
	Medium              int     `json:"medium"`
	Low                 int     `json:"low"`
	SeverityPenalty     float64 `json:"severityPenalty"`
	WeightedRiskPercent float64 `json:"weightedRiskPercent"`
}

type ZoneAnalytics struct {
	ZoneID          string  `json:"zoneId"`
	RequiredSprays  float64 `json:"requiredSprays"`
	ActualSprays    int     `json:"actualSprays"`
	OverSpray       float64 `json:"overSpray"`
	VolumePenalty   float64 `json:"volumePenalty"`
	OverPenalty     float64 `json:"overPenalty"`
	AvgDelayPenalty float64 `json:"avgDelayPenalty"`
	ZoneEfficiency  float64 `json:"zoneEfficiency"`
}

type WaterModel struct {
	ManualWater           float64 `json:"manualWater"`
	AIWater               float64 `json:"aiWater"`
	WaterSaved            float64 `json:"waterSaved"`
	WaterReductionPercent float64 `json:"waterReductionPercent"`
}

type SkippedRecords struct {
	Detections int `json:"detections"`
	Sprays     int `json:"sprays"`
}

type Report struct {
	TotalDetections       int               `json:"totalDetections"`
	TotalSprays           int               `json:"totalSprays"`
	SeverityBreakdown     SeverityBreakdown `json:"severityBreakdown"`
	DiseaseFrequency      map[string]int    `json:"diseaseFrequency"`
	ZoneAnalytics         []ZoneAnalytics   `json:"zoneAnalytics"`
	GlobalSprayEfficiency float64           `json:"globalSprayEfficiency"`
	WaterModel            WaterModel        `json:"waterModel"`

	Skipped *SkippedRecords `json:"skippedRecords,omitempty"`
}

// BuildReport aggregates both event logs with DefaultPolicy.
func BuildReport(detections []models.DetectionEvent, sprays []models.SprayEvent) Report {
	return DefaultPolicy().BuildReport(detections, sprays)
}

// BuildReport recomputes the full report from the two logs. Inputs are never modified and
// malformed records are dropped with a warning before any tally.
func (p Policy) BuildReport(detections []models.DetectionEvent, sprays []models.SprayEvent) Report {
	logger := common.GetLoggerWith(common.LoggerNameAnalytics)

	validDetections, skippedDetections := sanitizeDetections(logger, detections)
	validSprays, skippedSprays := sanitizeSprays(logger, sprays)

	severity := p.TallySeverity(validDetections)
	groups := GroupByZone(validDetections, validSprays)

	zones := make([]ZoneAnalytics, 0, len(groups.Order))
	for _, zoneID := range groups.Order {
		zones = append(zones, p.ScoreZone(zoneID, groups.Buckets[zoneID]))
	}

	report := Report{
		TotalDetections:       len(validDetections),
		TotalSprays:           len(validSprays),
		SeverityBreakdown:     severity,
		DiseaseFrequency:      DiseaseFrequency(validDetections),
		ZoneAnalytics:         zones,
		GlobalSprayEfficiency: GlobalSprayEfficiency(zones),
		WaterModel:            p.WaterModel(severity, len(validSprays)),
	}

	if skippedDetections > 0 || skippedSprays > 0 {
		report.Skipped = &SkippedRecords{Detections: skippedDetections, Sprays: skippedSprays}
		logger.Warn("Report built with malformed records skipped",
			zap.Int("skipped_detections", skippedDetections),
			zap.Int("skipped_sprays", skippedSprays))
	}

	return report
}
