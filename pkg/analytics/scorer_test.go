package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
)

func TestDelayPenalty_Breakpoints(t *testing.T) {
	p := DefaultPolicy()

	cases := []struct {
		delay   time.Duration
		penalty float64
	}{
		{0, 0},
		{6 * time.Hour, 0},
		{6*time.Hour + time.Minute, 4},
		{24 * time.Hour, 4},
		{30 * time.Hour, 8},
		{48 * time.Hour, 8},
		{60 * time.Hour, 12},
		{72 * time.Hour, 12},
		{72*time.Hour + time.Second, 15},
		{300 * time.Hour, 15},
	}

	for _, c := range cases {
		assert.Equal(t, c.penalty, p.DelayPenalty(c.delay), "delay %v", c.delay)
	}
}

func TestScoreZone_UsesEarliestSprayAtOrAfterDetection(t *testing.T) {
	p := DefaultPolicy()

	bucket := &ZoneBucket{
		Detections: []models.DetectionEvent{detection("A1", models.SeverityHigh, baseTime)},
		Sprays: []models.SprayEvent{
			spray("A1", baseTime.Add(50*time.Hour)),
			spray("A1", baseTime.Add(-time.Hour)), // before the detection, ignored for matching
			spray("A1", baseTime.Add(20*time.Hour)),
		},
	}

	zone := p.ScoreZone("A1", bucket)
	assert.Equal(t, 4.0, zone.AvgDelayPenalty)
	assert.Equal(t, 3, zone.ActualSprays)
	assert.InDelta(t, 2.0, zone.OverSpray, 1e-9)
	assert.InDelta(t, 16.0, zone.OverPenalty, 1e-9)
}

func TestScoreZone_SprayAtSameInstantMatches(t *testing.T) {
	zone := DefaultPolicy().ScoreZone("A1", &ZoneBucket{
		Detections: []models.DetectionEvent{detection("A1", models.SeverityHigh, baseTime)},
		Sprays:     []models.SprayEvent{spray("A1", baseTime)},
	})
	assert.Equal(t, 0.0, zone.AvgDelayPenalty)
}

// one matched detection (penalty 4) and one untreated (15): sum 19 over one pairing
func TestScoreZone_UnmatchedInflatesAverage(t *testing.T) {
	zone := DefaultPolicy().ScoreZone("A1", &ZoneBucket{
		Detections: []models.DetectionEvent{
			detection("A1", models.SeverityMedium, baseTime),
			detection("A1", models.SeverityMedium, baseTime.Add(100*time.Hour)),
		},
		Sprays: []models.SprayEvent{spray("A1", baseTime.Add(12*time.Hour))},
	})

	assert.Equal(t, 19.0, zone.AvgDelayPenalty)
	assert.InDelta(t, 1.4, zone.RequiredSprays, 1e-9)
	assert.Equal(t, 0.0, zone.OverSpray)
	assert.InDelta(t, 100-math.Log(2)*30-19, zone.ZoneEfficiency, 1e-9)
}

func TestScoreZone_FloorClamp(t *testing.T) {
	var sprays []models.SprayEvent
	for range 30 {
		sprays = append(sprays, spray("A1", baseTime))
	}

	zone := DefaultPolicy().ScoreZone("A1", &ZoneBucket{Sprays: sprays})
	assert.Equal(t, 40.0, zone.ZoneEfficiency)
	assert.Equal(t, 30.0, zone.OverSpray)
}

func TestScoreZone_RequiredSpraysMonotonic(t *testing.T) {
	p := DefaultPolicy()
	bucket := &ZoneBucket{}
	previous := p.ScoreZone("A1", bucket).RequiredSprays

	severities := []models.SeverityLevel{models.SeverityMedium, models.SeverityHigh, models.SeverityLow, models.SeverityMedium}
	for i := range 20 {
		bucket.Detections = append(bucket.Detections, detection("A1", severities[i%len(severities)], baseTime))
		current := p.ScoreZone("A1", bucket).RequiredSprays
		assert.GreaterOrEqual(t, current, previous)
		previous = current
	}
}

func TestScoreZone_NilBucket(t *testing.T) {
	zone := DefaultPolicy().ScoreZone("A1", nil)
	assert.Equal(t, 100.0, zone.ZoneEfficiency)
	assert.Equal(t, "A1", zone.ZoneID)
}

func TestGroupByZone_CreatesBucketsFromEitherSide(t *testing.T) {
	groups := GroupByZone(
		[]models.DetectionEvent{detection("A1", models.SeverityLow, baseTime)},
		[]models.SprayEvent{spray("B1", baseTime), spray("A1", baseTime)},
	)

	assert.Equal(t, []string{"A1", "B1"}, groups.Order)
	assert.Len(t, groups.Buckets["A1"].Detections, 1)
	assert.Len(t, groups.Buckets["A1"].Sprays, 1)
	assert.Empty(t, groups.Buckets["B1"].Detections)
	assert.Len(t, groups.Buckets["B1"].Sprays, 1)
}

func TestTallySeverity_Empty(t *testing.T) {
	sb := DefaultPolicy().TallySeverity(nil)
	assert.Equal(t, SeverityBreakdown{}, sb)
}

func TestGlobalSprayEfficiency(t *testing.T) {
	assert.Equal(t, 100.0, GlobalSprayEfficiency(nil))
	assert.Equal(t, 70.0, GlobalSprayEfficiency([]ZoneAnalytics{{ZoneEfficiency: 40}, {ZoneEfficiency: 100}}))
}
