package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
)

// ScoreZone derives the efficiency of one zone bucket.
//
// The delay average divides by the number of detections that found a spray, while
// untreated detections still add UntreatedPenalty to the sum. When no detection found a
// spray the average is 0.
func (p Policy) ScoreZone(zoneID string, bucket *ZoneBucket) ZoneAnalytics {
	if bucket == nil {
		bucket = &ZoneBucket{}
	}

	var high, medium int
	for _, d := range bucket.Detections {
		switch d.SeverityLevel {
		case models.SeverityHigh:
			high++
		case models.SeverityMedium:
			medium++
		}
	}

	actual := len(bucket.Sprays)
	required := float64(high) + float64(medium)*p.MediumSprayDemand
	over := math.Max(0, float64(actual)-required)
	overPenalty := over * p.OverSprayPenalty
	volumePenalty := math.Log(float64(actual)+1) * p.VolumePenaltyScale

	sprayTimes := sortedSprayTimes(bucket.Sprays)

	var totalDelayPenalty float64
	var pairedCount int
	for _, d := range bucket.Detections {
		first, ok := firstAtOrAfter(sprayTimes, d.Timestamp)
		if !ok {
			totalDelayPenalty += p.UntreatedPenalty
			continue
		}
		totalDelayPenalty += p.DelayPenalty(first.Sub(d.Timestamp))
		pairedCount++
	}

	var avgDelayPenalty float64
	if pairedCount > 0 {
		avgDelayPenalty = totalDelayPenalty / float64(pairedCount)
	}

	efficiency := math.Max(p.EfficiencyFloor, 100-volumePenalty-overPenalty-avgDelayPenalty)

	return ZoneAnalytics{
		ZoneID:          zoneID,
		RequiredSprays:  required,
		ActualSprays:    actual,
		OverSpray:       over,
		VolumePenalty:   volumePenalty,
		OverPenalty:     overPenalty,
		AvgDelayPenalty: avgDelayPenalty,
		ZoneEfficiency:  efficiency,
	}
}

// DelayPenalty maps the delay between a detection and its first spray onto the breakpoints.
func (p Policy) DelayPenalty(delay time.Duration) float64 {
	for _, bp := range p.DelayBreakpoints {
		if delay <= bp.UpTo {
			return bp.Penalty
		}
	}
	return p.UntreatedPenalty
}

func sortedSprayTimes(sprays []models.SprayEvent) []time.Time {
	times := make([]time.Time, len(sprays))
	for i, s := range sprays {
		times[i] = s.Timestamp
	}
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	return times
}

func firstAtOrAfter(sorted []time.Time, t time.Time) (time.Time, bool) {
	i := sort.Search(len(sorted), func(i int) bool { return !sorted[i].Before(t) })
	if i == len(sorted) {
		return time.Time{}, false
	}
	return sorted[i], true
}
