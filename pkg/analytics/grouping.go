package analytics

import "github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"

type ZoneBucket struct {
	Detections []models.DetectionEvent
	Sprays     []models.SprayEvent
}

// ZoneGroups keeps buckets keyed by zone id and the order in which zones were first seen,
// detections before sprays.
type ZoneGroups struct {
	Order   []string
	Buckets map[string]*ZoneBucket
}

func (g *ZoneGroups) bucket(zoneID string) *ZoneBucket {
	b, ok := g.Buckets[zoneID]
	if !ok {
		b = &ZoneBucket{}
		g.Buckets[zoneID] = b
		g.Order = append(g.Order, zoneID)
	}
	return b
}

func GroupByZone(detections []models.DetectionEvent, sprays []models.SprayEvent) ZoneGroups {
	groups := ZoneGroups{Buckets: make(map[string]*ZoneBucket)}

	for _, d := range detections {
		b := groups.bucket(d.ZoneID)
		b.Detections = append(b.Detections, d)
	}
	for _, s := range sprays {
		b := groups.bucket(s.ZoneID)
		b.Sprays = append(b.Sprays, s)
	}

	return groups
}
