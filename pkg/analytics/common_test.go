package analytics

import (
	"bufio"
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
)

var baseTime = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func detection(zoneID string, severity models.SeverityLevel, at time.Time) models.DetectionEvent {
	return models.DetectionEvent{
		ID:            uuid.NewString(),
		ZoneID:        zoneID,
		Disease:       "Leaf Blight",
		Confidence:    0.9,
		SeverityLevel: severity,
		Timestamp:     at,
		Status:        models.DetectionStatusPending,
	}
}

func spray(zoneID string, at time.Time) models.SprayEvent {
	return models.SprayEvent{
		ID:          uuid.NewString(),
		ZoneID:      zoneID,
		Chemical:    "Copper Oxychloride",
		Dosage:      2.5,
		Timestamp:   at,
		TriggeredBy: models.SprayTriggerAuto,
	}
}

func ParseLogs(r io.Reader) []map[string]any {
	scanner := bufio.NewScanner(r)
	var logs []map[string]any

	for scanner.Scan() {
		var j map[string]any
		if err := json.Unmarshal(scanner.Bytes(), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}
