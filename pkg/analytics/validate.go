package analytics

import (
	"strings"

	"go.uber.org/zap"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/common"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
)

const (
	reasonMissingZone     = "missing zone id"
	reasonMissingTime     = "missing timestamp"
	reasonUnknownSeverity = "unknown severity level"
)

func detectionIssue(d models.DetectionEvent) string {
	switch {
	case strings.TrimSpace(d.ZoneID) == "":
		return reasonMissingZone
	case d.Timestamp.IsZero():
		return reasonMissingTime
	case !d.SeverityLevel.Valid():
		return reasonUnknownSeverity
	}
	return ""
}

func sprayIssue(s models.SprayEvent) string {
	switch {
	case strings.TrimSpace(s.ZoneID) == "":
		return reasonMissingZone
	case s.Timestamp.IsZero():
		return reasonMissingTime
	}
	return ""
}

func sanitizeDetections(logger *zap.Logger, detections []models.DetectionEvent) ([]models.DetectionEvent, int) {
	valid := common.Filter(detections, func(d models.DetectionEvent) bool {
		reason := detectionIssue(d)
		if reason == "" {
			return true
		}
		logger.Warn("Skipping malformed detection",
			zap.String("id", d.ID),
			zap.String("zone_id", d.ZoneID),
			zap.String("reason", reason))
		return false
	})
	return valid, len(detections) - len(valid)
}

func sanitizeSprays(logger *zap.Logger, sprays []models.SprayEvent) ([]models.SprayEvent, int) {
	valid := common.Filter(sprays, func(s models.SprayEvent) bool {
		reason := sprayIssue(s)
		if reason == "" {
			return true
		}
		logger.Warn("Skipping malformed spray",
			zap.String("id", s.ID),
			zap.String("zone_id", s.ZoneID),
			zap.String("reason", reason))
		return false
	})
	return valid, len(sprays) - len(valid)
}
