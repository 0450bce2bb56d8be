package farm

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/common"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
)

func (f *Farm) recordDetection(zoneID string, input *models.DetectionEvent) (*models.DetectionEvent, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFarmCore,
		zap.String(common.LoggerFieldFarmCategory, common.LoggerCategoryFarmDetection),
	)

	if f.Events == nil {
		return nil, ErrServiceUnavailable
	}

	if _, err := f.getZone(zoneID); err != nil {
		return nil, err
	}

	detection := models.DetectionEvent{
		ID:            input.ID,
		ZoneID:        zoneID,
		Disease:       input.Disease,
		Confidence:    input.Confidence,
		SeverityLevel: input.SeverityLevel,
		Timestamp:     input.Timestamp.UTC(),
		Status:        models.DetectionStatusPending,
	}
	if detection.ID == "" {
		detection.ID = uuid.NewString()
	}

	logger.Info("Received detection for zone", zap.Reflect("detection", detection))

	if err := f.Events.SaveDetection(&detection); err != nil {
		return nil, err
	}

	logger.Info("Saved detection for zone", zap.Reflect("detection", detection))

	return &detection, nil
}

func (f *Farm) listDetections(zoneID string) ([]models.DetectionEvent, error) {
	var detections []models.DetectionEvent
	err := f.Db.Conn.
		Where("zone_id = ?", zoneID).
		Order("timestamp desc").
		Find(&detections).Error
	return detections, err
}

type IDetectionImpl struct {
	farm *Farm
}

func (id *IDetectionImpl) RecordDetection(zoneID string, input *models.DetectionEvent) (*models.DetectionEvent, error) {
	return id.farm.recordDetection(zoneID, input)
}

func (id *IDetectionImpl) ListDetections(zoneID string) ([]models.DetectionEvent, error) {
	return id.farm.listDetections(zoneID)
}

func (f *Farm) GetIDetection() IDetection {
	return &IDetectionImpl{farm: f}
}
