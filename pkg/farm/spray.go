package farm

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/common"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
)

func (f *Farm) recordSpray(zoneID string, input *models.SprayEvent) (*models.SprayEvent, int64, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFarmCore,
		zap.String(common.LoggerFieldFarmCategory, common.LoggerCategoryFarmSpray),
	)

	if f.Events == nil {
		return nil, 0, ErrServiceUnavailable
	}

	if _, err := f.getZone(zoneID); err != nil {
		return nil, 0, err
	}

	spray := models.SprayEvent{
		ID:          input.ID,
		ZoneID:      zoneID,
		Chemical:    input.Chemical,
		Dosage:      input.Dosage,
		Timestamp:   input.Timestamp.UTC(),
		TriggeredBy: input.TriggeredBy,
	}
	if spray.ID == "" {
		spray.ID = uuid.NewString()
	}
	if spray.TriggeredBy == "" {
		spray.TriggeredBy = models.SprayTriggerManual
	}

	logger.Info("Received spray for zone", zap.Reflect("spray", spray))

	linked, err := f.Events.SaveSpray(&spray)
	if err != nil {
		return nil, 0, err
	}

	logger.Info("Saved spray for zone", zap.Reflect("spray", spray), zap.Int64("linked_detections", linked))

	return &spray, linked, nil
}

func (f *Farm) listSprays(zoneID string) ([]models.SprayEvent, error) {
	var sprays []models.SprayEvent
	err := f.Db.Conn.
		Where("zone_id = ?", zoneID).
		Order("timestamp desc").
		Find(&sprays).Error
	return sprays, err
}

type ISprayImpl struct {
	farm *Farm
}

func (is *ISprayImpl) RecordSpray(zoneID string, input *models.SprayEvent) (*models.SprayEvent, int64, error) {
	return is.farm.recordSpray(zoneID, input)
}

func (is *ISprayImpl) ListSprays(zoneID string) ([]models.SprayEvent, error) {
	return is.farm.listSprays(zoneID)
}

func (f *Farm) GetISpray() ISpray {
	return &ISprayImpl{farm: f}
}
