package farm

import (
	"gorm.io/gorm"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
)

type GormEventRepository struct {
	farm *Farm
}

func (r *GormEventRepository) LoadEvents(zoneID string) ([]models.DetectionEvent, []models.SprayEvent, error) {
	var detections []models.DetectionEvent
	var sprays []models.SprayEvent

	err := r.farm.Db.Conn.Transaction(func(tx *gorm.DB) error {
		detectionQuery := tx.Order("timestamp asc, id asc")
		sprayQuery := tx.Order("timestamp asc, id asc")
		if zoneID != "" {
			detectionQuery = detectionQuery.Where("zone_id = ?", zoneID)
			sprayQuery = sprayQuery.Where("zone_id = ?", zoneID)
		}

		if err := detectionQuery.Find(&detections).Error; err != nil {
			return err
		}
		return sprayQuery.Find(&sprays).Error
	})

	return detections, sprays, err
}

func (r *GormEventRepository) SaveDetection(detection *models.DetectionEvent) error {
	return r.farm.Db.Conn.Create(detection).Error
}

func (r *GormEventRepository) SaveSpray(spray *models.SprayEvent) (int64, error) {
	var linked int64

	err := r.farm.Db.Conn.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(spray).Error; err != nil {
			return err
		}

		treatedAt := spray.Timestamp
		result := tx.Model(&models.DetectionEvent{}).
			Where("zone_id = ? AND status = ? AND timestamp <= ?", spray.ZoneID, models.DetectionStatusPending, spray.Timestamp).
			Updates(map[string]any{
				"status":          models.DetectionStatusTreated,
				"treated_at":      &treatedAt,
				"linked_spray_id": spray.ID,
			})
		if result.Error != nil {
			return result.Error
		}

		linked = result.RowsAffected
		return nil
	})

	return linked, err
}

func (f *Farm) GetEventRepository() EventRepository {
	return &GormEventRepository{farm: f}
}
