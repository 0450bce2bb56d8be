package farm

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/common"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
)

func (f *Farm) upsertZone(zoneID string, input *models.Zone) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFarmCore,
		zap.String(common.LoggerFieldFarmCategory, common.LoggerCategoryFarmZone),
	)

	zone := models.Zone{
		ID:           zoneID,
		Name:         input.Name,
		Crop:         input.Crop,
		AreaHectares: input.AreaHectares,
	}

	logger.Info("Received zone", zap.Reflect("zone", zone))

	err := f.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "crop", "area_hectares", "updated_at"}),
	}).Create(&zone).Error

	if err == nil {
		logger.Info("Upserted zone", zap.Reflect("zone", zone))
	}

	return err
}

func (f *Farm) getZone(zoneID string) (*models.Zone, error) {
	var zone models.Zone
	err := f.Db.Conn.First(&zone, "id = ?", zoneID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrZoneNotFound, zoneID)
	}
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (f *Farm) listZones() ([]models.Zone, error) {
	var zones []models.Zone
	err := f.Db.Conn.Order("id asc").Find(&zones).Error
	return zones, err
}

type IZoneImpl struct {
	farm *Farm
}

func (iz *IZoneImpl) UpsertZone(zoneID string, input *models.Zone) error {
	return iz.farm.upsertZone(zoneID, input)
}

func (iz *IZoneImpl) GetZone(zoneID string) (*models.Zone, error) {
	return iz.farm.getZone(zoneID)
}

func (iz *IZoneImpl) ListZones() ([]models.Zone, error) {
	return iz.farm.listZones()
}

func (f *Farm) GetIZone() IZone {
	return &IZoneImpl{farm: f}
}
