package farm

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/common"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
)

const DefaultSnapshotLimit = 10

func (f *Farm) takeSnapshot() (*models.ReportSnapshot, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFarmCore,
		zap.String(common.LoggerFieldFarmCategory, common.LoggerCategoryFarmSnapshot),
	)

	if f.Report == nil {
		return nil, ErrServiceUnavailable
	}

	report, err := f.Report.BuildReport()
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}

	snapshot := models.ReportSnapshot{
		ID:                    uuid.NewString(),
		CreatedAt:             time.Now().UTC(),
		TotalDetections:       report.TotalDetections,
		TotalSprays:           report.TotalSprays,
		GlobalSprayEfficiency: report.GlobalSprayEfficiency,
		Payload:               string(payload),
	}

	if err := f.Db.Conn.Create(&snapshot).Error; err != nil {
		return nil, err
	}

	logger.Info("Saved report snapshot",
		zap.String("id", snapshot.ID),
		zap.Float64("global_spray_efficiency", snapshot.GlobalSprayEfficiency))

	return &snapshot, nil
}

func (f *Farm) listSnapshots(limit int) ([]models.ReportSnapshot, error) {
	if limit <= 0 {
		limit = DefaultSnapshotLimit
	}

	var snapshots []models.ReportSnapshot
	err := f.Db.Conn.
		Order("created_at desc").
		Limit(limit).
		Find(&snapshots).Error
	return snapshots, err
}

type ISnapshotImpl struct {
	farm *Farm
}

func (is *ISnapshotImpl) TakeSnapshot() (*models.ReportSnapshot, error) {
	return is.farm.takeSnapshot()
}

func (is *ISnapshotImpl) ListSnapshots(limit int) ([]models.ReportSnapshot, error) {
	return is.farm.listSnapshots(limit)
}

func (f *Farm) GetISnapshot() ISnapshot {
	return &ISnapshotImpl{farm: f}
}
