package farm

import (
	"go.uber.org/zap"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/analytics"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/common"
)

func (f *Farm) buildReport(zoneID string) (*analytics.Report, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFarmCore,
		zap.String(common.LoggerFieldFarmCategory, common.LoggerCategoryFarmReport),
	)

	if f.Events == nil {
		return nil, ErrServiceUnavailable
	}

	detections, sprays, err := f.Events.LoadEvents(zoneID)
	if err != nil {
		return nil, err
	}

	report := f.policy().BuildReport(detections, sprays)

	logger.Info("Built report",
		zap.String("zone_id", zoneID),
		zap.Int("detections", report.TotalDetections),
		zap.Int("sprays", report.TotalSprays),
		zap.Float64("global_spray_efficiency", report.GlobalSprayEfficiency))

	if zoneID == "" && f.Observer != nil {
		f.Observer.ObserveReport(&report)
	}

	return &report, nil
}

func (f *Farm) buildZoneReport(zoneID string) (*analytics.Report, error) {
	if _, err := f.getZone(zoneID); err != nil {
		return nil, err
	}
	return f.buildReport(zoneID)
}

type IReportImpl struct {
	farm *Farm
}

func (ir *IReportImpl) BuildReport() (*analytics.Report, error) {
	return ir.farm.buildReport("")
}

func (ir *IReportImpl) BuildZoneReport(zoneID string) (*analytics.Report, error) {
	return ir.farm.buildZoneReport(zoneID)
}

func (f *Farm) GetIReport() IReport {
	return &IReportImpl{farm: f}
}
