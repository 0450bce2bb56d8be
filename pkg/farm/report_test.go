package farm

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/analytics"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/common"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
	_ "github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/testing"
)

func TestBuildReport_FromStoredEvents(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, farmObj, m := GetMockFarmWithMemorySqliteDialector(t, mockOpts{})
	defer ctrl.Finish()
	resetTables(t, farmObj)
	farmObj.Observer = m.Observer

	treated := seedZone(t, farmObj)
	untreated := seedZone(t, farmObj)

	_, err := farmObj.Detection.RecordDetection(treated, &models.DetectionEvent{
		Disease: "Leaf Blight", SeverityLevel: models.SeverityHigh, Timestamp: baseTime,
	})
	require.NoError(t, err)
	_, _, err = farmObj.Spray.RecordSpray(treated, &models.SprayEvent{
		Chemical: "Copper", Timestamp: baseTime.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	_, err = farmObj.Detection.RecordDetection(untreated, &models.DetectionEvent{
		Disease: "Rust", SeverityLevel: models.SeverityMedium, Timestamp: baseTime,
	})
	require.NoError(t, err)

	m.Observer.EXPECT().ObserveReport(gomock.Any()).Times(1)

	report, err := farmObj.Report.BuildReport()
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalDetections)
	assert.Equal(t, 1, report.TotalSprays)
	assert.Equal(t, map[string]int{"Leaf Blight": 1, "Rust": 1}, report.DiseaseFrequency)
	require.Len(t, report.ZoneAnalytics, 2)

	byZone := map[string]analytics.ZoneAnalytics{}
	for _, z := range report.ZoneAnalytics {
		byZone[z.ZoneID] = z
	}
	assert.InDelta(t, 100-math.Log(2)*30, byZone[treated].ZoneEfficiency, 1e-9)
	assert.Equal(t, 100.0, byZone[untreated].ZoneEfficiency)
	assert.InDelta(t, 0.7, byZone[untreated].RequiredSprays, 1e-9)
}

func TestBuildZoneReport(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, farmObj, m := GetMockFarmWithMemorySqliteDialector(t, mockOpts{})
	defer ctrl.Finish()
	farmObj.Observer = m.Observer

	zoneID := seedZone(t, farmObj)
	otherID := seedZone(t, farmObj)
	for _, z := range []string{zoneID, otherID} {
		_, err := farmObj.Detection.RecordDetection(z, &models.DetectionEvent{
			Disease: "Rust", SeverityLevel: models.SeverityLow, Timestamp: baseTime,
		})
		require.NoError(t, err)
	}

	// zone reports are not published to the observer
	m.Observer.EXPECT().ObserveReport(gomock.Any()).Times(0)

	report, err := farmObj.Report.BuildZoneReport(zoneID)
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalDetections)
	require.Len(t, report.ZoneAnalytics, 1)
	assert.Equal(t, zoneID, report.ZoneAnalytics[0].ZoneID)

	_, err = farmObj.Report.BuildZoneReport(uuid.NewString())
	assert.ErrorIs(t, err, ErrZoneNotFound)
}

func TestBuildReport_CustomPolicy(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, farmObj, m := GetMockFarmWithMemorySqliteDialector(t, mockOpts{events: true})
	defer ctrl.Finish()

	policy := analytics.DefaultPolicy().WithWaterPerSpray(20)
	farmObj.Policy = &policy

	m.Events.EXPECT().
		LoadEvents(gomock.Eq("")).
		Return([]models.DetectionEvent{{
			ID: "d1", ZoneID: "A1", SeverityLevel: models.SeverityHigh, Timestamp: baseTime,
		}}, nil, nil).
		Times(1)

	report, err := farmObj.Report.BuildReport()
	require.NoError(t, err)
	assert.Equal(t, 20.0, report.WaterModel.ManualWater)
}

func TestBuildReport_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	{
		ctrl, farmObj, m := GetMockFarmWithMemorySqliteDialector(t, mockOpts{events: true})
		defer ctrl.Finish()

		m.Events.EXPECT().
			LoadEvents(gomock.Any()).
			Return(nil, nil, fmt.Errorf("just causing error")).
			Times(1)

		_, err := farmObj.Report.BuildReport()
		assert.EqualError(t, err, "just causing error")
	}

	{
		ctrl, farmObj, _ := GetMockFarmWithMemorySqliteDialector(t, mockOpts{})
		defer ctrl.Finish()

		farmObj.Events = nil
		_, err := farmObj.Report.BuildReport()
		assert.ErrorIs(t, err, ErrServiceUnavailable)
	}
}
