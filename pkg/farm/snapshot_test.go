package farm

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/analytics"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/common"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
	_ "github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/testing"
)

func TestTakeSnapshot(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, farmObj, _ := GetMockFarmWithMemorySqliteDialector(t, mockOpts{})
	defer ctrl.Finish()
	resetTables(t, farmObj)

	zoneID := seedZone(t, farmObj)
	_, err := farmObj.Detection.RecordDetection(zoneID, &models.DetectionEvent{
		Disease: "Rust", SeverityLevel: models.SeverityHigh, Timestamp: baseTime,
	})
	require.NoError(t, err)

	snapshot, err := farmObj.Snapshot.TakeSnapshot()
	require.NoError(t, err)
	assert.NotEmpty(t, snapshot.ID)
	assert.Equal(t, 1, snapshot.TotalDetections)
	assert.Equal(t, 0, snapshot.TotalSprays)

	var payload analytics.Report
	require.NoError(t, json.Unmarshal([]byte(snapshot.Payload), &payload))
	assert.Equal(t, snapshot.GlobalSprayEfficiency, payload.GlobalSprayEfficiency)
	require.Len(t, payload.ZoneAnalytics, 1)
	assert.Equal(t, zoneID, payload.ZoneAnalytics[0].ZoneID)
}

func TestListSnapshots_Limit(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, farmObj, _ := GetMockFarmWithMemorySqliteDialector(t, mockOpts{})
	defer ctrl.Finish()
	resetTables(t, farmObj)

	var ids []string
	for range 3 {
		s, err := farmObj.Snapshot.TakeSnapshot()
		require.NoError(t, err)
		ids = append(ids, s.ID)
	}

	snapshots, err := farmObj.Snapshot.ListSnapshots(2)
	require.NoError(t, err)
	assert.Len(t, snapshots, 2)

	all, err := farmObj.Snapshot.ListSnapshots(0)
	require.NoError(t, err)
	assert.ElementsMatch(t, ids, common.Mapper(all, func(s models.ReportSnapshot) string { return s.ID }))
}

func TestTakeSnapshot_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, farmObj, m := GetMockFarmWithMemorySqliteDialector(t, mockOpts{report: true})
	defer ctrl.Finish()

	m.Report.EXPECT().
		BuildReport().
		Return(nil, fmt.Errorf("just causing error")).
		Times(1)

	_, err := farmObj.Snapshot.TakeSnapshot()
	assert.EqualError(t, err, "just causing error")

	farmObj.Report = nil
	_, err = farmObj.Snapshot.TakeSnapshot()
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}
