package farm

import (
	"bufio"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/db"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/farm/mocks"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
)

type mockOpts struct {
	events, zone, detection, spray, report, snapshot bool
}

type farmMocks struct {
	Events    *mocks.MockEventRepository
	Zone      *mocks.MockIZone
	Detection *mocks.MockIDetection
	Spray     *mocks.MockISpray
	Report    *mocks.MockIReport
	Snapshot  *mocks.MockISnapshot
	Observer  *mocks.MockReportObserver
}

func GetMockFarmWithMemorySqliteDialector(t *testing.T, opts mockOpts) (*gomock.Controller, *Farm, *farmMocks) {
	ctrl := gomock.NewController(t)

	m := &farmMocks{
		Events:    mocks.NewMockEventRepository(ctrl),
		Zone:      mocks.NewMockIZone(ctrl),
		Detection: mocks.NewMockIDetection(ctrl),
		Spray:     mocks.NewMockISpray(ctrl),
		Report:    mocks.NewMockIReport(ctrl),
		Snapshot:  mocks.NewMockISnapshot(ctrl),
		Observer:  mocks.NewMockReportObserver(ctrl),
	}

	farmInstance := (&Farm{Db: *db.GetInstance(db.UseMemorySqliteDialector())}).WithDefaultServices()

	override := ServiceOpts{}
	if opts.events {
		override.Events = m.Events
	}
	if opts.zone {
		override.Zone = m.Zone
	}
	if opts.detection {
		override.Detection = m.Detection
	}
	if opts.spray {
		override.Spray = m.Spray
	}
	if opts.report {
		override.Report = m.Report
	}
	if opts.snapshot {
		override.Snapshot = m.Snapshot
	}
	farmInstance.WithServices(override)

	return ctrl, farmInstance, m
}

// resetTables empties every table; the shared in-memory database outlives single tests.
func resetTables(t *testing.T, f *Farm) {
	for _, table := range []string{"detection_events", "spray_events", "report_snapshots", "zones"} {
		require.NoError(t, f.Db.Conn.Exec("DELETE FROM "+table).Error)
	}
}

func seedZone(t *testing.T, f *Farm) string {
	zoneID := "Z-" + uuid.NewString()
	require.NoError(t, f.Zone.UpsertZone(zoneID, &models.Zone{Name: "North block", Crop: "tomato", AreaHectares: 1.5}))
	return zoneID
}

var baseTime = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

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
