package db

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/common"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
	_ "github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/testing"
)

func tableExists(db *gorm.DB, tableName string) bool {
	var count int64
	err := db.Raw(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?`, tableName,
	).Scan(&count).Error
	return err == nil && count > 0
}

func TestWithMemorySqlite(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())
	if instance == nil {
		t.Fatal("Expected non-nil DB instance")
	}

	var tables = []string{"zones", "detection_events", "spray_events", "report_snapshots"}
	for _, table := range tables {
		if !tableExists(instance.Conn, table) {
			t.Errorf("Expected table %q to exist after migration", table)
		}
	}
}

func TestSeverityCheckConstraint(t *testing.T) {
	common.SetTestLoggerNop()

	instance := GetInstance(UseMemorySqliteDialector())

	zoneID := uuid.NewString()
	require.NoError(t, instance.Conn.Create(&models.Zone{ID: zoneID, Name: "test"}).Error)

	err := instance.Conn.Create(&models.DetectionEvent{
		ID:            uuid.NewString(),
		ZoneID:        zoneID,
		Disease:       "Leaf Blight",
		SeverityLevel: models.SeverityLevel("critical"),
		Timestamp:     time.Now(),
	}).Error
	assert.Error(t, err, "severity outside low/medium/high must be rejected")

	err = instance.Conn.Create(&models.DetectionEvent{
		ID:            uuid.NewString(),
		ZoneID:        zoneID,
		Disease:       "Leaf Blight",
		SeverityLevel: models.SeverityHigh,
		Timestamp:     time.Now(),
	}).Error
	assert.NoError(t, err)
}

func TestSingletonConcurrency(t *testing.T) {
	common.SetTestLoggerNop()

	const goroutineCount = 20

	var wg sync.WaitGroup
	instances := make(chan *DB, goroutineCount)

	for range goroutineCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			instances <- GetInstance(UseMemorySqliteDialector())
		}()
	}

	wg.Wait()
	close(instances)

	var first *DB
	for inst := range instances {
		if first == nil {
			first = inst
			continue
		}
		if inst != first {
			t.Error("Expected all instances to be the same (singleton), but found different ones")
		}
	}
}
