package scheduler

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zapcore"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/common"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/farm"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/farm/mocks"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/models"
	_ "github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/testing"
)

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

func TestRunSnapshot(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockISnapshot := mocks.NewMockISnapshot(ctrl)

	mockISnapshot.EXPECT().
		TakeSnapshot().
		Return(&models.ReportSnapshot{ID: "snap-1", TotalDetections: 4, TotalSprays: 2}, nil).
		Times(1)

	New(mockISnapshot).RunSnapshot()

	logs := ParseLogs(&buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "Scheduled snapshot taken", logs[0]["msg"])
	assert.Equal(t, "snap-1", logs[0]["id"])
	assert.Equal(t, float64(4), logs[0]["detections"])
}

func TestRunSnapshot_Error(t *testing.T) {
	var buf bytes.Buffer
	common.SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockISnapshot := mocks.NewMockISnapshot(ctrl)

	mockISnapshot.EXPECT().
		TakeSnapshot().
		Return(nil, fmt.Errorf("test error")).
		Times(1)

	New(mockISnapshot).RunSnapshot()

	logs := ParseLogs(&buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "error", logs[0]["level"])
	assert.Equal(t, "test error", logs[0]["error"])
}

func TestStart(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockISnapshot := mocks.NewMockISnapshot(ctrl)

	fired := make(chan struct{}, 1)
	mockISnapshot.EXPECT().
		TakeSnapshot().
		DoAndReturn(func() (*models.ReportSnapshot, error) {
			select {
			case fired <- struct{}{}:
			default:
			}
			return &models.ReportSnapshot{ID: "snap"}, nil
		}).
		MinTimes(1)

	s := New(mockISnapshot)
	require.NoError(t, s.Start("@every 1s"))

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("snapshot job did not run")
	}
	s.Stop()
}

func TestStart_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockISnapshot := mocks.NewMockISnapshot(ctrl)

	s := New(mockISnapshot)
	assert.Error(t, s.Start("not a schedule"))
	assert.Error(t, s.AddLimiterPrune("every now and then", time.Minute))
	s.Stop()
}

func TestAddLimiterPrune(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockISnapshot := mocks.NewMockISnapshot(ctrl)
	mockISnapshot.EXPECT().TakeSnapshot().Return(&models.ReportSnapshot{}, nil).AnyTimes()

	store := farm.NewRateLimiterStore(1, 1)
	store.GetLimiter("A1")
	store.GetLimiter("A2")
	store.SetLimiter("B1", 5, 5)
	require.Equal(t, 3, store.Len())

	time.Sleep(10 * time.Millisecond)

	s := New(mockISnapshot)
	require.NoError(t, s.AddLimiterPrune("@every 1s", time.Millisecond, store, nil))
	require.NoError(t, s.Start("@every 1h"))

	assert.Eventually(t, func() bool { return store.Len() == 1 }, 3*time.Second, 50*time.Millisecond)
	s.Stop()

	// overrides survive pruning
	assert.True(t, store.Allow("B1"))
}
