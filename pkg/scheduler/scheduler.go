package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/common"
	"github.com/lucky2132621326/Mana-Polam---AI-sub000/pkg/farm"
)

// SnapshotScheduler takes report snapshots on a cron schedule and can prune idle per-zone
// limiters on a second one.
type SnapshotScheduler struct {
	Snapshot farm.ISnapshot
	cron     *cron.Cron
}

func New(snapshot farm.ISnapshot, opts ...cron.Option) *SnapshotScheduler {
	return &SnapshotScheduler{
		Snapshot: snapshot,
		cron:     cron.New(opts...),
	}
}

func (s *SnapshotScheduler) RunSnapshot() {
	logger := common.GetLoggerWith(common.LoggerNameScheduler)

	snapshot, err := s.Snapshot.TakeSnapshot()
	if err != nil {
		logger.Error("Scheduled snapshot failed", zap.Error(err))
		return
	}

	logger.Info("Scheduled snapshot taken",
		zap.String("id", snapshot.ID),
		zap.Int("detections", snapshot.TotalDetections),
		zap.Int("sprays", snapshot.TotalSprays))
}

// AddLimiterPrune drops limiters idle for longer than idle from every store on the given cron schedule.
func (s *SnapshotScheduler) AddLimiterPrune(spec string, idle time.Duration, stores ...*farm.RateLimiterStore) error {
	_, err := s.cron.AddFunc(spec, func() {
		removed := 0
		for _, store := range stores {
			if store != nil {
				removed += store.Prune(idle)
			}
		}
		common.GetLoggerWith(common.LoggerNameScheduler).
			Info("Pruned idle zone limiters", zap.Int("removed", removed))
	})
	return err
}

// Start registers the snapshot job on the cron schedule and starts the cron loop in its own goroutine.
func (s *SnapshotScheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.RunSnapshot); err != nil {
		return err
	}

	common.GetLoggerWith(common.LoggerNameScheduler).
		Info("Snapshot job scheduled", zap.String("schedule", spec))
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *SnapshotScheduler) Stop() {
	<-s.cron.Stop().Done()
}
