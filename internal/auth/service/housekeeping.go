package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/pahiram/internal/auth/metrics"
	"github.com/aussiebroadwan/pahiram/internal/auth/store"
)

// HousekeepingService periodically removes expired session tokens and
// provider token records.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Metrics  *metrics.Metrics
	Interval time.Duration
	Now      func() time.Time

	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// PruneStats counts rows removed by one pass.
type PruneStats struct {
	SessionTokens int64
	RemoteTokens  int64
}

// NewHousekeepingService creates a housekeeping service. A non positive
// interval defaults to one hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, m *metrics.Metrics, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Metrics:  m,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs the worker in the background. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until any in-progress pass has finished.
func (s *HousekeepingService) Stop() {
	s.stopOnce.Do(func() {
		close(s.stopCh)
		<-s.doneCh
		s.Logger.Info("housekeeping service stopped")
	})
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	s.RunOnce(context.Background())

	for {
		select {
		case <-ticker.C:
			s.RunOnce(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// RunOnce performs a single pass. Each deletion is independent, a failure
// in one does not stop the other. The first error is returned.
func (s *HousekeepingService) RunOnce(ctx context.Context) (PruneStats, error) {
	now := nowFrom(s.Now)
	var stats PruneStats
	var firstErr error

	n, err := s.Store.SessionTokens().DeleteExpiredSessionTokens(ctx, now)
	if err != nil {
		s.Logger.Error("failed to delete expired session tokens", "error", err)
		firstErr = err
	} else {
		stats.SessionTokens = n
		s.Metrics.AddHousekeepingDeleted("session_tokens", n)
	}

	n, err = s.Store.RemoteTokens().DeleteExpiredRemoteTokens(ctx, now)
	if err != nil {
		s.Logger.Error("failed to delete expired apcis tokens", "error", err)
		if firstErr == nil {
			firstErr = err
		}
	} else {
		stats.RemoteTokens = n
		s.Metrics.AddHousekeepingDeleted("apcis_tokens", n)
	}

	s.Logger.Info("housekeeping pass completed",
		"session_tokens", stats.SessionTokens,
		"apcis_tokens", stats.RemoteTokens,
	)
	return stats, firstErr
}
