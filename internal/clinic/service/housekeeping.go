package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/meadowhealth/clinic/pkg/cachex"
)

// HousekeepingService periodically purges expired cache entries (sessions,
// login counters) and re-runs the doctor-profile backfill sweep.
type HousekeepingService struct {
	Cache    *cachex.Memory
	Profiles *ProfileService
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a housekeeping service with the given
// interval. If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(cache *cachex.Memory, profiles *ProfileService, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Cache:    cache,
		Profiles: profiles,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop gracefully shuts down the background worker. Blocks until the worker
// has finished any in-progress sweep.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run a sweep immediately on startup
	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

// sweep performs one housekeeping pass. Each step is independent; a failure
// in one does not stop the others.
func (s *HousekeepingService) sweep() {
	ctx := context.Background()

	purged := s.Cache.PurgeExpired()
	if purged > 0 {
		s.Logger.Debug("purged expired cache entries", "count", purged)
	}

	created, err := s.Profiles.BackfillDoctorProfiles(ctx)
	if err != nil {
		s.Logger.Error("doctor profile backfill failed", "error", err)
	} else if created > 0 {
		s.Logger.Info("doctor profile backfill repaired rows", "created", created)
	}
}
