// Package scheduler runs the periodic feed synchronization loop.
package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/Chernika535/Zen-RSS-pro/pkg/domain"
	"github.com/Chernika535/Zen-RSS-pro/pkg/repository"
)

//go:generate moq -out mocks/refresher.go -pkg mocks -skip-ensure -fmt goimports . Refresher
//go:generate moq -out mocks/config_reader.go -pkg mocks -skip-ensure -fmt goimports . ConfigReader

// Refresher runs one full ingestion cycle
type Refresher interface {
	Refresh(ctx context.Context) error
}

// ConfigReader reads the feed configuration
type ConfigReader interface {
	GetConfig(ctx context.Context) (*domain.FeedConfig, error)
}

// Scheduler triggers periodic feed synchronization based on the check
// interval stored in the feed configuration. Manual and scheduled runs are
// serialized, two cycles never overlap.
type Scheduler struct {
	refresher       Refresher
	config          ConfigReader
	defaultInterval time.Duration

	runMutex sync.Mutex // serialize sync cycles
	busy     atomic.Bool
	wg       sync.WaitGroup
	cancel   context.CancelFunc
}

// NewScheduler creates a scheduler. defaultInterval is used until a feed
// configuration exists; afterwards the stored check interval wins.
func NewScheduler(refresher Refresher, config ConfigReader, defaultInterval time.Duration) *Scheduler {
	if defaultInterval == 0 {
		defaultInterval = 30 * time.Minute
	}
	return &Scheduler{refresher: refresher, config: config, defaultInterval: defaultInterval}
}

// Start begins the synchronization loop, running one cycle immediately
func (s *Scheduler) Start(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)

	s.wg.Add(1)
	go s.syncWorker(ctx)

	lgr.Printf("[INFO] scheduler started with default interval %v", s.defaultInterval)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// Busy reports whether a synchronization cycle is currently running
func (s *Scheduler) Busy() bool {
	return s.busy.Load()
}

// RefreshNow runs a synchronization cycle immediately, waiting for any
// in-flight cycle to finish first.
func (s *Scheduler) RefreshNow(ctx context.Context) error {
	return s.runCycle(ctx)
}

// syncWorker re-reads the configured interval after every cycle so interval
// updates take effect without a restart
func (s *Scheduler) syncWorker(ctx context.Context) {
	defer s.wg.Done()

	timer := time.NewTimer(0) // fire the first cycle immediately
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
			if err := s.runCycle(ctx); err != nil {
				lgr.Printf("[WARN] scheduled sync failed: %v", err)
			}
			timer.Reset(s.interval(ctx))
		}
	}
}

// runCycle executes one synchronization pass, skipping inactive configurations
func (s *Scheduler) runCycle(ctx context.Context) error {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	cfg, err := s.config.GetConfig(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			lgr.Printf("[WARN] no feed configuration, skipping sync")
			return err
		}
		return err
	}
	if !cfg.IsActive {
		lgr.Printf("[DEBUG] feed configuration inactive, skipping sync")
		return nil
	}

	s.busy.Store(true)
	defer s.busy.Store(false)

	started := time.Now()
	if err := s.refresher.Refresh(ctx); err != nil {
		return err
	}
	lgr.Printf("[INFO] sync cycle completed in %v", time.Since(started).Round(time.Millisecond))
	return nil
}

// interval returns the wait until the next scheduled cycle
func (s *Scheduler) interval(ctx context.Context) time.Duration {
	cfg, err := s.config.GetConfig(ctx)
	if err != nil || cfg.CheckInterval <= 0 {
		return s.defaultInterval
	}
	return time.Duration(cfg.CheckInterval) * time.Minute
}
