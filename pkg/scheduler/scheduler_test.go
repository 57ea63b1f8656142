package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chernika535/Zen-RSS-pro/pkg/domain"
	"github.com/Chernika535/Zen-RSS-pro/pkg/repository"
	"github.com/Chernika535/Zen-RSS-pro/pkg/scheduler/mocks"
)

func activeConfig() *domain.FeedConfig {
	return &domain.FeedConfig{
		ID:            "cfg1",
		SourceURL:     "https://source.example.com/rss",
		CheckInterval: 30,
		IsActive:      true,
	}
}

func TestScheduler_StartRunsInitialCycle(t *testing.T) {
	done := make(chan struct{})
	refresher := &mocks.RefresherMock{
		RefreshFunc: func(ctx context.Context) error {
			close(done)
			return nil
		},
	}
	config := &mocks.ConfigReaderMock{
		GetConfigFunc: func(ctx context.Context) (*domain.FeedConfig, error) {
			return activeConfig(), nil
		},
	}

	s := NewScheduler(refresher, config, time.Hour)
	s.Start(context.Background())
	defer s.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("initial sync cycle never ran")
	}
}

func TestScheduler_RefreshNow(t *testing.T) {
	t.Run("runs a cycle on demand", func(t *testing.T) {
		refresher := &mocks.RefresherMock{
			RefreshFunc: func(ctx context.Context) error { return nil },
		}
		config := &mocks.ConfigReaderMock{
			GetConfigFunc: func(ctx context.Context) (*domain.FeedConfig, error) {
				return activeConfig(), nil
			},
		}

		s := NewScheduler(refresher, config, time.Hour)
		require.NoError(t, s.RefreshNow(context.Background()))
		assert.Len(t, refresher.RefreshCalls(), 1)
	})

	t.Run("missing configuration", func(t *testing.T) {
		refresher := &mocks.RefresherMock{}
		config := &mocks.ConfigReaderMock{
			GetConfigFunc: func(ctx context.Context) (*domain.FeedConfig, error) {
				return nil, repository.ErrNotFound
			},
		}

		s := NewScheduler(refresher, config, time.Hour)
		err := s.RefreshNow(context.Background())
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Empty(t, refresher.RefreshCalls())
	})

	t.Run("inactive configuration skips without error", func(t *testing.T) {
		refresher := &mocks.RefresherMock{}
		cfg := activeConfig()
		cfg.IsActive = false
		config := &mocks.ConfigReaderMock{
			GetConfigFunc: func(ctx context.Context) (*domain.FeedConfig, error) {
				return cfg, nil
			},
		}

		s := NewScheduler(refresher, config, time.Hour)
		require.NoError(t, s.RefreshNow(context.Background()))
		assert.Empty(t, refresher.RefreshCalls())
	})

	t.Run("refresher failure propagated", func(t *testing.T) {
		boom := errors.New("fetch failed")
		refresher := &mocks.RefresherMock{
			RefreshFunc: func(ctx context.Context) error { return boom },
		}
		config := &mocks.ConfigReaderMock{
			GetConfigFunc: func(ctx context.Context) (*domain.FeedConfig, error) {
				return activeConfig(), nil
			},
		}

		s := NewScheduler(refresher, config, time.Hour)
		assert.ErrorIs(t, s.RefreshNow(context.Background()), boom)
	})
}

func TestScheduler_CyclesNeverOverlap(t *testing.T) {
	var mu sync.Mutex
	running := 0
	maxRunning := 0

	refresher := &mocks.RefresherMock{
		RefreshFunc: func(ctx context.Context) error {
			mu.Lock()
			running++
			if running > maxRunning {
				maxRunning = running
			}
			mu.Unlock()

			time.Sleep(20 * time.Millisecond)

			mu.Lock()
			running--
			mu.Unlock()
			return nil
		},
	}
	config := &mocks.ConfigReaderMock{
		GetConfigFunc: func(ctx context.Context) (*domain.FeedConfig, error) {
			return activeConfig(), nil
		},
	}

	s := NewScheduler(refresher, config, time.Hour)
	s.Start(context.Background())

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.RefreshNow(context.Background())
		}()
	}
	wg.Wait()
	s.Stop()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, maxRunning, "cycles must be serialized")
	assert.GreaterOrEqual(t, len(refresher.RefreshCalls()), 5)
}

func TestScheduler_Busy(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	refresher := &mocks.RefresherMock{
		RefreshFunc: func(ctx context.Context) error {
			close(started)
			<-release
			return nil
		},
	}
	config := &mocks.ConfigReaderMock{
		GetConfigFunc: func(ctx context.Context) (*domain.FeedConfig, error) {
			return activeConfig(), nil
		},
	}

	s := NewScheduler(refresher, config, time.Hour)
	assert.False(t, s.Busy())

	go func() { _ = s.RefreshNow(context.Background()) }()

	<-started
	assert.True(t, s.Busy())

	close(release)
	assert.Eventually(t, func() bool { return !s.Busy() }, time.Second, 10*time.Millisecond)
}

func TestScheduler_StopWaitsForWorker(t *testing.T) {
	refresher := &mocks.RefresherMock{
		RefreshFunc: func(ctx context.Context) error { return nil },
	}
	config := &mocks.ConfigReaderMock{
		GetConfigFunc: func(ctx context.Context) (*domain.FeedConfig, error) {
			return activeConfig(), nil
		},
	}

	s := NewScheduler(refresher, config, time.Hour)
	s.Start(context.Background())

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestScheduler_DefaultInterval(t *testing.T) {
	config := &mocks.ConfigReaderMock{
		GetConfigFunc: func(ctx context.Context) (*domain.FeedConfig, error) {
			return nil, repository.ErrNotFound
		},
	}

	s := NewScheduler(&mocks.RefresherMock{}, config, 0)
	assert.Equal(t, 30*time.Minute, s.interval(context.Background()))

	cfg := activeConfig()
	cfg.CheckInterval = 5
	config.GetConfigFunc = func(ctx context.Context) (*domain.FeedConfig, error) { return cfg, nil }
	assert.Equal(t, 5*time.Minute, s.interval(context.Background()))
}
