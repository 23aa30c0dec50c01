package scheduler

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/capitals-weather/internal/capitals"
	"github.com/i474232898/capitals-weather/internal/logger"
)

// Source yields the two reference tables and reports whether they changed
// since they were last loaded.
type Source interface {
	Load() ([]capitals.CityRecord, []capitals.CapitalRecord, error)
	Changed() (bool, error)
}

// Reloader receives freshly loaded tables.
type Reloader interface {
	Reload(cities []capitals.CityRecord, caps []capitals.CapitalRecord) *capitals.Dataset
}

// Scheduler periodically rebuilds the capitals dataset when its source tables change.
type Scheduler struct {
	scheduler *gocron.Scheduler
	source    Source
	target    Reloader
	interval  time.Duration
}

// New creates a new Scheduler.
func New(source Source, target Reloader, interval time.Duration) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		source:    source,
		target:    target,
		interval:  interval,
	}
}

// Start schedules the reload check and starts the underlying scheduler.
// A non-positive interval disables reloading.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		logger.Info("scheduler: reload interval not set; tables are loaded once")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).WaitForSchedule().SingletonMode().Do(func() {
		if _, err := s.RunOnce(); err != nil {
			logger.Error(fmt.Errorf("scheduler: reload failed: %w", err))
		}
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// RunOnce reloads the tables if they changed. It reports whether a reload happened.
// On a load error the current dataset is kept.
func (s *Scheduler) RunOnce() (bool, error) {
	changed, err := s.source.Changed()
	if err != nil {
		return false, fmt.Errorf("check source tables: %w", err)
	}
	if !changed {
		return false, nil
	}

	cities, caps, err := s.source.Load()
	if err != nil {
		return false, fmt.Errorf("load source tables: %w", err)
	}

	s.target.Reload(cities, caps)
	return true, nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
