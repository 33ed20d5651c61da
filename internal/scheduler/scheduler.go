// Package scheduler fires device-state changes at wall-clock times. Entries
// are daily recurring: a schedule for 22:00 fires every evening until it is
// cancelled. Evaluation runs at minute granularity on a cron tick.
package scheduler

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"homehub/internal/device"
	"homehub/internal/domain"
)

type Scheduler struct {
	registry *device.Registry
	logger   *slog.Logger
	loc      *time.Location
	cron     *cron.Cron

	mu      sync.Mutex
	entries []domain.ScheduleEntry
}

func New(registry *device.Registry, loc *time.Location, logger *slog.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		registry: registry,
		logger:   logger,
		loc:      loc,
		cron:     cron.New(cron.WithLocation(loc)),
	}
}

// Start registers the every-minute tick and launches the cron runner.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc("* * * * *", func() {
		s.Tick(time.Now())
	})
	if err != nil {
		return fmt.Errorf("registering tick job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("scheduler started", "timezone", s.loc.String())
	return nil
}

// Stop halts the cron runner and waits for an in-flight tick to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) Add(entry domain.ScheduleEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// Remove cancels an entry. Removal takes effect before the next tick: entry
// mutation and tick evaluation share one lock, so a removed entry can never
// fire afterwards.
func (s *Scheduler) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for idx, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:idx], s.entries[idx+1:]...)
			return true
		}
	}
	return false
}

// List returns the pending entries in creation order.
func (s *Scheduler) List() []domain.ScheduleEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]domain.ScheduleEntry, len(s.entries))
	copy(result, s.entries)
	return result
}

// Tick applies every entry whose time equals the given instant's wall-clock
// minute. Matching entries stay pending afterwards; recurrence is the
// contract, not an accident. A missing device is logged and skipped so one
// bad entry never stops the rest, and never crashes the timer loop.
func (s *Scheduler) Tick(now time.Time) {
	hhmm := now.In(s.loc).Format("15:04")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.entries {
		if e.Time != hhmm {
			continue
		}
		if _, err := s.registry.SetStatus(e.DeviceID, e.Action); err != nil {
			s.logger.Warn("skipping schedule entry",
				"id", e.ID,
				"device", e.DeviceID,
				"error", err,
			)
			continue
		}
		s.logger.Info("applied scheduled action",
			"id", e.ID,
			"device", e.DeviceID,
			"action", e.Action,
			"time", e.Time,
		)
	}
}
