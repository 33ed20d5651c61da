// Package application exposes the transport-agnostic operations of the hub:
// device listing and toggling, free-text command interpretation, and
// schedule management. The HTTP layer is a thin adapter over this service.
package application

import (
	"fmt"
	"log/slog"
	"time"

	"homehub/internal/conversation"
	"homehub/internal/device"
	"homehub/internal/domain"
	"homehub/internal/interpreter"
	"homehub/internal/scheduler"
)

type Service struct {
	registry  *device.Registry
	history   *conversation.Log
	scheduler *scheduler.Scheduler
	interp    *interpreter.Interpreter
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(
	registry *device.Registry,
	history *conversation.Log,
	sched *scheduler.Scheduler,
	interp *interpreter.Interpreter,
	logger *slog.Logger,
) *Service {
	return &Service{
		registry:  registry,
		history:   history,
		scheduler: sched,
		interp:    interp,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *Service) ListDevices() []domain.Device {
	return s.registry.List()
}

func (s *Service) GetDevice(id string) (domain.Device, error) {
	return s.registry.Get(id)
}

func (s *Service) ToggleDevice(id string) (domain.Device, error) {
	dev, err := s.registry.Toggle(id)
	if err != nil {
		return domain.Device{}, err
	}
	s.logger.Info("toggled device", "device", id, "status", dev.Status)
	return dev, nil
}

func (s *Service) InterpretCommand(text, userID string) interpreter.Result {
	return s.interp.Interpret(text, userID)
}

// CreateSchedule registers a daily recurring trigger. The time must already
// be in canonical zero-padded 24-hour "HH:MM" form; spoken expressions go
// through the interpreter instead.
func (s *Service) CreateSchedule(deviceID, action, at string) (domain.ScheduleEntry, error) {
	act, err := domain.ParseAction(action)
	if err != nil {
		return domain.ScheduleEntry{}, err
	}
	if !interpreter.ValidWallClock(at) {
		return domain.ScheduleEntry{}, fmt.Errorf("%w: %q", domain.ErrInvalidTime, at)
	}
	if _, err := s.registry.Get(deviceID); err != nil {
		return domain.ScheduleEntry{}, err
	}

	entry := domain.ScheduleEntry{
		ID:       domain.NewScheduleID(deviceID, s.now()),
		DeviceID: deviceID,
		Action:   act,
		Time:     at,
	}
	s.scheduler.Add(entry)
	s.logger.Info("created schedule", "id", entry.ID, "device", deviceID, "action", act, "time", at)

	return entry, nil
}

func (s *Service) ListSchedules() []domain.ScheduleEntry {
	return s.scheduler.List()
}

func (s *Service) CancelSchedule(id string) bool {
	found := s.scheduler.Remove(id)
	if found {
		s.logger.Info("cancelled schedule", "id", id)
	}
	return found
}

// History returns a user's conversation log, oldest first.
func (s *Service) History(userID string) []domain.ConversationTurn {
	return s.history.Turns(userID)
}
