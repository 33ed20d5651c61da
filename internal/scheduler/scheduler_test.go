package scheduler_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homehub/internal/device"
	"homehub/internal/domain"
	"homehub/internal/scheduler"
)

func newScheduler(t *testing.T) (*scheduler.Scheduler, *device.Registry) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	registry, err := device.NewRegistry([]domain.Device{
		{ID: "fan", Kind: domain.DeviceKindFan, Room: "Bedroom"},
		{ID: "tv", Kind: domain.DeviceKindTV, Room: "Living Room"},
	}, logger)
	require.NoError(t, err)

	return scheduler.New(registry, time.UTC, logger), registry
}

func at(hhmm string) time.Time {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		panic(err)
	}
	return time.Date(2025, 6, 1, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
}

func TestScheduler_TickAppliesMatchingEntries(t *testing.T) {
	s, registry := newScheduler(t)

	s.Add(domain.ScheduleEntry{ID: "fan-1", DeviceID: "fan", Action: domain.ActionOn, Time: "22:00"})
	s.Add(domain.ScheduleEntry{ID: "tv-1", DeviceID: "tv", Action: domain.ActionOn, Time: "22:00"})

	s.Tick(at("22:00"))

	fan, _ := registry.Get("fan")
	tv, _ := registry.Get("tv")
	assert.Equal(t, domain.ActionOn, fan.Status)
	assert.Equal(t, domain.ActionOn, tv.Status)
}

func TestScheduler_TickIgnoresOtherTimes(t *testing.T) {
	s, registry := newScheduler(t)

	s.Add(domain.ScheduleEntry{ID: "fan-1", DeviceID: "fan", Action: domain.ActionOn, Time: "22:00"})

	s.Tick(at("21:59"))

	fan, _ := registry.Get("fan")
	assert.Equal(t, domain.ActionOff, fan.Status)
}

func TestScheduler_EntriesRecurDaily(t *testing.T) {
	s, registry := newScheduler(t)

	s.Add(domain.ScheduleEntry{ID: "fan-1", DeviceID: "fan", Action: domain.ActionOn, Time: "22:00"})

	s.Tick(at("22:00"))
	require.Len(t, s.List(), 1, "a fired entry stays pending")

	// the device is switched off during the day; tomorrow's tick fires again
	_, err := registry.SetStatus("fan", domain.ActionOff)
	require.NoError(t, err)

	s.Tick(at("22:00"))

	fan, _ := registry.Get("fan")
	assert.Equal(t, domain.ActionOn, fan.Status)
}

func TestScheduler_RemoveCancelsBeforeNextTick(t *testing.T) {
	s, registry := newScheduler(t)

	s.Add(domain.ScheduleEntry{ID: "fan-1", DeviceID: "fan", Action: domain.ActionOn, Time: "22:00"})

	assert.True(t, s.Remove("fan-1"))
	assert.False(t, s.Remove("fan-1"))

	s.Tick(at("22:00"))

	fan, _ := registry.Get("fan")
	assert.Equal(t, domain.ActionOff, fan.Status)
	assert.Empty(t, s.List())
}

func TestScheduler_SkipsVanishedDevice(t *testing.T) {
	s, registry := newScheduler(t)

	s.Add(domain.ScheduleEntry{ID: "ghost-1", DeviceID: "ghost", Action: domain.ActionOn, Time: "22:00"})
	s.Add(domain.ScheduleEntry{ID: "fan-1", DeviceID: "fan", Action: domain.ActionOn, Time: "22:00"})

	// the bad entry is skipped; the rest of the tick still runs
	s.Tick(at("22:00"))

	fan, _ := registry.Get("fan")
	assert.Equal(t, domain.ActionOn, fan.Status)
}

func TestScheduler_ListReturnsCreationOrder(t *testing.T) {
	s, _ := newScheduler(t)

	s.Add(domain.ScheduleEntry{ID: "a", DeviceID: "fan", Action: domain.ActionOn, Time: "08:00"})
	s.Add(domain.ScheduleEntry{ID: "b", DeviceID: "tv", Action: domain.ActionOff, Time: "09:00"})
	s.Add(domain.ScheduleEntry{ID: "c", DeviceID: "fan", Action: domain.ActionOff, Time: "10:00"})

	entries := s.List()
	require.Len(t, entries, 3)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)
	assert.Equal(t, "c", entries[2].ID)
}

func TestScheduler_TimezoneAwareTick(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	registry, err := device.NewRegistry([]domain.Device{
		{ID: "fan", Kind: domain.DeviceKindFan, Room: "Bedroom"},
	}, logger)
	require.NoError(t, err)

	est := time.FixedZone("EST", -5*60*60)
	s := scheduler.New(registry, est, logger)

	s.Add(domain.ScheduleEntry{ID: "fan-1", DeviceID: "fan", Action: domain.ActionOn, Time: "17:00"})

	// 22:00 UTC is 17:00 in the scheduler's zone
	s.Tick(time.Date(2025, 6, 1, 22, 0, 0, 0, time.UTC))

	fan, _ := registry.Get("fan")
	assert.Equal(t, domain.ActionOn, fan.Status)
}
