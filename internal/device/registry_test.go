package device_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"homehub/internal/device"
	"homehub/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seed() []domain.Device {
	return []domain.Device{
		{ID: "fan", Kind: domain.DeviceKindFan, Room: "Bedroom"},
		{ID: "tv", Kind: domain.DeviceKindTV, Room: "Living Room"},
		{ID: "lock", Kind: domain.DeviceKindLock, Room: "Entrance", Status: domain.ActionOn},
	}
}

func TestNewRegistry_RejectsDuplicateIDs(t *testing.T) {
	_, err := device.NewRegistry([]domain.Device{
		{ID: "light", Room: "Living Room"},
		{ID: "light", Room: "Bedroom"},
	}, discardLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate device id")
}

func TestRegistry_ListPreservesSeedOrder(t *testing.T) {
	r, err := device.NewRegistry(seed(), discardLogger())
	require.NoError(t, err)

	assert.Equal(t, []string{"fan", "tv", "lock"}, r.IDs())

	devices := r.List()
	require.Len(t, devices, 3)
	assert.Equal(t, "fan", devices[0].ID)
	assert.Equal(t, domain.ActionOff, devices[0].Status) // empty status defaults to off
	assert.Equal(t, domain.ActionOn, devices[2].Status)
}

func TestRegistry_SetStatus(t *testing.T) {
	r, err := device.NewRegistry(seed(), discardLogger())
	require.NoError(t, err)

	dev, err := r.SetStatus("fan", domain.ActionOn)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionOn, dev.Status)

	dev, err = r.Get("fan")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionOn, dev.Status)

	_, err = r.SetStatus("fridge", domain.ActionOn)
	assert.True(t, errors.Is(err, domain.ErrDeviceNotFound))
}

func TestRegistry_TogglePairIsIdempotent(t *testing.T) {
	r, err := device.NewRegistry(seed(), discardLogger())
	require.NoError(t, err)

	for _, id := range r.IDs() {
		before, err := r.Get(id)
		require.NoError(t, err)

		mid, err := r.Toggle(id)
		require.NoError(t, err)
		assert.Equal(t, before.Status.Opposite(), mid.Status)

		after, err := r.Toggle(id)
		require.NoError(t, err)
		assert.Equal(t, before.Status, after.Status)
	}
}

func TestRegistry_ToggleNotFound(t *testing.T) {
	r, err := device.NewRegistry(seed(), discardLogger())
	require.NoError(t, err)

	_, err = r.Toggle("fridge")
	assert.True(t, errors.Is(err, domain.ErrDeviceNotFound))
}

func TestRegistry_ListReturnsCopies(t *testing.T) {
	r, err := device.NewRegistry(seed(), discardLogger())
	require.NoError(t, err)

	devices := r.List()
	devices[0].Status = domain.ActionOn

	dev, err := r.Get("fan")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionOff, dev.Status)
}
