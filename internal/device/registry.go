package device

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"homehub/internal/domain"
)

// Registry holds the mutable state of every known device. Devices are fixed
// at construction: ids are unique and live for the whole process, only the
// on/off status changes. Iteration order is the seed order, which the
// interpreter relies on for first-match semantics.
type Registry struct {
	logger *slog.Logger

	mu    sync.RWMutex
	order []string
	byID  map[string]*domain.Device
}

func NewRegistry(devices []domain.Device, logger *slog.Logger) (*Registry, error) {
	r := &Registry{
		logger: logger,
		byID:   make(map[string]*domain.Device, len(devices)),
	}

	for i := range devices {
		d := devices[i]
		if d.ID == "" {
			return nil, fmt.Errorf("device %d: empty id", i)
		}
		if _, exists := r.byID[d.ID]; exists {
			return nil, fmt.Errorf("duplicate device id %q", d.ID)
		}
		if d.Status == "" {
			d.Status = domain.ActionOff
		}
		r.order = append(r.order, d.ID)
		r.byID[d.ID] = &d
	}

	logger.Info("device registry ready", "devices", len(r.order))

	return r, nil
}

// List returns every device in seed order.
func (r *Registry) List() []domain.Device {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domain.Device, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, *r.byID[id])
	}
	return result
}

// IDs returns the device ids in seed order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, len(r.order))
	copy(result, r.order)
	return result
}

func (r *Registry) Get(id string) (domain.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.byID[id]
	if !ok {
		return domain.Device{}, fmt.Errorf("%w: %q", domain.ErrDeviceNotFound, id)
	}
	return *d, nil
}

// SetStatus applies an on/off action and returns the updated device.
func (r *Registry) SetStatus(id string, action domain.Action) (domain.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[id]
	if !ok {
		return domain.Device{}, fmt.Errorf("%w: %q", domain.ErrDeviceNotFound, id)
	}
	d.Status = action
	return *d, nil
}

// Toggle flips the device's current status and returns the updated device.
func (r *Registry) Toggle(id string) (domain.Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[id]
	if !ok {
		return domain.Device{}, fmt.Errorf("%w: %q", domain.ErrDeviceNotFound, id)
	}
	d.Status = d.Status.Opposite()
	return *d, nil
}

// Summary renders a one-line inventory for the help response.
func (r *Registry) Summary() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sb strings.Builder
	for i, id := range r.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(fmt.Sprintf("%s is currently %s", id, r.byID[id].Status))
	}
	return sb.String()
}
