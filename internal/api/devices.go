package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"homehub/internal/domain"
)

// handleListDevices returns every device keyed by id.
func (s *Server) handleListDevices(w http.ResponseWriter, _ *http.Request) {
	devices := s.svc.ListDevices()

	byID := make(map[string]domain.Device, len(devices))
	for _, d := range devices {
		byID[d.ID] = d
	}

	writeJSON(w, http.StatusOK, byID)
}

// handleToggleDevice flips a device between on and off.
func (s *Server) handleToggleDevice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "deviceID")

	dev, err := s.svc.ToggleDevice(id)
	if err != nil {
		if errors.Is(err, domain.ErrDeviceNotFound) {
			writeNotFound(w, "Device not found")
			return
		}
		writeInternalError(w, "failed to toggle device")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("%s turned %s", dev.ID, dev.Status),
		"status":  dev.Status,
	})
}
