package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"homehub/internal/domain"
)

type scheduleRequest struct {
	Device string `json:"device"`
	Action string `json:"action"`
	Time   string `json:"time"`
}

// handleCreateSchedule registers a daily recurring trigger for a device.
func (s *Server) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	entry, err := s.svc.CreateSchedule(req.Device, req.Action, req.Time)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDeviceNotFound):
			writeNotFound(w, "Device not found")
		case errors.Is(err, domain.ErrInvalidAction):
			writeBadRequest(w, "Invalid action")
		case errors.Is(err, domain.ErrInvalidTime):
			writeBadRequest(w, "Invalid time, expected HH:MM")
		default:
			writeInternalError(w, "failed to create schedule")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Scheduled to turn %s the %s at %s", entry.Action, entry.DeviceID, entry.Time),
		"id":      entry.ID,
	})
}

// handleListSchedules returns pending entries in creation order.
func (s *Server) handleListSchedules(w http.ResponseWriter, _ *http.Request) {
	entries := s.svc.ListSchedules()
	writeJSON(w, http.StatusOK, map[string]any{
		"schedules": entries,
		"count":     len(entries),
	})
}

// handleCancelSchedule removes a pending entry.
func (s *Server) handleCancelSchedule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "scheduleID")

	if !s.svc.CancelSchedule(id) {
		writeNotFound(w, "Schedule not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
