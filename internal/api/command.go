package api

import (
	"encoding/json"
	"net/http"

	"homehub/internal/domain"
)

type commandRequest struct {
	Command string `json:"command"`
	UserID  string `json:"userId"`
}

type commandResponse struct {
	Message    string            `json:"message"`
	Intent     domain.IntentKind `json:"intent"`
	DeviceID   string            `json:"deviceId,omitempty"`
	Status     domain.Action     `json:"status,omitempty"`
	Time       string            `json:"time,omitempty"`
	ScheduleID string            `json:"scheduleId,omitempty"`
}

// handleCommand runs one free-text command through the interpreter. A
// command that failed to resolve to a device action — unrecognized or
// answered with a "did you mean" suggestion — is a client error; help is a
// successful informational reply.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.Command == "" {
		writeBadRequest(w, "command is required")
		return
	}

	result := s.svc.InterpretCommand(req.Command, req.UserID)

	resp := commandResponse{
		Message: result.Message,
		Intent:  result.Intent.Kind,
	}

	switch result.Intent.Kind {
	case domain.IntentImmediate:
		resp.DeviceID = result.Intent.DeviceID
		resp.Status = result.Intent.Action
	case domain.IntentDeferred:
		resp.DeviceID = result.Intent.DeviceID
		resp.Status = result.Intent.Action
		resp.Time = result.Intent.Time
		resp.ScheduleID = result.Intent.ScheduleID
	case domain.IntentClarify:
		resp.DeviceID = result.Intent.Suggestion
		writeJSON(w, http.StatusBadRequest, resp)
		return
	case domain.IntentUnrecognized:
		writeJSON(w, http.StatusBadRequest, resp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
