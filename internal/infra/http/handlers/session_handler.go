package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/elysianestates/crm-api/internal/entity"
	"github.com/elysianestates/crm-api/internal/session"
)

type SessionHandler struct {
	Session *session.Session
}

func NewSessionHandler(sess *session.Session) *SessionHandler {
	return &SessionHandler{Session: sess}
}

func (h *SessionHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Session.Snapshot())
}

type switchRoleRequest struct {
	Role entity.Role `json:"role"`
}

// HandleSwitchRole swaps the operator identity. If the active view is not
// permitted for the new role the session redirects it to the default view.
func (h *SessionHandler) HandleSwitchRole(w http.ResponseWriter, r *http.Request) {
	var req switchRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}

	if _, err := h.Session.SwitchRole(req.Role); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, h.Session.Snapshot())
}

type setViewRequest struct {
	View session.View `json:"view"`
}

func (h *SessionHandler) HandleSetView(w http.ResponseWriter, r *http.Request) {
	var req setViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}

	if err := h.Session.SetActiveView(req.View); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, session.ErrViewForbidden) {
			status = http.StatusForbidden
		}
		writeJSON(w, status, errorResponse{Message: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, h.Session.Snapshot())
}
