package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/elysianestates/crm-api/internal/usecase"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps usecase errors onto HTTP statuses. Anything unrecognized is
// a 500.
func writeError(w http.ResponseWriter, err error) {
	if domainErr, ok := err.(*usecase.DomainError); ok {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case usecase.CodeLeadNotFound:
			status = http.StatusNotFound
		case usecase.CodeAIBusy:
			status = http.StatusConflict
		case usecase.CodeForbidden:
			status = http.StatusForbidden
		}
		writeJSON(w, status, errorResponse{Code: domainErr.Code, Message: domainErr.Message})
		return
	}

	if technicalErr, ok := err.(*usecase.TechnicalError); ok {
		status := http.StatusInternalServerError
		if technicalErr.Code == usecase.CodeQueueDown {
			status = http.StatusServiceUnavailable
		}
		writeJSON(w, status, errorResponse{Code: technicalErr.Code, Message: technicalErr.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorResponse{Message: err.Error()})
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return r.RemoteAddr
}
