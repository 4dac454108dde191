package handlers

import (
	"net/http"

	"github.com/elysianestates/crm-api/internal/session"
	"github.com/elysianestates/crm-api/internal/usecase"
)

type DashboardHandler struct {
	LeadRepo usecase.LeadRepositoryInterface
	Session  *session.Session
}

func NewDashboardHandler(leadRepo usecase.LeadRepositoryInterface, sess *session.Session) *DashboardHandler {
	return &DashboardHandler{LeadRepo: leadRepo, Session: sess}
}

// Handle recomputes the pipeline aggregates from the current lead collection
// on every call; nothing is cached, so the numbers can never go stale.
func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	leads, err := h.LeadRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	metrics := usecase.ComputePipelineMetrics(leads)

	role := h.Session.CurrentUser().Role
	for i, lead := range metrics.ClosedSales {
		metrics.ClosedSales[i] = redactLead(lead, role)
	}

	writeJSON(w, http.StatusOK, metrics)
}
