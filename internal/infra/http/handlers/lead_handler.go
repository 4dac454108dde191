package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/elysianestates/crm-api/internal/entity"
	"github.com/elysianestates/crm-api/internal/infra/http/middleware"
	"github.com/elysianestates/crm-api/internal/session"
	"github.com/elysianestates/crm-api/internal/usecase"
)

// RedactedNetWorth replaces financial backing for non-admin operators. This
// is a display policy, not an access-control mechanism; the data stays in
// memory and a real trust boundary would live behind the data fetch.
const RedactedNetWorth = "Confidential"

type LeadHandler struct {
	LeadRepo     usecase.LeadRepositoryInterface
	ActivityRepo usecase.ActivityRepositoryInterface
	StatusUC     *usecase.UpdateLeadStatusUseCase
	CreateUC     *usecase.CreateLeadUseCase
	Session      *session.Session
}

func NewLeadHandler(
	leadRepo usecase.LeadRepositoryInterface,
	activityRepo usecase.ActivityRepositoryInterface,
	statusUC *usecase.UpdateLeadStatusUseCase,
	createUC *usecase.CreateLeadUseCase,
	sess *session.Session,
) *LeadHandler {
	return &LeadHandler{
		LeadRepo:     leadRepo,
		ActivityRepo: activityRepo,
		StatusUC:     statusUC,
		CreateUC:     createUC,
		Session:      sess,
	}
}

func redactLead(lead *entity.Lead, role entity.Role) *entity.Lead {
	if role == entity.RoleAdmin {
		return lead
	}
	redacted := *lead
	redacted.NetWorth = RedactedNetWorth
	return &redacted
}

func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	leads, err := h.LeadRepo.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	role := h.Session.CurrentUser().Role
	out := make([]*entity.Lead, 0, len(leads))
	for _, lead := range leads {
		out = append(out, redactLead(lead, role))
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *LeadHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	lead, err := h.LeadRepo.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "lead not found"})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, redactLead(lead, h.Session.CurrentUser().Role))
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, lead)
}

// HandleSelect switches the console to a lead's dossier and clears the AI
// buffers held for the previous selection.
func (h *LeadHandler) HandleSelect(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	lead, err := h.LeadRepo.FindByID(r.Context(), leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Message: "lead not found"})
			return
		}
		writeError(w, err)
		return
	}

	h.Session.SelectLead(lead.ID)
	writeJSON(w, http.StatusOK, h.Session.Snapshot())
}

type leadMutationResponse struct {
	Success bool         `json:"success"`
	Lead    *entity.Lead `json:"lead,omitempty"`
}

// HandleAdvance promotes a lead one stage. Admin only; an unknown id is a
// silent no-op per the console contract.
func (h *LeadHandler) HandleAdvance(w http.ResponseWriter, r *http.Request) {
	user := h.Session.CurrentUser()
	if user.Role != entity.RoleAdmin {
		writeError(w, &usecase.DomainError{Code: usecase.CodeForbidden, Message: "promotion is an admin action"})
		return
	}

	lead, err := h.StatusUC.AdvanceStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	if lead != nil {
		middleware.RecordLeadPromotion(string(lead.Status))
		if lead.Status == entity.StatusClosed {
			middleware.RecordDealClosed()
		}
		lead = redactLead(lead, user.Role)
	}

	writeJSON(w, http.StatusOK, leadMutationResponse{Success: true, Lead: lead})
}

type setStatusRequest struct {
	Status entity.LeadStatus `json:"status"`
}

func (h *LeadHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}

	lead, err := h.StatusUC.SetStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	if lead != nil && lead.Status == entity.StatusClosed {
		middleware.RecordDealClosed()
	}
	if lead != nil {
		lead = redactLead(lead, h.Session.CurrentUser().Role)
	}

	writeJSON(w, http.StatusOK, leadMutationResponse{Success: true, Lead: lead})
}

func (h *LeadHandler) HandleActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := h.ActivityRepo.FindByLeadID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}
