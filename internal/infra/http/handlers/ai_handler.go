package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/elysianestates/crm-api/internal/entity"
	"github.com/elysianestates/crm-api/internal/infra/http/middleware"
	"github.com/elysianestates/crm-api/internal/infra/render"
	"github.com/elysianestates/crm-api/internal/session"
	"github.com/elysianestates/crm-api/internal/usecase"
)

type AIHandler struct {
	InsightUC  *usecase.LeadInsightUseCase
	OutreachUC *usecase.OutreachDraftUseCase
	SendUC     *usecase.SendOutreachUseCase
	Session    *session.Session

	rateLimiter *RateLimiter
}

func NewAIHandler(
	insightUC *usecase.LeadInsightUseCase,
	outreachUC *usecase.OutreachDraftUseCase,
	sendUC *usecase.SendOutreachUseCase,
	sess *session.Session,
) *AIHandler {
	return &AIHandler{
		InsightUC:   insightUC,
		OutreachUC:  outreachUC,
		SendUC:      sendUC,
		Session:     sess,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 completions/min per IP
	}
}

type insightResponse struct {
	LeadID      string `json:"lead_id"`
	Insight     string `json:"insight"`
	InsightHTML string `json:"insight_html,omitempty"`
}

// HandleInsight runs the deep-analysis action. Admin only.
func (h *AIHandler) HandleInsight(w http.ResponseWriter, r *http.Request) {
	if h.Session.CurrentUser().Role != entity.RoleAdmin {
		writeError(w, &usecase.DomainError{Code: usecase.CodeForbidden, Message: "deep analysis is an admin action"})
		return
	}

	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Message: "too many AI requests, slow down"})
		return
	}

	leadID := chi.URLParam(r, "id")

	text, err := h.InsightUC.Execute(r.Context(), leadID)
	if err != nil {
		middleware.RecordAIRequest("insight", "rejected")
		writeError(w, err)
		return
	}

	status := "ok"
	if text == usecase.InsightFallback {
		status = "fallback"
		middleware.RecordIntegrationError("claude")
	}
	middleware.RecordAIRequest("insight", status)

	html, err := render.MarkdownToHTML(text)
	if err != nil {
		// Raw markdown is still usable; rendering is best effort.
		log.Printf("⚠️ insight markdown render failed: %v", err)
	}

	writeJSON(w, http.StatusOK, insightResponse{LeadID: leadID, Insight: text, InsightHTML: html})
}

type outreachRequest struct {
	PropertyID string `json:"property_id"`
}

type outreachResponse struct {
	LeadID string `json:"lead_id"`
	Draft  string `json:"draft"`
}

// HandleOutreachDraft drafts an outreach email. Available to both roles; the
// prompt framing follows the operator's role.
func (h *AIHandler) HandleOutreachDraft(w http.ResponseWriter, r *http.Request) {
	if !h.rateLimiter.Allow(getClientIP(r)) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{Message: "too many AI requests, slow down"})
		return
	}

	var req outreachRequest
	if r.Body != nil {
		// Body is optional; an empty request highlights the default property.
		json.NewDecoder(r.Body).Decode(&req)
	}

	leadID := chi.URLParam(r, "id")
	role := h.Session.CurrentUser().Role

	draft, err := h.OutreachUC.Execute(r.Context(), leadID, req.PropertyID, role)
	if err != nil {
		middleware.RecordAIRequest("outreach", "rejected")
		writeError(w, err)
		return
	}

	status := "ok"
	if draft == usecase.OutreachFallback {
		status = "fallback"
		middleware.RecordIntegrationError("claude")
	}
	middleware.RecordAIRequest("outreach", status)

	writeJSON(w, http.StatusOK, outreachResponse{LeadID: leadID, Draft: draft})
}

// HandleOutreachSend queues an approved draft for SMTP delivery. An empty
// body falls back to the session's buffered draft for this lead.
func (h *AIHandler) HandleOutreachSend(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendOutreachInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid JSON"})
		return
	}

	input.LeadID = chi.URLParam(r, "id")
	if input.Body == "" {
		input.Body = h.Session.OutreachDraft(input.LeadID)
	}

	if err := h.SendUC.Execute(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordOutreachPublished()
	writeJSON(w, http.StatusAccepted, map[string]bool{"success": true})
}
