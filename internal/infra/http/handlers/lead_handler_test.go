package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elysianestates/crm-api/internal/entity"
	"github.com/elysianestates/crm-api/internal/infra/http/handlers"
	"github.com/elysianestates/crm-api/internal/infra/memory"
	"github.com/elysianestates/crm-api/internal/session"
	"github.com/elysianestates/crm-api/internal/usecase"
)

type leadFixture struct {
	router  *chi.Mux
	session *session.Session
	repo    *memory.LeadRepository
}

func newLeadFixture(t *testing.T) *leadFixture {
	t.Helper()

	repo := memory.NewLeadRepository(memory.SeedLeads())
	activityRepo := memory.NewActivityRepository()
	sess := session.New()

	handler := handlers.NewLeadHandler(
		repo,
		activityRepo,
		usecase.NewUpdateLeadStatusUseCase(repo),
		usecase.NewCreateLeadUseCase(repo),
		sess,
	)

	router := chi.NewRouter()
	router.Get("/api/leads", handler.HandleList)
	router.Post("/api/leads", handler.HandleCreate)
	router.Get("/api/leads/{id}", handler.HandleGet)
	router.Post("/api/leads/{id}/select", handler.HandleSelect)
	router.Post("/api/leads/{id}/advance", handler.HandleAdvance)
	router.Put("/api/leads/{id}/status", handler.HandleSetStatus)
	router.Get("/api/leads/{id}/activities", handler.HandleActivities)

	return &leadFixture{router: router, session: sess, repo: repo}
}

func (f *leadFixture) do(method, path string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestLeadListRedactsNetWorthForMarketing(t *testing.T) {
	f := newLeadFixture(t)

	_, err := f.session.SwitchRole(entity.RoleMarketing)
	require.NoError(t, err)

	rec := f.do(http.MethodGet, "/api/leads", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var leads []entity.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	require.NotEmpty(t, leads)
	for _, lead := range leads {
		assert.Equal(t, handlers.RedactedNetWorth, lead.NetWorth)
	}
}

func TestLeadListShowsNetWorthForAdmin(t *testing.T) {
	f := newLeadFixture(t)

	rec := f.do(http.MethodGet, "/api/leads", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var leads []entity.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &leads))
	require.NotEmpty(t, leads)
	assert.NotEqual(t, handlers.RedactedNetWorth, leads[0].NetWorth)
}

func TestLeadAdvanceForbiddenForMarketing(t *testing.T) {
	f := newLeadFixture(t)

	_, err := f.session.SwitchRole(entity.RoleMarketing)
	require.NoError(t, err)

	rec := f.do(http.MethodPost, "/api/leads/L2/advance", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// The lead did not move.
	lead, err := f.repo.FindByID(context.Background(), "L2")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusQualified, lead.Status)
}

func TestLeadAdvancePromotesForAdmin(t *testing.T) {
	f := newLeadFixture(t)

	rec := f.do(http.MethodPost, "/api/leads/L2/advance", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool         `json:"success"`
		Lead    *entity.Lead `json:"lead"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.NotNil(t, body.Lead)
	assert.Equal(t, entity.StatusSiteVisit, body.Lead.Status)
}

func TestLeadAdvanceUnknownIDReportsSuccessWithoutLead(t *testing.T) {
	f := newLeadFixture(t)

	rec := f.do(http.MethodPost, "/api/leads/ghost/advance", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool         `json:"success"`
		Lead    *entity.Lead `json:"lead"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Nil(t, body.Lead)
}

func TestLeadSetStatusAppliesClosingDefaults(t *testing.T) {
	f := newLeadFixture(t)

	payload, _ := json.Marshal(map[string]string{"status": string(entity.StatusClosed)})
	rec := f.do(http.MethodPut, "/api/leads/L4/status", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Lead *entity.Lead `json:"lead"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Lead)
	assert.Equal(t, entity.StatusClosed, body.Lead.Status)
	require.NotNil(t, body.Lead.Probability)
	assert.Equal(t, 100, *body.Lead.Probability)
	require.NotNil(t, body.Lead.DealValue)
	assert.Equal(t, float64(usecase.DefaultDealValue), *body.Lead.DealValue)
}

func TestLeadSetStatusRejectsUnknownStage(t *testing.T) {
	f := newLeadFixture(t)

	payload, _ := json.Marshal(map[string]string{"status": "Teleported"})
	rec := f.do(http.MethodPut, "/api/leads/L1/status", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadSelectSetsSessionAndClearsBuffers(t *testing.T) {
	f := newLeadFixture(t)

	f.session.SelectLead("L1")
	f.session.ApplyInsight("L1", "old analysis")

	rec := f.do(http.MethodPost, "/api/leads/L3/select", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	snap := f.session.Snapshot()
	assert.Equal(t, "L3", snap.SelectedLeadID)
	assert.Equal(t, session.ViewLeads, snap.ActiveView)
	assert.Empty(t, snap.Insight)
}

func TestLeadSelectUnknownIDIs404(t *testing.T) {
	f := newLeadFixture(t)
	rec := f.do(http.MethodPost, "/api/leads/ghost/select", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadCreateRoundTrip(t *testing.T) {
	f := newLeadFixture(t)

	payload, _ := json.Marshal(map[string]any{
		"name":  "Dev Oberoi",
		"email": "dev.oberoi@example.com",
	})
	rec := f.do(http.MethodPost, "/api/leads", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	var lead entity.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.NotEmpty(t, lead.ID)
	assert.Equal(t, entity.StatusProspect, lead.Status)
}

func TestLeadCreateValidationFailureIs400(t *testing.T) {
	f := newLeadFixture(t)

	payload, _ := json.Marshal(map[string]any{"email": "dev.oberoi@example.com"})
	rec := f.do(http.MethodPost, "/api/leads", payload)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
