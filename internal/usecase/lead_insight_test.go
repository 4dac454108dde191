package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elysianestates/crm-api/internal/entity"
	"github.com/elysianestates/crm-api/internal/infra/integration/claude"
	"github.com/elysianestates/crm-api/internal/infra/memory"
	"github.com/elysianestates/crm-api/internal/session"
	"github.com/elysianestates/crm-api/internal/usecase"
)

// MockCompletionGateway
type MockCompletionGateway struct {
	mock.Mock
}

func (m *MockCompletionGateway) Complete(ctx context.Context, input claude.CompletionInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func insightFixture() (*memory.LeadRepository, *memory.PropertyRepository, *session.Session) {
	leadRepo := memory.NewLeadRepository([]*entity.Lead{{
		ID:                     "L1",
		Name:                   "Rajesh Malhotra",
		Email:                  "rajesh@example.com",
		Citizenship:            "NRI (UAE)",
		NetWorth:               "$120M+",
		InvestmentBudget:       "$15M - $25M",
		Status:                 entity.StatusNegotiation,
		PreferredPropertyTypes: []string{"Penthouse"},
		Notes:                  "Prefers off-market deals.",
	}})
	propertyRepo := memory.NewPropertyRepository(memory.SeedProperties())

	sess := session.New()
	sess.SelectLead("L1")

	return leadRepo, propertyRepo, sess
}

func TestLeadInsightSuccessCachesAndApplies(t *testing.T) {
	ctx := context.Background()
	leadRepo, propertyRepo, sess := insightFixture()

	gateway := new(MockCompletionGateway)
	gateway.On("Complete", ctx, mock.MatchedBy(func(input claude.CompletionInput) bool {
		return input.Temperature == 0.7 && input.TopP == 0.9
	})).Return("## Personality Snapshot\nDiscreet, relationship-driven buyer.", nil)

	uc := usecase.NewLeadInsightUseCase(leadRepo, propertyRepo, gateway, sess)

	text, err := uc.Execute(ctx, "L1")
	require.NoError(t, err)
	assert.Contains(t, text, "Personality Snapshot")

	// Cached on the lead and applied to the session buffer.
	stored, err := leadRepo.FindByID(ctx, "L1")
	require.NoError(t, err)
	assert.Equal(t, text, stored.AIInsights)
	assert.Equal(t, text, sess.Snapshot().Insight)

	gateway.AssertExpectations(t)
}

func TestLeadInsightPromptEmbedsProfileAndInventory(t *testing.T) {
	ctx := context.Background()
	leadRepo, propertyRepo, sess := insightFixture()

	var captured claude.CompletionInput
	gateway := new(MockCompletionGateway)
	gateway.On("Complete", ctx, mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(1).(claude.CompletionInput)
	}).Return("ok", nil)

	uc := usecase.NewLeadInsightUseCase(leadRepo, propertyRepo, gateway, sess)
	_, err := uc.Execute(ctx, "L1")
	require.NoError(t, err)

	assert.Contains(t, captured.Prompt, "Rajesh Malhotra")
	assert.Contains(t, captured.Prompt, "NRI (UAE)")
	assert.Contains(t, captured.Prompt, "$15M - $25M")
	assert.Contains(t, captured.Prompt, "The Pinnacle Penthouse, Worli")
	assert.Contains(t, captured.Prompt, "Personality Snapshot")
}

func TestLeadInsightGatewayFailureYieldsFallback(t *testing.T) {
	ctx := context.Background()
	leadRepo, propertyRepo, sess := insightFixture()

	gateway := new(MockCompletionGateway)
	gateway.On("Complete", ctx, mock.Anything).Return("", errors.New("upstream 529"))

	uc := usecase.NewLeadInsightUseCase(leadRepo, propertyRepo, gateway, sess)

	text, err := uc.Execute(ctx, "L1")
	require.NoError(t, err) // failures never propagate
	assert.Equal(t, usecase.InsightFallback, text)

	// Nothing cached on the lead.
	stored, err := leadRepo.FindByID(ctx, "L1")
	require.NoError(t, err)
	assert.Empty(t, stored.AIInsights)
}

func TestLeadInsightUnknownLeadIsDomainError(t *testing.T) {
	leadRepo, propertyRepo, sess := insightFixture()
	uc := usecase.NewLeadInsightUseCase(leadRepo, propertyRepo, new(MockCompletionGateway), sess)

	_, err := uc.Execute(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
}

func TestLeadInsightRejectsConcurrentRequest(t *testing.T) {
	leadRepo, propertyRepo, sess := insightFixture()
	uc := usecase.NewLeadInsightUseCase(leadRepo, propertyRepo, new(MockCompletionGateway), sess)

	require.True(t, sess.TryBeginAI()) // simulate an in-flight request

	_, err := uc.Execute(context.Background(), "L1")
	require.Error(t, err)
	domainErr, ok := err.(*usecase.DomainError)
	require.True(t, ok)
	assert.Equal(t, usecase.CodeAIBusy, domainErr.Code)
}

func TestLeadInsightStaleResponseNotAppliedToSession(t *testing.T) {
	ctx := context.Background()
	leadRepo, propertyRepo, sess := insightFixture()

	gateway := new(MockCompletionGateway)
	gateway.On("Complete", ctx, mock.Anything).Run(func(mock.Arguments) {
		// Selection moves on while the completion is in flight.
		sess.SelectLead("L2")
	}).Return("analysis for L1", nil)

	uc := usecase.NewLeadInsightUseCase(leadRepo, propertyRepo, gateway, sess)

	text, err := uc.Execute(ctx, "L1")
	require.NoError(t, err)
	assert.Equal(t, "analysis for L1", text)

	// The buffer belongs to the new selection; the late response is dropped.
	assert.Empty(t, sess.Snapshot().Insight)
}
