package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elysianestates/crm-api/internal/entity"
	"github.com/elysianestates/crm-api/internal/infra/memory"
	"github.com/elysianestates/crm-api/internal/usecase"
)

func seedRepo(leads ...*entity.Lead) *memory.LeadRepository {
	return memory.NewLeadRepository(leads)
}

func prospect(id string) *entity.Lead {
	return &entity.Lead{
		ID:     id,
		Name:   "Test Lead " + id,
		Email:  id + "@example.com",
		Status: entity.StatusProspect,
	}
}

func TestSetStatusClosedForcesCertaintyAndValue(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(prospect("L1"))
	uc := usecase.NewUpdateLeadStatusUseCase(repo)

	lead, err := uc.SetStatus(ctx, "L1", entity.StatusClosed)
	require.NoError(t, err)
	require.NotNil(t, lead)

	assert.Equal(t, entity.StatusClosed, lead.Status)
	require.NotNil(t, lead.Probability)
	assert.Equal(t, 100, *lead.Probability)
	require.NotNil(t, lead.DealValue)
	assert.Equal(t, float64(usecase.DefaultDealValue), *lead.DealValue)
}

func TestSetStatusNegotiationAssignsDefaultValueOnlyWhenMissing(t *testing.T) {
	ctx := context.Background()

	blank := prospect("L1")
	agreed := prospect("L2")
	existing := 12_000_000.0
	agreed.DealValue = &existing

	repo := seedRepo(blank, agreed)
	uc := usecase.NewUpdateLeadStatusUseCase(repo)

	lead, err := uc.SetStatus(ctx, "L1", entity.StatusNegotiation)
	require.NoError(t, err)
	require.NotNil(t, lead.DealValue)
	assert.Equal(t, float64(usecase.DefaultDealValue), *lead.DealValue)
	assert.Nil(t, lead.Probability) // negotiation does not touch probability

	lead, err = uc.SetStatus(ctx, "L2", entity.StatusNegotiation)
	require.NoError(t, err)
	require.NotNil(t, lead.DealValue)
	assert.Equal(t, existing, *lead.DealValue) // never overwritten
}

func TestSetStatusUnknownLeadIsSilentNoOp(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(prospect("L1"))
	uc := usecase.NewUpdateLeadStatusUseCase(repo)

	lead, err := uc.SetStatus(ctx, "ghost", entity.StatusClosed)
	assert.NoError(t, err)
	assert.Nil(t, lead)

	// The known lead is untouched.
	stored, err := repo.FindByID(ctx, "L1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusProspect, stored.Status)
}

func TestSetStatusRejectsUnknownStatusValue(t *testing.T) {
	repo := seedRepo(prospect("L1"))
	uc := usecase.NewUpdateLeadStatusUseCase(repo)

	_, err := uc.SetStatus(context.Background(), "L1", entity.LeadStatus("Window Shopping"))
	require.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
}

func TestAdvanceStatusVisitsEveryStageThenSticksAtClosed(t *testing.T) {
	ctx := context.Background()
	probability := 40
	start := prospect("L1")
	start.Probability = &probability

	repo := seedRepo(start)
	uc := usecase.NewUpdateLeadStatusUseCase(repo)

	expected := []entity.LeadStatus{
		entity.StatusQualified,
		entity.StatusSiteVisit,
		entity.StatusNegotiation,
		entity.StatusUnderContract,
		entity.StatusClosed,
	}

	for _, want := range expected {
		lead, err := uc.AdvanceStatus(ctx, "L1")
		require.NoError(t, err)
		require.NotNil(t, lead)
		assert.Equal(t, want, lead.Status)
	}

	// Idempotent once closed.
	lead, err := uc.AdvanceStatus(ctx, "L1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusClosed, lead.Status)
}

func TestAdvanceFromProspectLeavesCommercialsAlone(t *testing.T) {
	ctx := context.Background()
	probability := 40
	start := prospect("L1")
	start.Probability = &probability

	repo := seedRepo(start)
	uc := usecase.NewUpdateLeadStatusUseCase(repo)

	lead, err := uc.AdvanceStatus(ctx, "L1")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusQualified, lead.Status)
	assert.Nil(t, lead.DealValue)
	require.NotNil(t, lead.Probability)
	assert.Equal(t, 40, *lead.Probability)
}

func TestAdvanceStatusResolvesLostToClosed(t *testing.T) {
	ctx := context.Background()
	lost := prospect("L1")
	lost.Status = entity.StatusLost

	repo := seedRepo(lost)
	uc := usecase.NewUpdateLeadStatusUseCase(repo)

	lead, err := uc.AdvanceStatus(ctx, "L1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusClosed, lead.Status)
}
