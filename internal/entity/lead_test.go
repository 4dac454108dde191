package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStageWalksThePipelineInOrder(t *testing.T) {
	status := StatusProspect

	var visited []LeadStatus
	for i := 0; i < 5; i++ {
		status = status.NextStage()
		visited = append(visited, status)
	}

	assert.Equal(t, []LeadStatus{
		StatusQualified,
		StatusSiteVisit,
		StatusNegotiation,
		StatusUnderContract,
		StatusClosed,
	}, visited)

	// Absorbing: promoting a closed deal keeps it closed.
	assert.Equal(t, StatusClosed, StatusClosed.NextStage())
	assert.Equal(t, StatusClosed, StatusLost.NextStage())
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusClosed.Terminal())
	assert.True(t, StatusLost.Terminal())
	assert.False(t, StatusUnderContract.Terminal())
	assert.False(t, StatusProspect.Terminal())
}

func TestLeadValidateBounds(t *testing.T) {
	lead, err := NewLead("Rajesh Malhotra", "rajesh@example.com", "+971500000000", "Dubai", "NRI (UAE)")
	assert.NoError(t, err)
	assert.Equal(t, StatusProspect, lead.Status)
	assert.NotEmpty(t, lead.ID)

	tooHigh := 101
	lead.Probability = &tooHigh
	assert.Error(t, lead.Validate())

	ok := 100
	lead.Probability = &ok
	assert.NoError(t, lead.Validate())

	negative := -1.0
	lead.DealValue = &negative
	assert.Error(t, lead.Validate())

	lead.DealValue = nil
	lead.Status = LeadStatus("Daydreaming")
	assert.Error(t, lead.Validate())
}

func TestNewLeadRequiresNameAndEmail(t *testing.T) {
	_, err := NewLead("", "a@b.com", "", "", "")
	assert.Error(t, err)

	_, err = NewLead("Someone", "", "", "", "")
	assert.Error(t, err)
}

func TestValueHelpersTreatMissingAsZero(t *testing.T) {
	lead := &Lead{}
	assert.Zero(t, lead.DealValueOrZero())
	assert.Zero(t, lead.ProbabilityOrZero())

	value := 2_000_000.0
	probability := 50
	lead.DealValue = &value
	lead.Probability = &probability
	assert.Equal(t, 2_000_000.0, lead.DealValueOrZero())
	assert.Equal(t, 50, lead.ProbabilityOrZero())
}
