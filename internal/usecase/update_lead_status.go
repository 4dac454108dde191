package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/elysianestates/crm-api/internal/entity"
)

// DefaultDealValue is the placeholder amount assigned when a mandate reaches
// Negotiation or Closed without an agreed figure. An existing figure is never
// overwritten.
const DefaultDealValue = 5_000_000

// UpdateLeadStatusUseCase is the only writer of a lead's pipeline state.
type UpdateLeadStatusUseCase struct {
	Repo LeadRepositoryInterface
}

func NewUpdateLeadStatusUseCase(repo LeadRepositoryInterface) *UpdateLeadStatusUseCase {
	return &UpdateLeadStatusUseCase{Repo: repo}
}

// SetStatus replaces the lead's status and applies the commercial side
// effects atomically with the write:
//   - Negotiation or Closed with no deal value yet -> the default placeholder
//     amount. An existing value is never overwritten.
//   - Closed -> probability forced to 100.
//
// An unknown lead id is a silent no-op, not an error.
func (uc *UpdateLeadStatusUseCase) SetStatus(ctx context.Context, leadID string, status entity.LeadStatus) (*entity.Lead, error) {
	if !status.Valid() {
		return nil, &DomainError{Code: CodeInvalidStatus, Message: "unknown status: " + string(status)}
	}

	lead, err := uc.Repo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, nil
		}
		return nil, &TechnicalError{Code: CodeDatabase, Message: "lookup failed: " + err.Error()}
	}

	lead.Status = status

	if (status == entity.StatusNegotiation || status == entity.StatusClosed) && lead.DealValue == nil {
		value := float64(DefaultDealValue)
		lead.DealValue = &value
	}
	if status == entity.StatusClosed {
		certain := 100
		lead.Probability = &certain
	}
	lead.UpdatedAt = time.Now()

	if err := uc.Repo.Update(ctx, lead); err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "status update failed: " + err.Error()}
	}

	return lead, nil
}

// AdvanceStatus promotes the lead one step along the ordered pipeline; at or
// past the last listed stage it resolves to Closed (and stays there). Lost is
// never reached automatically.
func (uc *UpdateLeadStatusUseCase) AdvanceStatus(ctx context.Context, leadID string) (*entity.Lead, error) {
	lead, err := uc.Repo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, nil
		}
		return nil, &TechnicalError{Code: CodeDatabase, Message: "lookup failed: " + err.Error()}
	}

	return uc.SetStatus(ctx, leadID, lead.Status.NextStage())
}
