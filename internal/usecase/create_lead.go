package usecase

import (
	"context"
	"time"

	"github.com/elysianestates/crm-api/internal/entity"
)

// CreateLeadUseCase registers a new mandate from the console's "New Entry"
// action. Seeded leads and operator-created leads share one lifecycle.
type CreateLeadUseCase struct {
	Repo LeadRepositoryInterface
}

func NewCreateLeadUseCase(repo LeadRepositoryInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{Repo: repo}
}

type CreateLeadInput struct {
	Name                   string   `json:"name"`
	Email                  string   `json:"email"`
	Phone                  string   `json:"phone"`
	Location               string   `json:"location"`
	Citizenship            string   `json:"citizenship"`
	NetWorth               string   `json:"net_worth"`
	InvestmentBudget       string   `json:"investment_budget"`
	PreferredPropertyTypes []string `json:"preferred_property_types"`
	Notes                  string   `json:"notes"`
	DealValue              *float64 `json:"deal_value"`
	Probability            *int     `json:"probability"`
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, error) {
	if validationErrors := ValidateCreateLeadInput(input); len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{Code: CodeValidation, Message: errMsg}
	}

	lead, err := entity.NewLead(input.Name, input.Email, input.Phone, input.Location, input.Citizenship)
	if err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	lead.NetWorth = input.NetWorth
	lead.InvestmentBudget = input.InvestmentBudget
	lead.PreferredPropertyTypes = input.PreferredPropertyTypes
	lead.Notes = input.Notes
	lead.DealValue = input.DealValue
	lead.Probability = input.Probability
	lead.LastInteraction = "Just registered"
	lead.UpdatedAt = time.Now()

	if err := lead.Validate(); err != nil {
		return nil, &DomainError{Code: CodeValidation, Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: "failed to persist lead: " + err.Error()}
	}

	return lead, nil
}
