package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/elysianestates/crm-api/internal/entity"
	"github.com/elysianestates/crm-api/internal/infra/integration/claude"
	"github.com/elysianestates/crm-api/internal/session"
)

// OutreachFallback is returned verbatim whenever draft generation fails.
const OutreachFallback = "Error generating email."

// OutreachDraftUseCase produces an outreach email draft for a lead and a
// single highlighted property. Available to both roles; the prompt framing
// follows the operator's role.
type OutreachDraftUseCase struct {
	LeadRepo     LeadRepositoryInterface
	PropertyRepo PropertyRepositoryInterface
	Gateway      CompletionGateway
	Session      *session.Session
}

func NewOutreachDraftUseCase(
	leadRepo LeadRepositoryInterface,
	propertyRepo PropertyRepositoryInterface,
	gateway CompletionGateway,
	sess *session.Session,
) *OutreachDraftUseCase {
	return &OutreachDraftUseCase{
		LeadRepo:     leadRepo,
		PropertyRepo: propertyRepo,
		Gateway:      gateway,
		Session:      sess,
	}
}

// Execute drafts the outreach message. An empty propertyID falls back to the
// lead's assigned property, then to the first catalog entry.
func (uc *OutreachDraftUseCase) Execute(ctx context.Context, leadID, propertyID string, role entity.Role) (string, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return "", &DomainError{Code: CodeLeadNotFound, Message: "lead not found: " + leadID}
		}
		return "", &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	property, err := uc.resolveProperty(ctx, lead, propertyID)
	if err != nil {
		return "", err
	}

	if !uc.Session.TryBeginAI() {
		return "", &DomainError{Code: CodeAIBusy, Message: "an AI request is already in flight"}
	}
	defer uc.Session.EndAI()

	text, err := uc.Gateway.Complete(ctx, claude.CompletionInput{
		Prompt: BuildOutreachPrompt(lead, property, role),
	})
	if err != nil {
		log.Printf("⚠️ outreach draft failed for lead %s: %v", leadID, err)
		return OutreachFallback, nil
	}

	if !uc.Session.ApplyOutreachDraft(leadID, text) {
		log.Printf("🗑️ stale outreach draft for lead %s discarded", leadID)
	}

	return text, nil
}

func (uc *OutreachDraftUseCase) resolveProperty(ctx context.Context, lead *entity.Lead, propertyID string) (*entity.Property, error) {
	if propertyID == "" {
		propertyID = lead.AssignedPropertyID
	}

	if propertyID != "" {
		property, err := uc.PropertyRepo.FindByID(ctx, propertyID)
		if err == nil {
			return property, nil
		}
		if !errors.Is(err, entity.ErrPropertyNotFound) {
			return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
		}
	}

	properties, err := uc.PropertyRepo.FindAll(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}
	if len(properties) == 0 {
		return nil, &DomainError{Code: CodeValidation, Message: "no properties available to highlight"}
	}
	return properties[0], nil
}
