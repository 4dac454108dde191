package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/elysianestates/crm-api/internal/entity"
	"github.com/elysianestates/crm-api/internal/infra/queue"
)

const defaultOutreachSubject = "A private opportunity, curated for you"

// SendOutreachUseCase hands an approved draft to the delivery queue. The
// worker sends the email and records the interaction.
type SendOutreachUseCase struct {
	LeadRepo LeadRepositoryInterface
	Queue    QueueProducerInterface
}

func NewSendOutreachUseCase(leadRepo LeadRepositoryInterface, producer QueueProducerInterface) *SendOutreachUseCase {
	return &SendOutreachUseCase{LeadRepo: leadRepo, Queue: producer}
}

type SendOutreachInput struct {
	LeadID     string `json:"-"`
	PropertyID string `json:"property_id"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
}

func (uc *SendOutreachUseCase) Execute(ctx context.Context, input SendOutreachInput) error {
	if uc.Queue == nil {
		return &TechnicalError{Code: CodeQueueDown, Message: "outreach delivery is not configured"}
	}
	if strings.TrimSpace(input.Body) == "" {
		return &DomainError{Code: CodeEmptyDraft, Message: "outreach body is empty"}
	}
	if input.Subject == "" {
		input.Subject = defaultOutreachSubject
	}

	lead, err := uc.LeadRepo.FindByID(ctx, input.LeadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return &DomainError{Code: CodeLeadNotFound, Message: "lead not found: " + input.LeadID}
		}
		return &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	err = uc.Queue.PublishOutreach(ctx, queue.OutreachPayload{
		LeadID:     lead.ID,
		LeadName:   lead.Name,
		Email:      lead.Email,
		PropertyID: input.PropertyID,
		Subject:    input.Subject,
		Body:       input.Body,
	})
	if err != nil {
		return &TechnicalError{Code: CodeQueueDown, Message: "failed to queue outreach: " + err.Error()}
	}

	return nil
}
