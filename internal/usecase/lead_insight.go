package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/elysianestates/crm-api/internal/entity"
	"github.com/elysianestates/crm-api/internal/infra/integration/claude"
	"github.com/elysianestates/crm-api/internal/session"
)

// InsightFallback is returned verbatim whenever the gateway fails; callers
// never see the underlying error. The action is side-effect-free and user
// retriable, so losing the failure detail is acceptable.
const InsightFallback = "Could not generate AI insights at this time."

// LeadInsightUseCase produces strategic insight text for a lead against the
// full property catalog.
type LeadInsightUseCase struct {
	LeadRepo     LeadRepositoryInterface
	PropertyRepo PropertyRepositoryInterface
	Gateway      CompletionGateway
	Session      *session.Session
}

func NewLeadInsightUseCase(
	leadRepo LeadRepositoryInterface,
	propertyRepo PropertyRepositoryInterface,
	gateway CompletionGateway,
	sess *session.Session,
) *LeadInsightUseCase {
	return &LeadInsightUseCase{
		LeadRepo:     leadRepo,
		PropertyRepo: propertyRepo,
		Gateway:      gateway,
		Session:      sess,
	}
}

// Execute runs one insight request. Requests are single-flight: a second call
// while one is pending is rejected, not queued. On gateway failure the
// fallback string is returned in place of a result.
func (uc *LeadInsightUseCase) Execute(ctx context.Context, leadID string) (string, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return "", &DomainError{Code: CodeLeadNotFound, Message: "lead not found: " + leadID}
		}
		return "", &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	if !uc.Session.TryBeginAI() {
		return "", &DomainError{Code: CodeAIBusy, Message: "an AI request is already in flight"}
	}
	defer uc.Session.EndAI()

	properties, err := uc.PropertyRepo.FindAll(ctx)
	if err != nil {
		return "", &TechnicalError{Code: CodeDatabase, Message: err.Error()}
	}

	text, err := uc.Gateway.Complete(ctx, claude.CompletionInput{
		Prompt:      BuildLeadInsightPrompt(lead, properties),
		Temperature: 0.7,
		TopP:        0.9,
	})
	if err != nil {
		log.Printf("⚠️ insight generation failed for lead %s: %v", leadID, err)
		return InsightFallback, nil
	}

	// Cache the result on the lead so a reopened dossier shows the last
	// analysis without another round trip.
	lead.AIInsights = text
	lead.UpdatedAt = time.Now()
	if err := uc.LeadRepo.Update(ctx, lead); err != nil {
		log.Printf("⚠️ insight for lead %s not cached: %v", leadID, err)
	}

	// A late response for a since-deselected lead is discarded.
	if !uc.Session.ApplyInsight(leadID, text) {
		log.Printf("🗑️ stale insight for lead %s discarded", leadID)
	}

	return text, nil
}
