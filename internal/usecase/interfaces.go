package usecase

import (
	"context"

	"github.com/elysianestates/crm-api/internal/entity"
	"github.com/elysianestates/crm-api/internal/infra/integration/claude"
	"github.com/elysianestates/crm-api/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	Update(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	FindAll(ctx context.Context) ([]*entity.Lead, error)
}

type PropertyRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.Property, error)
	FindAll(ctx context.Context) ([]*entity.Property, error)
}

type ActivityRepositoryInterface interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindByLeadID(ctx context.Context, leadID string) ([]*entity.Activity, error)
}

// CompletionGateway is the one logical operation against the external
// text-generation service.
type CompletionGateway interface {
	Complete(ctx context.Context, input claude.CompletionInput) (string, error)
}

type QueueProducerInterface interface {
	PublishOutreach(ctx context.Context, payload queue.OutreachPayload) error
}

type EmailService interface {
	SendOutreach(to, name, subject, body string) error
}
