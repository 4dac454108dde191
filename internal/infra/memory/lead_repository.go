package memory

import (
	"context"
	"sync"

	"github.com/elysianestates/crm-api/internal/entity"
)

// LeadRepository is the in-process default store, seeded at startup. Insertion
// order is preserved; the derived metrics depend on it.
type LeadRepository struct {
	mu    sync.RWMutex
	leads []*entity.Lead
	index map[string]int
}

func NewLeadRepository(seed []*entity.Lead) *LeadRepository {
	repo := &LeadRepository{index: make(map[string]int)}
	for _, lead := range seed {
		copied := *lead
		repo.index[copied.ID] = len(repo.leads)
		repo.leads = append(repo.leads, &copied)
	}
	return repo
}

func (r *LeadRepository) Create(_ context.Context, lead *entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *lead
	r.index[copied.ID] = len(r.leads)
	r.leads = append(r.leads, &copied)
	return nil
}

func (r *LeadRepository) Update(_ context.Context, lead *entity.Lead) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[lead.ID]
	if !ok {
		return entity.ErrLeadNotFound
	}
	copied := *lead
	r.leads[i] = &copied
	return nil
}

func (r *LeadRepository) FindByID(_ context.Context, id string) (*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return nil, entity.ErrLeadNotFound
	}
	copied := *r.leads[i]
	return &copied, nil
}

func (r *LeadRepository) FindAll(_ context.Context) ([]*entity.Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Lead, 0, len(r.leads))
	for _, lead := range r.leads {
		copied := *lead
		out = append(out, &copied)
	}
	return out, nil
}
