package memory

import (
	"context"
	"sync"

	"github.com/elysianestates/crm-api/internal/entity"
)

type ActivityRepository struct {
	mu         sync.RWMutex
	activities []*entity.Activity
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

func (r *ActivityRepository) Create(_ context.Context, activity *entity.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *activity
	r.activities = append(r.activities, &copied)
	return nil
}

func (r *ActivityRepository) FindByLeadID(_ context.Context, leadID string) ([]*entity.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*entity.Activity{}
	for _, activity := range r.activities {
		if activity.LeadID == leadID {
			copied := *activity
			out = append(out, &copied)
		}
	}
	return out, nil
}
