package memory

import (
	"context"

	"github.com/elysianestates/crm-api/internal/entity"
)

// PropertyRepository holds the curated inventory. Properties are immutable
// after load, so no locking is needed.
type PropertyRepository struct {
	properties []*entity.Property
	index      map[string]int
}

func NewPropertyRepository(seed []*entity.Property) *PropertyRepository {
	repo := &PropertyRepository{index: make(map[string]int)}
	for _, property := range seed {
		repo.index[property.ID] = len(repo.properties)
		repo.properties = append(repo.properties, property)
	}
	return repo
}

func (r *PropertyRepository) FindByID(_ context.Context, id string) (*entity.Property, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, entity.ErrPropertyNotFound
	}
	return r.properties[i], nil
}

func (r *PropertyRepository) FindAll(_ context.Context) ([]*entity.Property, error) {
	out := make([]*entity.Property, len(r.properties))
	copy(out, r.properties)
	return out, nil
}
