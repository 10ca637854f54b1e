package bikerepo

import (
	"context"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
)

// Repository is the read-only catalog for the lifetime of the process.
type Repository struct {
	bikes []domain.Bike
	byID  map[string]int
}

func New(bikes []domain.Bike) *Repository {
	r := &Repository{
		bikes: make([]domain.Bike, len(bikes)),
		byID:  make(map[string]int, len(bikes)),
	}
	for i, b := range bikes {
		r.bikes[i] = clone(b)
		r.byID[b.ID] = i
	}
	return r
}

func NewSeeded() *Repository {
	return New(Seed())
}

func (r *Repository) List(ctx context.Context) ([]domain.Bike, error) {
	out := make([]domain.Bike, len(r.bikes))
	for i, b := range r.bikes {
		out[i] = clone(b)
	}
	return out, nil
}

// FindByID returns nil, nil when no bike has the id.
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Bike, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	b := clone(r.bikes[i])
	return &b, nil
}

func clone(b domain.Bike) domain.Bike {
	if b.Battery != nil {
		lvl := *b.Battery
		b.Battery = &lvl
	}
	return b
}
