package catalogservice

//go:generate mockgen -source=catalogservice.go -destination=mock_catalogservice.go -package=catalogservice

import (
	"context"
	"errors"
	"strings"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	List(ctx context.Context) ([]domain.Bike, error)
	FindByID(ctx context.Context, id string) (*domain.Bike, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrInvalidFilter = errors.New("invalid category filter")
	ErrBikeNotFound  = errors.New("bike not found")
)

// Stats mirrors the counters shown above the catalog.
type Stats struct {
	TotalAvailable      int
	MechanicalAvailable int
	ElectricAvailable   int
	FilteredAvailable   int
}

func ParseFilter(s string) (domain.CategoryFilter, error) {
	switch f := domain.CategoryFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "", domain.FilterAll:
		return domain.FilterAll, nil
	case domain.CategoryFilter(domain.CategoryMechanical), domain.CategoryFilter(domain.CategoryElectric):
		return f, nil
	default:
		return "", ErrInvalidFilter
	}
}

// Filter keeps catalog order. An empty or blank query only applies the
// category filter.
func Filter(bikes []domain.Bike, filter domain.CategoryFilter, query string) []domain.Bike {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Bike, 0, len(bikes))
	for _, b := range bikes {
		if filter != domain.FilterAll && domain.CategoryFilter(b.Category) != filter {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(b.Name), q) &&
			!strings.Contains(strings.ToLower(b.Location), q) {
			continue
		}
		out = append(out, b)
	}
	return out
}

func Summarize(all, filtered []domain.Bike) Stats {
	var st Stats
	for _, b := range all {
		if !b.Available {
			continue
		}
		st.TotalAvailable++
		switch b.Category {
		case domain.CategoryMechanical:
			st.MechanicalAvailable++
		case domain.CategoryElectric:
			st.ElectricAvailable++
		}
	}
	for _, b := range filtered {
		if b.Available {
			st.FilteredAvailable++
		}
	}
	return st
}

func (s *Service) ListBikes(ctx context.Context) ([]domain.Bike, error) {
	bikes, err := s.repo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list bikes", zap.Error(err))
		return nil, err
	}
	return bikes, nil
}

func (s *Service) FilterBikes(ctx context.Context, filter domain.CategoryFilter, query string) ([]domain.Bike, Stats, error) {
	all, err := s.ListBikes(ctx)
	if err != nil {
		return nil, Stats{}, err
	}
	filtered := Filter(all, filter, query)
	return filtered, Summarize(all, filtered), nil
}

func (s *Service) GetBike(ctx context.Context, id string) (*domain.Bike, error) {
	bike, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to find bike", zap.String("bike_id", id), zap.Error(err))
		return nil, err
	}
	if bike == nil {
		return nil, ErrBikeNotFound
	}
	return bike, nil
}
