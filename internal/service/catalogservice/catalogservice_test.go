package catalogservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	bikerepo "github.com/olobando-hub/BicPop-Web/internal/repo/bike-repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func ids(bikes []domain.Bike) []string {
	out := make([]string, 0, len(bikes))
	for _, b := range bikes {
		out = append(out, b.ID)
	}
	return out
}

func isSubsequence(sub, of []string) bool {
	i := 0
	for _, id := range of {
		if i < len(sub) && sub[i] == id {
			i++
		}
	}
	return i == len(sub)
}

func TestFilter(t *testing.T) {
	catalog := bikerepo.Seed()

	tests := []struct {
		name        string
		filter      domain.CategoryFilter
		query       string
		expectedIDs []string
	}{
		{name: "All without query", filter: domain.FilterAll, query: "", expectedIDs: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "Mechanical only", filter: "mechanical", query: "", expectedIDs: []string{"1", "3", "5"}},
		{name: "Electric only", filter: "electric", query: "", expectedIDs: []string{"2", "4", "6"}},
		{name: "Query matches name case-insensitively", filter: domain.FilterAll, query: "ECO", expectedIDs: []string{"2", "6"}},
		{name: "Query matches location", filter: domain.FilterAll, query: "centro", expectedIDs: []string{"1", "6"}},
		{name: "Query is trimmed", filter: domain.FilterAll, query: "  parque  ", expectedIDs: []string{"3"}},
		{name: "Blank query is ignored", filter: "electric", query: "   ", expectedIDs: []string{"2", "4", "6"}},
		{name: "Category and query combined", filter: "mechanical", query: "centro", expectedIDs: []string{"1"}},
		{name: "No match is empty", filter: domain.FilterAll, query: "tandem", expectedIDs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Filter(catalog, tt.filter, tt.query)
			assert.Equal(t, tt.expectedIDs, ids(result))
		})
	}
}

func TestFilterProperties(t *testing.T) {
	catalog := bikerepo.Seed()
	all := ids(catalog)
	queries := []string{"", "e", "Eco", "centro", "  pro ", "x", "Bolt", "cauca"}
	filters := []domain.CategoryFilter{domain.FilterAll, "mechanical", "electric"}

	for _, f := range filters {
		base := Filter(catalog, f, "")
		if f != domain.FilterAll {
			for _, b := range base {
				assert.Equal(t, string(f), string(b.Category))
			}
		}
		assert.True(t, isSubsequence(ids(base), all))

		for _, q := range queries {
			result := Filter(catalog, f, q)
			assert.True(t, isSubsequence(ids(result), ids(base)), "filter=%s query=%q", f, q)

			needle := strings.ToLower(strings.TrimSpace(q))
			for _, b := range result {
				match := strings.Contains(strings.ToLower(b.Name), needle) ||
					strings.Contains(strings.ToLower(b.Location), needle)
				assert.True(t, match, "bike %s does not match %q", b.ID, q)
			}

			assert.Equal(t, result, Filter(catalog, f, q))
		}
	}
}

func TestFilterEmptyCatalog(t *testing.T) {
	result := Filter(nil, domain.FilterAll, "eco")

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in            string
		expected      domain.CategoryFilter
		expectedError error
	}{
		{in: "", expected: domain.FilterAll},
		{in: "all", expected: domain.FilterAll},
		{in: "Electric", expected: "electric"},
		{in: " mechanical ", expected: "mechanical"},
		{in: "cargo", expectedError: ErrInvalidFilter},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := ParseFilter(tt.in)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestSummarize(t *testing.T) {
	catalog := bikerepo.Seed()

	st := Summarize(catalog, Filter(catalog, "electric", ""))

	assert.Equal(t, Stats{
		TotalAvailable:      5,
		MechanicalAvailable: 3,
		ElectricAvailable:   2,
		FilteredAvailable:   2,
	}, st)
}

func TestFilterBikes(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		filter        domain.CategoryFilter
		query         string
		expectedIDs   []string
		expectedError error
	}{
		{
			name: "Filters repository contents",
			prepareMock: func() {
				repo.EXPECT().List(gomock.Any()).Return(bikerepo.Seed(), nil)
			},
			filter:      "electric",
			query:       "eco",
			expectedIDs: []string{"2", "6"},
		},
		{
			name: "Repository failure",
			prepareMock: func() {
				repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("store error"))
			},
			filter:        domain.FilterAll,
			expectedError: errors.New("store error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			bikes, _, err := service.FilterBikes(context.Background(), tt.filter, tt.query)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedIDs, ids(bikes))
		})
	}
}

func TestGetBike(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		id            string
		prepareMock   func()
		expectedBike  *domain.Bike
		expectedError error
	}{
		{
			name: "Found",
			id:   "1",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "1").Return(&domain.Bike{ID: "1", Name: "Urban Classic"}, nil)
			},
			expectedBike: &domain.Bike{ID: "1", Name: "Urban Classic"},
		},
		{
			name: "Not found",
			id:   "42",
			prepareMock: func() {
				repo.EXPECT().FindByID(gomock.Any(), "42").Return(nil, nil)
			},
			expectedError: ErrBikeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			bike, err := service.GetBike(context.Background(), tt.id)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedBike, bike)
		})
	}
}
