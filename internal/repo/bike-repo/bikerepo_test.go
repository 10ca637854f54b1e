package bikerepo

import (
	"context"
	"testing"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_List(t *testing.T) {
	repo := NewSeeded()

	bikes, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, bikes, 6)
	ids := make([]string, 0, len(bikes))
	for _, b := range bikes {
		ids = append(ids, b.ID)
		if b.Category == domain.CategoryElectric {
			assert.NotNil(t, b.Battery, b.ID)
		} else {
			assert.Nil(t, b.Battery, b.ID)
		}
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6"}, ids)
}

func TestRepository_ListReturnsCopies(t *testing.T) {
	repo := NewSeeded()
	ctx := context.Background()

	bikes, err := repo.List(ctx)
	require.NoError(t, err)
	bikes[0].Name = "changed"
	*bikes[1].Battery = 1

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Urban Classic", again[0].Name)
	assert.Equal(t, 85, *again[1].Battery)
}

func TestRepository_FindByID(t *testing.T) {
	repo := NewSeeded()

	tests := []struct {
		name     string
		id       string
		expected *domain.Bike
	}{
		{
			name: "Existing bike",
			id:   "3",
			expected: &domain.Bike{
				ID:        "3",
				Name:      "City Cruiser",
				Category:  domain.CategoryMechanical,
				Price:     2000,
				Image:     "https://www.solebicycles.com/cdn/shop/products/CTB3001-1-Web_961a790d-6644-4f80-87c5-73c65269a521_1445x.jpg?v=1682101319",
				Available: true,
				Location:  "Parque Caldas",
			},
		},
		{
			name:     "Unknown bike returns nil",
			id:       "99",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bike, err := repo.FindByID(context.Background(), tt.id)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, bike)
		})
	}
}

func TestNew_Empty(t *testing.T) {
	repo := New(nil)

	bikes, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, bikes)
}
