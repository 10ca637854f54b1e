package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	balancerepo "github.com/olobando-hub/BicPop-Web/internal/repo/balance-repo"
	bikerepo "github.com/olobando-hub/BicPop-Web/internal/repo/bike-repo"
	sessionrepo "github.com/olobando-hub/BicPop-Web/internal/repo/session-repo"
)

func TestNew(t *testing.T) {
	repo := New()

	assert.NotNil(t, repo.BikeRepo)
	assert.NotNil(t, repo.BalanceRepo)
	assert.NotNil(t, repo.SessionRepo)

	assert.IsType(t, &bikerepo.Repository{}, repo.BikeRepo)
	assert.IsType(t, &balancerepo.Repository{}, repo.BalanceRepo)
	assert.IsType(t, &sessionrepo.Repository{}, repo.SessionRepo)

	bikes, err := repo.BikeRepo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, bikes, 6)
}
