package sessionrepo

import (
	"context"
	"testing"
	"time"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Create(t *testing.T) {
	repo := New()
	session := &domain.Session{ID: "s1", Email: "ana@bicpop.co", CreatedAt: time.Now()}

	tests := []struct {
		name        string
		session     *domain.Session
		expectedErr error
	}{
		{name: "New session", session: session},
		{name: "Duplicate id", session: session, expectedErr: ErrSessionExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.Create(context.Background(), tt.session)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.session, result)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo := New()
	_, err := repo.Create(context.Background(), &domain.Session{ID: "s1", Email: "ana@bicpop.co"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		id     string
		result *domain.Session
	}{
		{name: "Known session", id: "s1", result: &domain.Session{ID: "s1", Email: "ana@bicpop.co"}},
		{name: "Unknown session", id: "s2", result: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := repo.FindByID(context.Background(), tt.id)
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo := New()
	_, err := repo.Create(context.Background(), &domain.Session{ID: "s1"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), "s1"))
	require.NoError(t, repo.Delete(context.Background(), "s1"))

	result, err := repo.FindByID(context.Background(), "s1")
	assert.NoError(t, err)
	assert.Nil(t, result)
}
