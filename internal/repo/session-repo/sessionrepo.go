package sessionrepo

import (
	"context"
	"errors"
	"sync"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"go.uber.org/zap"
)

var ErrSessionExists = errors.New("session already exists")

type Repository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func New() *Repository {
	return &Repository{
		sessions: make(map[string]domain.Session),
	}
}

// FindByID returns nil, nil for an unknown session.
func (r *Repository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (r *Repository) Create(ctx context.Context, session *domain.Session) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; ok {
		zap.L().Error("can't save session", zap.String("session_id", session.ID), zap.Error(ErrSessionExists))
		return nil, ErrSessionExists
	}
	r.sessions[session.ID] = *session
	s := *session
	return &s, nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
	return nil
}
