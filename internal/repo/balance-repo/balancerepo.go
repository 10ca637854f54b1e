package balancerepo

import (
	"context"
	"errors"
	"sync"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"go.uber.org/zap"
)

var (
	ErrBalanceNotFound = errors.New("balance not found")
	ErrBalanceExists   = errors.New("balance already exists")
)

// Repository keeps one balance per session in memory.
type Repository struct {
	mu       sync.Mutex
	balances map[string]*domain.Balance
}

func New() *Repository {
	return &Repository{
		balances: make(map[string]*domain.Balance),
	}
}

// GetBalance returns nil, nil for an unknown session.
func (r *Repository) GetBalance(ctx context.Context, sessionID string) (*domain.Balance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	balance, ok := r.balances[sessionID]
	if !ok {
		return nil, nil
	}
	b := *balance
	return &b, nil
}

func (r *Repository) CreateBalance(ctx context.Context, sessionID string, initial int64) (*domain.Balance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.balances[sessionID]; ok {
		zap.L().Error("failed to create balance", zap.String("session_id", sessionID), zap.Error(ErrBalanceExists))
		return nil, ErrBalanceExists
	}
	balance := &domain.Balance{SessionID: sessionID, Current: initial}
	r.balances[sessionID] = balance
	b := *balance
	return &b, nil
}

// UpdateBalance runs fn on a copy of the stored balance while holding the
// lock and stores the copy only if fn returns nil.
func (r *Repository) UpdateBalance(ctx context.Context, sessionID string, fn func(*domain.Balance) error) (*domain.Balance, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.balances[sessionID]
	if !ok {
		return nil, ErrBalanceNotFound
	}
	updated := *stored
	if err := fn(&updated); err != nil {
		return nil, err
	}
	*stored = updated
	return &updated, nil
}

func (r *Repository) DeleteBalance(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.balances, sessionID)
	return nil
}
