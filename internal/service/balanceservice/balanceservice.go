package balanceservice

//go:generate mockgen -source=balanceservice.go -destination=mock_balanceservice.go -package=balanceservice

import (
	"context"
	"errors"
	"math"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"go.uber.org/zap"
)

type BalanceRepo interface {
	GetBalance(ctx context.Context, sessionID string) (*domain.Balance, error)
	CreateBalance(ctx context.Context, sessionID string, initial int64) (*domain.Balance, error)
	UpdateBalance(ctx context.Context, sessionID string, fn func(*domain.Balance) error) (*domain.Balance, error)
	DeleteBalance(ctx context.Context, sessionID string) error
}

type Metrics interface {
	WalletCredited(amount int64)
}

type Service struct {
	balanceRepo BalanceRepo
	metrics     Metrics
}

func New(balanceRepo BalanceRepo, metrics Metrics) *Service {
	return &Service{
		balanceRepo: balanceRepo,
		metrics:     metrics,
	}
}

var (
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrBalanceOverflow   = errors.New("amount exceeds wallet capacity")
)

func (s *Service) Open(ctx context.Context, sessionID string, initial int64) (*domain.Balance, error) {
	if initial < 0 {
		return nil, ErrInvalidAmount
	}
	balance, err := s.balanceRepo.CreateBalance(ctx, sessionID, initial)
	if err != nil {
		zap.L().Error("failed to open wallet", zap.String("session_id", sessionID), zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) GetBalance(ctx context.Context, sessionID string) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetBalance(ctx, sessionID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return nil, err
	}
	if balance == nil {
		return nil, ErrWalletNotFound
	}
	return balance, nil
}

func (s *Service) CanAfford(ctx context.Context, sessionID string, total int64) (bool, error) {
	balance, err := s.GetBalance(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return balance.Current >= total, nil
}

func (s *Service) Credit(ctx context.Context, sessionID string, amount int64) (*domain.Balance, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := s.GetBalance(ctx, sessionID); err != nil {
		return nil, err
	}

	balance, err := s.balanceRepo.UpdateBalance(ctx, sessionID, func(b *domain.Balance) error {
		if amount > math.MaxInt64-b.Current || amount > math.MaxInt64-b.Credited {
			return ErrBalanceOverflow
		}
		b.Current += amount
		b.Credited += amount
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBalanceOverflow) {
			zap.L().Warn("credit rejected", zap.String("session_id", sessionID), zap.Int64("amount", amount))
		} else {
			zap.L().Error("failed to credit wallet", zap.String("session_id", sessionID), zap.Error(err))
		}
		return nil, err
	}

	s.metrics.WalletCredited(amount)
	zap.L().Info("wallet credited", zap.String("session_id", sessionID), zap.Int64("amount", amount), zap.Int64("balance", balance.Current))
	return balance, nil
}

// Debit must only follow a successful CanAfford, but it checks again under
// the store lock so the balance can never go below zero.
func (s *Service) Debit(ctx context.Context, sessionID string, total int64) (*domain.Balance, error) {
	if total <= 0 {
		return nil, ErrInvalidAmount
	}
	if _, err := s.GetBalance(ctx, sessionID); err != nil {
		return nil, err
	}

	balance, err := s.balanceRepo.UpdateBalance(ctx, sessionID, func(b *domain.Balance) error {
		if b.Current < total {
			return ErrInsufficientFunds
		}
		b.Current -= total
		b.Spent += total
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			zap.L().Warn("debit rejected", zap.String("session_id", sessionID), zap.Int64("total", total))
		} else {
			zap.L().Error("failed to debit wallet", zap.String("session_id", sessionID), zap.Error(err))
		}
		return nil, err
	}
	return balance, nil
}

// Close removes the session's wallet. Closing an unknown wallet is a no-op.
func (s *Service) Close(ctx context.Context, sessionID string) error {
	if err := s.balanceRepo.DeleteBalance(ctx, sessionID); err != nil {
		zap.L().Error("failed to close wallet", zap.String("session_id", sessionID), zap.Error(err))
		return err
	}
	return nil
}
