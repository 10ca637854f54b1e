package sessionservice

//go:generate mockgen -source=sessionservice.go -destination=mock_sessionservice.go -package=sessionservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"github.com/olobando-hub/BicPop-Web/pkg/auth"
)

type Repo interface {
	FindByID(ctx context.Context, id string) (*domain.Session, error)
	Create(ctx context.Context, session *domain.Session) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

type Wallet interface {
	Open(ctx context.Context, sessionID string, initial int64) (*domain.Balance, error)
	Close(ctx context.Context, sessionID string) error
}

type Bookings interface {
	Discard(ctx context.Context, sessionID string) error
}

type Metrics interface {
	SessionOpened()
}

var (
	ErrEmptyCredentials    = errors.New("email and password are required")
	ErrInvalidRegistration = errors.New("invalid registration")
	ErrUnknownSession      = errors.New("unknown session")
)

// Registration is the sign-up form. Nothing is stored but the email.
type Registration struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	AcceptTerms     bool   `validate:"required"`
}

type Service struct {
	sessionRepo     Repo
	wallet          Wallet
	bookings        Bookings
	jwtService      auth.JWTServiceInterface
	metrics         Metrics
	validate        *validator.Validate
	startingBalance int64
	tokenTTL        time.Duration
}

func New(
	repo Repo,
	wallet Wallet,
	bookings Bookings,
	jwtService auth.JWTServiceInterface,
	metrics Metrics,
	validate *validator.Validate,
	startingBalance int64,
	tokenTTL time.Duration,
) *Service {
	return &Service{
		sessionRepo:     repo,
		wallet:          wallet,
		bookings:        bookings,
		jwtService:      jwtService,
		metrics:         metrics,
		validate:        validate,
		startingBalance: startingBalance,
		tokenTTL:        tokenTTL,
	}
}

// Login accepts any non-empty credentials and opens a fresh session.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Session, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", ErrEmptyCredentials
	}
	return s.open(ctx, email)
}

func (s *Service) Register(ctx context.Context, form Registration) (*domain.Session, string, error) {
	form.Email = strings.TrimSpace(form.Email)
	if err := s.validate.Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			zap.L().Info("registration rejected", zap.String("field", fieldErrs[0].Field()))
			return nil, "", fmt.Errorf("%w: %s", ErrInvalidRegistration, registrationMessage(fieldErrs[0]))
		}
		zap.L().Error("can't validate registration", zap.Error(err))
		return nil, "", err
	}
	return s.open(ctx, form.Email)
}

func (s *Service) open(ctx context.Context, email string) (*domain.Session, string, error) {
	session, err := s.sessionRepo.Create(ctx, &domain.Session{
		ID:        uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now(),
	})
	if err != nil {
		zap.L().Error("can't create session", zap.Error(err))
		return nil, "", err
	}

	if _, err = s.wallet.Open(ctx, session.ID, s.startingBalance); err != nil {
		zap.L().Error("can't open wallet", zap.Error(err))
		return nil, "", err
	}

	token, err := s.GenerateToken(session.ID)
	if err != nil {
		return nil, "", err
	}

	s.metrics.SessionOpened()
	zap.L().Info("session opened", zap.String("session_id", session.ID), zap.String("email", email))
	return session, token, nil
}

func (s *Service) GenerateToken(sessionID string) (string, error) {
	token, err := s.jwtService.GenerateJWT(sessionID, time.Now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

// Authorize resolves a bearer token to a session that is still open.
func (s *Service) Authorize(ctx context.Context, token string) (string, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return "", err
	}
	session, err := s.sessionRepo.FindByID(ctx, claims.SessionID)
	if err != nil {
		zap.L().Error("can't find session", zap.Error(err))
		return "", err
	}
	if session == nil {
		return "", ErrUnknownSession
	}
	return session.ID, nil
}

func (s *Service) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		zap.L().Error("can't find session", zap.Error(err))
		return nil, err
	}
	if session == nil {
		return nil, ErrUnknownSession
	}
	return session, nil
}

// Logout tears the session down. The live booking is cancelled before the
// wallet goes, so a pending settlement can no longer charge it.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if err := s.bookings.Discard(ctx, sessionID); err != nil {
		zap.L().Error("can't discard bookings", zap.String("session_id", sessionID), zap.Error(err))
		return err
	}
	if err := s.wallet.Close(ctx, sessionID); err != nil {
		zap.L().Error("can't close wallet", zap.String("session_id", sessionID), zap.Error(err))
		return err
	}
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		zap.L().Error("can't delete session", zap.Error(err))
		return err
	}
	zap.L().Info("session closed", zap.String("session_id", sessionID))
	return nil
}

func registrationMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "ConfirmPassword":
		if fe.Tag() == "eqfield" {
			return "passwords do not match"
		}
	case "Password":
		if fe.Tag() == "min" {
			return "password must be at least 6 characters"
		}
	case "Email":
		if fe.Tag() == "email" {
			return "email is not valid"
		}
	case "AcceptTerms":
		return "terms and conditions must be accepted"
	}
	return "all fields are required"
}
