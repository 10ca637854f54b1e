package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/olobando-hub/BicPop-Web/internal/config"
	"github.com/olobando-hub/BicPop-Web/internal/handlers/balance"
	"github.com/olobando-hub/BicPop-Web/internal/handlers/bikes"
	"github.com/olobando-hub/BicPop-Web/internal/handlers/booking"
	"github.com/olobando-hub/BicPop-Web/internal/handlers/session"
	"github.com/olobando-hub/BicPop-Web/internal/metrics"
	"github.com/olobando-hub/BicPop-Web/internal/repo"
	"github.com/olobando-hub/BicPop-Web/internal/service/balanceservice"
	"github.com/olobando-hub/BicPop-Web/internal/service/bookingservice"
	"github.com/olobando-hub/BicPop-Web/internal/service/catalogservice"
	"github.com/olobando-hub/BicPop-Web/internal/service/sessionservice"
	pkgauth "github.com/olobando-hub/BicPop-Web/pkg/auth"
)

// SessionService opens sessions and authorizes their tokens.
type SessionService interface {
	session.Service
	pkgauth.Authorizer
}

type Services struct {
	CatalogService bikes.Service
	BalanceService balance.Service
	BookingService booking.Service
	SessionService SessionService
}

func New(
	repo *repo.Repositories,
	cfg *config.Config,
	scheduler bookingservice.Scheduler,
	m *metrics.Metrics,
	validate *validator.Validate,
) *Services {
	catalogService := catalogservice.New(repo.BikeRepo)
	balanceService := balanceservice.New(repo.BalanceRepo, m)
	bookingService := bookingservice.New(repo.BikeRepo, balanceService, scheduler, m, cfg.ProcessingDelay, cfg.CheckoutURL)
	sessionService := sessionservice.New(
		repo.SessionRepo,
		balanceService,
		bookingService,
		pkgauth.NewJWTService(cfg.TokenSecret),
		m,
		validate,
		cfg.StartingBalance,
		cfg.TokenTTL,
	)

	return &Services{
		CatalogService: catalogService,
		BalanceService: balanceService,
		BookingService: bookingService,
		SessionService: sessionService,
	}
}
