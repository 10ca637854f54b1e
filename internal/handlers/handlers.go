package handlers

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/olobando-hub/BicPop-Web/docs"
	"github.com/olobando-hub/BicPop-Web/internal/config"
	balancehandlers "github.com/olobando-hub/BicPop-Web/internal/handlers/balance"
	bikeshandlers "github.com/olobando-hub/BicPop-Web/internal/handlers/bikes"
	bookinghandlers "github.com/olobando-hub/BicPop-Web/internal/handlers/booking"
	sessionhandlers "github.com/olobando-hub/BicPop-Web/internal/handlers/session"
	"github.com/olobando-hub/BicPop-Web/internal/service"
	"github.com/olobando-hub/BicPop-Web/pkg/auth"
)

type SessionHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type BikesHandler interface {
	ListBikes(w http.ResponseWriter, r *http.Request)
	GetBike(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Credit(w http.ResponseWriter, r *http.Request)
}

type BookingHandler interface {
	Select(w http.ResponseWriter, r *http.Request)
	Current(w http.ResponseWriter, r *http.Request)
	SetDuration(w http.ResponseWriter, r *http.Request)
	SetPaymentMethod(w http.ResponseWriter, r *http.Request)
	Quote(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
	Wait(w http.ResponseWriter, r *http.Request)
	ConfirmPayment(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	SessionHandler SessionHandler
	BikesHandler   BikesHandler
	BalanceHandler BalanceHandler
	BookingHandler BookingHandler

	authorizer auth.Authorizer
	gatherer   prometheus.Gatherer
}

func New(s *service.Services, cfg *config.Config, validate *validator.Validate, gatherer prometheus.Gatherer) *Handlers {
	return &Handlers{
		SessionHandler: sessionhandlers.New(s.SessionService, validate),
		BikesHandler:   bikeshandlers.New(s.CatalogService),
		BalanceHandler: balancehandlers.New(s.BalanceService, validate, cfg.MinTopUp),
		BookingHandler: bookinghandlers.New(s.BookingService, validate),
		authorizer:     s.SessionService,
		gatherer:       gatherer,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Post("/session/register", h.SessionHandler.Register)
		r.Post("/session/login", h.SessionHandler.Login)

		r.Route("/bikes", func(r chi.Router) {
			r.Get("/", h.BikesHandler.ListBikes)
			r.Get("/{id}", h.BikesHandler.GetBike)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware(h.authorizer))
			r.Delete("/session", h.SessionHandler.Logout)
			r.Route("/balance", func(r chi.Router) {
				r.Get("/", h.BalanceHandler.GetBalance)
				r.Post("/credit", h.BalanceHandler.Credit)
			})
			r.Route("/booking", func(r chi.Router) {
				r.Post("/", h.BookingHandler.Select)
				r.Get("/", h.BookingHandler.Current)
				r.Delete("/", h.BookingHandler.Cancel)
				r.Put("/duration", h.BookingHandler.SetDuration)
				r.Put("/method", h.BookingHandler.SetPaymentMethod)
				r.Get("/quote", h.BookingHandler.Quote)
				r.Post("/pay", h.BookingHandler.Pay)
				r.Get("/wait", h.BookingHandler.Wait)
				r.Post("/confirm", h.BookingHandler.ConfirmPayment)
			})
		})
	})

	return r
}
