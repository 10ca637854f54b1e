package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/olobando-hub/BicPop-Web/internal/config"
	"github.com/olobando-hub/BicPop-Web/internal/handlers"
	"github.com/olobando-hub/BicPop-Web/internal/metrics"
	"github.com/olobando-hub/BicPop-Web/internal/repo"
	"github.com/olobando-hub/BicPop-Web/internal/service"
	"github.com/olobando-hub/BicPop-Web/internal/settlement"
	"github.com/olobando-hub/BicPop-Web/pkg/logger"
	"github.com/olobando-hub/BicPop-Web/pkg/validate"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg       *config.Config
	api       *handlers.Handlers
	srv       *service.Services
	repo      *repo.Repositories
	scheduler *settlement.Scheduler

	errCh chan error
	group errgroup.Group
	// drained is closed once the http server has finished shutting down.
	drained chan struct{}
}

func New() *Application {
	return &Application{
		errCh:   make(chan error),
		drained: make(chan struct{}),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	v := validator.New()
	if err = validate.RegisterCardRules(v); err != nil {
		return fmt.Errorf("can't register card rules: %w", err)
	}

	a.cfg = cfg
	a.scheduler = settlement.New(settlement.NewWorkerPool(cfg.SettleWorkers))
	a.repo = repo.New()
	a.srv = service.New(a.repo, cfg, a.scheduler, metrics.New(registry), v)
	a.api = handlers.New(a.srv, cfg, v, registry)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startSettlement()

	zap.L().Info("all systems started successfully",
		zap.Int64("starting_balance", cfg.StartingBalance),
		zap.Duration("processing_delay", cfg.ProcessingDelay),
	)
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	a.group.Go(func() error {
		defer close(a.drained)
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	a.group.Go(func() error {
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
		return nil
	})

	return nil
}

// startSettlement keeps the scheduler running until the http server has
// drained, so in-flight confirmations can still settle.
func (a *Application) startSettlement() {
	ctx, cancel := context.WithCancel(context.Background())
	a.group.Go(func() error {
		<-a.drained
		cancel()
		return nil
	})
	a.group.Go(func() error {
		return a.scheduler.Run(ctx)
	})
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	groupErr := a.group.Wait()
	close(a.errCh)
	wg.Wait()

	if appErr == nil && groupErr != nil {
		zap.L().Error("shutdown failed", zap.Error(groupErr))
		appErr = groupErr
	}
	return appErr
}
