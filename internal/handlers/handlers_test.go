package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/olobando-hub/BicPop-Web/internal/config"
	"github.com/olobando-hub/BicPop-Web/internal/metrics"
	"github.com/olobando-hub/BicPop-Web/internal/repo"
	"github.com/olobando-hub/BicPop-Web/internal/service"
	"github.com/olobando-hub/BicPop-Web/internal/settlement"
	"github.com/olobando-hub/BicPop-Web/pkg/auth"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{MinTopUp: 1000, TokenSecret: "secret", TokenTTL: time.Hour}
	scheduler := settlement.New(settlement.NewWorkerPool(1))
	defer scheduler.Close()
	registry := prometheus.NewRegistry()
	services := service.New(repo.New(), cfg, scheduler, metrics.New(registry), validator.New())

	h := New(services, cfg, validator.New(), registry)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.SessionHandler)
	assert.NotNil(t, h.BikesHandler)
	assert.NotNil(t, h.BalanceHandler)
	assert.NotNil(t, h.BookingHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionHandler := NewMockSessionHandler(ctrl)
	mockBikesHandler := NewMockBikesHandler(ctrl)
	mockBalanceHandler := NewMockBalanceHandler(ctrl)
	mockBookingHandler := NewMockBookingHandler(ctrl)
	mockAuthorizer := auth.NewMockAuthorizer(ctrl)

	mockSessionHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockSessionHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockBikesHandler.EXPECT().ListBikes(gomock.Any(), gomock.Any()).AnyTimes()
	mockBikesHandler.EXPECT().GetBike(gomock.Any(), gomock.Any()).AnyTimes()
	mockBalanceHandler.EXPECT().GetBalance(gomock.Any(), gomock.Any()).AnyTimes()
	mockBookingHandler.EXPECT().Quote(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthorizer.EXPECT().Authorize(gomock.Any(), "good").Return("s1", nil).AnyTimes()

	h := &Handlers{
		SessionHandler: mockSessionHandler,
		BikesHandler:   mockBikesHandler,
		BalanceHandler: mockBalanceHandler,
		BookingHandler: mockBookingHandler,
		authorizer:     mockAuthorizer,
		gatherer:       prometheus.NewRegistry(),
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"POST", "/api/session/register", "", http.StatusOK},
		{"POST", "/api/session/login", "", http.StatusOK},
		{"GET", "/api/bikes", "", http.StatusOK},
		{"GET", "/api/bikes/2", "", http.StatusOK},
		{"GET", "/metrics", "", http.StatusOK},
		{"DELETE", "/api/session", "", http.StatusUnauthorized},
		{"GET", "/api/balance", "", http.StatusUnauthorized},
		{"POST", "/api/balance/credit", "", http.StatusUnauthorized},
		{"POST", "/api/booking", "", http.StatusUnauthorized},
		{"GET", "/api/booking", "", http.StatusUnauthorized},
		{"PUT", "/api/booking/duration", "", http.StatusUnauthorized},
		{"PUT", "/api/booking/method", "", http.StatusUnauthorized},
		{"POST", "/api/booking/pay", "", http.StatusUnauthorized},
		{"GET", "/api/booking/wait", "", http.StatusUnauthorized},
		{"POST", "/api/booking/confirm", "", http.StatusUnauthorized},
		{"DELETE", "/api/booking", "", http.StatusUnauthorized},
		{"GET", "/api/balance", "good", http.StatusOK},
		{"GET", "/api/booking/quote", "good", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
