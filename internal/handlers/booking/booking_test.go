package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"github.com/olobando-hub/BicPop-Web/internal/dto"
	"github.com/olobando-hub/BicPop-Web/internal/pricing"
	"github.com/olobando-hub/BicPop-Web/internal/service/bookingservice"
	"github.com/olobando-hub/BicPop-Web/internal/settlement"
	"github.com/olobando-hub/BicPop-Web/pkg/auth"
)

func NewMock(t *testing.T) (*BookingHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, validator.New())
	defer ctrl.Finish()
	return handler, service
}

func sessionCtx() context.Context {
	return context.WithValue(context.Background(), auth.SessionIDKey, "s1")
}

func selecting() *domain.Booking {
	return &domain.Booking{
		ID:        "b1",
		SessionID: "s1",
		Bike:      domain.Bike{ID: "2", Name: "EcoBolt Pro", Category: domain.CategoryElectric, Price: 4500, Available: true},
		Hours:     1,
		Method:    domain.PaymentBalance,
		Total:     4500,
		State:     domain.BookingSelecting,
	}
}

func TestSelectHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedReason string
	}{
		{
			name: "Bike selected",
			body: `{"bike_id":"2"}`,
			prepareMock: func() {
				service.EXPECT().Select(gomock.Any(), "s1", "2").Return(selecting(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:           "Missing bike id",
			body:           `{}`,
			prepareMock:    func() {},
			expectedCode:   http.StatusBadRequest,
			expectedReason: "invalid_request",
		},
		{
			name: "Unknown bike",
			body: `{"bike_id":"42"}`,
			prepareMock: func() {
				service.EXPECT().Select(gomock.Any(), "s1", "42").Return(nil, bookingservice.ErrBikeNotFound)
			},
			expectedCode:   http.StatusNotFound,
			expectedReason: "not_found",
		},
		{
			name: "Unavailable bike",
			body: `{"bike_id":"4"}`,
			prepareMock: func() {
				service.EXPECT().Select(gomock.Any(), "s1", "4").Return(nil, bookingservice.ErrBikeUnavailable)
			},
			expectedCode:   http.StatusConflict,
			expectedReason: "unavailable",
		},
		{
			name: "Booking in progress",
			body: `{"bike_id":"1"}`,
			prepareMock: func() {
				service.EXPECT().Select(gomock.Any(), "s1", "1").Return(nil, bookingservice.ErrBookingInProgress)
			},
			expectedCode:   http.StatusConflict,
			expectedReason: "in_progress",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/booking", bytes.NewBufferString(tt.body)).WithContext(sessionCtx())
			w := httptest.NewRecorder()
			handler.Select(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedReason != "" {
				assert.Contains(t, w.Body.String(), `"reason":"`+tt.expectedReason+`"`)
				return
			}
			var body dto.BookingResponseDTO
			_ = json.NewDecoder(w.Body).Decode(&body)
			assert.Equal(t, "b1", body.ID)
			assert.Equal(t, "selecting", body.State)
			assert.Equal(t, pricing.Durations, body.Durations)
			assert.Nil(t, body.PaidAt)
		})
	}
}

func TestSetDurationHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		body           string
		prepareMock    func()
		expectedCode   int
		expectedReason string
	}{
		{
			name: "Three hours",
			body: `{"hours":3}`,
			prepareMock: func() {
				b := selecting()
				b.Hours, b.Total = 3, 13500
				service.EXPECT().SetDuration(gomock.Any(), "s1", 3).Return(b, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Duration outside the set",
			body: `{"hours":5}`,
			prepareMock: func() {
				service.EXPECT().SetDuration(gomock.Any(), "s1", 5).Return(nil, pricing.ErrInvalidDuration)
			},
			expectedCode:   http.StatusBadRequest,
			expectedReason: "invalid_duration",
		},
		{
			name: "Already processing",
			body: `{"hours":2}`,
			prepareMock: func() {
				service.EXPECT().SetDuration(gomock.Any(), "s1", 2).Return(nil, bookingservice.ErrNotSelecting)
			},
			expectedCode:   http.StatusConflict,
			expectedReason: "invalid_state",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPut, "/api/booking/duration", bytes.NewBufferString(tt.body)).WithContext(sessionCtx())
			w := httptest.NewRecorder()
			handler.SetDuration(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedReason != "" {
				assert.Contains(t, w.Body.String(), tt.expectedReason)
			}
		})
	}
}

func TestSetPaymentMethodHandler(t *testing.T) {
	handler, service := NewMock(t)

	b := selecting()
	b.Method = domain.PaymentExternal
	service.EXPECT().SetPaymentMethod(gomock.Any(), "s1", domain.PaymentExternal).Return(b, nil)

	r := httptest.NewRequest(http.MethodPut, "/api/booking/method", bytes.NewBufferString(`{"method":"external"}`)).WithContext(sessionCtx())
	w := httptest.NewRecorder()
	handler.SetPaymentMethod(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"method":"external"`)

	r = httptest.NewRequest(http.MethodPut, "/api/booking/method", bytes.NewBufferString(`{"method":"cash"}`)).WithContext(sessionCtx())
	w = httptest.NewRecorder()
	handler.SetPaymentMethod(w, r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPayHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedCode   int
		expectedReason string
	}{
		{
			name: "Payment started",
			prepareMock: func() {
				b := selecting()
				b.State = domain.BookingProcessing
				service.EXPECT().Pay(gomock.Any(), "s1").Return(b, nil)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name: "Insufficient funds",
			prepareMock: func() {
				service.EXPECT().Pay(gomock.Any(), "s1").Return(nil, bookingservice.ErrInsufficientFunds)
			},
			expectedCode:   http.StatusPaymentRequired,
			expectedReason: "insufficient_funds",
		},
		{
			name: "No booking",
			prepareMock: func() {
				service.EXPECT().Pay(gomock.Any(), "s1").Return(nil, bookingservice.ErrNoActiveBooking)
			},
			expectedCode:   http.StatusNotFound,
			expectedReason: "no_active_booking",
		},
		{
			name: "Unexpected failure",
			prepareMock: func() {
				service.EXPECT().Pay(gomock.Any(), "s1").Return(nil, errors.New("error"))
			},
			expectedCode:   http.StatusInternalServerError,
			expectedReason: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/booking/pay", nil).WithContext(sessionCtx())
			w := httptest.NewRecorder()
			handler.Pay(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedReason != "" {
				assert.Contains(t, w.Body.String(), tt.expectedReason)
			}
		})
	}
}

func TestConfirmPaymentHandler(t *testing.T) {
	handler, service := NewMock(t)
	paid := selecting()
	paid.State = domain.BookingCompleted
	paid.PaidAt = time.Date(2025, time.March, 1, 10, 0, 2, 0, time.UTC)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Settled",
			prepareMock: func() {
				service.EXPECT().ConfirmPayment(gomock.Any(), "s1").Return(&domain.Receipt{
					Booking:  *paid,
					Total:    4500,
					Balance:  70500,
					Verified: true,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `"balance":70500`,
		},
		{
			name: "Rejected at settlement",
			prepareMock: func() {
				service.EXPECT().ConfirmPayment(gomock.Any(), "s1").
					Return(nil, fmt.Errorf("settle: %w", bookingservice.ErrInsufficientFunds))
			},
			expectedCode: http.StatusPaymentRequired,
			expectedBody: "insufficient_funds",
		},
		{
			name: "Settlement dropped on shutdown",
			prepareMock: func() {
				service.EXPECT().ConfirmPayment(gomock.Any(), "s1").
					Return(nil, fmt.Errorf("%w: %w", bookingservice.ErrPaymentAborted, settlement.ErrClosed))
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: "payment_aborted",
		},
		{
			name: "Scheduler already closed",
			prepareMock: func() {
				service.EXPECT().ConfirmPayment(gomock.Any(), "s1").Return(nil, settlement.ErrClosed)
			},
			expectedCode: http.StatusServiceUnavailable,
			expectedBody: "shutting_down",
		},
		{
			name: "Client went away",
			prepareMock: func() {
				service.EXPECT().ConfirmPayment(gomock.Any(), "s1").Return(nil, context.Canceled)
			},
			expectedCode: http.StatusRequestTimeout,
			expectedBody: "timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/booking/confirm", nil).WithContext(sessionCtx())
			w := httptest.NewRecorder()
			handler.ConfirmPayment(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestReadOnlyHandlers(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Current(gomock.Any(), "s1").Return(selecting(), nil)
	service.EXPECT().Quote(gomock.Any(), "s1").Return(int64(13500), nil)
	service.EXPECT().Wait(gomock.Any(), "s1").Return(nil, bookingservice.ErrPaymentNotStarted)
	cancelled := selecting()
	cancelled.State = domain.BookingCancelled
	service.EXPECT().Cancel(gomock.Any(), "s1").Return(cancelled, nil)

	tests := []struct {
		name         string
		handle       http.HandlerFunc
		expectedCode int
		expectedBody string
	}{
		{name: "Current", handle: handler.Current, expectedCode: http.StatusOK, expectedBody: `"state":"selecting"`},
		{name: "Quote", handle: handler.Quote, expectedCode: http.StatusOK, expectedBody: `{"total":13500}`},
		{name: "Wait before pay", handle: handler.Wait, expectedCode: http.StatusConflict, expectedBody: "invalid_state"},
		{name: "Cancel", handle: handler.Cancel, expectedCode: http.StatusOK, expectedBody: `"state":"cancelled"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/booking", nil).WithContext(sessionCtx())
			w := httptest.NewRecorder()
			tt.handle(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func TestHandlersRequireSession(t *testing.T) {
	handler, _ := NewMock(t)

	for _, h := range []http.HandlerFunc{handler.Select, handler.Current, handler.Pay, handler.Cancel} {
		r := httptest.NewRequest(http.MethodPost, "/api/booking", nil)
		w := httptest.NewRecorder()
		h(w, r)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}
