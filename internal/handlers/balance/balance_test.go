package balance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"github.com/olobando-hub/BicPop-Web/internal/dto"
	"github.com/olobando-hub/BicPop-Web/internal/service/balanceservice"
	"github.com/olobando-hub/BicPop-Web/pkg/auth"
	"github.com/olobando-hub/BicPop-Web/pkg/validate"
)

func NewMock(t *testing.T) (*BalanceHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	v := validator.New()
	require.NoError(t, validate.RegisterCardRules(v))
	handler := New(service, v, 1000)
	defer ctrl.Finish()
	return handler, service
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.SessionIDKey, "s1")

	tests := []struct {
		name         string
		ctx          context.Context
		prepareMock  func()
		expectedCode int
		expectedBody dto.BalanceResponseDTO
	}{
		{
			name: "Successful retrieval",
			ctx:  ctx,
			prepareMock: func() {
				service.EXPECT().GetBalance(ctx, "s1").Return(&domain.Balance{
					SessionID: "s1",
					Current:   70500,
					Spent:     4500,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{
				Current:      70500,
				Spent:        4500,
				MinTopUp:     1000,
				TopUpPresets: TopUpPresets,
			},
		},
		{
			name: "Wallet not found",
			ctx:  ctx,
			prepareMock: func() {
				service.EXPECT().GetBalance(ctx, "s1").Return(nil, balanceservice.ErrWalletNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			ctx:  ctx,
			prepareMock: func() {
				service.EXPECT().GetBalance(ctx, "s1").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name:         "No session",
			ctx:          context.Background(),
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/balance", nil).WithContext(tt.ctx)
			w := httptest.NewRecorder()
			handler.GetBalance(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestCreditHandler(t *testing.T) {
	handler, service := NewMock(t)
	ctx := context.WithValue(context.Background(), auth.SessionIDKey, "s1")
	card := `"card_number":"4242 4242 4242 4242","expiry":"12/49","cvv":"123","card_holder":"ANA GOMEZ"`

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedBody  dto.BalanceResponseDTO
	}{
		{
			name: "Successful top-up",
			body: `{"amount":10000,` + card + `}`,
			prepareMock: func() {
				service.EXPECT().Credit(ctx, "s1", int64(10000)).
					Return(&domain.Balance{Current: 85000, Credited: 10000}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.BalanceResponseDTO{Current: 85000, Credited: 10000, MinTopUp: 1000, TopUpPresets: TopUpPresets},
		},
		{
			name:          "Invalid request body",
			body:          `{"amount":"ten"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Zero amount",
			body:          `{"amount":0,` + card + `}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid_amount",
		},
		{
			name:          "Below minimum",
			body:          `{"amount":500,` + card + `}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "minimum top-up is 1000",
		},
		{
			name:          "Card fails Luhn check",
			body:          `{"amount":10000,"card_number":"4242424242424241","expiry":"12/49","cvv":"123","card_holder":"ANA"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid CardNumber",
		},
		{
			name:          "Expired card",
			body:          `{"amount":10000,"card_number":"4242424242424242","expiry":"01/20","cvv":"123","card_holder":"ANA"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid Expiry",
		},
		{
			name:          "Above maximum",
			body:          `{"amount":9223372036854775807,` + card + `}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "above_maximum",
		},
		{
			name: "Wallet at capacity",
			body: `{"amount":10000,` + card + `}`,
			prepareMock: func() {
				service.EXPECT().Credit(ctx, "s1", int64(10000)).Return(nil, balanceservice.ErrBalanceOverflow)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "above_maximum",
		},
		{
			name: "Internal server error",
			body: `{"amount":10000,` + card + `}`,
			prepareMock: func() {
				service.EXPECT().Credit(ctx, "s1", int64(10000)).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/balance/credit", bytes.NewBufferString(tt.body)).WithContext(ctx)
			w := httptest.NewRecorder()
			handler.Credit(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.BalanceResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}
