package balance

//go:generate mockgen -source=balance.go -destination=mock_service.go -package=balance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"github.com/olobando-hub/BicPop-Web/internal/dto"
	"github.com/olobando-hub/BicPop-Web/internal/service/balanceservice"
	"github.com/olobando-hub/BicPop-Web/pkg/auth"
	"github.com/olobando-hub/BicPop-Web/pkg/utils"
)

// TopUpPresets are the amounts offered by the top-up form.
var TopUpPresets = []int64{10000, 25000, 50000, 100000}

type Service interface {
	GetBalance(ctx context.Context, sessionID string) (*domain.Balance, error)
	Credit(ctx context.Context, sessionID string, amount int64) (*domain.Balance, error)
}

type BalanceHandler struct {
	balanceService Service
	validate       *validator.Validate
	minTopUp       int64
}

func New(balanceService Service, validate *validator.Validate, minTopUp int64) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		validate:       validate,
		minTopUp:       minTopUp,
	}
}

func (h *BalanceHandler) response(b *domain.Balance) dto.BalanceResponseDTO {
	return dto.BalanceResponseDTO{
		Current:      b.Current,
		Credited:     b.Credited,
		Spent:        b.Spent,
		MinTopUp:     h.minTopUp,
		TopUpPresets: TopUpPresets,
	}
}

// GetBalance godoc
//
//	@Summary		Get wallet balance
//	@Description	Current balance with the running credited and spent totals
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		404	{object}	utils.Response	"Wallet not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/balance [get]
func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := auth.SessionID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	balance, err := h.balanceService.GetBalance(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, balanceservice.ErrWalletNotFound) {
			utils.RespondWithReason(w, http.StatusNotFound, "not_found", err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.response(balance))
}

// Credit godoc
//
//	@Summary		Top up the wallet
//	@Description	Simulated card top-up. The card is checked locally and never charged.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreditRequestDTO	true	"Top-up request"
//	@Success		200		{object}	dto.BalanceResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or card"
//	@Failure		401		{object}	utils.Response	"Unauthorized"
//	@Failure		404		{object}	utils.Response	"Wallet not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/balance/credit [post]
func (h *BalanceHandler) Credit(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := auth.SessionID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount <= 0 {
		utils.RespondWithReason(w, http.StatusBadRequest, "invalid_amount", balanceservice.ErrInvalidAmount.Error())
		return
	}
	if req.Amount < h.minTopUp {
		utils.RespondWithReason(w, http.StatusBadRequest, "below_minimum", fmt.Sprintf("minimum top-up is %d", h.minTopUp))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			if fieldErrs[0].Field() == "Amount" {
				utils.RespondWithReason(w, http.StatusBadRequest, "above_maximum", "amount is above the top-up limit")
				return
			}
			utils.RespondWithReason(w, http.StatusBadRequest, "invalid_card", "invalid "+fieldErrs[0].Field())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	balance, err := h.balanceService.Credit(r.Context(), sessionID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, balanceservice.ErrInvalidAmount):
			utils.RespondWithReason(w, http.StatusBadRequest, "invalid_amount", err.Error())
		case errors.Is(err, balanceservice.ErrBalanceOverflow):
			utils.RespondWithReason(w, http.StatusBadRequest, "above_maximum", err.Error())
		case errors.Is(err, balanceservice.ErrWalletNotFound):
			utils.RespondWithReason(w, http.StatusNotFound, "not_found", err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, h.response(balance))
}
