package booking

//go:generate mockgen -source=booking.go -destination=mock_service.go -package=booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"github.com/olobando-hub/BicPop-Web/internal/dto"
	"github.com/olobando-hub/BicPop-Web/internal/pricing"
	"github.com/olobando-hub/BicPop-Web/internal/service/bookingservice"
	"github.com/olobando-hub/BicPop-Web/internal/settlement"
	"github.com/olobando-hub/BicPop-Web/pkg/auth"
	"github.com/olobando-hub/BicPop-Web/pkg/utils"
)

type Service interface {
	Select(ctx context.Context, sessionID, bikeID string) (*domain.Booking, error)
	Current(ctx context.Context, sessionID string) (*domain.Booking, error)
	SetDuration(ctx context.Context, sessionID string, hours int) (*domain.Booking, error)
	SetPaymentMethod(ctx context.Context, sessionID string, method domain.PaymentMethod) (*domain.Booking, error)
	Quote(ctx context.Context, sessionID string) (int64, error)
	Pay(ctx context.Context, sessionID string) (*domain.Booking, error)
	Wait(ctx context.Context, sessionID string) (*domain.Receipt, error)
	ConfirmPayment(ctx context.Context, sessionID string) (*domain.Receipt, error)
	Cancel(ctx context.Context, sessionID string) (*domain.Booking, error)
}

type BookingHandler struct {
	bookingService Service
	validate       *validator.Validate
}

func New(bookingService Service, validate *validator.Validate) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		validate:       validate,
	}
}

type failure struct {
	code   int
	reason string
}

var failures = []struct {
	err error
	failure
}{
	{bookingservice.ErrBikeNotFound, failure{http.StatusNotFound, "not_found"}},
	{bookingservice.ErrNoActiveBooking, failure{http.StatusNotFound, "no_active_booking"}},
	{bookingservice.ErrBikeUnavailable, failure{http.StatusConflict, "unavailable"}},
	{bookingservice.ErrBookingInProgress, failure{http.StatusConflict, "in_progress"}},
	{bookingservice.ErrPaymentInProgress, failure{http.StatusConflict, "in_progress"}},
	{bookingservice.ErrNotSelecting, failure{http.StatusConflict, "invalid_state"}},
	{bookingservice.ErrPaymentNotStarted, failure{http.StatusConflict, "invalid_state"}},
	{bookingservice.ErrAlreadyPaid, failure{http.StatusConflict, "invalid_state"}},
	{bookingservice.ErrBookingCancelled, failure{http.StatusConflict, "cancelled"}},
	{bookingservice.ErrInsufficientFunds, failure{http.StatusPaymentRequired, "insufficient_funds"}},
	{bookingservice.ErrPaymentAborted, failure{http.StatusServiceUnavailable, "payment_aborted"}},
	{settlement.ErrClosed, failure{http.StatusServiceUnavailable, "shutting_down"}},
	{bookingservice.ErrInvalidPaymentMethod, failure{http.StatusBadRequest, "invalid_method"}},
	{pricing.ErrInvalidDuration, failure{http.StatusBadRequest, "invalid_duration"}},
	{context.DeadlineExceeded, failure{http.StatusRequestTimeout, "timeout"}},
	{context.Canceled, failure{http.StatusRequestTimeout, "timeout"}},
}

func respondError(w http.ResponseWriter, err error) {
	for _, f := range failures {
		if errors.Is(err, f.err) {
			utils.RespondWithReason(w, f.code, f.reason, err.Error())
			return
		}
	}
	zap.L().Error("booking request failed", zap.Error(err))
	utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
}

func (h *BookingHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithReason(w, http.StatusBadRequest, "invalid_request", err.Error())
		return false
	}
	return true
}

func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := auth.SessionID(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
	}
	return id, ok
}

func bookingResponse(w http.ResponseWriter, code int, b *domain.Booking) {
	utils.RespondWithJSON(w, code, dto.NewBookingResponseDTO(*b, pricing.Durations))
}

// Select godoc
//
//	@Summary		Start a booking
//	@Description	Select an available bike. The booking starts at one hour paid from the wallet.
//	@Tags			Booking
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SelectBikeRequestDTO	true	"Bike to book"
//	@Success		201		{object}	dto.BookingResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Bike not found"
//	@Failure		409		{object}	utils.Response	"Bike unavailable or booking in progress"
//	@Router			/api/booking [post]
func (h *BookingHandler) Select(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req dto.SelectBikeRequestDTO
	if !h.decode(w, r, &req) {
		return
	}
	booking, err := h.bookingService.Select(r.Context(), sid, req.BikeID)
	if err != nil {
		respondError(w, err)
		return
	}
	bookingResponse(w, http.StatusCreated, booking)
}

// Current godoc
//
//	@Summary		Get the live booking
//	@Description	A completed booking is reported once; the session is idle afterwards.
//	@Tags			Booking
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BookingResponseDTO
//	@Failure		404	{object}	utils.Response	"No active booking"
//	@Router			/api/booking [get]
func (h *BookingHandler) Current(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	booking, err := h.bookingService.Current(r.Context(), sid)
	if err != nil {
		respondError(w, err)
		return
	}
	bookingResponse(w, http.StatusOK, booking)
}

// SetDuration godoc
//
//	@Summary	Change the rental duration
//	@Tags		Booking
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.SetDurationRequestDTO	true	"Hours, one of 1,2,3,4,6,8,12,24"
//	@Success	200		{object}	dto.BookingResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid duration"
//	@Failure	404		{object}	utils.Response	"No active booking"
//	@Failure	409		{object}	utils.Response	"Booking can no longer be changed"
//	@Router		/api/booking/duration [put]
func (h *BookingHandler) SetDuration(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req dto.SetDurationRequestDTO
	if !h.decode(w, r, &req) {
		return
	}
	booking, err := h.bookingService.SetDuration(r.Context(), sid, req.Hours)
	if err != nil {
		respondError(w, err)
		return
	}
	bookingResponse(w, http.StatusOK, booking)
}

// SetPaymentMethod godoc
//
//	@Summary	Change the payment method
//	@Tags		Booking
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.SetMethodRequestDTO	true	"balance or external"
//	@Success	200		{object}	dto.BookingResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid method"
//	@Failure	404		{object}	utils.Response	"No active booking"
//	@Failure	409		{object}	utils.Response	"Booking can no longer be changed"
//	@Router		/api/booking/method [put]
func (h *BookingHandler) SetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	var req dto.SetMethodRequestDTO
	if !h.decode(w, r, &req) {
		return
	}
	booking, err := h.bookingService.SetPaymentMethod(r.Context(), sid, domain.PaymentMethod(req.Method))
	if err != nil {
		respondError(w, err)
		return
	}
	bookingResponse(w, http.StatusOK, booking)
}

// Quote godoc
//
//	@Summary	Get the booking total
//	@Tags		Booking
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.QuoteResponseDTO
//	@Failure	404	{object}	utils.Response	"No active booking"
//	@Router		/api/booking/quote [get]
func (h *BookingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	total, err := h.bookingService.Quote(r.Context(), sid)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.QuoteResponseDTO{Total: total})
}

// Pay godoc
//
//	@Summary		Start payment
//	@Description	Settlement happens after a short delay. Poll GET /api/booking or call /api/booking/wait.
//	@Tags			Booking
//	@Security		BearerAuth
//	@Produce		json
//	@Success		202	{object}	dto.BookingResponseDTO
//	@Failure		402	{object}	utils.Response	"Insufficient funds"
//	@Failure		404	{object}	utils.Response	"No active booking"
//	@Failure		409	{object}	utils.Response	"Payment already in progress"
//	@Router			/api/booking/pay [post]
func (h *BookingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	booking, err := h.bookingService.Pay(r.Context(), sid)
	if err != nil {
		respondError(w, err)
		return
	}
	bookingResponse(w, http.StatusAccepted, booking)
}

// Wait godoc
//
//	@Summary	Wait for the started payment
//	@Tags		Booking
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.ReceiptResponseDTO
//	@Failure	402	{object}	utils.Response	"Insufficient funds"
//	@Failure	409	{object}	utils.Response	"Booking cancelled or payment not started"
//	@Router		/api/booking/wait [get]
func (h *BookingHandler) Wait(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	receipt, err := h.bookingService.Wait(r.Context(), sid)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReceiptResponseDTO(*receipt, pricing.Durations))
}

// ConfirmPayment godoc
//
//	@Summary		Pay and wait for settlement
//	@Description	Closing the request before settlement cancels the booking.
//	@Tags			Booking
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReceiptResponseDTO
//	@Failure		402	{object}	utils.Response	"Insufficient funds"
//	@Failure		404	{object}	utils.Response	"No active booking"
//	@Failure		409	{object}	utils.Response	"Payment already in progress"
//	@Failure		503	{object}	utils.Response	"Settlement dropped during shutdown"
//	@Router			/api/booking/confirm [post]
func (h *BookingHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	receipt, err := h.bookingService.ConfirmPayment(r.Context(), sid)
	if err != nil {
		respondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewReceiptResponseDTO(*receipt, pricing.Durations))
}

// Cancel godoc
//
//	@Summary	Cancel the live booking
//	@Tags		Booking
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	dto.BookingResponseDTO
//	@Failure	404	{object}	utils.Response	"No active booking"
//	@Failure	409	{object}	utils.Response	"Booking already paid"
//	@Router		/api/booking [delete]
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionID(w, r)
	if !ok {
		return
	}
	booking, err := h.bookingService.Cancel(r.Context(), sid)
	if err != nil {
		respondError(w, err)
		return
	}
	bookingResponse(w, http.StatusOK, booking)
}
