package dto

import (
	"time"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
)

type SelectBikeRequestDTO struct {
	BikeID string `json:"bike_id" validate:"required" example:"2"`
}

type SetDurationRequestDTO struct {
	Hours int `json:"hours" validate:"required" example:"3"`
}

type SetMethodRequestDTO struct {
	Method string `json:"method" validate:"required,oneof=balance external" example:"balance"`
}

type BookingResponseDTO struct {
	ID          string     `json:"id" example:"0b8e6f52-4f7e-4a43-9d4c-2d7d1d0f7f55"`
	Bike        BikeDTO    `json:"bike"`
	Hours       int        `json:"hours" example:"3"`
	Method      string     `json:"method" example:"balance"`
	Total       int64      `json:"total" example:"13500"`
	State       string     `json:"state" example:"selecting"`
	CheckoutURL string     `json:"checkout_url,omitempty"`
	Durations   []int      `json:"durations" example:"1,2,3,4,6,8,12,24"`
	CreatedAt   time.Time  `json:"created_at" example:"2025-03-01T10:00:00Z"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

type QuoteResponseDTO struct {
	Total int64 `json:"total" example:"13500"`
}

type ReceiptResponseDTO struct {
	Booking  BookingResponseDTO `json:"booking"`
	Total    int64              `json:"total" example:"13500"`
	Balance  int64              `json:"balance" example:"61500"`
	Verified bool               `json:"verified" example:"true"`
}

func NewBookingResponseDTO(b domain.Booking, durations []int) BookingResponseDTO {
	resp := BookingResponseDTO{
		ID:          b.ID,
		Bike:        NewBikeDTO(b.Bike),
		Hours:       b.Hours,
		Method:      string(b.Method),
		Total:       b.Total,
		State:       string(b.State),
		CheckoutURL: b.CheckoutURL,
		Durations:   durations,
		CreatedAt:   b.CreatedAt,
	}
	if !b.PaidAt.IsZero() {
		paidAt := b.PaidAt
		resp.PaidAt = &paidAt
	}
	return resp
}

func NewReceiptResponseDTO(r domain.Receipt, durations []int) ReceiptResponseDTO {
	return ReceiptResponseDTO{
		Booking:  NewBookingResponseDTO(r.Booking, durations),
		Total:    r.Total,
		Balance:  r.Balance,
		Verified: r.Verified,
	}
}
