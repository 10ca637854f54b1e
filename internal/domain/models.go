package domain

import "time"

type Category string

const (
	CategoryMechanical Category = "mechanical"
	CategoryElectric   Category = "electric"
)

// CategoryFilter is a Category or FilterAll.
type CategoryFilter string

const FilterAll CategoryFilter = "all"

type Bike struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  Category `json:"type"`
	Price     int64    `json:"price"`
	Image     string   `json:"image"`
	Battery   *int     `json:"battery,omitempty"`
	Available bool     `json:"available"`
	Location  string   `json:"location"`
}

type Session struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

type Balance struct {
	SessionID string
	Current   int64
	Credited  int64
	Spent     int64
}

type PaymentMethod string

const (
	PaymentBalance PaymentMethod = "balance"
	// PaymentExternal is settled by a third-party checkout page. Its
	// completion is never confirmed back to us.
	PaymentExternal PaymentMethod = "external"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentBalance || m == PaymentExternal
}

type BookingState string

const (
	BookingIdle       BookingState = "idle"
	BookingSelecting  BookingState = "selecting"
	BookingProcessing BookingState = "processing"
	BookingCompleted  BookingState = "completed"
	BookingCancelled  BookingState = "cancelled"
)

type Booking struct {
	ID          string
	SessionID   string
	Bike        Bike
	Hours       int
	Method      PaymentMethod
	Total       int64
	State       BookingState
	CheckoutURL string
	CreatedAt   time.Time
	PaidAt      time.Time
}

type Receipt struct {
	Booking Booking
	Total   int64
	// Balance is the wallet balance after settlement.
	Balance int64
	// Verified is false for external payments.
	Verified bool
}
