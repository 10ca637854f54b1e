// Package pricing computes rental totals in integer currency units.
package pricing

import (
	"errors"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
)

// Durations lists the rental lengths, in hours, a booking may use.
var Durations = []int{1, 2, 3, 4, 6, 8, 12, 24}

const DefaultDuration = 1

var (
	ErrInvalidDuration = errors.New("invalid rental duration")
	ErrInvalidPrice    = errors.New("invalid hourly price")
)

func IsValidDuration(hours int) bool {
	for _, d := range Durations {
		if d == hours {
			return true
		}
	}
	return false
}

// Total returns price * hours. No rounding, discounts or taxes apply.
func Total(price int64, hours int) (int64, error) {
	if price <= 0 {
		return 0, ErrInvalidPrice
	}
	if !IsValidDuration(hours) {
		return 0, ErrInvalidDuration
	}
	return price * int64(hours), nil
}

func Quote(b domain.Booking) (int64, error) {
	return Total(b.Bike.Price, b.Hours)
}
