package validate

import (
	"strings"
	"time"
	"unicode"

	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/go-playground/validator/v10"
)

// IsLuhn reports whether s is a card number with a valid check digit.
// Spaces and dashes between digit groups are ignored.
func IsLuhn(s string) bool {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(s)
	if len(digits) < 12 || len(digits) > 19 {
		return false
	}
	return goluhn.Validate(digits) == nil
}

// IsExpiry reports whether s is an MM/YY date that has not passed at now.
func IsExpiry(s string, now time.Time) bool {
	t, err := time.Parse("01/06", strings.TrimSpace(s))
	if err != nil {
		return false
	}
	// the card is valid through the last day of the month
	return now.Before(t.AddDate(0, 1, 0))
}

func IsCVV(s string) bool {
	if len(s) < 3 || len(s) > 4 {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// RegisterCardRules adds the luhn, expiry and cvv tags to v.
func RegisterCardRules(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"luhn": func(fl validator.FieldLevel) bool {
			return IsLuhn(fl.Field().String())
		},
		"expiry": func(fl validator.FieldLevel) bool {
			return IsExpiry(fl.Field().String(), time.Now())
		},
		"cvv": func(fl validator.FieldLevel) bool {
			return IsCVV(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
