package metrics

import (
	"testing"

	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SessionOpened()
	m.WalletCredited(10000)
	m.WalletCredited(2500)
	m.BookingCompleted(domain.PaymentBalance, 4500)
	m.BookingCompleted(domain.PaymentExternal, 7500)
	m.BookingRejected(domain.PaymentBalance)
	m.BookingCancelled(domain.PaymentExternal)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessions))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.credits))
	assert.Equal(t, 12500.0, testutil.ToFloat64(m.creditedAmount))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookings.WithLabelValues("balance", "completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookings.WithLabelValues("balance", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookings.WithLabelValues("external", "cancelled")))
	assert.Equal(t, 4500.0, testutil.ToFloat64(m.revenue.WithLabelValues("balance")))
	assert.Equal(t, 7500.0, testutil.ToFloat64(m.revenue.WithLabelValues("external")))
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)

	assert.Panics(t, func() { New(reg) })
}
