package metrics

import (
	"github.com/olobando-hub/BicPop-Web/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bicpop"

type Metrics struct {
	sessions       prometheus.Counter
	credits        prometheus.Counter
	creditedAmount prometheus.Counter
	bookings       *prometheus.CounterVec
	revenue        *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_opened_total",
			Help:      "Sessions opened through login or registration.",
		}),
		credits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wallet",
			Name:      "credits_total",
			Help:      "Successful wallet top-ups.",
		}),
		creditedAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wallet",
			Name:      "credited_amount_total",
			Help:      "Sum of wallet top-ups in currency units.",
		}),
		bookings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "outcomes_total",
			Help:      "Checkout outcomes by payment method and result.",
		}, []string{"method", "outcome"}),
		revenue: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "booking",
			Name:      "revenue_total",
			Help:      "Sum of completed booking totals by payment method.",
		}, []string{"method"}),
	}
	reg.MustRegister(m.sessions, m.credits, m.creditedAmount, m.bookings, m.revenue)
	return m
}

func (m *Metrics) SessionOpened() {
	m.sessions.Inc()
}

func (m *Metrics) WalletCredited(amount int64) {
	m.credits.Inc()
	m.creditedAmount.Add(float64(amount))
}

func (m *Metrics) BookingCompleted(method domain.PaymentMethod, total int64) {
	m.bookings.WithLabelValues(string(method), "completed").Inc()
	m.revenue.WithLabelValues(string(method)).Add(float64(total))
}

func (m *Metrics) BookingRejected(method domain.PaymentMethod) {
	m.bookings.WithLabelValues(string(method), "rejected").Inc()
}

func (m *Metrics) BookingCancelled(method domain.PaymentMethod) {
	m.bookings.WithLabelValues(string(method), "cancelled").Inc()
}
