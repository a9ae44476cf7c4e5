package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CheckoutMetrics covers the checkout critical path and its best-effort
// side effects.
type CheckoutMetrics struct {
	Checkouts            *prometheus.CounterVec
	CheckoutDurationMS   prometheus.Histogram
	ReservationConflicts prometheus.Counter
	NotificationFailures prometheus.Counter
}

func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	m := &CheckoutMetrics{
		Checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "checkout",
			Name:      "attempts_total",
			Help:      "Checkout attempts by outcome.",
		}, []string{"result"}),
		CheckoutDurationMS: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "checkout",
			Name:      "duration_ms",
			Help:      "Checkout latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}),
		ReservationConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "checkout",
			Name:      "reservation_conflicts_total",
			Help:      "Reservations lost to concurrent checkouts.",
		}),
		NotificationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "checkout",
			Name:      "notification_failures_total",
			Help:      "Order confirmations that could not be dispatched.",
		}),
	}
	reg.MustRegister(m.Checkouts, m.CheckoutDurationMS, m.ReservationConflicts, m.NotificationFailures)
	return m
}

func Handler() http.Handler {
	return promhttp.Handler()
}
