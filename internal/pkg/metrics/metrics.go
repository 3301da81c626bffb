package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Requests handled, labeled by method, route and status class.",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	BookingsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bookings_created_total",
		Help: "Bookings created, excluding idempotent replays.",
	})

	VoucherRendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "voucher_renders_total",
		Help: "Voucher renderings by format and outcome.",
	}, []string{"format", "outcome"})
)

// RenderOutcome increments the voucher counter with a success/failure
// outcome derived from err.
func RenderOutcome(format string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	VoucherRendersTotal.WithLabelValues(format, outcome).Inc()
}
