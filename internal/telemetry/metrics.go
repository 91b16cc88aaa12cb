package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	EmailsSent   *prometheus.CounterVec
	AuthFailures *prometheus.CounterVec
	RateLimited  *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "founderflow",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "founderflow",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		EmailsSent: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "founderflow",
			Name:      "emails_sent_total",
			Help:      "Transactional emails by kind and outcome.",
		}, []string{"kind", "outcome"}),
		AuthFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "founderflow",
			Name:      "auth_failures_total",
			Help:      "Rejected authentication attempts by reason.",
		}, []string{"reason"}),
		RateLimited: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "founderflow",
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter, by route.",
		}, []string{"route"}),
	}
}
