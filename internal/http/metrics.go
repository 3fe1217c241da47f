package http

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus metrics for outbound API calls.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ytapi_requests_total",
		Help: "Total API requests by endpoint and HTTP status",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ytapi_request_duration_seconds",
		Help:    "API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ytapi_errors_total",
		Help: "Total API errors by class",
	}, []string{"class"})
)

const (
	errorClassClient  = "client"
	errorClassServer  = "server"
	errorClassQuota   = "quota"
	errorClassNetwork = "network"
)

func recordRequest(endpoint string, status int, duration time.Duration) {
	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())

	switch {
	case status == 403 || status == 429:
		// Quota rejections arrive as 403 (daily quota) or 429 (rate).
		errorsTotal.WithLabelValues(errorClassQuota).Inc()
	case status >= 500:
		errorsTotal.WithLabelValues(errorClassServer).Inc()
	case status >= 400:
		errorsTotal.WithLabelValues(errorClassClient).Inc()
	}
}

func recordError(class string) {
	errorsTotal.WithLabelValues(class).Inc()
}
