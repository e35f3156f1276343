package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ⭐ SSOT: Prometheus 메트릭은 이 패키지에서만 정의
var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creditrisk_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"route", "method", "status"},
	)
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "creditrisk_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"route"},
	)
	analysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "creditrisk_analyses_total",
			Help: "Completed analyses by outcome (favorable, caution, or error kind)",
		},
		[]string{"outcome"},
	)
	fetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "creditrisk_provider_fetch_duration_seconds",
			Help:    "Market data provider call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"call"},
	)
)

// ObserveRequest records one served API request
func ObserveRequest(route, method string, status int, elapsed time.Duration) {
	requestsTotal.WithLabelValues(route, method, http.StatusText(status)).Inc()
	requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveAnalysis records the outcome of one analysis run
func ObserveAnalysis(outcome string) {
	analysesTotal.WithLabelValues(outcome).Inc()
}

// ObserveFetch records the duration of one provider call
func ObserveFetch(call string, elapsed time.Duration) {
	fetchDuration.WithLabelValues(call).Observe(elapsed.Seconds())
}

// Handler exposes the default registry in the Prometheus text format
func Handler() http.Handler {
	return promhttp.Handler()
}
