package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trivia",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of HTTP requests by status code and method.",
	}, []string{"code", "method"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "trivia",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by status code and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"code", "method"})
)

// instrumentHTTP records request counts and latencies for everything behind
// it, scraped via /metrics.
func instrumentHTTP() middleware {
	return func(next http.Handler) http.Handler {
		return promhttp.InstrumentHandlerDuration(httpRequestDuration,
			promhttp.InstrumentHandlerCounter(httpRequestsTotal, next))
	}
}
