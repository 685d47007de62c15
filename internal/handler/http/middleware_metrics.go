package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)
)

// withMetrics records request counts, latencies, and in-flight requests for
// the /metrics endpoint. The chi route pattern is used as the path label, so
// every note id shares the /api/notes/{id} series and label cardinality stays
// bounded by the number of registered routes.
func withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		method := r.Method

		httpActiveRequests.Inc()
		defer httpActiveRequests.Dec()

		mw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(mw, r)

		// the route pattern is only known after routing has run
		path := routePatternLabel(r)

		httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(mw.status)).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

// routePatternLabel returns the matched chi route pattern for the request.
// Requests that matched no route share a single "unmatched" label instead of
// producing one series per requested path.
func routePatternLabel(r *http.Request) string {
	routeCtx := chi.RouteContext(r.Context())
	if routeCtx == nil {
		return r.URL.Path
	}

	if pattern := routeCtx.RoutePattern(); pattern != "" {
		return pattern
	}

	return "unmatched"
}
