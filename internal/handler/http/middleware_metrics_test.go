package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Route pattern as path label ----

func TestWithMetrics_RoutePatternLabel(t *testing.T) {
	router := chi.NewRouter()
	router.Use(withMetrics)
	router.Get("/api/notes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	patternSeries := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/notes/{id}", "200")
	before := testutil.ToFloat64(patternSeries)

	for _, target := range []string{"/api/notes/1", "/api/notes/2", "/api/notes/3"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	// every note id lands in the single /api/notes/{id} series
	assert.Equal(t, before+3, testutil.ToFloat64(patternSeries))

	// no per-id series are created from the raw request path
	assert.Zero(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/notes/1", "200")))
	assert.Zero(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/notes/2", "200")))
}

// ---- Unmatched requests share one series ----

func TestWithMetrics_UnmatchedRoutesShareOneSeries(t *testing.T) {
	router := chi.NewRouter()
	router.Use(withMetrics)
	router.Get("/known", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	unmatchedSeries := httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before := testutil.ToFloat64(unmatchedSeries)

	for _, target := range []string{"/nope", "/also/nope", "/still/very/much/nope"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		require.Equal(t, http.StatusNotFound, rr.Code)
	}

	assert.Equal(t, before+3, testutil.ToFloat64(unmatchedSeries))
	assert.Zero(t, testutil.ToFloat64(httpRequestsTotal.WithLabelValues(http.MethodGet, "/nope", "404")))
}

// ---- Status label reflects the written status ----

func TestWithMetrics_StatusLabel(t *testing.T) {
	router := chi.NewRouter()
	router.Use(withMetrics)
	router.Get("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	series := httpRequestsTotal.WithLabelValues(http.MethodGet, "/teapot", "418")
	before := testutil.ToFloat64(series)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	require.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(series))
}
