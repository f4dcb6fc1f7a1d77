package server

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
			Name: "habitflow_http_requests_total",
			Help: "Total number of HTTP requests by route, method, and status",
		},
		[]string{"route", "method", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "habitflow_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status_code"},
	)

	habitsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "habitflow_habits_total",
			Help: "Number of habits in the collection",
		},
	)

	habitsCompletedToday = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "habitflow_habits_completed_today",
			Help: "Number of habits scheduled today that are marked complete",
		},
	)

	habitTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "habitflow_habit_toggles_total",
			Help: "Total number of completion toggles by resulting state",
		},
		[]string{"state"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(wrapped.statusCode)
		route := routePattern(r)

		httpRequestsTotal.WithLabelValues(route, r.Method, statusCode).Inc()
		httpRequestDuration.WithLabelValues(route, r.Method, statusCode).Observe(duration)
	})
}

// routePattern keeps habit ids out of metric labels.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func recordToggle(completed bool) {
	state := "incomplete"
	if completed {
		state = "complete"
	}
	habitTogglesTotal.WithLabelValues(state).Inc()
}

func (s *Server) updateHabitGauges() {
	st := s.store.Statistics(s.store.Today())
	habitsTotal.Set(float64(st.TotalHabits))
	habitsCompletedToday.Set(float64(st.CompletedToday))
}
