package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/brk3/habitflow/internal/config"
	"github.com/brk3/habitflow/pkg/habit"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Store is the habit collection the API serves. *tracker.Store satisfies it.
type Store interface {
	Add(d habit.Draft) (habit.Habit, error)
	Toggle(id string) (habit.Habit, bool)
	Delete(id string) bool
	Habits() []habit.Habit
	Get(id string) (habit.Habit, bool)
	SelectToday(ref time.Time) []habit.Habit
	Statistics(ref time.Time) habit.Statistics
	Today() time.Time
	Location() *time.Location
}

type Server struct {
	cfg   *config.Config
	store Store
}

func New(cfg *config.Config, store Store) *Server {
	s := &Server{cfg: cfg, store: store}
	s.updateHabitGauges()
	return s
}

// HTTPServer wraps Router in an http.Server listening on the configured address.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	_ = writeJSON(w, code, ErrorResponse{Error: msg})
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(metricsMiddleware)

	r.Get("/version", s.getVersionInfo)
	r.Get("/colors", s.listColors)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/stats", s.getStatistics)
	r.Get("/calendar", s.getCalendar)

	r.Route("/habits", func(r chi.Router) {
		r.Get("/", s.listHabits)
		r.Post("/", s.addHabit)
		r.Get("/today", s.listTodayHabits)
		r.Get("/ranking", s.listRanking)
		r.Get("/{habit_id}", s.getHabit)
		r.Delete("/{habit_id}", s.deleteHabit)
		r.Get("/{habit_id}/summary", s.getHabitSummary)
		r.Post("/{habit_id}/toggle", s.toggleHabit)
	})
	return r
}
