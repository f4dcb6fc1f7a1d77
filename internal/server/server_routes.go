package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/brk3/habitflow/internal/calendar"
	"github.com/brk3/habitflow/internal/logger"
	"github.com/brk3/habitflow/internal/tracker"
	"github.com/brk3/habitflow/pkg/habit"
	"github.com/brk3/habitflow/pkg/versioninfo"
	"github.com/go-chi/chi/v5"
)

func (s *Server) getVersionInfo(w http.ResponseWriter, _ *http.Request) {
	if err := writeJSON(w, http.StatusOK, versioninfo.Get()); err != nil {
		logger.Error("Failed to serialize version info response", "error", err)
	}
}

func (s *Server) listColors(w http.ResponseWriter, _ *http.Request) {
	colors := make([]ColorResponse, 0, len(habit.Palette))
	for _, c := range habit.Palette {
		colors = append(colors, ColorResponse{Name: c, Class: c.Class(), Hex: c.Hex()})
	}
	if err := writeJSON(w, http.StatusOK, colors); err != nil {
		logger.Error("Failed to serialize color list response", "error", err)
	}
}

func (s *Server) listHabits(w http.ResponseWriter, _ *http.Request) {
	habits := s.store.Habits()
	logger.Debug("Listing habits", "count", len(habits))
	if err := writeJSON(w, http.StatusOK, HabitListResponse{Habits: habits}); err != nil {
		logger.Error("Failed to serialize habit list response", "error", err)
	}
}

func (s *Server) addHabit(w http.ResponseWriter, r *http.Request) {
	var d habit.Draft
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		logger.Warn("Invalid JSON in add habit request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	h, err := s.store.Add(d)
	if err != nil {
		if errors.Is(err, habit.ErrInvalidDraft) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("Failed to add habit", "name", d.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to add habit")
		return
	}
	logger.Info("Habit added", "habit_id", h.ID, "name", h.Name, "color", h.Color, "days", h.DaysOfWeek)
	s.updateHabitGauges()

	if err := writeJSON(w, http.StatusCreated, h); err != nil {
		logger.Error("Failed to serialize add habit response", "habit_id", h.ID, "error", err)
	}
}

func (s *Server) getHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	h, ok := s.store.Get(habitID)
	if !ok {
		writeError(w, http.StatusNotFound, "habit not found")
		return
	}
	if err := writeJSON(w, http.StatusOK, h); err != nil {
		logger.Error("Failed to serialize get habit response", "habit_id", habitID, "error", err)
	}
}

func (s *Server) getHabitSummary(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	logger.Debug("Getting habit summary", "habit_id", habitID)

	h, ok := s.store.Get(habitID)
	if !ok {
		writeError(w, http.StatusNotFound, "habit not found")
		return
	}

	resp := HabitSummaryResponse{
		HabitID:      habitID,
		HabitSummary: tracker.Summarize(h, s.store.Today()),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("Failed to serialize habit summary response", "habit_id", habitID, "error", err)
	}
}

// toggleHabit answers 404 for unknown ids; the store itself treats them as a no-op.
func (s *Server) toggleHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	h, ok := s.store.Toggle(habitID)
	if !ok {
		logger.Debug("Toggle for unknown habit", "habit_id", habitID)
		writeError(w, http.StatusNotFound, "habit not found")
		return
	}
	logger.Info("Habit toggled", "habit_id", habitID, "completed_today", h.CompletedToday, "streak", h.Streak)
	recordToggle(h.CompletedToday)
	s.updateHabitGauges()

	if err := writeJSON(w, http.StatusOK, h); err != nil {
		logger.Error("Failed to serialize toggle response", "habit_id", habitID, "error", err)
	}
}

// deleteHabit is idempotent: deleting an unknown id still answers 204.
func (s *Server) deleteHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	if s.store.Delete(habitID) {
		logger.Info("Habit deleted", "habit_id", habitID)
		s.updateHabitGauges()
	} else {
		logger.Debug("Delete for unknown habit", "habit_id", habitID)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listTodayHabits(w http.ResponseWriter, r *http.Request) {
	ref, err := s.referenceDate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp := TodayResponse{
		Date:    ref.Format(habit.DateLayout),
		Weekday: int(ref.Weekday()),
		Habits:  s.store.SelectToday(ref),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("Failed to serialize today response", "error", err)
	}
}

func (s *Server) listRanking(w http.ResponseWriter, _ *http.Request) {
	resp := HabitListResponse{Habits: tracker.Ranking(s.store.Habits())}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("Failed to serialize ranking response", "error", err)
	}
}

func (s *Server) getStatistics(w http.ResponseWriter, r *http.Request) {
	ref, err := s.referenceDate(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	resp := StatisticsResponse{
		Date:       ref.Format(habit.DateLayout),
		Statistics: s.store.Statistics(ref),
	}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("Failed to serialize statistics response", "error", err)
	}
}

func (s *Server) getCalendar(w http.ResponseWriter, r *http.Request) {
	today := s.store.Today()
	year, month := today.Year(), today.Month()

	q := r.URL.Query()
	if v := q.Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1 || y > 9999 {
			writeError(w, http.StatusBadRequest, "invalid year")
			return
		}
		year = y
	}
	if v := q.Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			writeError(w, http.StatusBadRequest, "invalid month")
			return
		}
		month = time.Month(m)
	}

	resp := calendar.Build(year, month, today, s.store.Habits())
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		logger.Error("Failed to serialize calendar response", "year", year, "month", month, "error", err)
	}
}

// referenceDate reads ?date=YYYY-MM-DD in the store's time zone, defaulting to today.
func (s *Server) referenceDate(r *http.Request) (time.Time, error) {
	v := r.URL.Query().Get("date")
	if v == "" {
		return s.store.Today(), nil
	}
	t, err := time.ParseInLocation(habit.DateLayout, v, s.store.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", v)
	}
	return t, nil
}
