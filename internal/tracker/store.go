// Package tracker owns the in-memory habit collection and the views derived from it.
package tracker

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/brk3/habitflow/internal/logger"
	"github.com/brk3/habitflow/pkg/habit"
	"github.com/google/uuid"
)

// Store is the single owner of the habit collection. Every mutation replaces the
// collection wholesale under the lock; readers always receive copies.
type Store struct {
	mu     sync.RWMutex
	habits []habit.Habit

	now   func() time.Time
	loc   *time.Location
	newID func() string
}

// maxIDAttempts bounds how often Add asks the generator for an unused id.
const maxIDAttempts = 5

var ErrIDExhausted = errors.New("could not allocate an unused habit id")

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the time zone that decides which calendar day is "today".
func WithLocation(loc *time.Location) Option {
	return func(s *Store) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithIDGenerator replaces the uuid generator. Add retries a colliding id a few
// times and then fails with ErrIDExhausted.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithHabits pre-loads habits as given, keeping their streak and completion state.
// Habits with duplicate ids or an empty schedule are skipped.
func WithHabits(hs ...habit.Habit) Option {
	return func(s *Store) {
		for _, h := range hs {
			days, err := habit.NormalizeDays(h.DaysOfWeek)
			if err != nil {
				logger.Warn("Skipping seeded habit", "habit_id", h.ID, "error", err)
				continue
			}
			if h.ID == "" || s.indexOf(h.ID) >= 0 {
				logger.Warn("Skipping seeded habit with missing or duplicate id", "habit_id", h.ID)
				continue
			}
			h = h.Clone()
			h.DaysOfWeek = days
			h.Streak = max(0, h.Streak)
			s.habits = append(s.habits, h)
		}
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		habits: []habit.Habit{},
		now:    time.Now,
		loc:    time.Local,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the current instant in the store's time zone.
func (s *Store) Today() time.Time {
	return s.now().In(s.loc)
}

func (s *Store) Location() *time.Location {
	return s.loc
}

// Add validates the draft and appends a new habit. Invalid drafts leave the
// collection untouched and return an error wrapping habit.ErrInvalidDraft.
func (s *Store) Add(d habit.Draft) (habit.Habit, error) {
	n, err := d.Normalize()
	if err != nil {
		logger.Debug("Rejected habit draft", "name", d.Name, "error", err)
		return habit.Habit{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.newID()
	for attempt := 1; s.indexOf(id) >= 0; attempt++ {
		if attempt == maxIDAttempts {
			logger.Warn("Id generator kept returning existing ids", "habit_id", id, "attempts", attempt)
			return habit.Habit{}, ErrIDExhausted
		}
		id = s.newID()
	}

	h := habit.Habit{
		ID:                id,
		Name:              n.Name,
		Description:       n.Description,
		Color:             n.Color,
		Streak:            0,
		CompletedToday:    false,
		CompletionHistory: []habit.CompletionRecord{},
		CreatedAt:         s.Today().Format(habit.DateLayout),
		DaysOfWeek:        n.DaysOfWeek,
	}

	next := make([]habit.Habit, len(s.habits), len(s.habits)+1)
	copy(next, s.habits)
	s.habits = append(next, h)

	logger.Debug("Added habit", "habit_id", h.ID, "name", h.Name, "count", len(s.habits))
	return h.Clone(), nil
}

// Toggle flips today's completion. Completing increments the streak, un-completing
// decrements it with a floor of zero. There is no guard against toggling the same
// day repeatedly. Unknown ids are a no-op and report false.
func (s *Store) Toggle(id string) (habit.Habit, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return habit.Habit{}, false
	}

	h := s.habits[i].Clone()
	h.CompletedToday = !h.CompletedToday
	if h.CompletedToday {
		h.Streak++
	} else {
		h.Streak = max(0, h.Streak-1)
	}
	h.CompletionHistory = recordCompletion(h.CompletionHistory, s.Today().Format(habit.DateLayout), h.CompletedToday)

	next := slices.Clone(s.habits)
	next[i] = h
	s.habits = next

	logger.Debug("Toggled habit", "habit_id", id, "completed_today", h.CompletedToday, "streak", h.Streak)
	return h.Clone(), true
}

// Delete removes the habit permanently. Unknown ids are a no-op and report false.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	next := make([]habit.Habit, 0, len(s.habits)-1)
	next = append(next, s.habits[:i]...)
	s.habits = append(next, s.habits[i+1:]...)

	logger.Debug("Deleted habit", "habit_id", id, "count", len(s.habits))
	return true
}

// Habits returns the collection in insertion order.
func (s *Store) Habits() []habit.Habit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]habit.Habit, len(s.habits))
	for i := range s.habits {
		out[i] = s.habits[i].Clone()
	}
	return out
}

func (s *Store) Get(id string) (habit.Habit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return habit.Habit{}, false
	}
	return s.habits[i].Clone(), true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.habits)
}

// SelectToday filters the current collection to the habits scheduled on ref's weekday.
func (s *Store) SelectToday(ref time.Time) []habit.Habit {
	return SelectToday(s.Habits(), ref.In(s.loc))
}

// Statistics computes the aggregate view for the day containing ref.
func (s *Store) Statistics(ref time.Time) habit.Statistics {
	all := s.Habits()
	return ComputeStatistics(all, SelectToday(all, ref.In(s.loc)))
}

// indexOf must be called with s.mu held.
func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.habits, func(h habit.Habit) bool { return h.ID == id })
}

// recordCompletion upserts the record for date, keeping the history in date order.
func recordCompletion(history []habit.CompletionRecord, date string, completed bool) []habit.CompletionRecord {
	i, found := slices.BinarySearchFunc(history, date, func(r habit.CompletionRecord, d string) int {
		return strings.Compare(r.Date, d)
	})
	if found {
		history[i].Completed = completed
		return history
	}
	return slices.Insert(history, i, habit.CompletionRecord{Date: date, Completed: completed})
}
