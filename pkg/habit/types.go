package habit

import "time"

// DateLayout is the ISO calendar date format used for CreatedAt and history records.
const DateLayout = "2006-01-02"

type Habit struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	Color             Color              `json:"color"`
	Streak            int                `json:"streak"`
	CompletedToday    bool               `json:"completed_today"`
	CompletionHistory []CompletionRecord `json:"completion_history"`
	CreatedAt         string             `json:"created_at"`
	DaysOfWeek        []time.Weekday     `json:"days_of_week"`
}

type CompletionRecord struct {
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// ActiveOn reports whether the habit is scheduled on weekday d.
func (h Habit) ActiveOn(d time.Weekday) bool {
	for _, day := range h.DaysOfWeek {
		if day == d {
			return true
		}
	}
	return false
}

// Clone returns a copy that shares no slices with h.
func (h Habit) Clone() Habit {
	out := h
	out.DaysOfWeek = append([]time.Weekday(nil), h.DaysOfWeek...)
	out.CompletionHistory = append([]CompletionRecord{}, h.CompletionHistory...)
	return out
}

// CompletedOn reports whether the history holds a completed record for date.
func (h Habit) CompletedOn(date string) bool {
	for _, rec := range h.CompletionHistory {
		if rec.Date == date {
			return rec.Completed
		}
	}
	return false
}

type Statistics struct {
	TotalHabits    int     `json:"total_habits"`
	ScheduledToday int     `json:"scheduled_today"`
	CompletedToday int     `json:"completed_today"`
	TotalStreak    int     `json:"total_streak"`
	LongestStreak  int     `json:"longest_streak"`
	CompletionRate float64 `json:"completion_rate"`
	Percent        int     `json:"percent"`
	Message        string  `json:"message"`
}

type HabitSummary struct {
	Name           string `json:"name"`
	Streak         int    `json:"streak"`
	HistoryStreak  int    `json:"history_streak"`
	LongestStreak  int    `json:"longest_streak"`
	CreatedAt      string `json:"created_at"`
	FirstCompleted string `json:"first_completed,omitempty"`
	LastCompleted  string `json:"last_completed,omitempty"`
	TotalDaysDone  int    `json:"total_days_done"`
	ThisMonth      int    `json:"this_month"`
}
