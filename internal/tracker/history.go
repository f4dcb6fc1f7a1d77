package tracker

import (
	"strings"
	"time"

	"github.com/brk3/habitflow/pkg/habit"
)

// Summarize derives history-based figures for h as of the calendar day of today.
// Only scheduled days count towards streaks; unscheduled days neither extend nor
// break a run. The current history streak is still alive when today is scheduled
// but not yet completed.
func Summarize(h habit.Habit, today time.Time) habit.HabitSummary {
	sum := habit.HabitSummary{
		Name:      h.Name,
		Streak:    h.Streak,
		CreatedAt: h.CreatedAt,
	}

	todayDate := civilDate(today)
	todayKey := todayDate.Format(habit.DateLayout)
	month := todayKey[:len("2006-01")]

	done := make(map[string]bool, len(h.CompletionHistory))
	var first time.Time
	for _, rec := range h.CompletionHistory {
		if !rec.Completed || rec.Date > todayKey {
			continue
		}
		d, err := time.Parse(habit.DateLayout, rec.Date)
		if err != nil {
			continue
		}
		done[rec.Date] = true
		sum.TotalDaysDone++
		if strings.HasPrefix(rec.Date, month) {
			sum.ThisMonth++
		}
		if first.IsZero() || d.Before(first) {
			first = d
			sum.FirstCompleted = rec.Date
		}
		if rec.Date > sum.LastCompleted {
			sum.LastCompleted = rec.Date
		}
	}
	if len(done) == 0 {
		return sum
	}

	run := 0
	for d := first; !d.After(todayDate); d = d.AddDate(0, 0, 1) {
		if !h.ActiveOn(d.Weekday()) {
			continue
		}
		if done[d.Format(habit.DateLayout)] {
			run++
			sum.LongestStreak = max(sum.LongestStreak, run)
		} else if !d.Equal(todayDate) {
			run = 0
		}
	}

	for d := todayDate; !d.Before(first); d = d.AddDate(0, 0, -1) {
		if !h.ActiveOn(d.Weekday()) {
			continue
		}
		if done[d.Format(habit.DateLayout)] {
			sum.HistoryStreak++
			continue
		}
		if d.Equal(todayDate) {
			continue
		}
		break
	}

	return sum
}

// civilDate drops the clock and zone so date arithmetic is free of DST shifts.
func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
