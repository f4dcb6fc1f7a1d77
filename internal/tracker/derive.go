package tracker

import (
	"cmp"
	"math"
	"slices"
	"time"

	"github.com/brk3/habitflow/pkg/habit"
)

// SelectToday returns, in order, the habits whose schedule includes ref's weekday.
func SelectToday(habits []habit.Habit, ref time.Time) []habit.Habit {
	day := ref.Weekday()
	out := make([]habit.Habit, 0, len(habits))
	for _, h := range habits {
		if h.ActiveOn(day) {
			out = append(out, h)
		}
	}
	return out
}

// ComputeStatistics aggregates over the full collection and the subset scheduled
// today. Completion is counted over the today subset and the rate uses the same
// subset as denominator, so passing all as today yields completed/total.
func ComputeStatistics(all, today []habit.Habit) habit.Statistics {
	st := habit.Statistics{
		TotalHabits:    len(all),
		ScheduledToday: len(today),
	}
	for _, h := range all {
		st.TotalStreak += h.Streak
		st.LongestStreak = max(st.LongestStreak, h.Streak)
	}
	for _, h := range today {
		if h.CompletedToday {
			st.CompletedToday++
		}
	}

	var rate float64
	if st.ScheduledToday > 0 {
		rate = float64(st.CompletedToday) / float64(st.ScheduledToday) * 100
	}
	st.CompletionRate = math.Round(rate*100) / 100
	st.Percent = int(math.Round(rate))
	st.Message = MotivationalMessage(rate)
	return st
}

// MotivationalMessage maps a completion percentage onto the dashboard banner text.
func MotivationalMessage(rate float64) string {
	switch {
	case rate >= 100:
		return "Perfect day! You're on fire! 🔥"
	case rate >= 75:
		return "Great progress! Keep it up! 💪"
	case rate >= 50:
		return "You're doing well! Don't stop now! 🌟"
	case rate >= 25:
		return "Good start! You can do more! 🚀"
	default:
		return "Every journey starts with a single step! 🌱"
	}
}

// Ranking returns a copy of habits ordered by streak, highest first. Ties keep
// their collection order.
func Ranking(habits []habit.Habit) []habit.Habit {
	out := slices.Clone(habits)
	slices.SortStableFunc(out, func(a, b habit.Habit) int {
		return cmp.Compare(b.Streak, a.Streak)
	})
	return out
}
