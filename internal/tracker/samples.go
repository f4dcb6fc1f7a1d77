package tracker

import (
	"time"

	"github.com/brk3/habitflow/pkg/habit"
)

var everyDay = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
}

// SampleHabits is the starter collection shown on a fresh dashboard.
func SampleHabits() []habit.Habit {
	return []habit.Habit{
		{
			ID:                "1",
			Name:              "Morning Meditation",
			Description:       "10 minutes of mindfulness",
			Color:             habit.Blue,
			Streak:            7,
			CompletedToday:    true,
			CompletionHistory: []habit.CompletionRecord{},
			CreatedAt:         "2024-06-01",
			DaysOfWeek:        everyDay,
		},
		{
			ID:                "2",
			Name:              "Daily Exercise",
			Description:       "30 minutes of physical activity",
			Color:             habit.Green,
			Streak:            12,
			CompletedToday:    false,
			CompletionHistory: []habit.CompletionRecord{},
			CreatedAt:         "2024-05-15",
			DaysOfWeek:        everyDay,
		},
		{
			ID:                "3",
			Name:              "Read Books",
			Description:       "Read for at least 20 minutes",
			Color:             habit.Purple,
			Streak:            5,
			CompletedToday:    true,
			CompletionHistory: []habit.CompletionRecord{},
			CreatedAt:         "2024-06-05",
			DaysOfWeek:        everyDay,
		},
	}
}
