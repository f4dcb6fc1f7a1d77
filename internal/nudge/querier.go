package nudge

import (
	"context"

	"github.com/brk3/habitflow/pkg/habit"
)

type Querier interface {
	// TodayHabits returns the date the server considers today and the habits scheduled on it.
	TodayHabits(ctx context.Context) (string, []habit.Habit, error)
}

type Notifier interface {
	SendNudge(pending []habit.Habit, date string) error
}
