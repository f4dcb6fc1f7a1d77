package nudge

import (
	"context"

	"github.com/brk3/habitflow/pkg/habit"
)

type mockClient struct {
	date   string
	habits []habit.Habit
	err    error
}

func (f *mockClient) TodayHabits(ctx context.Context) (string, []habit.Habit, error) {
	return f.date, f.habits, f.err
}
