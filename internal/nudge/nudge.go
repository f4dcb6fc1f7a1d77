package nudge

import (
	"context"
	"fmt"

	"github.com/brk3/habitflow/internal/logger"
	"github.com/brk3/habitflow/pkg/habit"
)

// Pending returns the querier's date for today and the habits scheduled on it
// that are not yet done.
func Pending(ctx context.Context, q Querier) (string, []habit.Habit, error) {
	date, today, err := q.TodayHabits(ctx)
	if err != nil {
		return "", nil, fmt.Errorf("fetch today's habits: %w", err)
	}
	var pending []habit.Habit
	for _, h := range today {
		if !h.CompletedToday {
			pending = append(pending, h)
		}
	}
	return date, pending, nil
}

// Run sends one nudge listing today's pending habits and reports how many were
// listed. Nothing is sent when everything is done.
func Run(ctx context.Context, q Querier, n Notifier) (int, error) {
	date, pending, err := Pending(ctx, q)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		logger.Info("nothing to nudge", "date", date)
		return 0, nil
	}
	if err := n.SendNudge(pending, date); err != nil {
		return 0, fmt.Errorf("send nudge: %w", err)
	}
	logger.Info("nudge sent", "date", date, "pending", len(pending))
	return len(pending), nil
}
