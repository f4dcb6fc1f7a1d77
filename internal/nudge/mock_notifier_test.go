package nudge

import "github.com/brk3/habitflow/pkg/habit"

type mockNotifier struct {
	called bool
	habits []habit.Habit
	date   string
	err    error
}

func (m *mockNotifier) SendNudge(habits []habit.Habit, date string) error {
	m.called = true
	m.habits = habits
	m.date = date
	return m.err
}
