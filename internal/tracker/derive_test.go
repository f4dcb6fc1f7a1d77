package tracker

import (
	"testing"
	"time"

	"github.com/brk3/habitflow/pkg/habit"
	"github.com/google/go-cmp/cmp"
)

func ids(hs []habit.Habit) []string {
	out := []string{}
	for _, h := range hs {
		out = append(out, h.ID)
	}
	return out
}

func TestSelectToday(t *testing.T) {
	habits := []habit.Habit{
		{ID: "weekdays", DaysOfWeek: []time.Weekday{1, 2, 3, 4, 5}},
		{ID: "weekend", DaysOfWeek: []time.Weekday{0, 6}},
		{ID: "monday", DaysOfWeek: []time.Weekday{1}},
	}

	tests := []struct {
		date string
		want []string
	}{
		{"2026-10-12", []string{"weekdays", "monday"}}, // Monday
		{"2026-10-14", []string{"weekdays"}},           // Wednesday
		{"2026-10-17", []string{"weekend"}},            // Saturday
		{"2026-02-01", []string{"weekend"}},            // Sunday
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			ref, _ := time.Parse(habit.DateLayout, tt.date)
			if diff := cmp.Diff(tt.want, ids(SelectToday(habits, ref))); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSelectToday_NoMatch(t *testing.T) {
	habits := []habit.Habit{{ID: "monday", DaysOfWeek: []time.Weekday{1}}}
	got := SelectToday(habits, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC))
	if got == nil || len(got) != 0 {
		t.Fatalf("got %v, want empty non-nil slice", got)
	}
}

func TestStore_SelectTodayUsesLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	s, _ := newTestStore(t, WithLocation(tokyo), WithHabits(
		habit.Habit{ID: "sun", Name: "sun", DaysOfWeek: []time.Weekday{time.Sunday}},
	))
	// Saturday 20:00 UTC is already Sunday in Tokyo.
	ref := time.Date(2026, 10, 17, 20, 0, 0, 0, time.UTC)
	if got := s.SelectToday(ref); len(got) != 1 {
		t.Fatalf("got %d habits, want the Sunday habit", len(got))
	}
}

func TestComputeStatistics_Samples(t *testing.T) {
	all := SampleHabits()
	st := ComputeStatistics(all, all)

	want := habit.Statistics{
		TotalHabits:    3,
		ScheduledToday: 3,
		CompletedToday: 2,
		TotalStreak:    24,
		LongestStreak:  12,
		CompletionRate: 66.67,
		Percent:        67,
		Message:        "You're doing well! Don't stop now! 🌟",
	}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeStatistics_Empty(t *testing.T) {
	st := ComputeStatistics(nil, nil)
	if st.TotalHabits != 0 || st.LongestStreak != 0 || st.TotalStreak != 0 || st.CompletionRate != 0 || st.Percent != 0 {
		t.Fatalf("got %+v, want zero aggregates", st)
	}
	if st.Message != MotivationalMessage(0) {
		t.Fatalf("got message %q", st.Message)
	}
}

func TestComputeStatistics_CountsTodaySubsetOnly(t *testing.T) {
	all := []habit.Habit{
		{ID: "a", Streak: 4, CompletedToday: true, DaysOfWeek: []time.Weekday{1}},
		{ID: "b", Streak: 9, CompletedToday: true, DaysOfWeek: []time.Weekday{2}},
		{ID: "c", Streak: 1, CompletedToday: false, DaysOfWeek: []time.Weekday{1}},
	}
	monday := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	st := ComputeStatistics(all, SelectToday(all, monday))

	if st.TotalHabits != 3 || st.ScheduledToday != 2 || st.CompletedToday != 1 {
		t.Fatalf("got %+v", st)
	}
	if st.TotalStreak != 14 || st.LongestStreak != 9 {
		t.Fatalf("streak aggregates span the full collection, got %+v", st)
	}
	if st.CompletionRate != 50 || st.Percent != 50 {
		t.Fatalf("got rate %.2f percent %d, want 50", st.CompletionRate, st.Percent)
	}
}

func TestMotivationalMessage(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{100, "Perfect day! You're on fire! 🔥"},
		{99.99, "Great progress! Keep it up! 💪"},
		{75, "Great progress! Keep it up! 💪"},
		{74.9, "You're doing well! Don't stop now! 🌟"},
		{50, "You're doing well! Don't stop now! 🌟"},
		{25, "Good start! You can do more! 🚀"},
		{24.9, "Every journey starts with a single step! 🌱"},
		{0, "Every journey starts with a single step! 🌱"},
	}
	for _, tt := range tests {
		if got := MotivationalMessage(tt.rate); got != tt.want {
			t.Errorf("MotivationalMessage(%v) = %q, want %q", tt.rate, got, tt.want)
		}
	}
}

func TestRanking(t *testing.T) {
	all := []habit.Habit{
		{ID: "a", Streak: 5},
		{ID: "b", Streak: 12},
		{ID: "c", Streak: 5},
		{ID: "d", Streak: 7},
	}
	got := Ranking(all)
	if diff := cmp.Diff([]string{"b", "d", "a", "c"}, ids(got)); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	if all[0].ID != "a" {
		t.Fatal("Ranking reordered its input")
	}
}

func TestStore_StatisticsCountsScheduledHabitsOnly(t *testing.T) {
	everyDay := []time.Weekday{0, 1, 2, 3, 4, 5, 6}
	s, _ := newTestStore(t, WithHabits(
		habit.Habit{ID: "daily", Name: "Stretch", Color: habit.Green, Streak: 3, CompletedToday: true, DaysOfWeek: everyDay},
		habit.Habit{ID: "weekday", Name: "Commute run", Color: habit.Red, Streak: 1, DaysOfWeek: habit.DefaultDays},
	))
	saturday := time.Date(2026, time.October, 17, 12, 0, 0, 0, time.UTC)

	st := s.Statistics(saturday)
	want := habit.Statistics{
		TotalHabits:    2,
		ScheduledToday: 1,
		CompletedToday: 1,
		TotalStreak:    4,
		LongestStreak:  3,
		CompletionRate: 100,
		Percent:        100,
		Message:        MotivationalMessage(100),
	}
	if diff := cmp.Diff(want, st); diff != "" {
		t.Fatalf("statistics mismatch (-want +got):\n%s", diff)
	}

	monday := time.Date(2026, time.October, 12, 12, 0, 0, 0, time.UTC)
	if st := s.Statistics(monday); st.ScheduledToday != 2 || st.Percent != 50 {
		t.Fatalf("monday: %+v", st)
	}
}
