package tracker

import (
	"testing"
	"time"

	"github.com/brk3/habitflow/pkg/habit"
	"github.com/google/go-cmp/cmp"
)

func history(dates ...string) []habit.CompletionRecord {
	out := make([]habit.CompletionRecord, 0, len(dates))
	for _, d := range dates {
		out = append(out, habit.CompletionRecord{Date: d, Completed: true})
	}
	return out
}

func TestSummarize_Empty(t *testing.T) {
	h := habit.Habit{Name: "read", Streak: 3, CreatedAt: "2026-10-01", DaysOfWeek: habit.DefaultDays}
	got := Summarize(h, time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC))
	want := habit.HabitSummary{Name: "read", Streak: 3, CreatedAt: "2026-10-01"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarize_SkipsUnscheduledDays(t *testing.T) {
	// Weekdays only: Thu 8, Fri 9, (weekend skipped), Mon 12, Tue 13.
	h := habit.Habit{
		Name:              "run",
		DaysOfWeek:        habit.DefaultDays,
		CompletionHistory: history("2026-10-08", "2026-10-09", "2026-10-12", "2026-10-13"),
	}
	// Wednesday 14 is scheduled but not yet done; the run is still alive.
	got := Summarize(h, time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC))
	if got.HistoryStreak != 4 {
		t.Fatalf("history streak=%d want 4", got.HistoryStreak)
	}
	if got.LongestStreak != 4 {
		t.Fatalf("longest=%d want 4", got.LongestStreak)
	}
	if got.TotalDaysDone != 4 || got.ThisMonth != 4 {
		t.Fatalf("total=%d month=%d want 4/4", got.TotalDaysDone, got.ThisMonth)
	}
	if got.FirstCompleted != "2026-10-08" || got.LastCompleted != "2026-10-13" {
		t.Fatalf("first=%q last=%q", got.FirstCompleted, got.LastCompleted)
	}
}

func TestSummarize_BrokenRun(t *testing.T) {
	every := []time.Weekday{0, 1, 2, 3, 4, 5, 6}
	h := habit.Habit{
		DaysOfWeek: every,
		CompletionHistory: append(
			history("2026-09-28", "2026-09-29", "2026-09-30", "2026-10-01"),
			habit.CompletionRecord{Date: "2026-10-02", Completed: false},
			habit.CompletionRecord{Date: "2026-10-03", Completed: true},
		),
	}
	got := Summarize(h, time.Date(2026, 10, 5, 8, 0, 0, 0, time.UTC))
	if got.LongestStreak != 4 {
		t.Fatalf("longest=%d want 4", got.LongestStreak)
	}
	// Oct 4 was missed, so the run ending Oct 3 is over.
	if got.HistoryStreak != 0 {
		t.Fatalf("history streak=%d want 0", got.HistoryStreak)
	}
	if got.ThisMonth != 2 || got.TotalDaysDone != 5 {
		t.Fatalf("month=%d total=%d want 2/5", got.ThisMonth, got.TotalDaysDone)
	}
}

func TestSummarize_IgnoresFutureRecords(t *testing.T) {
	h := habit.Habit{
		DaysOfWeek:        []time.Weekday{0, 1, 2, 3, 4, 5, 6},
		CompletionHistory: history("2026-10-14", "2026-10-20"),
	}
	got := Summarize(h, time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC))
	if got.TotalDaysDone != 1 || got.HistoryStreak != 1 || got.LastCompleted != "2026-10-14" {
		t.Fatalf("got %+v", got)
	}
}
