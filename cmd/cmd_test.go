package cmd

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/brk3/habitflow/internal/config"
	"github.com/brk3/habitflow/internal/server"
	"github.com/brk3/habitflow/internal/tracker"
)

// newTestAPI starts a server on a store frozen at Saturday 2026-10-17 and points
// the CLI at it through the environment.
func newTestAPI(t *testing.T, opts ...tracker.Option) *tracker.Store {
	t.Helper()
	testChdir(t, t.TempDir())
	t.Setenv("HABITFLOW_CONFIG", "")
	t.Setenv("HABITFLOW_TIMEZONE", "UTC")

	now := time.Date(2026, time.October, 17, 10, 0, 0, 0, time.UTC)
	base := []tracker.Option{tracker.WithClock(func() time.Time { return now }), tracker.WithLocation(time.UTC)}
	st := tracker.New(append(base, opts...)...)

	c := config.Default()
	srv := httptest.NewServer(server.New(&c, st).Router())
	t.Cleanup(srv.Close)
	t.Setenv("HABITFLOW_API_BASE", srv.URL)
	return st
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	addDescription, addColor, addDays, apiBase = "", "", nil, ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_HabitLifecycle(t *testing.T) {
	st := newTestAPI(t)

	out, err := runCLI(t, "add", "Meditate", "--color", "purple", "--days", "sun,mon,tue,wed,thu,fri,sat")
	if err != nil {
		t.Fatalf("add failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Added") || !strings.Contains(out, "Meditate") {
		t.Fatalf("unexpected add output: %s", out)
	}
	id := st.Habits()[0].ID

	out, err = runCLI(t, "toggle", id)
	if err != nil || !strings.Contains(out, "[x]") {
		t.Fatalf("toggle: %v\n%s", err, out)
	}

	out, err = runCLI(t, "stats")
	if err != nil || !strings.Contains(out, "Completed today: 1/1 (100%)") {
		t.Fatalf("stats: %v\n%s", err, out)
	}

	out, err = runCLI(t, "today")
	if err != nil || !strings.Contains(out, "Meditate") || !strings.Contains(out, "2026-10-17") {
		t.Fatalf("today: %v\n%s", err, out)
	}

	out, err = runCLI(t, "summary", id)
	if err != nil || !strings.Contains(out, "Days done:       1") {
		t.Fatalf("summary: %v\n%s", err, out)
	}

	if out, err = runCLI(t, "delete", id); err != nil {
		t.Fatalf("delete: %v\n%s", err, out)
	}
	out, err = runCLI(t, "list")
	if err != nil || !strings.Contains(out, "No habits yet.") {
		t.Fatalf("list after delete: %v\n%s", err, out)
	}
}

func TestCLI_AddRejected(t *testing.T) {
	st := newTestAPI(t)

	out, err := runCLI(t, "add", "   ")
	if err == nil {
		t.Fatalf("expected error, got output %s", out)
	}
	if !strings.Contains(out, "name") {
		t.Fatalf("error output should explain the rejection: %s", out)
	}
	if st.Len() != 0 {
		t.Fatal("rejected habit was stored")
	}
}

func TestCLI_ToggleUnknown(t *testing.T) {
	newTestAPI(t)

	out, err := runCLI(t, "toggle", "missing")
	if err == nil || !strings.Contains(out, "habit not found") {
		t.Fatalf("got err %v output %s", err, out)
	}
}

func TestCLI_CalendarAndVersion(t *testing.T) {
	newTestAPI(t, tracker.WithHabits(tracker.SampleHabits()...))

	out, err := runCLI(t, "calendar", "2026", "10")
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	for _, want := range []string{"October 2026", "Morning Meditation", "Exercise"} {
		if !strings.Contains(out, want) {
			t.Errorf("calendar output missing %q:\n%s", want, out)
		}
	}

	if _, err := runCLI(t, "calendar", "2026", "13"); err == nil {
		t.Fatal("expected error for month 13")
	}

	out, err = runCLI(t, "version")
	if err != nil || !strings.Contains(out, "Client Version") || !strings.Contains(out, "Server Version") {
		t.Fatalf("version: %v\n%s", err, out)
	}
}

func TestCLI_NudgeNeedsCredentials(t *testing.T) {
	newTestAPI(t)
	t.Setenv("HABITFLOW_RESEND_API_KEY", "")

	if _, err := runCLI(t, "nudge"); err == nil {
		t.Fatal("expected error without an api key")
	}
}

func TestParseDays(t *testing.T) {
	tests := []struct {
		in   []string
		want []time.Weekday
	}{
		{nil, []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}},
		{[]string{"mon", "Wednesday", " fri "}, []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		{[]string{"0", "6"}, []time.Weekday{time.Sunday, time.Saturday}},
	}
	for _, tt := range tests {
		got, err := parseDays(tt.in)
		if err != nil {
			t.Fatalf("parseDays(%v) failed: %v", tt.in, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("parseDays(%v) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
	if _, err := parseDays([]string{"someday"}); err == nil {
		t.Fatal("expected error for unknown weekday")
	}
}
