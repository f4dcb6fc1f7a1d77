package resend

import (
	"strings"
	"testing"

	"github.com/brk3/habitflow/pkg/habit"
)

func TestRender(t *testing.T) {
	body, err := render([]habit.Habit{
		{Name: "Read <30> Minutes", Color: habit.Green, Streak: 12},
		{Name: "Exercise", Color: habit.Red},
	}, "2026-10-17")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"2 habits", "2026-10-17", "Read &lt;30&gt; Minutes", "(12 day streak)", "Exercise"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}

func TestSendNudge_RequiresCredentials(t *testing.T) {
	r := &ResendNotifier{Email: "me@example.com"}
	if err := r.SendNudge([]habit.Habit{{Name: "Read"}}, "2026-10-17"); err == nil {
		t.Fatal("expected error without an api key")
	}
}
