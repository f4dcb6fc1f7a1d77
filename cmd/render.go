package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/brk3/habitflow/internal/calendar"
	"github.com/brk3/habitflow/pkg/habit"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	todayStyle = lipgloss.NewStyle().
			Reverse(true)
)

func dot(c habit.Color, completed bool) string {
	glyph := "○"
	if completed {
		glyph = "●"
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render(glyph)
}

func formatHabit(h habit.Habit) string {
	box := "[ ]"
	if h.CompletedToday {
		box = "[x]"
	}
	line := fmt.Sprintf("%s %s %s  %s", box, dot(h.Color, h.CompletedToday), h.Name,
		mutedStyle.Render(fmt.Sprintf("streak %d  days %s  id %s", h.Streak, formatDays(h.DaysOfWeek), h.ID)))
	if h.Description != "" {
		line += "\n      " + mutedStyle.Render(h.Description)
	}
	return line
}

func formatDays(days []time.Weekday) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		names = append(names, d.String()[:3])
	}
	return strings.Join(names, ",")
}

func formatStatistics(st *habit.Statistics) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(st.Message) + "\n")
	fmt.Fprintf(&b, "Completed today: %d/%d (%d%%)\n", st.CompletedToday, st.ScheduledToday, st.Percent)
	fmt.Fprintf(&b, "Total habits:    %d\n", st.TotalHabits)
	fmt.Fprintf(&b, "Total streak:    %d\n", st.TotalStreak)
	fmt.Fprintf(&b, "Longest streak:  %d\n", st.LongestStreak)
	return b.String()
}

func formatMonth(m *calendar.Month) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.Title) + "\n")
	b.WriteString(mutedStyle.Render(" Su    Mo    Tu    We    Th    Fr    Sa") + "\n")
	for _, week := range m.Weeks() {
		for _, d := range week {
			if d == nil {
				b.WriteString("      ")
				continue
			}
			num := fmt.Sprintf("%3d", d.Day)
			if d.IsToday {
				num = todayStyle.Render(num)
			}
			dots := ""
			for _, dt := range d.Dots {
				dots += dot(dt.Color, dt.Completed)
			}
			b.WriteString(num + dots + strings.Repeat(" ", 3-len(d.Dots)))
		}
		b.WriteString("\n")
	}
	for _, l := range m.Legend {
		fmt.Fprintf(&b, "%s %s %s\n", dot(l.Color, true), l.Name, mutedStyle.Render(fmt.Sprintf("streak %d", l.Streak)))
	}
	return b.String()
}
