package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/brk3/habitflow/pkg/habit"
)

var (
	addDescription string
	addColor       string
	addDays        []string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits",
	Long:  `The "list" command lists every tracked habit in creation order.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		habits, err := newClient().ListHabits(cmd.Context())
		if err != nil {
			return err
		}
		if len(habits) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No habits yet.")
			return nil
		}
		for _, h := range habits {
			fmt.Fprintln(cmd.OutOrStdout(), formatHabit(h))
		}
		return nil
	},
}

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "List habits scheduled for today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, habits, err := newClient().TodayHabits(cmd.Context())
		if err != nil {
			return err
		}
		if len(habits) == 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Nothing scheduled for %s.\n", date)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), titleStyle.Render(date))
		for _, h := range habits {
			fmt.Fprintln(cmd.OutOrStdout(), formatHabit(h))
		}
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a habit",
	Long: `The "add" command creates a habit. Days are weekday names or numbers (0 is
Sunday) and default to Monday through Friday.`,
	Example: `  habitflow add "Morning Meditation" --color purple --days mon,wed,fri`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := parseDays(addDays)
		if err != nil {
			return err
		}
		h, err := newClient().AddHabit(cmd.Context(), habit.Draft{
			Name:        args[0],
			Description: addDescription,
			Color:       addColor,
			DaysOfWeek:  days,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Added", formatHabit(*h))
		return nil
	},
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Flip today's completion for a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := newClient().ToggleHabit(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatHabit(*h))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a habit",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().DeleteHabit(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Deleted", args[0])
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary <id>",
	Short: "Show streak and history totals for a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newClient().GetHabitSummary(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render(s.Name))
		fmt.Fprintf(out, "Streak:          %d\n", s.Streak)
		fmt.Fprintf(out, "History streak:  %d\n", s.HistoryStreak)
		fmt.Fprintf(out, "Longest streak:  %d\n", s.LongestStreak)
		fmt.Fprintf(out, "Days done:       %d (%d this month)\n", s.TotalDaysDone, s.ThisMonth)
		if s.LastCompleted != "" {
			fmt.Fprintf(out, "Last completed:  %s\n", s.LastCompleted)
		}
		return nil
	},
}

// parseDays accepts weekday names, three letter abbreviations or numbers 0-6,
// comma separated or repeated. Validation of the resulting set is left to the server.
func parseDays(in []string) ([]time.Weekday, error) {
	if len(in) == 0 {
		return habit.DefaultDays, nil
	}
	var days []time.Weekday
	for _, s := range in {
		s = strings.ToLower(strings.TrimSpace(s))
		if n, err := strconv.Atoi(s); err == nil {
			days = append(days, time.Weekday(n))
			continue
		}
		found := false
		for d := time.Sunday; d <= time.Saturday; d++ {
			name := strings.ToLower(d.String())
			if s == name || s == name[:3] {
				days = append(days, d)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown weekday %q", s)
		}
	}
	return days, nil
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "optional description")
	addCmd.Flags().StringVarP(&addColor, "color", "c", "", "color name, e.g. blue or purple (default blue)")
	addCmd.Flags().StringSliceVar(&addDays, "days", nil, "active weekdays, e.g. mon,wed,fri (default mon-fri)")

	rootCmd.AddCommand(listCmd, todayCmd, addCmd, toggleCmd, deleteCmd, summaryCmd)
}
