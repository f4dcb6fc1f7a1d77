package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show today's completion statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := newClient().Statistics(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), formatStatistics(st))
		return nil
	},
}

var calendarCmd = &cobra.Command{
	Use:   "calendar [year] [month]",
	Short: "Show a month of scheduled habits",
	Long: `The "calendar" command prints a month grid with one dot per scheduled habit
(at most three per day). Filled dots mark completed days. Without arguments the
server's current month is shown.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var year, month int
		var err error
		if len(args) > 0 {
			if year, err = strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("invalid year %q", args[0])
			}
		}
		if len(args) > 1 {
			if month, err = strconv.Atoi(args[1]); err != nil || month < 1 || month > 12 {
				return fmt.Errorf("invalid month %q", args[1])
			}
		}
		m, err := newClient().Calendar(cmd.Context(), year, time.Month(month))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), formatMonth(m))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd, calendarCmd)
}
