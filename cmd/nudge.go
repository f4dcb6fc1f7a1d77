package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brk3/habitflow/internal/nudge"
	"github.com/brk3/habitflow/internal/nudge/resend"
)

var nudgeCmd = &cobra.Command{
	Use:   "nudge",
	Short: "Email a reminder listing today's unfinished habits",
	Args:  cobra.NoArgs,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Nudge.ResendAPIKey == "" {
			return fmt.Errorf("HABITFLOW_RESEND_API_KEY environment variable is not set")
		}
		if cfg.Nudge.Email == "" {
			return fmt.Errorf("no nudge email configured (nudge.email or HABITFLOW_NUDGE_EMAIL)")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		n := &resend.ResendNotifier{
			APIKey: cfg.Nudge.ResendAPIKey,
			From:   cfg.Nudge.From,
			Email:  cfg.Nudge.Email,
		}
		count, err := nudge.Run(cmd.Context(), newClient(), n)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d pending habits\n", count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nudgeCmd)
}
