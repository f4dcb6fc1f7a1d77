package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brk3/habitflow/internal/apiclient"
	"github.com/brk3/habitflow/internal/config"
	"github.com/brk3/habitflow/internal/logger"
)

var (
	cfg     *config.Config
	apiBase string
)

var rootCmd = &cobra.Command{
	Use:   "habitflow",
	Short: "Track daily habits and streaks",
	Long: `
	Habitflow keeps a small set of daily habits, each scheduled on chosen weekdays. It
	serves them over HTTP and talks to that server from the command line to toggle
	today's habits, view statistics and browse a monthly calendar.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if apiBase != "" {
			cfg.APIBaseURL = apiBase
		}
		return logger.Init(logger.Options{
			Level:  cfg.Log.Level,
			Format: cfg.Log.Format,
			File:   cfg.Log.File,
		})
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(cfg.APIBaseURL)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBase, "api", "", "server base URL (overrides api_base_url)")
}
