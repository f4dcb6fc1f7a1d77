package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/brk3/habitflow/internal/logger"
	"github.com/brk3/habitflow/internal/server"
	"github.com/brk3/habitflow/internal/tracker"
)

var (
	serveAddr  string
	serveSeed  bool
	shutdownIn = 10 * time.Second
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"server"},
	Short:   "Start the HTTP server",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides listen_addr)")
	serveCmd.Flags().BoolVar(&serveSeed, "seed", false, "start with the sample habits")
	rootCmd.AddCommand(serveCmd)
}

func newStore() (*tracker.Store, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	opts := []tracker.Option{tracker.WithLocation(loc)}
	if serveSeed || cfg.SeedSamples {
		opts = append(opts, tracker.WithHabits(tracker.SampleHabits()...))
	}
	return tracker.New(opts...), nil
}

func serve(ctx context.Context) error {
	if serveAddr != "" {
		cfg.ListenAddr = serveAddr
	}
	store, err := newStore()
	if err != nil {
		return err
	}

	srv := server.New(cfg, store).HTTPServer()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", "addr", srv.Addr, "habits", store.Len(), "timezone", store.Location().String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownIn)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
