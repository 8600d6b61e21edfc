package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rpgo/compound-interest/internal/calculation"
	"github.com/rpgo/compound-interest/internal/server"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr     string
		maxYears int
		origins  []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve projections over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.engine.MaxYears = maxYears
			srv := server.New(server.Config{
				Addr:           addr,
				Log:            a.log,
				Engine:         a.engine,
				AllowedOrigins: origins,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("failed to start server: %w", err)
			case <-ctx.Done():
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}
			if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			a.log.Info().Msg("Server stopped")
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVar(&maxYears, "max-years", calculation.DefaultMaxYears, "largest accepted projection term")
	cmd.Flags().StringSliceVar(&origins, "cors-origin", nil, "allowed CORS origins (default any)")
	return cmd
}
