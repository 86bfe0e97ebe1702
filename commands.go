package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/pointsplus/cliparse"
	"github.com/danielhkuo/pointsplus/db"
	"github.com/danielhkuo/pointsplus/router"
	"github.com/danielhkuo/pointsplus/store"
)

const shutdownTimeout = 10 * time.Second

// newRootCommand builds the CLI. Running it without a subcommand serves.
func newRootCommand() *cobra.Command {
	var cfg cliparse.Config

	cmd := &cobra.Command{
		Use:           "pointsplus",
		Short:         "PointsPlus house points server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = cliparse.Load(cmd.Flags())
			if err != nil {
				return err
			}
			slog.SetDefault(newLogger(cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.PersistentFlags().AddFlagSet(cliparse.Flags())

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the web app (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg)
		},
	})
	cmd.AddCommand(newResetCommand(&cfg))

	return cmd
}

func newResetCommand(cfg *cliparse.Config) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every house, event, result and the school name",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("reset deletes all data; pass --yes to confirm")
			}

			conn, err := db.Open(*cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
				return err
			}
			if err := store.New(conn).Reset(cmd.Context()); err != nil {
				return err
			}

			slog.Info("database cleared", "database_type", cfg.DatabaseType)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deleting all data")

	return cmd
}

// serve runs the HTTP server until ctx is cancelled, then shuts down gracefully
func serve(ctx context.Context, cfg cliparse.Config) error {
	conn, err := db.Open(cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		return err
	}
	slog.Info("Database schema ready", "database_type", cfg.DatabaseType)

	mux, err := router.NewRouter(conn)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	server := &http.Server{
		Handler:           mux,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	err = g.Wait()
	slog.Info("Server closed", "error", err)
	return err
}

func newLogger(cfg cliparse.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	if cfg.LogFormat == cliparse.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
