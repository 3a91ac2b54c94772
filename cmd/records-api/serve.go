package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/IvanLB1405/records-api/internal/config"
	"github.com/IvanLB1405/records-api/internal/http/router"
	"github.com/IvanLB1405/records-api/internal/storage/sqlite"
)

const version = "1.0.0"

func newServeCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "Path to the configuration YAML file (or CONFIG_PATH)")

	return cmd
}

// serve runs the API until SIGINT / SIGTERM, then shuts down gracefully.
//
// STARTUP SEQUENCE:
//  1. Initialise the logger
//  2. Open (and set up) the SQLite database
//  3. Register all HTTP routes
//  4. Start the HTTP server in a separate goroutine
//  5. Block until an OS signal arrives
//  6. Finish in-flight requests, then return
func serve(ctx context.Context, cfg *config.Config) error {
	log := setupLogger(cfg.Env)
	// Handlers log through the package-level slog functions.
	slog.SetDefault(log)

	log.Info("starting records-api",
		slog.String("env", cfg.Env),
		slog.String("version", version),
	)

	storage, err := sqlite.New(cfg)
	if err != nil {
		log.Error("failed to initialise storage", slog.String("error", err.Error()))
		return err
	}
	defer storage.Close()

	log.Info("storage initialised", slog.String("path", cfg.StoragePath))

	server := &http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      router.New(storage),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	// ListenAndServe blocks, so it runs in its own goroutine; a failure
	// there is reported through serverErr.
	serverErr := make(chan error, 1)
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// http.ErrServerClosed is the expected result of Shutdown.
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-serverErr:
		if ok {
			log.Error("server encountered an error", slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server gracefully", slog.String("error", err.Error()))
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
//	dev (and anything unrecognised): text output at DEBUG level
//	staging:                         JSON output at DEBUG level
//	prod:                            JSON output at INFO level
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	case "staging":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
