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

	"github.com/giygas/clinicaltrials-api/config"
	"github.com/giygas/clinicaltrials-api/data"
	"github.com/giygas/clinicaltrials-api/dataset"
	"github.com/giygas/clinicaltrials-api/handlers"
	"github.com/giygas/clinicaltrials-api/health"
	"github.com/giygas/clinicaltrials-api/logging"
	"github.com/giygas/clinicaltrials-api/scheduler"
	"github.com/giygas/clinicaltrials-api/server"
	"github.com/giygas/clinicaltrials-api/validation"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "trials-api",
		Short:         "Clinical trials search API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(searchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the clinical trials API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.InitLoggerWithOptions(logging.Options{
		Dir:            cfg.LogDir,
		Level:          cfg.LogLevel,
		RetentionWeeks: cfg.LogRetentionWeeks,
		MaxFileSize:    cfg.MaxLogFileSize,
	})
	defer logging.Close()

	logging.Info("Configuration loaded", "env", cfg.Env.String(), "dataset", cfg.DatasetPath, "reload", cfg.DatasetReload)

	dataContainer := data.NewDataContainer()
	dataContainer.SetServerStartTime(time.Now())

	validator := validation.NewDataValidator()
	loader := dataset.NewFileLoader(cfg.DatasetPath)

	sched := scheduler.NewScheduler(dataContainer, loader, validator, cfg.DatasetReload)
	if err := sched.Start(); err != nil {
		return err
	}
	defer sched.Stop()

	healthChecker := health.NewHealthChecker(dataContainer, cfg.DatasetPath)
	handler := handlers.NewHTTPHandler(dataContainer, validator, healthChecker)
	srv := server.NewServer(cfg, handler)

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-quit:
	case err := <-serverErr:
		logging.Error("Server failed to start", "error", err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
