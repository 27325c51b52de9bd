// ABOUTME: serve command wires all components and runs the HTTP server
// ABOUTME: Shuts down gracefully on SIGINT or SIGTERM

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"profile-search-api/api"
	"profile-search-api/api/handlers"
	"profile-search-api/core/interfaces"
	"profile-search-api/core/search"
	"profile-search-api/infrastructure/logger/structured"
	"profile-search-api/infrastructure/metrics/prometheus"
	"profile-search-api/infrastructure/process"
	"profile-search-api/pkg/config"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), v)
		},
	}

	cmd.Flags().String("port", "8000", "HTTP listen port")
	_ = v.BindPFlag(config.KeyPort, cmd.Flags().Lookup("port"))

	return cmd
}

func runServe(ctx context.Context, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := structured.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	var recorder *prometheus.Recorder
	if cfg.Metrics.Enabled {
		recorder = prometheus.NewRecorder()
	}

	srv, service := newServer(cfg, logger, process.NewExecRunner(), recorder)

	logger.Info("Starting Profile Search API", map[string]interface{}{
		"port":           cfg.Server.Port,
		"tool":           cfg.Tool.Path,
		"tool_timeout":   cfg.Tool.Timeout.String(),
		"max_concurrent": cfg.Tool.MaxConcurrent,
		"metrics":        cfg.Metrics.Enabled,
	})
	if !service.ToolAvailable() {
		logger.Warn("Discovery tool not found, searches will fail until it is installed", map[string]interface{}{
			"tool": cfg.Tool.Path,
		})
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server starting", map[string]interface{}{"address": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server forced to shutdown", map[string]interface{}{"error": err.Error()})
			return err
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Server stopped", nil)
	return nil
}

// newServer builds the HTTP server and the search service behind it.
// recorder may be nil when metrics are disabled.
func newServer(cfg *config.Config, logger interfaces.Logger, runner interfaces.ToolRunner, recorder *prometheus.Recorder) (*http.Server, *search.SearchService) {
	deps := interfaces.Dependencies{
		Runner: runner,
		Logger: logger,
	}

	apiConfig := api.APIConfig{
		Logger:               logger,
		AllowedOrigins:       cfg.Server.AllowedOrigins,
		SlowRequestThreshold: cfg.Tool.Timeout / 2,
	}
	if recorder != nil {
		deps.Metrics = recorder
		apiConfig.MetricsHandler = recorder.Handler()
		apiConfig.MetricsPath = cfg.Metrics.Path
	}

	service := search.NewSearchService(deps, search.Options{
		Program:       cfg.Tool.Path,
		Timeout:       cfg.Tool.Timeout,
		MaxConcurrent: cfg.Tool.MaxConcurrent,
		InstallHint:   cfg.Tool.InstallHint,
	})

	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)
	handlers.NewSearchHandler(service).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(service).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return srv, service
}
