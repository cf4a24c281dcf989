package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gcbaptista/search-server/api"
	"github.com/gcbaptista/search-server/config"
	"github.com/gcbaptista/search-server/internal/engine"
	"github.com/gcbaptista/search-server/internal/logger"
	"github.com/gcbaptista/search-server/internal/metrics"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and the metrics endpoint",
	Args:  cobra.NoArgs,
	RunE:  serveCmdRun,
}

type serveFlags struct {
	configPath string
	port       int
}

var serveArgs serveFlags

func init() {
	serveCmd.Flags().StringVar(&serveArgs.configPath, "config", "",
		"Path to the YAML config file. Defaults are used when empty.")
	serveCmd.Flags().IntVar(&serveArgs.port, "port", 0,
		"Override the HTTP port from the config file.")
	rootCmd.AddCommand(serveCmd)
}

func serveCmdRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(serveArgs.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serveArgs.port > 0 {
		cfg.Server.Port = serveArgs.port
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = rootArgs.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Logging.Format = rootArgs.logFormat
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	searchEngine := engine.NewEngine(m)
	for _, settings := range cfg.Indexes {
		if err := searchEngine.CreateIndex(settings); err != nil {
			return fmt.Errorf("failed to create index '%s': %w", settings.Name, err)
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(searchEngine, api.RouterOptions{
		MaxBodyBytes:      cfg.Server.MaxBodyBytes,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
		Metrics:           m,
	})

	servers := []*http.Server{{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}}
	if m != nil {
		servers = append(servers, m.NewServer(cfg.Metrics.Port))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			slog.Info("listening", "addr", srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("server on %s failed: %w", srv.Addr, err)
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		var shutdownErr error
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				shutdownErr = errors.Join(shutdownErr, err)
			}
		}
		return shutdownErr
	})

	slog.Info("search server started",
		"version", VERSION,
		"port", cfg.Server.Port,
		"indexes", searchEngine.ListIndexes(),
		"metrics", cfg.Metrics.Enabled)
	return g.Wait()
}
