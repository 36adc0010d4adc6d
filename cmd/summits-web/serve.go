package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/summitlog/summits-web/config"
	"github.com/summitlog/summits-web/internal/bootstrap"
)

func serveCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap.LoadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.HTTP.Addr = addr
			}
			logger := bootstrap.InitLogger(cfg.Observability.SlogLevel())
			return serve(cmd.Context(), cfg, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")
	return cmd
}

func serve(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) error {
	logStartupInfo(ctx, logger, &cfg)

	shutdownTracing, err := bootstrap.SetupTracing(ctx, cfg.Observability.Tracing)
	if err != nil {
		return err
	}
	defer func() {
		if terr := shutdownTracing(context.WithoutCancel(ctx)); terr != nil {
			logger.ErrorContext(ctx, "shutdown tracing failed", "error", terr)
		}
	}()

	app, err := bootstrap.Build(ctx, bootstrap.BuildOptions{Config: cfg, Logger: logger})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil {
			logger.ErrorContext(ctx, "close app failed", "error", cerr)
		}
	}()

	return bootstrap.Serve(ctx, app, cfg.HTTP.Addr, logger)
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting summits-web",
		"addr", cfg.HTTP.Addr,
		"api", cfg.Auth.APIBaseURL,
		"login_url", cfg.Auth.LoginURL,
		"snapshot_store", cfg.Auth.SnapshotStoreEnabled,
		"metrics", cfg.Observability.Metrics.Enabled,
		"tracing", cfg.Observability.Tracing.IsEnabled(),
		"dev", cfg.IsDev,
	)
}
