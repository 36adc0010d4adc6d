// Package bootstrap assembles the web tier from configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"

	summitsweb "github.com/summitlog/summits-web"
	"github.com/summitlog/summits-web/config"
	"github.com/summitlog/summits-web/internal/adapters/apiclient"
	redisstore "github.com/summitlog/summits-web/internal/adapters/redis"
	"github.com/summitlog/summits-web/internal/domain/route"
	httpx "github.com/summitlog/summits-web/internal/http"
	"github.com/summitlog/summits-web/internal/http/uiutil"
	"github.com/summitlog/summits-web/internal/observability/metrics"
	"github.com/summitlog/summits-web/internal/ports"
	"github.com/summitlog/summits-web/internal/service"
)

// App is the assembled web tier.
type App struct {
	Handler http.Handler
	States  *service.AuthStates
	Routes  *route.Table

	redis redis.UniversalClient
}

// BuildOptions overrides collaborators, mostly for tests.
type BuildOptions struct {
	Config config.AppConfig
	Logger *slog.Logger
	// API replaces the HTTP API client when set.
	API interface {
		ports.SummitsAPI
		ports.AuthStatusSource
	}
	// Redis replaces the client dialed from Config.Redis when the snapshot store is enabled.
	Redis redis.UniversalClient
}

// LoadRoutes returns the embedded route table, or the one in path when set.
func LoadRoutes(path string) (*route.Table, error) {
	if path == "" {
		return route.Default()
	}
	return route.LoadFile(path)
}

// Build wires configuration into an HTTP handler.
func Build(ctx context.Context, opts BuildOptions) (*App, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	routes, err := LoadRoutes(cfg.UI.RoutesFile)
	if err != nil {
		return nil, fmt.Errorf("load routes: %w", err)
	}

	var (
		svcMetrics service.Metrics
		observer   httpx.HTTPObserver
		scrape     http.Handler
	)
	if cfg.Observability.Metrics.Enabled {
		m := metrics.New()
		svcMetrics, observer, scrape = m, m, m.Handler()
	}

	api := opts.API
	if api == nil {
		client, clientErr := apiclient.New(apiclient.Config{
			BaseURL:       cfg.Auth.APIBaseURL,
			MePath:        cfg.Auth.MePath,
			SessionCookie: cfg.HTTP.SessionCookie,
			Timeout:       cfg.Auth.RequestTimeout,
		})
		if clientErr != nil {
			return nil, fmt.Errorf("api client: %w", clientErr)
		}
		api = client
	}

	app := &App{Routes: routes}

	var store ports.AuthSnapshotStore
	if cfg.Auth.SnapshotStoreEnabled {
		rc := opts.Redis
		if rc == nil {
			rc, err = ConnectRedis(ctx, cfg.Redis, logger)
			if err != nil {
				return nil, err
			}
			app.redis = rc
		}
		store = redisstore.NewAuthSnapshotStoreWithOptions(rc, cfg.Redis.Prefix, cfg.Redis.TTL)
	}

	states, err := service.NewAuthStates(service.AuthStatesOptions{
		Source: api,
		Store:  store,
		Config: service.AuthStatesConfig{
			IdleTTL: cfg.Auth.StateIdleTTL,
			Logger:  logger,
			Metrics: svcMetrics,
		},
	})
	if err != nil {
		return nil, errors.Join(err, app.Close())
	}
	app.States = states

	nav := service.NewNavigationGuard(service.NavigationGuardOptions{
		LoginURL:     cfg.Auth.LoginURL,
		DefaultTitle: cfg.UI.DefaultTitle,
		Hooks:        service.NavigationGuardHooks{Logger: logger, Metrics: svcMetrics},
	})

	guard, err := httpx.NewGuard(httpx.GuardOptions{
		States:        states,
		Navigation:    nav,
		SessionCookie: cfg.HTTP.SessionCookie,
		Logger:        logger,
	})
	if err != nil {
		return nil, errors.Join(err, app.Close())
	}

	images := uiutil.Images{BaseURL: cfg.UI.ImageBaseURL, Placeholder: cfg.UI.ImagePlaceholder}
	renderer, err := httpx.NewTemplateRenderer(httpx.TemplateRendererConfig{
		TemplateFS: summitsweb.Templates(),
		Funcs:      httpx.TemplateFuncs(routes, images),
		Logger:     logger,
	})
	if err != nil {
		return nil, errors.Join(fmt.Errorf("templates: %w", err), app.Close())
	}

	pages := httpx.NewPages(httpx.PagesOptions{
		API:            api,
		Renderer:       renderer,
		LoginURL:       cfg.Auth.LoginURL,
		PreserveScroll: cfg.UI.PreserveScroll,
		RestoreDelay:   cfg.UI.ScrollRestoreDelay,
		ItemsPerPage:   cfg.UI.ItemsPerPage,
		Metrics:        svcMetrics,
		Logger:         logger,
	})

	defaultLocale, ok := uiutil.ParseLocale(cfg.UI.DefaultLocale)
	if !ok {
		logger.WarnContext(ctx, "unsupported default locale, using ru", "locale", cfg.UI.DefaultLocale)
		defaultLocale = uiutil.LocaleRU
	}

	handler, err := httpx.NewRouter(httpx.RouterOptions{
		Routes:         routes,
		Pages:          pages,
		Guard:          guard,
		States:         states,
		Static:         summitsweb.Static(),
		Placeholder:    placeholderPath(cfg.UI.ImagePlaceholder),
		MetricsHandler: scrape,
		MetricsPath:    cfg.Observability.Metrics.Path,
		Observer:       observer,
		DefaultLocale:  defaultLocale,
		Logger:         logger,
	})
	if err != nil {
		return nil, errors.Join(err, app.Close())
	}
	app.Handler = handler

	return app, nil
}

// placeholderPath is where the web tier serves the placeholder image. A
// placeholder hosted elsewhere leaves the default path mounted.
func placeholderPath(configured string) string {
	if strings.HasPrefix(configured, "/") && !strings.HasPrefix(configured, "//") {
		return configured
	}
	return uiutil.DefaultPlaceholder
}

// Close releases connections opened by Build.
func (a *App) Close() error {
	if a.redis == nil {
		return nil
	}
	if err := a.redis.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}
	return nil
}
