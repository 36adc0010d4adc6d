package httpx

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/summitlog/summits-web/internal/domain/route"
	"github.com/summitlog/summits-web/internal/http/uiutil"
	"github.com/summitlog/summits-web/internal/service"
)

// RouterOptions holds everything the HTTP router mounts.
type RouterOptions struct {
	Routes *route.Table   // Required: page routes, registered in table order
	Pages  *Pages         // Required
	Guard  *Guard         // Required
	States *service.AuthStates
	// Static holds js/ and the placeholder image; served under /static/.
	Static      fs.FS
	Placeholder string // Path the placeholder image is served at

	MetricsHandler http.Handler // Optional: mounted at MetricsPath
	MetricsPath    string
	Observer       HTTPObserver // Optional

	DefaultLocale uiutil.Locale
	Logger        *slog.Logger
}

// NewRouter creates the HTTP router with browser middleware.
func NewRouter(opts RouterOptions) (http.Handler, error) {
	if opts.Routes == nil || opts.Pages == nil || opts.Guard == nil {
		return nil, errors.New("routes, pages and guard are required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(
		RequestID(),
		Recover(logger),
		Logging(logger),
		Instrument(opts.Observer),
		BrowserDetection(),
		Locale(opts.DefaultLocale),
		PageSession(),
	)

	r.Get("/healthz", healthHandler(opts.States))
	r.Head("/healthz", healthHandler(opts.States))

	if opts.MetricsHandler != nil {
		path := opts.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, opts.MetricsHandler)
	}

	if opts.Static != nil {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(opts.Static))))
		if opts.Placeholder != "" {
			r.Get(opts.Placeholder, placeholderHandler(opts.Static))
		}
	}

	for _, rt := range opts.Routes.Routes() {
		h := opts.Pages.Handler(rt.Name)
		if h == nil {
			return nil, fmt.Errorf("route %q has no page handler", rt.Name)
		}
		r.With(opts.Guard.Route(rt)).Get(rt.Pattern(), h)
	}

	r.NotFound(opts.Pages.NotFound)
	return r, nil
}

func placeholderHandler(static fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=86400")
		http.ServeFileFS(w, r, static, "climber_no_photo.svg")
	}
}
