package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newServer(addr string, handler http.Handler) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}
	return &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
}

// Serve runs the HTTP server and the auth-state sweeper until ctx is cancelled,
// then shuts the server down gracefully.
func Serve(ctx context.Context, app *App, addr string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	server := newServer(addr, app.Handler)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(gctx, "starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if app.States != nil {
		g.Go(func() error { return app.States.Run(gctx) })
	}

	g.Go(func() error {
		<-gctx.Done()
		return shutdownServer(server, logger)
	})

	return g.Wait()
}

func shutdownServer(server *http.Server, logger *slog.Logger) error {
	logger.Info("shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("HTTP server stopped")
	return nil
}
