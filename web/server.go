package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dohaquest/questlinks/logging"
	"github.com/dohaquest/questlinks/tracing"
	"github.com/dohaquest/questlinks/web/assets"
	"github.com/dohaquest/questlinks/web/routes"
	"golang.org/x/sync/errgroup"
)

const (
	assetPrefix     = "/assets"
	shutdownTimeout = 5 * time.Second
)

// Options configures the page server.
type Options struct {
	Dev bool
	// AssetsDir serves assets from disk instead of the embedded tree.
	AssetsDir       string
	LogoImage       string
	LogoFallback    string
	BackgroundImage string
}

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func BuildServer(opts Options) (http.Handler, error) {
	files, err := assets.Open(opts.AssetsDir)
	if err != nil {
		return nil, fmt.Errorf("could not open assets: %w", err)
	}

	if opts.AssetsDir != "" {
		slog.Info("Serving assets from disk", "dir", opts.AssetsDir)
	}

	handler := routes.ServerHandler{
		Assets:      files,
		AssetPrefix: assetPrefix,
		Images: routes.Images{
			Logo:         opts.LogoImage,
			LogoFallback: opts.LogoFallback,
			Background:   opts.BackgroundImage,
		},
	}

	mux := http.NewServeMux()
	mux.Handle(assetPrefix+"/",
		disableCacheInDevMode(opts.Dev,
			http.StripPrefix(assetPrefix,
				http.FileServerFS(files))))
	mux.HandleFunc("GET /healthz", handler.HealthHandle)
	mux.HandleFunc("GET /{$}", handler.PageHandle)

	return logging.RequestID(tracing.Middleware(mux)), nil
}

// Serve runs handler on ln until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Running interface", "addr", ln.Addr().String())

		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("could not run server: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		slog.Info("Shutting down server")

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not shut down server: %w", err)
		}

		return nil
	})

	return g.Wait()
}

func StartServer(ctx context.Context, port int, opts Options) error {
	handler, err := BuildServer(opts)
	if err != nil {
		return err
	}

	var lc net.ListenConfig

	ln, err := lc.Listen(ctx, "tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("could not listen on port %d: %w", port, err)
	}

	return Serve(ctx, ln, handler)
}
