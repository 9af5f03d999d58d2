package routes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
)

// ErrRender marks failures that happened before anything was written.
var ErrRender = errors.New("could not render template")

// Images lists the configured image sources. Empty means no image.
type Images struct {
	Logo         string
	LogoFallback string
	Background   string
}

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	Assets      fs.FS
	AssetPrefix string
	Images      Images
	Now         func() time.Time
}

func (s *ServerHandler) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}

	return s.Now()
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	return SafeRenderTemplateContext(context.Background(), component, w)
}

// SafeRenderTemplateContext is SafeRenderTemplate bound to a request context.
func SafeRenderTemplateContext(ctx context.Context, component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(ctx, &buf)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.ErrorContext(ctx, "Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

// HealthHandle reports liveness.
func (s *ServerHandler) HealthHandle(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	_, _ = w.Write([]byte("ok"))
}
