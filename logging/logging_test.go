package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dohaquest/questlinks/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHandlerAddsAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.NewLogger(&buf, slog.LevelDebug)
	ctx := logging.AppendCtx(logging.PackageCtx("web"), slog.String("modal", "about"))

	logger.InfoContext(ctx, "Rendered page")

	out := buf.String()
	assert.Contains(t, out, "package=web")
	assert.Contains(t, out, "modal=about")
	assert.Contains(t, out, `msg="Rendered page"`)
}

func TestAppendCtxDoesNotLeakBetweenSiblings(t *testing.T) {
	base := logging.AppendCtx(context.Background(), slog.String("a", "1"))
	base = logging.AppendCtx(base, slog.String("b", "2"))

	var bufLeft, bufRight bytes.Buffer

	left := logging.AppendCtx(base, slog.String("side", "left"))
	right := logging.AppendCtx(base, slog.String("side", "right"))

	logging.NewLogger(&bufLeft, slog.LevelInfo).InfoContext(left, "x")
	logging.NewLogger(&bufRight, slog.LevelInfo).InfoContext(right, "x")

	assert.Contains(t, bufLeft.String(), "side=left")
	assert.NotContains(t, bufLeft.String(), "side=right")
	assert.Contains(t, bufRight.String(), "side=right")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestRequestID(t *testing.T) {
	var buf bytes.Buffer

	logger := logging.NewLogger(&buf, slog.LevelInfo)

	handler := logging.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logger.InfoContext(r.Context(), "Handling request")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	id := recorder.Header().Get("X-Request-Id")
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "request_id="+id)
}
