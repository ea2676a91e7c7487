package middleware_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/core/handler"
	"github.com/dmitrymomot/mailpreview/core/response"
	"github.com/dmitrymomot/mailpreview/core/router"
	"github.com/dmitrymomot/mailpreview/middleware"
)

// testLogHandler captures log entries for testing
type testLogHandler struct {
	mu      sync.Mutex
	entries []map[string]any
}

func (h *testLogHandler) Enabled(context.Context, slog.Level) bool {
	return true
}

func (h *testLogHandler) Handle(_ context.Context, r slog.Record) error {
	entry := map[string]any{
		"level": r.Level.String(),
		"msg":   r.Message,
	}
	r.Attrs(func(a slog.Attr) bool {
		entry[a.Key] = a.Value.Any()
		return true
	})

	h.mu.Lock()
	h.entries = append(h.entries, entry)
	h.mu.Unlock()
	return nil
}

func (h *testLogHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *testLogHandler) WithGroup(string) slog.Handler      { return h }

func (h *testLogHandler) last(t *testing.T) map[string]any {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	require.NotEmpty(t, h.entries)
	return h.entries[len(h.entries)-1]
}

func TestLoggingMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		path      string
		resp      handler.Response
		wantLevel string
		wantCode  int64
	}{
		{
			name:      "success",
			path:      "/ok?part=text/html",
			resp:      response.String("hello"),
			wantLevel: "INFO",
			wantCode:  http.StatusOK,
		},
		{
			name:      "client error from status error",
			path:      "/ok",
			resp:      response.Error(response.ErrForbidden),
			wantLevel: "WARN",
			wantCode:  http.StatusForbidden,
		},
		{
			name:      "plain error is logged as 500",
			path:      "/ok",
			resp:      response.Error(errors.New("boom")),
			wantLevel: "ERROR",
			wantCode:  http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logs := &testLogHandler{}
			r := router.New[*router.Context]()
			r.Use(middleware.LoggingWithLogger[*router.Context](slog.New(logs)))
			r.Get("/ok", func(ctx *router.Context) handler.Response { return tt.resp })

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			entry := logs.last(t)
			assert.Equal(t, "HTTP request completed", entry["msg"])
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantCode, entry["status_code"])
			assert.Equal(t, "/ok", entry["path"])
			assert.Equal(t, int64(w.Code), entry["status_code"])
		})
	}
}

func TestLoggingRecordsSizeAndQuery(t *testing.T) {
	t.Parallel()

	logs := &testLogHandler{}
	r := router.New[*router.Context]()
	r.Use(middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
		Logger:     slog.New(logs),
		LogRequest: true,
	}))
	r.Get("/", func(ctx *router.Context) handler.Response { return response.String("12345") })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/?format=json", nil))

	require.Len(t, logs.entries, 2)
	assert.Equal(t, "HTTP request started", logs.entries[0]["msg"])
	entry := logs.last(t)
	assert.Equal(t, int64(5), entry["bytes_out"])
	assert.Equal(t, "format=json", entry["query"])
	assert.Equal(t, false, entry["debug"])
}

func TestLoggingSkip(t *testing.T) {
	t.Parallel()

	logs := &testLogHandler{}
	r := router.New[*router.Context]()
	r.Use(middleware.LoggingWithConfig[*router.Context](middleware.LoggingConfig{
		Logger: slog.New(logs),
		Skip:   func(ctx handler.Context) bool { return true },
	}))
	r.Get("/", func(ctx *router.Context) handler.Response { return response.String("x") })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, logs.entries)
}
