package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/mailpreview/core/handler"
	"github.com/dmitrymomot/mailpreview/core/response"
	"github.com/dmitrymomot/mailpreview/core/router"
	"github.com/dmitrymomot/mailpreview/middleware"
)

func TestRequestIDDefaultConfiguration(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Use(middleware.RequestID[*router.Context]())

	var capturedID string
	r.Get("/test", func(ctx *router.Context) handler.Response {
		id, ok := middleware.GetRequestID(ctx)
		assert.True(t, ok)
		capturedID = id
		return response.String("ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	require.Equal(t, http.StatusOK, w.Code)
	_, err := uuid.Parse(capturedID)
	require.NoError(t, err)
	assert.Equal(t, capturedID, w.Header().Get("X-Request-ID"))
}

func TestRequestIDWithConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cfg      middleware.RequestIDConfig
		incoming string
		header   string
		want     string
	}{
		{
			name:   "custom generator",
			cfg:    middleware.RequestIDConfig{Generator: func() string { return "fixed" }},
			header: "X-Request-ID",
			want:   "fixed",
		},
		{
			name:   "custom header",
			cfg:    middleware.RequestIDConfig{HeaderName: "X-Trace", Generator: func() string { return "t1" }},
			header: "X-Trace",
			want:   "t1",
		},
		{
			name:     "use existing",
			cfg:      middleware.RequestIDConfig{UseExisting: true, Generator: func() string { return "new" }},
			incoming: "client-id",
			header:   "X-Request-ID",
			want:     "client-id",
		},
		{
			name:     "ignore existing by default",
			cfg:      middleware.RequestIDConfig{Generator: func() string { return "new" }},
			incoming: "client-id",
			header:   "X-Request-ID",
			want:     "new",
		},
		{
			name:   "empty existing falls back to generator",
			cfg:    middleware.RequestIDConfig{UseExisting: true, Generator: func() string { return "gen" }},
			header: "X-Request-ID",
			want:   "gen",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := router.New[*router.Context]()
			r.Use(middleware.RequestIDWithConfig[*router.Context](tt.cfg))
			r.Get("/", func(ctx *router.Context) handler.Response {
				id, _ := middleware.GetRequestID(ctx)
				return response.String(id)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(tt.header, tt.incoming)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Body.String())
			assert.Equal(t, tt.want, w.Header().Get(tt.header))
		})
	}
}

func TestRequestIDOnErrorResponses(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Use(middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
		Generator: func() string { return "err-id" },
	}))
	r.Get("/", func(ctx *router.Context) handler.Response {
		return response.Error(response.ErrForbidden)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "err-id", w.Header().Get("X-Request-ID"))
}

func TestRequestIDSkip(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Use(middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
		Skip: func(ctx handler.Context) bool { return ctx.Request().URL.Path == "/live" },
	}))
	r.Get("/live", func(ctx *router.Context) handler.Response {
		_, ok := middleware.GetRequestID(ctx)
		assert.False(t, ok)
		return response.String("ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/live", nil))
	assert.Empty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	_, ok := middleware.RequestIDExtractor(context.Background())
	assert.False(t, ok)

	r := router.New[*router.Context]()
	r.Use(middleware.RequestIDWithConfig[*router.Context](middleware.RequestIDConfig{
		Generator: func() string { return "abc" },
	}))
	r.Get("/", func(ctx *router.Context) handler.Response {
		attr, ok := middleware.RequestIDExtractor(ctx)
		assert.True(t, ok)
		assert.Equal(t, "request_id", attr.Key)
		assert.Equal(t, "abc", attr.Value.String())
		return response.String("ok")
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
