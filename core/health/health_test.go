package health_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailpreview/core/health"
	"github.com/dmitrymomot/mailpreview/core/response"
	"github.com/dmitrymomot/mailpreview/core/router"
)

func TestHealthHandlers(t *testing.T) {
	t.Parallel()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ok := func(context.Context) error { return nil }
	failing := func(context.Context) error { return errors.New("registry unavailable") }

	r := router.New[*router.Context](router.WithErrorHandler[*router.Context](response.ErrorHandler[*router.Context]))
	r.Get("/live", health.Liveness[*router.Context])
	r.Get("/ready", health.Readiness[*router.Context](log, ok))
	r.Get("/not-ready", health.Readiness[*router.Context](log, ok, failing))

	tests := []struct {
		target string
		status int
		body   string
	}{
		{target: "/live", status: http.StatusOK, body: "ALIVE"},
		{target: "/ready", status: http.StatusOK, body: "READY"},
		{target: "/not-ready", status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}
