package middleware

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/mailpreview/core/debug"
	"github.com/dmitrymomot/mailpreview/core/handler"
)

// DebugHeadersConfig configures the debug headers middleware.
type DebugHeadersConfig struct {
	// Skip bypasses the middleware for matching requests.
	Skip func(ctx handler.Context) bool
	// Prefix for the emitted headers (default: "X-Debug-").
	Prefix string
	// Now is the clock (default: time.Now).
	Now func() time.Time
}

// DebugHeaders adds diagnostic headers while debug is enabled for the request.
func DebugHeaders[C handler.Context]() handler.Middleware[C] {
	return DebugHeadersWithConfig[C](DebugHeadersConfig{})
}

// DebugHeadersWithConfig adds X-Debug-Elapsed and X-Debug-Route headers.
// The debug state is read when the status line is written, so a handler
// anywhere below, including in a mounted router, can opt out with
// debug.Disable.
func DebugHeadersWithConfig[C handler.Context](cfg DebugHeadersConfig) handler.Middleware[C] {
	if cfg.Prefix == "" {
		cfg.Prefix = "X-Debug-"
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if cfg.Skip != nil && cfg.Skip(ctx) {
				return next(ctx)
			}

			start := cfg.Now()
			route := ctx.Request().URL.Path
			resp := next(ctx)
			if resp == nil {
				return nil
			}

			return func(w http.ResponseWriter, r *http.Request) error {
				dw := &debugHeaderWriter{ResponseWriter: w, decorate: func(h http.Header) {
					if !debug.Enabled(ctx) {
						return
					}
					h.Set(cfg.Prefix+"Elapsed", cfg.Now().Sub(start).String())
					h.Set(cfg.Prefix+"Route", route)
				}}
				return resp(dw, r)
			}
		}
	}
}

// debugHeaderWriter runs decorate once, right before the header is sent.
type debugHeaderWriter struct {
	http.ResponseWriter
	decorate func(http.Header)
	sent     bool
}

func (w *debugHeaderWriter) WriteHeader(code int) {
	if !w.sent {
		w.sent = true
		w.decorate(w.Header())
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *debugHeaderWriter) Write(b []byte) (int, error) {
	if !w.sent {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *debugHeaderWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
