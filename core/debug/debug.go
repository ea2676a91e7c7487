package debug

import (
	"context"
	"sync/atomic"

	"github.com/dmitrymomot/mailpreview/core/handler"
)

// Flag is the process-wide debug switch. The zero value is disabled.
type Flag struct {
	on atomic.Bool
}

// NewFlag returns a Flag with the given initial value.
func NewFlag(enabled bool) *Flag {
	f := &Flag{}
	f.on.Store(enabled)
	return f
}

// Enabled reports the process-wide value.
func (f *Flag) Enabled() bool {
	if f == nil {
		return false
	}
	return f.on.Load()
}

// Set changes the process-wide value.
func (f *Flag) Set(enabled bool) {
	f.on.Store(enabled)
}

type stateKey struct{}

// state is shared by pointer so an override made deep in a mounted router is
// seen by the outer middleware that decorates the same response.
type state struct {
	enabled atomic.Bool
}

// WithFlag returns a context carrying the current value of f for one request.
// Contexts that already carry a value are returned unchanged.
func WithFlag(ctx context.Context, f *Flag) context.Context {
	if _, ok := ctx.Value(stateKey{}).(*state); ok {
		return ctx
	}
	s := &state{}
	s.enabled.Store(f.Enabled())
	return context.WithValue(ctx, stateKey{}, s)
}

// Enabled reports whether debug is on for the request carried by ctx.
// A context that never passed through Middleware or WithFlag is disabled.
func Enabled(ctx context.Context) bool {
	s, ok := ctx.Value(stateKey{}).(*state)
	return ok && s.enabled.Load()
}

// Disable turns debug off for the rest of the request carried by ctx.
// The process-wide Flag is not touched.
func Disable(ctx context.Context) {
	if s, ok := ctx.Value(stateKey{}).(*state); ok {
		s.enabled.Store(false)
	}
}

// Middleware seeds each request with the current value of f.
func Middleware[C handler.Context](f *Flag) handler.Middleware[C] {
	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if _, ok := ctx.Value(stateKey{}).(*state); !ok {
				s := &state{}
				s.enabled.Store(f.Enabled())
				ctx.SetValue(stateKey{}, s)
			}
			return next(ctx)
		}
	}
}
