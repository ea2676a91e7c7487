package mailpreview

import (
	"github.com/dmitrymomot/mailpreview/core/debug"
	"github.com/dmitrymomot/mailpreview/core/handler"
	"github.com/dmitrymomot/mailpreview/core/response"
)

// Guard rejects every request with a 403 unless debug is enabled for it.
// Mount it after debug.Middleware and before any handler.
func Guard[C handler.Context]() handler.Middleware[C] {
	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			if !debug.Enabled(ctx) {
				return response.Error(forbidden())
			}
			return next(ctx)
		}
	}
}
