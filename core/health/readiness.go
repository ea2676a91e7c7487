package health

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/mailpreview/core/handler"
	"github.com/dmitrymomot/mailpreview/core/logger"
	"github.com/dmitrymomot/mailpreview/core/response"
)

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

// Readiness answers "READY" when every check passes and 503 otherwise.
func Readiness[C handler.Context](log *slog.Logger, checks ...Check) handler.HandlerFunc[C] {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx C) handler.Response {
		for _, check := range checks {
			if err := check(ctx); err != nil {
				log.ErrorContext(ctx, "readiness check failed",
					logger.Component("health"), logger.Error(err))
				return response.Error(response.ErrServiceUnavailable.WithError(err))
			}
		}
		return response.String("READY")
	}
}
