// Package logger builds slog loggers and provides attribute helpers with
// consistent key names.
//
//	log := logger.New(
//		logger.WithDevelopment("mailpreview"),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.Info("server started", logger.Component("server"), logger.Event("startup"))
//
// Helpers such as Error and RequestID return an empty slog.Attr for zero
// inputs, which slog drops, so callers don't need nil checks:
//
//	log.Error("scan failed", logger.Error(err), logger.File(path))
//
// Tests can capture output with WithOutput and WithJSONFormatter.
package logger
