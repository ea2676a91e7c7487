// Package middleware provides router middleware for the preview server.
//
// Every middleware is generic over the handler.Context type and comes in a
// default form and a WithConfig form:
//
//	r.Use(
//		middleware.RequestID[*router.Context](),
//		middleware.LoggingWithLogger[*router.Context](log),
//		debug.Middleware[*router.Context](flag),
//		middleware.DebugHeaders[*router.Context](),
//	)
//
// RequestID assigns an ID to each request and echoes it in X-Request-ID.
// Logging writes one record when a request starts and one when its response
// completes. DebugHeaders decorates responses with timing headers while
// debug is enabled for the request; handlers that call debug.Disable, such
// as raw email parts, are left untouched.
package middleware
