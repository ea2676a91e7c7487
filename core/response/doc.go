// Package response builds handler.Response values for common content types
// and provides error handlers that turn handler errors into HTTP responses.
//
// Responses are plain functions, so they compose with middleware that wraps
// or inspects them before they are written:
//
//	func index(ctx handler.Context) handler.Response {
//		return response.JSON(map[string]string{"status": "ok"})
//	}
//
// # Error handling
//
// Errors returned by handlers or responses are converted to HTTPError.
// Errors that implement StatusCode() keep their status and message, anything
// else becomes a 500:
//
//	r := router.New[*router.Context](
//		router.WithErrorHandler(response.NegotiatedErrorHandler[*router.Context]),
//	)
//
// ErrorHandler writes plain text, JSONErrorHandler writes JSON documents and
// NegotiatedErrorHandler picks between them based on the Accept header.
// None of them write anything once the response has been started.
package response
