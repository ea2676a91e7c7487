package response

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/dmitrymomot/mailpreview/core/handler"
)

type statusCode interface {
	StatusCode() int
}

// convertToHTTPError maps err to an HTTPError. Errors that carry their own
// status keep their message; anything else becomes a generic 500 with the
// original error recorded as the cause.
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var sc statusCode
	if errors.As(err, &sc) {
		base, ok := httpErrorsByStatus[sc.StatusCode()]
		if !ok {
			base = newHTTPError(sc.StatusCode(), "error")
		}
		return base.WithMessage(err.Error())
	}

	return ErrInternalServerError.WithError(err)
}

// written reports whether the response has already been started.
func written(w http.ResponseWriter) bool {
	ww, ok := w.(interface{ Written() bool })
	return ok && ww.Written()
}

// ErrorHandler renders errors as plain text.
func ErrorHandler[C handler.Context](ctx C, err error) {
	if written(ctx.ResponseWriter()) {
		return
	}
	httpErr := convertToHTTPError(err)
	Render(ctx, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler renders errors as JSON HTTPError documents.
func JSONErrorHandler[C handler.Context](ctx C, err error) {
	if written(ctx.ResponseWriter()) {
		return
	}
	httpErr := convertToHTTPError(err)
	Render(ctx, JSONWithStatus(httpErr, httpErr.Status))
}

// NegotiatedErrorHandler renders JSON for clients that prefer it and plain text otherwise.
func NegotiatedErrorHandler[C handler.Context](ctx C, err error) {
	if WantsJSON(ctx.Request()) {
		JSONErrorHandler(ctx, err)
		return
	}
	ErrorHandler(ctx, err)
}

// WantsJSON reports whether the first media type in the Accept header
// is application/json or a +json type.
func WantsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return false
	}
	first, _, _ := strings.Cut(accept, ",")
	mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(first))
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
