package handler

import (
	"context"
	"net/http"
)

// Context is the request-scoped value every handler receives.
// It embeds context.Context so it can be passed to blocking calls directly.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	Param(key string) string
	// SetValue stores a request-local value visible to later middleware
	// and to anything holding the same Context.
	SetValue(key, val any)
}
