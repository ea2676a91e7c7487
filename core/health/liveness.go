package health

import (
	"github.com/dmitrymomot/mailpreview/core/handler"
	"github.com/dmitrymomot/mailpreview/core/response"
)

// Liveness reports that the process is serving. It runs no checks.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}
