// Package debug carries the debug switch through requests.
//
// A Flag holds the process-wide value. Middleware copies it into every request
// context, where Enabled reads it and Disable switches it off for that request
// only:
//
//	flag := debug.NewFlag(cfg.Debug)
//	r.Use(debug.Middleware[*router.Context](flag))
//
//	func rawPart(ctx *router.Context) handler.Response {
//		debug.Disable(ctx) // no debug decoration for this response
//		...
//	}
package debug
