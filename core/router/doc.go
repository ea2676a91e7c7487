// Package router provides a generic HTTP router with middleware support,
// typed request contexts, path parameters and mountable sub-routers.
//
// # Basic Usage
//
//	r := router.New[*router.Context]()
//
//	r.Get("/users/{id}", func(ctx *router.Context) handler.Response {
//		return response.String("user " + ctx.Param("id"))
//	})
//
//	http.ListenAndServe(":8080", r)
//
// # Patterns
//
// Patterns are slash separated. A segment is either literal text, a
// parameter written as {name} that matches one non-empty segment, or a
// trailing * that matches the rest of the path (available as Param("*")).
// When several patterns match, the more specific one wins: literal beats
// parameter, parameter beats wildcard, and among equals the earliest
// registration wins.
//
// # Middleware and Sub-routers
//
//	r.Use(middleware.RequestID[*router.Context]())
//
//	r.Route("/admin", func(r router.Router[*router.Context]) {
//		r.Use(requireAdmin)
//		r.Get("/", dashboard)
//	})
//
// Route and Mount strip the prefix before the sub-router sees the request,
// so the sub-router above serves "/admin" and "/admin/" with its "/" route.
// Middleware of the parent router runs before the sub-router's own.
//
// # Custom Contexts
//
// Any type implementing handler.Context can be used; supply a factory with
// WithContextFactory. Without a factory only *router.Context is supported.
//
// # Errors
//
// Unmatched paths produce ErrNotFound, unmatched methods ErrMethodNotAllowed
// (with an Allow header), nil responses ErrNilResponse and recovered panics a
// PanicError. All of them, and any error returned while rendering a
// response, go to the configured error handler.
package router
