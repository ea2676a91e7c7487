// Package handler defines the request processing contract shared by the
// router, the response helpers, middleware and the mail preview plugin.
//
// A handler receives a typed request context and returns a Response closure
// instead of writing to the http.ResponseWriter directly. The router executes
// the closure and routes any returned error to its ErrorHandler, which keeps
// error rendering in one place:
//
//	func show(ctx *router.Context) handler.Response {
//		if ctx.Param("id") == "" {
//			return response.Error(response.ErrBadRequest)
//		}
//		return response.String("ok")
//	}
//
// Middleware composes around HandlerFunc values and may decorate the returned
// Response, for example to set headers right before rendering:
//
//	func Header[C handler.Context](k, v string) handler.Middleware[C] {
//		return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//			return func(ctx C) handler.Response {
//				resp := next(ctx)
//				return func(w http.ResponseWriter, r *http.Request) error {
//					w.Header().Set(k, v)
//					return resp(w, r)
//				}
//			}
//		}
//	}
package handler
