package router_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/mailpreview/core/handler"
	"github.com/dmitrymomot/mailpreview/core/router"
)

func TestMountStripsPrefix(t *testing.T) {
	t.Parallel()

	root := router.New[*router.Context]()
	sub := router.New[*router.Context]()
	sub.Get("/", func(ctx *router.Context) handler.Response {
		return text("index:" + ctx.Request().URL.Path)
	})
	sub.Get("/{id}", func(ctx *router.Context) handler.Response {
		return text("item:" + ctx.Param("id"))
	})
	root.Mount("/api", sub)

	tests := []struct {
		path     string
		expected string
	}{
		{"/api", "index:/"},
		{"/api/", "index:/"},
		{"/api/42", "item:42"},
	}

	for _, tt := range tests {
		t.Run("path_"+tt.path, func(t *testing.T) {
			t.Parallel()

			w := serve(t, root, http.MethodGet, tt.path)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expected, w.Body.String())
		})
	}
}

func TestRouteRunsParentMiddlewareFirst(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) handler.Middleware[*router.Context] {
		return func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
			return func(ctx *router.Context) handler.Response {
				order = append(order, name)
				return next(ctx)
			}
		}
	}

	r := router.New[*router.Context]()
	r.Use(trace("parent"))
	r.Route("/admin", func(r router.Router[*router.Context]) {
		r.Use(trace("child"))
		r.Get("/", func(ctx *router.Context) handler.Response {
			order = append(order, "handler")
			return text("ok")
		})
	})

	w := serve(t, r, http.MethodGet, "/admin/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"parent", "child", "handler"}, order)
}

func TestRouteSharesContextValuesWithParent(t *testing.T) {
	t.Parallel()

	type key struct{}
	r := router.New[*router.Context]()
	r.Use(func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
		return func(ctx *router.Context) handler.Response {
			ctx.SetValue(key{}, "from parent")
			return next(ctx)
		}
	})
	r.Route("/sub", func(r router.Router[*router.Context]) {
		r.Get("/value", func(ctx *router.Context) handler.Response {
			v, _ := ctx.Value(key{}).(string)
			return text(v)
		})
	})

	w := serve(t, r, http.MethodGet, "/sub/value")
	assert.Equal(t, "from parent", w.Body.String())
}

func TestMountedNotFoundUsesParentErrorHandler(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context](
		router.WithErrorHandler(func(ctx *router.Context, err error) {
			ctx.ResponseWriter().WriteHeader(http.StatusGone)
		}),
	)
	r.Route("/sub", func(r router.Router[*router.Context]) {
		r.Get("/", func(ctx *router.Context) handler.Response { return text("ok") })
	})

	w := serve(t, r, http.MethodGet, "/sub/missing")
	assert.Equal(t, http.StatusGone, w.Code)
}

func TestWithAndGroup(t *testing.T) {
	t.Parallel()

	header := func(v string) handler.Middleware[*router.Context] {
		return func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] {
			return func(ctx *router.Context) handler.Response {
				resp := next(ctx)
				return func(w http.ResponseWriter, r *http.Request) error {
					w.Header().Add("X-Trace", v)
					return resp(w, r)
				}
			}
		}
	}

	r := router.New[*router.Context]()
	r.With(header("with")).Get("/with", func(ctx *router.Context) handler.Response { return text("") })
	r.Group(func(g router.Router[*router.Context]) {
		g.Use(header("group"))
		g.Get("/group", func(ctx *router.Context) handler.Response { return text("") })
	})
	r.Get("/plain", func(ctx *router.Context) handler.Response { return text("") })

	assert.Equal(t, "with", serve(t, r, http.MethodGet, "/with").Header().Get("X-Trace"))
	assert.Equal(t, "group", serve(t, r, http.MethodGet, "/group").Header().Get("X-Trace"))
	assert.Empty(t, serve(t, r, http.MethodGet, "/plain").Header().Get("X-Trace"))
}

func TestUseAfterRoutesPanics(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/", func(ctx *router.Context) handler.Response { return text("") })

	assert.Panics(t, func() {
		r.Use(func(next handler.HandlerFunc[*router.Context]) handler.HandlerFunc[*router.Context] { return next })
	})
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	r := router.New[*router.Context]()
	r.Get("/live", func(ctx *router.Context) handler.Response { return text("") })
	r.Route("/mail-preview", func(r router.Router[*router.Context]) {
		r.Get("/", func(ctx *router.Context) handler.Response { return text("") })
		r.Get("/{preview}/{email}", func(ctx *router.Context) handler.Response { return text("") })
	})

	assert.Equal(t, []router.Route{
		{Method: http.MethodGet, Pattern: "/live"},
		{Method: http.MethodGet, Pattern: "/mail-preview/"},
		{Method: http.MethodGet, Pattern: "/mail-preview/{preview}/{email}"},
	}, r.Routes())
}
