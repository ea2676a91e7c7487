package mailpreview

import (
	"github.com/dmitrymomot/mailpreview/core/debug"
	"github.com/dmitrymomot/mailpreview/core/handler"
	"github.com/dmitrymomot/mailpreview/core/router"
)

// Routes mounts the preview endpoints under the plugin's mount path:
//
//	GET {mount}/                  index
//	GET {mount}/{preview}/{email} email page, or one raw part with ?part=
//
// The debug middleware and Guard run before every handler.
func Routes[C handler.Context](r router.Router[C], p *Plugin) {
	r.Route(p.mountPath, func(sub router.Router[C]) {
		sub.Use(debug.Middleware[C](p.flag), Guard[C]())
		sub.Get("/", Index[C](p))
		sub.Get("/{preview}/{email}", ShowEmail[C](p))
	})
}
