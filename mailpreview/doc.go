// Package mailpreview serves a debug-only browser for the emails an
// application sends.
//
// A Preview names a mailer and builds its emails on demand. Previews are
// registered by class name with a factory, usually from init functions that
// `mailpreview gen` writes:
//
//	func init() {
//		mailpreview.Register("preview.OrderMailerPreview", func() mailpreview.Preview {
//			return &OrderMailerPreview{}
//		})
//	}
//
// Routes mounts the endpoints on a router:
//
//	p, err := mailpreview.NewFromConfig(cfg, mailpreview.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	mailpreview.Routes(r, p)
//
// Every request is rejected with 403 unless debug is enabled. The index lists
// previews and their emails; /{preview}/{email} renders one email with its
// preferred part in an iframe, and ?part={type} returns that part raw with
// the part type as Content-Type.
//
// Which previews a request sees is decided by Plugin.Previews, which applies
// the plugin's Source (or the registry's own settings) through
// Registry.ListFrom: a configured override list of class names wins, then a
// discovery directory scanned with pkg/srcscan, then every registration in
// order. When two previews share a
// name, the first one listed that has the requested email is used.
package mailpreview
