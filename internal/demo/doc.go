// Package demo provides sample mail previews used by the development server.
//
// OrderMailer is a hand-written Preview; UserMailer is built on
// mailpreview.Mailer. Register adds both to a registry under their
// qualified class names:
//
//	reg := mailpreview.NewRegistry()
//	demo.Register(reg)
package demo
