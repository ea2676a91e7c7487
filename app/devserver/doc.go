// Package devserver wires the mail preview plugin into a standalone HTTP
// application: configuration from the environment, structured logging with
// request IDs, request logging, debug response headers and graceful
// shutdown.
//
//	app, err := devserver.NewApp(devserver.WithRegistry(reg))
//	if err != nil {
//		return err
//	}
//	return app.Run(ctx)
//
// WithRouter expects a router without routes, since the application
// middleware is installed with Use.
package devserver
