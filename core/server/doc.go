// Package server wraps http.Server with graceful shutdown and an
// errgroup-friendly Run method.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, router))
//	return g.Wait()
//
// Run returns nil once ctx is canceled and shutdown completes, so a signal
// context can drive the whole lifecycle.
package server
