// Package httpserver runs an http.Handler with graceful shutdown, configurable
// timeouts and slog logging, and provides liveness and readiness handlers.
//
// Run listens synchronously, so a bad address fails immediately with ErrStart.
// It then serves until the context is cancelled, SIGINT/SIGTERM arrives or
// Shutdown is called. Addr reports the bound address, which is handy with ":0".
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Readiness checks receive the request context:
//
//	r.Get("/readyz", httpserver.Readiness(log, func(ctx context.Context) error {
//		return registry.EnsurePopulated(ctx, namer.Unified)
//	}))
package httpserver
