// Package httpserver runs an http.Handler with environment-driven timeouts
// and graceful shutdown on context cancellation, SIGINT or SIGTERM.
//
//	var cfg httpserver.Config // parsed by pkg/config
//	srv := httpserver.New(cfg, log)
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// HealthCheckHandler provides liveness and readiness endpoints.
package httpserver
