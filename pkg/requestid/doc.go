// Package requestid attaches a correlation id to every HTTP request, echoes
// it in the X-Request-ID response header and exposes it to the logger.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//
// Client supplied ids are reused only when well formed; anything else is
// replaced by a fresh UUIDv4.
package requestid
