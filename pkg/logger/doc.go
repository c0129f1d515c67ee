// Package logger builds *slog.Logger instances with consistent defaults for
// the fieldcheck binaries and keeps attribute names uniform across packages.
//
// New accepts functional options (format, level, output, static attributes
// and context extractors). Records pass through LogHandlerDecorator, which
// appends attributes pulled from the context, such as the request id set by
// the requestid middleware:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "fieldcheck"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "field validated",
//	    logger.FieldType("amount"),
//	    logger.Valid(false),
//	)
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
