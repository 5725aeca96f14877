// Package logger builds the *slog.Logger instances used across namer.
//
// New assembles a logger from functional options: output format (text or
// json), minimum level, static attributes and ContextExtractor callbacks that
// copy request-scoped values such as the request id from a context.Context
// into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "namer"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.InfoContext(ctx, "name list loaded", logger.List("surnames"), logger.Count(n))
//
// Attribute helpers in attr.go keep key names consistent. Error returns an
// empty attribute for a nil error so it can be passed unconditionally.
//
// Library packages default to Noop so they stay silent unless a logger is
// supplied.
package logger
