// Package logger builds the structured loggers used across okayjack.
//
// Loggers are log/slog loggers whose handler is wrapped by LogHandlerDecorator so
// that request-scoped values (request IDs, htmx outcome) are pulled from the
// context on every call:
//
//	log := logger.New(logger.Config{
//		Level:     logger.ParseLevel(os.Getenv("LOG_LEVEL")),
//		Format:    logger.FormatText,
//		Component: "polls",
//	}, middlewares.RequestIDExtractor())
//
//	log.InfoContext(ctx, "vote recorded", slog.Int("choice", 3))
//
// NewWithSentry fans records out to Sentry as well. With an empty DSN it behaves
// like New, so the same code path runs locally and in production.
//
// NewNope returns a logger that discards everything and is the default wherever
// a logger is optional.
package logger
