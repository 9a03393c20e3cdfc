// Package middlewares provides net/http middleware for okayjack applications.
//
// # Okayjack
//
// Okayjack reads the HX-Success-*, HX-Error-* and custom directive headers
// an htmx request carries and, once the handler commits a status code,
// turns the matching variant into htmx response headers. Status codes below
// 400 select the success variant, everything else the error variant.
// Headers the handler sets itself are never overwritten.
//
//	r := chi.NewRouter()
//	r.Use(
//	    middlewares.RequestID(),
//	    middlewares.Recover(middlewares.WithRecoverLogger(log)),
//	    middlewares.Okayjack(middlewares.WithErrorStatusRewrite()),
//	)
//
// Handlers can read the parsed directives through htmx.DirectivesFromContext
// and pick a template block with htmx.BlockFromContext.
//
// WithErrorStatusRewrite answers failed htmx requests with 200 so the
// browser swaps the error fragment instead of discarding it.
//
// # Request ID
//
// RequestID reuses an upstream X-Request-ID or X-Correlation-ID header, or
// generates a UUID, stores it in the request context and echoes it in the
// response. Pass RequestIDExtractor to logger.New to get request_id on every
// record logged with the request context:
//
//	log := logger.New(logger.Config{}, middlewares.RequestIDExtractor())
//
// # Recover
//
// Recover catches handler panics, logs them with the stack trace and writes a
// 500 response. The recovered value is exposed as *PanicError to a custom
// handler:
//
//	middlewares.Recover(
//	    middlewares.WithRecoverErrorHandler(func(w http.ResponseWriter, r *http.Request, pe *middlewares.PanicError) {
//	        http.Error(w, "oops", http.StatusInternalServerError)
//	    }),
//	)
//
// # ResponseWriter
//
// ResponseWriter records status and size and runs hooks right before the
// status line is written. Okayjack uses it; other middleware can too.
package middlewares
