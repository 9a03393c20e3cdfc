package middlewares

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/okayjack/pkg/directive"
	"github.com/dmitrymomot/okayjack/pkg/htmx"
	"github.com/dmitrymomot/okayjack/pkg/logger"
)

// OkayjackConfig configures the okayjack middleware.
type OkayjackConfig struct {
	Logger *slog.Logger
	// IsError decides the outcome from the handler's status (default: status >= 400).
	IsError func(status int) bool
	Catalog directive.Catalog
	// RewriteErrorStatus sends error responses as 200 so htmx swaps them.
	RewriteErrorStatus bool
}

// OkayjackOption configures OkayjackConfig.
type OkayjackOption func(*OkayjackConfig)

// WithOkayjackCatalog sets the catalog used to read request headers.
func WithOkayjackCatalog(c directive.Catalog) OkayjackOption {
	return func(cfg *OkayjackConfig) {
		cfg.Catalog = c
	}
}

// WithOkayjackLogger sets the logger. If nil, logging is disabled.
func WithOkayjackLogger(l *slog.Logger) OkayjackOption {
	return func(cfg *OkayjackConfig) {
		if l != nil {
			cfg.Logger = l
		}
	}
}

// WithErrorStatusRewrite sends 4xx/5xx responses to htmx requests as 200.
func WithErrorStatusRewrite() OkayjackOption {
	return func(cfg *OkayjackConfig) {
		cfg.RewriteErrorStatus = true
	}
}

// WithOkayjackErrorFunc sets the function classifying a status as an error outcome.
func WithOkayjackErrorFunc(fn func(status int) bool) OkayjackOption {
	return func(cfg *OkayjackConfig) {
		if fn != nil {
			cfg.IsError = fn
		}
	}
}

// Okayjack returns middleware that honours the success or error variant of the
// directives an htmx request carries.
//
// The directives are parsed once and stored in the request context (see
// htmx.DirectivesFromContext). When the handler writes its status, the matching
// variant is turned into htmx response headers; headers the handler set itself
// are kept. Requests without HX-Request pass through untouched.
func Okayjack(opts ...OkayjackOption) func(http.Handler) http.Handler {
	cfg := &OkayjackConfig{
		Catalog: directive.DefaultCatalog(),
		Logger:  logger.NewNope(),
		IsError: func(status int) bool { return status >= http.StatusBadRequest },
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !htmx.IsHTMX(r) {
				next.ServeHTTP(w, r)
				return
			}

			d := htmx.ParseDirectives(r.Header, cfg.Catalog)
			ctx := htmx.WithDirectives(r.Context(), d)
			r = r.WithContext(ctx)

			if d.IsEmpty() && !cfg.RewriteErrorStatus {
				next.ServeHTTP(w, r)
				return
			}

			rw := NewResponseWriter(w, cfg.RewriteErrorStatus)
			rw.OnBeforeWrite(func(status int) {
				variant := directive.Success
				if cfg.IsError(status) {
					variant = directive.Error
				}

				out := d.Outcome(variant)
				out.ApplyDefaults(rw)

				cfg.Logger.DebugContext(ctx, "okayjack outcome",
					slog.String("variant", variant.String()),
					slog.Int("status", status),
					slog.Int("headers", len(out.Headers())),
				)
			})

			next.ServeHTTP(rw, r)

			// Handlers that write nothing still get their directives applied.
			if !rw.Written() {
				rw.WriteHeader(http.StatusOK)
			}
		})
	}
}
