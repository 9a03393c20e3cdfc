package directive

import (
	"log/slog"

	"github.com/dmitrymomot/okayjack/pkg/dom"
	"github.com/dmitrymomot/okayjack/pkg/logger"
)

// EventConfigRequest is fired by htmx right before a request is sent.
const EventConfigRequest = "htmx:configRequest"

// Event is the detail of a request-configuration event.
type Event struct {
	Elt     dom.Element
	Headers Headers
}

// Extension hooks Resolve into the host's lifecycle events.
type Extension struct {
	catalog Catalog
	logger  *slog.Logger
}

// Option configures an Extension.
type Option func(*Extension)

// WithCatalog replaces the default catalog.
func WithCatalog(c Catalog) Option {
	return func(x *Extension) {
		x.catalog = c
	}
}

// WithLogger sets the logger used for the per-request debug line.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(x *Extension) {
		if l != nil {
			x.logger = l
		}
	}
}

// NewExtension creates an Extension using DefaultCatalog unless overridden.
func NewExtension(opts ...Option) *Extension {
	x := &Extension{
		catalog: DefaultCatalog(),
		logger:  logger.NewNope(),
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Catalog returns the catalog the extension resolves.
func (x *Extension) Catalog() Catalog {
	return x.catalog
}

// OnEvent resolves directives for htmx:configRequest and ignores any other event.
// It always returns true so the host keeps processing the event.
func (x *Extension) OnEvent(name string, evt *Event) bool {
	if name != EventConfigRequest || evt == nil {
		return true
	}

	Resolve(evt.Elt, evt.Headers, x.catalog)

	x.logger.Debug("directives resolved",
		slog.Int("headers", len(evt.Headers)),
		slog.Any("keys", evt.Headers.SortedKeys()),
	)
	return true
}
