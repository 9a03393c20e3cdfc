package okayjack

import (
	"io"
	"net/http"

	"github.com/dmitrymomot/okayjack/middlewares"
	"github.com/dmitrymomot/okayjack/pkg/directive"
	"github.com/dmitrymomot/okayjack/pkg/dom"
	"github.com/dmitrymomot/okayjack/pkg/htmx"
)

// Type aliases - public API
type (
	// Name is a directive name such as "Target" or "Trigger-After-Settle".
	Name = directive.Name

	// Variant selects the outcome a directive applies to.
	Variant = directive.Variant

	// Catalog is the immutable set of directive names to resolve.
	Catalog = directive.Catalog

	// Headers is the outgoing request header mapping Resolve fills.
	Headers = directive.Headers

	// Element is a node with attributes and a parent.
	Element = dom.Element

	// Event is the payload of an htmx lifecycle event.
	Event = directive.Event

	// Extension resolves directives on htmx:configRequest.
	Extension = directive.Extension

	// ExtensionOption configures an Extension.
	ExtensionOption = directive.Option

	// Directives are the directives a request carries, as seen by the server.
	Directives = htmx.Directives

	// MiddlewareOption configures Middleware.
	MiddlewareOption = middlewares.OkayjackOption
)

// Variants.
const (
	Unscoped = directive.Unscoped
	Success  = directive.Success
	Error    = directive.Error
)

// EventConfigRequest is the only event an Extension acts on.
const EventConfigRequest = directive.EventConfigRequest

// Sentinel errors.
var (
	ErrInvalidName   = directive.ErrInvalidName
	ErrDuplicateName = directive.ErrDuplicateName
	ErrInvalidFile   = directive.ErrInvalidFile
)

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() Catalog {
	return directive.DefaultCatalog()
}

// NewCatalog validates standard and custom names into a Catalog.
func NewCatalog(standard, custom []Name) (Catalog, error) {
	return directive.NewCatalog(standard, custom)
}

// LoadCatalog reads a YAML catalog.
func LoadCatalog(r io.Reader) (Catalog, error) {
	return directive.LoadCatalog(r)
}

// Resolve copies every catalog attribute found on trigger or its closest
// ancestor into headers.
func Resolve(trigger Element, headers Headers, catalog Catalog) {
	directive.Resolve(trigger, headers, catalog)
}

// NewExtension creates an htmx:configRequest extension.
func NewExtension(opts ...ExtensionOption) *Extension {
	return directive.NewExtension(opts...)
}

// WithCatalog substitutes the catalog an Extension resolves.
func WithCatalog(c Catalog) ExtensionOption {
	return directive.WithCatalog(c)
}

// ParseDirectives reads the directives carried by request headers.
func ParseDirectives(h http.Header, catalog Catalog) Directives {
	return htmx.ParseDirectives(h, catalog)
}

// Middleware applies the success or error variant of a request's directives
// to the response.
func Middleware(opts ...MiddlewareOption) func(http.Handler) http.Handler {
	return middlewares.Okayjack(opts...)
}
