// Package directive resolves okayjack directives declared in markup into
// outgoing request headers.
//
// A directive is an htmx response instruction (Target, Swap, Push-Url, ...) or an
// okayjack extension (Block, Trigger-After-Settle, ...) that the markup scopes to the
// outcome of a request:
//
//	<form hx-post="/polls/1/vote" hx-success-target="#poll" hx-error-target="#errors">
//		<button hx-block="results">Vote</button>
//	</form>
//
// Before the request is sent, Resolve walks from the triggering element up to the
// document root and, for every key in the Catalog, copies the nearest declared
// attribute into the header mapping:
//
//	headers := directive.Headers{}
//	directive.Resolve(button, headers, directive.DefaultCatalog())
//	// headers: HX-Success-Target=#poll, HX-Error-Target=#errors, HX-Block=results
//
// # Naming
//
// Header names are built as "HX-" + optional "Success-"/"Error-" + name and keep
// their case. Attribute names are the lower-cased header names.
//
// # Catalogs
//
// Standard names mirror htmx response headers and only exist in Success and Error
// form, because htmx already honours their plain attributes. Custom names have no
// htmx counterpart, so their unscoped form is sent as well. Catalogs are plain
// values; DefaultCatalog returns the built-in one and LoadCatalog reads YAML.
//
// # Lifecycle
//
// Extension plugs Resolve into the host's event stream and reacts only to
// htmx:configRequest.
package directive
