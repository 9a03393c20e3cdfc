// Package okayjack lets htmx markup declare separate success and error
// behaviour for a request.
//
// Markup carries hx-success-* and hx-error-* attributes (and the custom
// hx-block and hx-trigger-after-* attributes) on the triggering element or any
// ancestor:
//
//	<section hx-error-target="#errors" hx-error-swap="innerHTML">
//	    <form hx-post="/vote" hx-success-target="#poll" hx-success-block="results">
//
// Before the request leaves, Resolve copies the value of the nearest matching
// attribute into a request header named after it (HX-Success-Target,
// HX-Error-Target, HX-Block, ...). In a Go host the same happens through an
// Extension reacting to the htmx:configRequest event:
//
//	ext := okayjack.NewExtension()
//	ext.OnEvent(okayjack.EventConfigRequest, &okayjack.Event{Elt: el, Headers: headers})
//
// On the server, Middleware reads those headers and, once the handler commits
// a status code, turns the matching variant into htmx response headers:
//
//	r := chi.NewRouter()
//	r.Use(okayjack.Middleware())
//
// The set of directive names is a Catalog. DefaultCatalog covers the htmx
// response headers plus the custom names; LoadCatalog reads one from YAML.
package okayjack
