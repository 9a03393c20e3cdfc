// Package htmx holds the htmx header vocabulary and the server side of okayjack
// directives.
//
// # Request Detection
//
//	if htmx.IsHTMX(r) {
//		// partial response
//	}
//
// RenderPartial additionally treats boosted requests as partial and history
// restore requests as full page loads.
//
// # Directives
//
// ParseDirectives reads the HX-Success-*, HX-Error-* and unscoped custom headers
// the okayjack resolver put on the request:
//
//	d := htmx.ParseDirectives(r.Header, directive.DefaultCatalog())
//	d.Get(directive.Success, directive.Target) // "#poll"
//	d.Block(directive.Error)                   // variant block, or the unscoped one
//
// Outcome turns one variant into a response Config, mapping Target to HX-Retarget,
// Swap to HX-Reswap, Trigger-After-Receive to HX-Trigger and so on. The okayjack
// middleware calls it once the handler's status code is known.
//
// # Response Headers
//
// Config collects response headers through functional options:
//
//	htmx.NewConfig(
//		htmx.WithRetarget("#errors"),
//		htmx.WithReswap(htmx.SwapOuterHTML),
//		htmx.WithTrigger("vote-failed"),
//	).ApplyHeaders(w)
//
// ApplyDefaults sets only headers the handler has not set itself.
//
// # Swap Strategies
//
// SwapStrategy names the hx-swap values: innerHTML, outerHTML, textContent,
// beforebegin, afterbegin, beforeend, afterend, delete and none.
package htmx
