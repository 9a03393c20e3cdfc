package htmx

import (
	"net/http"
	"strings"
)

// IsHTMX returns true if the request originated from htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get(HeaderHXRequest) == headerTrue
}

// IsBoosted returns true for requests made through hx-boost.
func IsBoosted(r *http.Request) bool {
	return r.Header.Get(HeaderHXBoosted) == headerTrue
}

// IsHistoryRestore returns true when htmx restores history after a cache miss
// and therefore needs the full page.
func IsHistoryRestore(r *http.Request) bool {
	return r.Header.Get(HeaderHXHistoryRestoreRequest) == headerTrue
}

// RenderPartial reports whether a fragment should be rendered instead of the page.
func RenderPartial(r *http.Request) bool {
	return (IsHTMX(r) || IsBoosted(r)) && !IsHistoryRestore(r)
}

// FormBool reads a form value as a boolean the way okayjack markup sends them:
// "true" and "on" are true, anything else is false. PATCH bodies are parsed by
// Request.FormValue like POST and PUT bodies.
func FormBool(r *http.Request, key string) bool {
	switch strings.ToLower(r.FormValue(key)) {
	case "true", "on":
		return true
	default:
		return false
	}
}
