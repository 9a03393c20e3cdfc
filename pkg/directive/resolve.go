package directive

import (
	"maps"
	"net/http"
	"slices"

	"github.com/dmitrymomot/okayjack/pkg/dom"
)

// Headers is the outgoing header mapping owned by the caller.
// Keys are exact header names such as "HX-Success-Target".
type Headers map[string]string

// Apply copies h onto dst. Keys are canonicalized by http.Header.Set.
func (h Headers) Apply(dst http.Header) {
	for k, v := range h {
		dst.Set(k, v)
	}
}

// SortedKeys returns the keys of h in lexical order.
func (h Headers) SortedKeys() []string {
	return slices.Sorted(maps.Keys(h))
}

// Resolve injects into headers every catalog key whose lower-cased attribute is
// declared on trigger or one of its ancestors. The nearest declaration wins and its
// value is copied as is. Keys with no declaration are left out, and entries that
// are not catalog keys are never touched.
//
// A nil trigger resolves nothing. headers must be non-nil.
func Resolve(trigger dom.Element, headers Headers, catalog Catalog) {
	for _, e := range catalog.entries {
		if v, ok := dom.Lookup(trigger, AttributeName(e.Key)); ok {
			headers[e.Key] = v
		}
	}
}
