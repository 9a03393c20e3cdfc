package htmx

import (
	"context"
	"maps"
	"net/http"
	"strings"

	"github.com/dmitrymomot/okayjack/pkg/directive"
)

// Directives are the okayjack directives a request carries, keyed by the
// lower-cased directive name ("target", "push-url", "block", ...).
type Directives struct {
	Success  map[string]string
	Error    map[string]string
	Unscoped map[string]string
}

// ParseDirectives reads every catalog key present in h.
func ParseDirectives(h http.Header, catalog directive.Catalog) Directives {
	d := Directives{
		Success:  map[string]string{},
		Error:    map[string]string{},
		Unscoped: map[string]string{},
	}

	for _, e := range catalog.Entries() {
		values, ok := h[http.CanonicalHeaderKey(e.Key)]
		if !ok || len(values) == 0 {
			continue
		}
		d.scope(e.Variant)[e.Name.Lower()] = values[0]
	}
	return d
}

func (d Directives) scope(v directive.Variant) map[string]string {
	switch v {
	case directive.Success:
		return d.Success
	case directive.Error:
		return d.Error
	default:
		return d.Unscoped
	}
}

// Variant returns a copy of the directives scoped to v.
func (d Directives) Variant(v directive.Variant) map[string]string {
	return maps.Clone(d.scope(v))
}

// Get returns the value of name in variant v.
func (d Directives) Get(v directive.Variant, name directive.Name) (string, bool) {
	val, ok := d.scope(v)[name.Lower()]
	return val, ok
}

// Lookup returns name in variant v, falling back to its unscoped form.
func (d Directives) Lookup(v directive.Variant, name directive.Name) (string, bool) {
	if val, ok := d.Get(v, name); ok {
		return val, true
	}
	return d.Get(directive.Unscoped, name)
}

// Block returns the template block to render for outcome v.
func (d Directives) Block(v directive.Variant) string {
	b, _ := d.Lookup(v, directive.Block)
	return b
}

// IsEmpty reports whether no directive was sent.
func (d Directives) IsEmpty() bool {
	return len(d.Success) == 0 && len(d.Error) == 0 && len(d.Unscoped) == 0
}

// Outcome builds the response headers for outcome v. Trigger directives fall back
// to their unscoped form; Block has no response header and is skipped.
func (d Directives) Outcome(v directive.Variant) *Config {
	cfg := &Config{}
	scoped := d.scope(v)

	if s, ok := scoped[directive.Location.Lower()]; ok {
		cfg.Location = s
	}
	if s, ok := scoped[directive.Redirect.Lower()]; ok {
		cfg.Redirect = s
	}
	if s, ok := scoped[directive.Target.Lower()]; ok {
		cfg.Retarget = s
	}
	if s, ok := scoped[directive.Swap.Lower()]; ok {
		cfg.Reswap = SwapStrategy(s)
	}
	if s, ok := scoped[directive.PushURL.Lower()]; ok {
		cfg.PushURL = s
	}
	if s, ok := scoped[directive.ReplaceURL.Lower()]; ok {
		cfg.ReplaceURL = s
	}
	if s, ok := scoped[directive.Refresh.Lower()]; ok {
		cfg.Refresh = strings.EqualFold(strings.TrimSpace(s), headerTrue)
	}

	if s, ok := d.Lookup(v, directive.TriggerAfterReceive); ok && s != "" {
		cfg.Triggers = []string{s}
	}
	if s, ok := d.Lookup(v, directive.TriggerAfterSwap); ok && s != "" {
		cfg.TriggersAfterSwap = []string{s}
	}
	if s, ok := d.Lookup(v, directive.TriggerAfterSettle); ok && s != "" {
		cfg.TriggersAfterSettle = []string{s}
	}
	return cfg
}

type directivesKey struct{}

// WithDirectives stores d in ctx.
func WithDirectives(ctx context.Context, d Directives) context.Context {
	return context.WithValue(ctx, directivesKey{}, d)
}

// DirectivesFromContext returns the directives stored by WithDirectives.
func DirectivesFromContext(ctx context.Context) (Directives, bool) {
	d, ok := ctx.Value(directivesKey{}).(Directives)
	return d, ok
}

// BlockFromContext returns the block requested for outcome v, or "".
func BlockFromContext(ctx context.Context, v directive.Variant) string {
	d, ok := DirectivesFromContext(ctx)
	if !ok {
		return ""
	}
	return d.Block(v)
}
