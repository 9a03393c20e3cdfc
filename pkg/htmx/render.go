package htmx

import (
	"net/http"
	"strings"
)

// Config holds htmx response headers.
type Config struct {
	Location            string
	Redirect            string
	Retarget            string
	Reswap              SwapStrategy
	Reselect            string
	PushURL             string
	ReplaceURL          string
	Triggers            []string
	TriggersAfterSwap   []string
	TriggersAfterSettle []string
	Refresh             bool
}

// RenderOption configures a Config.
type RenderOption func(*Config)

// NewConfig creates a Config from options.
func NewConfig(opts ...RenderOption) *Config {
	cfg := &Config{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Headers returns the non-empty headers of c in a fixed order.
func (c *Config) Headers() [][2]string {
	if c == nil {
		return nil
	}

	var out [][2]string
	add := func(name, value string) {
		if value != "" {
			out = append(out, [2]string{name, value})
		}
	}

	add(HeaderHXLocation, c.Location)
	add(HeaderHXRedirect, c.Redirect)
	add(HeaderHXRetarget, c.Retarget)
	add(HeaderHXReswap, string(c.Reswap))
	add(HeaderHXReselect, c.Reselect)
	add(HeaderHXPushURL, c.PushURL)
	add(HeaderHXReplaceURL, c.ReplaceURL)
	add(HeaderHXTrigger, strings.Join(c.Triggers, ", "))
	add(HeaderHXTriggerAfterSwap, strings.Join(c.TriggersAfterSwap, ", "))
	add(HeaderHXTriggerAfterSettle, strings.Join(c.TriggersAfterSettle, ", "))
	if c.Refresh {
		add(HeaderHXRefresh, headerTrue)
	}
	return out
}

// IsEmpty reports whether c would set no header.
func (c *Config) IsEmpty() bool {
	return len(c.Headers()) == 0
}

// ApplyHeaders sets every header of c on the response, replacing existing values.
// Must be called before WriteHeader.
func (c *Config) ApplyHeaders(w http.ResponseWriter) {
	h := w.Header()
	for _, kv := range c.Headers() {
		h.Set(kv[0], kv[1])
	}
}

// ApplyDefaults sets the headers of c that are not already present on the response.
func (c *Config) ApplyDefaults(w http.ResponseWriter) {
	h := w.Header()
	for _, kv := range c.Headers() {
		if h.Get(kv[0]) == "" {
			h.Set(kv[0], kv[1])
		}
	}
}

// WithLocation sets HX-Location: a path or a JSON object of location options.
func WithLocation(location string) RenderOption {
	return func(c *Config) {
		c.Location = location
	}
}

// WithRedirect sets HX-Redirect for a full client-side redirect.
func WithRedirect(url string) RenderOption {
	return func(c *Config) {
		c.Redirect = url
	}
}

// WithRetarget sets the HX-Retarget header to change the target element.
func WithRetarget(selector string) RenderOption {
	return func(c *Config) {
		c.Retarget = selector
	}
}

// WithReswap sets the HX-Reswap header to change the swap strategy.
func WithReswap(strategy SwapStrategy) RenderOption {
	return func(c *Config) {
		c.Reswap = strategy
	}
}

// WithReselect sets the HX-Reselect header to select a subset of the response.
func WithReselect(selector string) RenderOption {
	return func(c *Config) {
		c.Reselect = selector
	}
}

// WithPushURL sets the HX-Push-Url header. Pass "false" to prevent the update.
func WithPushURL(url string) RenderOption {
	return func(c *Config) {
		c.PushURL = url
	}
}

// WithReplaceURL sets the HX-Replace-Url header. Pass "false" to prevent replacement.
func WithReplaceURL(url string) RenderOption {
	return func(c *Config) {
		c.ReplaceURL = url
	}
}

// WithTrigger appends events to HX-Trigger. Multiple events are comma-joined.
func WithTrigger(events ...string) RenderOption {
	return func(c *Config) {
		c.Triggers = append(c.Triggers, events...)
	}
}

// WithTriggerAfterSwap appends events to HX-Trigger-After-Swap.
func WithTriggerAfterSwap(events ...string) RenderOption {
	return func(c *Config) {
		c.TriggersAfterSwap = append(c.TriggersAfterSwap, events...)
	}
}

// WithTriggerAfterSettle appends events to HX-Trigger-After-Settle.
func WithTriggerAfterSettle(events ...string) RenderOption {
	return func(c *Config) {
		c.TriggersAfterSettle = append(c.TriggersAfterSettle, events...)
	}
}

// WithRefresh sets the HX-Refresh header to force a full page refresh.
func WithRefresh() RenderOption {
	return func(c *Config) {
		c.Refresh = true
	}
}
