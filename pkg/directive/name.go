package directive

import "strings"

// Name is a logical directive identifier such as "Target" or "Trigger-After-Settle".
type Name string

// Standard directives mirror htmx response headers.
const (
	Location   Name = "Location"
	PushURL    Name = "Push-Url"
	Redirect   Name = "Redirect"
	Refresh    Name = "Refresh"
	ReplaceURL Name = "Replace-Url"
	Swap       Name = "Swap"
	Target     Name = "Target"
)

// Custom directives have no htmx request attribute equivalent.
const (
	Block               Name = "Block"
	TriggerAfterReceive Name = "Trigger-After-Receive"
	TriggerAfterSettle  Name = "Trigger-After-Settle"
	TriggerAfterSwap    Name = "Trigger-After-Swap"
)

// Variant selects the outcome a directive applies to.
type Variant uint8

const (
	// Unscoped applies regardless of outcome. Only custom names use it.
	Unscoped Variant = iota
	Success
	Error
)

const (
	keyPrefix     = "HX-"
	successPrefix = "Success-"
	errorPrefix   = "Error-"
)

// String returns the variant label.
func (v Variant) String() string {
	switch v {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unscoped"
	}
}

// prefix returns the segment inserted between "HX-" and the name.
func (v Variant) prefix() string {
	switch v {
	case Success:
		return successPrefix
	case Error:
		return errorPrefix
	default:
		return ""
	}
}

// Key returns the header name for name in variant v, e.g. "HX-Error-Swap".
func Key(name Name, v Variant) string {
	return keyPrefix + v.prefix() + string(name)
}

// AttributeName returns the markup attribute for a header key, e.g. "hx-error-swap".
func AttributeName(key string) string {
	return strings.ToLower(key)
}

// Attribute is a shorthand for AttributeName(Key(name, v)).
func Attribute(name Name, v Variant) string {
	return AttributeName(Key(name, v))
}

// Lower returns the lower-cased name used as a map key on the server side, e.g. "push-url".
func (n Name) Lower() string {
	return strings.ToLower(string(n))
}
