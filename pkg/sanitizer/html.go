// Package sanitizer cleans user-supplied text before it is stored or echoed
// back into htmx fragments.
package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy   *bluemonday.Policy
	fragmentPolicy *bluemonday.Policy
	initOnce       sync.Once
)

func policies() (*bluemonday.Policy, *bluemonday.Policy) {
	initOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()

		fragmentPolicy = bluemonday.NewPolicy()
		fragmentPolicy.AllowStandardURLs()
		fragmentPolicy.AllowElements("p", "br", "strong", "b", "em", "i", "code")
		fragmentPolicy.AllowAttrs("href").OnElements("a")
		fragmentPolicy.RequireNoFollowOnLinks(true)
	})
	return strictPolicy, fragmentPolicy
}

// PlainText strips all markup and collapses whitespace. The result is
// unescaped text meant for html/template, which escapes it again on output.
func PlainText(s string) string {
	strict, _ := policies()
	return strings.Join(strings.Fields(html.UnescapeString(strict.Sanitize(s))), " ")
}

// Fragment keeps basic inline formatting and links and drops everything else.
func Fragment(s string) string {
	_, fragment := policies()
	return fragment.Sanitize(s)
}
