package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/okayjack/pkg/sanitizer"
)

func TestPlainText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "Tabs", expected: "Tabs"},
		{name: "strips tags", input: "<b>Spaces</b> <i>please</i>", expected: "Spaces please"},
		{name: "drops scripts", input: `<p>Go</p><script>alert('xss')</script>`, expected: "Go"},
		{name: "drops handlers", input: `<img src="x" onerror="alert(1)">`, expected: ""},
		{name: "unescapes entities", input: "Go &amp; Rust", expected: "Go & Rust"},
		{name: "collapses whitespace", input: "  a \n\t b  ", expected: "a b"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.PlainText(tt.input))
		})
	}
}

func TestFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "keeps formatting",
			input:    "<p>Pick <strong>one</strong></p>",
			contains: []string{"<p>", "<strong>one</strong>"},
		},
		{
			name:     "drops scripts",
			input:    `<p>hi</p><script>alert(1)</script>`,
			contains: []string{"<p>hi</p>"},
			excludes: []string{"script", "alert"},
		},
		{
			name:     "nofollow links",
			input:    `<a href="https://htmx.org">htmx</a>`,
			contains: []string{`href="https://htmx.org"`, `rel="nofollow"`},
		},
		{
			name:     "drops javascript urls",
			input:    `<a href="javascript:alert(1)">x</a>`,
			excludes: []string{"javascript"},
		},
		{
			name:     "drops hx attributes",
			input:    `<p hx-get="/admin" hx-error-target="body">x</p>`,
			contains: []string{"<p>x</p>"},
			excludes: []string{"hx-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out := sanitizer.Fragment(tt.input)
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}
