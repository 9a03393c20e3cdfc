package directive_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/okayjack/pkg/directive"
)

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := directive.DefaultCatalog()

	t.Run("keys follow resolution order", func(t *testing.T) {
		t.Parallel()

		want := []string{
			"HX-Success-Location", "HX-Error-Location",
			"HX-Success-Push-Url", "HX-Error-Push-Url",
			"HX-Success-Redirect", "HX-Error-Redirect",
			"HX-Success-Refresh", "HX-Error-Refresh",
			"HX-Success-Replace-Url", "HX-Error-Replace-Url",
			"HX-Success-Swap", "HX-Error-Swap",
			"HX-Success-Target", "HX-Error-Target",
			"HX-Success-Block", "HX-Error-Block", "HX-Block",
			"HX-Success-Trigger-After-Receive", "HX-Error-Trigger-After-Receive", "HX-Trigger-After-Receive",
			"HX-Success-Trigger-After-Settle", "HX-Error-Trigger-After-Settle", "HX-Trigger-After-Settle",
			"HX-Success-Trigger-After-Swap", "HX-Error-Trigger-After-Swap", "HX-Trigger-After-Swap",
		}
		assert.Equal(t, want, c.Keys())
		assert.Equal(t, len(want), c.Len())
	})

	t.Run("plain Trigger is not resolved", func(t *testing.T) {
		t.Parallel()

		assert.NotContains(t, c.Keys(), "HX-Trigger")
		assert.False(t, c.IsCustom("Trigger"))
	})

	t.Run("standard names have no unscoped key", func(t *testing.T) {
		t.Parallel()

		assert.NotContains(t, c.Keys(), "HX-Target")
		assert.NotContains(t, c.Keys(), "HX-Swap")
		assert.True(t, c.IsCustom(directive.Block))
		assert.False(t, c.IsCustom(directive.Target))
	})

	t.Run("accessors return copies", func(t *testing.T) {
		t.Parallel()

		std := c.Standard()
		std[0] = "Mutated"
		assert.Equal(t, directive.Location, c.Standard()[0])

		entries := c.Entries()
		entries[0].Key = "X"
		assert.Equal(t, "HX-Success-Location", c.Entries()[0].Key)
	})
}

func TestNewCatalog(t *testing.T) {
	t.Parallel()

	t.Run("copies input slices", func(t *testing.T) {
		t.Parallel()

		std := []directive.Name{directive.Target}
		c, err := directive.NewCatalog(std, nil)
		require.NoError(t, err)

		std[0] = directive.Swap
		assert.Equal(t, []string{"HX-Success-Target", "HX-Error-Target"}, c.Keys())
	})

	t.Run("zero value is empty", func(t *testing.T) {
		t.Parallel()

		var c directive.Catalog
		assert.Empty(t, c.Keys())
		assert.Zero(t, c.Len())
	})

	invalid := []struct {
		name     string
		standard []directive.Name
		custom   []directive.Name
		err      error
	}{
		{"empty name", []directive.Name{""}, nil, directive.ErrInvalidName},
		{"whitespace", []directive.Name{"Push Url"}, nil, directive.ErrInvalidName},
		{"hx prefix", nil, []directive.Name{"HX-Block"}, directive.ErrInvalidName},
		{"lower hx prefix", nil, []directive.Name{"hx-block"}, directive.ErrInvalidName},
		{"variant prefix", []directive.Name{"Success-Target"}, nil, directive.ErrInvalidName},
		{"error prefix", []directive.Name{"Error-Target"}, nil, directive.ErrInvalidName},
		{"duplicate in list", []directive.Name{"Target", "Target"}, nil, directive.ErrDuplicateName},
		{"duplicate across lists", []directive.Name{"Target"}, []directive.Name{"target"}, directive.ErrDuplicateName},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := directive.NewCatalog(tt.standard, tt.custom)
			require.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("MustCatalog panics on invalid input", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			directive.MustCatalog([]directive.Name{""}, nil)
		})
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("reads standard and custom lists", func(t *testing.T) {
		t.Parallel()

		c, err := directive.LoadCatalog(strings.NewReader("standard: [Target, Swap]\ncustom: [Block]\n"))
		require.NoError(t, err)

		assert.Equal(t, []directive.Name{directive.Target, directive.Swap}, c.Standard())
		assert.Equal(t, []directive.Name{directive.Block}, c.Custom())
		assert.Equal(t, 7, c.Len())
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		_, err := directive.LoadCatalog(strings.NewReader("standard: [Target]\nextra: [Block]\n"))
		require.ErrorIs(t, err, directive.ErrInvalidFile)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		t.Parallel()

		_, err := directive.LoadCatalog(strings.NewReader(""))
		require.ErrorIs(t, err, directive.ErrInvalidFile)
	})

	t.Run("validates names", func(t *testing.T) {
		t.Parallel()

		_, err := directive.LoadCatalog(strings.NewReader("custom: [HX-Block]\n"))
		require.ErrorIs(t, err, directive.ErrInvalidName)
	})

	t.Run("loads from fs", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"okayjack.yaml": {Data: []byte("standard: [Target]\ncustom: [Trigger-After-Settle]\n")},
		}

		c, err := directive.LoadCatalogFS(fsys, "okayjack.yaml")
		require.NoError(t, err)
		assert.Contains(t, c.Keys(), "HX-Trigger-After-Settle")

		_, err = directive.LoadCatalogFS(fsys, "missing.yaml")
		require.Error(t, err)
	})

	t.Run("marshals back to the same shape", func(t *testing.T) {
		t.Parallel()

		out, err := yaml.Marshal(directive.DefaultCatalog())
		require.NoError(t, err)

		c, err := directive.LoadCatalog(strings.NewReader(string(out)))
		require.NoError(t, err)
		assert.Equal(t, directive.DefaultCatalog().Keys(), c.Keys())
	})
}
