package directive

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
)

// Entry is one resolvable key of a catalog.
type Entry struct {
	Name    Name
	Variant Variant
	Key     string
}

// Catalog is an immutable, ordered set of directive names split into standard and
// custom names. The zero value is an empty catalog.
type Catalog struct {
	standard []Name
	custom   []Name
	entries  []Entry
}

// NewCatalog validates and copies the given names.
// Names must be non-empty, contain no whitespace, carry no "HX-", "Success-" or
// "Error-" prefix and appear only once across both lists.
func NewCatalog(standard, custom []Name) (Catalog, error) {
	seen := make(map[string]struct{}, len(standard)+len(custom))
	for _, list := range [][]Name{standard, custom} {
		for _, n := range list {
			if err := validateName(n); err != nil {
				return Catalog{}, err
			}
			k := strings.ToLower(string(n))
			if _, ok := seen[k]; ok {
				return Catalog{}, fmt.Errorf("%w: %q", ErrDuplicateName, n)
			}
			seen[k] = struct{}{}
		}
	}

	c := Catalog{
		standard: slices.Clone(standard),
		custom:   slices.Clone(custom),
	}
	c.entries = buildEntries(c.standard, c.custom)
	return c, nil
}

// MustCatalog is like NewCatalog but panics on invalid input.
func MustCatalog(standard, custom []Name) Catalog {
	c, err := NewCatalog(standard, custom)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCatalog returns the built-in catalog.
//
// Standard: Location, Push-Url, Redirect, Refresh, Replace-Url, Swap, Target.
// Custom: Block, Trigger-After-Receive, Trigger-After-Settle, Trigger-After-Swap.
//
// Plain Trigger is not part of it: HX-Trigger is already a request header htmx
// sends with the id of the triggering element.
func DefaultCatalog() Catalog {
	return MustCatalog(
		[]Name{Location, PushURL, Redirect, Refresh, ReplaceURL, Swap, Target},
		[]Name{Block, TriggerAfterReceive, TriggerAfterSettle, TriggerAfterSwap},
	)
}

// Standard returns a copy of the standard names.
func (c Catalog) Standard() []Name { return slices.Clone(c.standard) }

// Custom returns a copy of the custom names.
func (c Catalog) Custom() []Name { return slices.Clone(c.custom) }

// Entries returns every resolvable key in resolution order: for each standard name
// Success then Error, followed by each custom name as Success, Error and Unscoped.
func (c Catalog) Entries() []Entry { return slices.Clone(c.entries) }

// Keys returns the header names of Entries in the same order.
func (c Catalog) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// Len returns the number of resolvable keys.
func (c Catalog) Len() int { return len(c.entries) }

// IsCustom reports whether name is one of the custom names.
func (c Catalog) IsCustom(name Name) bool {
	return slices.Contains(c.custom, name)
}

func buildEntries(standard, custom []Name) []Entry {
	entries := make([]Entry, 0, 2*len(standard)+3*len(custom))
	for _, n := range standard {
		entries = append(entries,
			Entry{Name: n, Variant: Success, Key: Key(n, Success)},
			Entry{Name: n, Variant: Error, Key: Key(n, Error)},
		)
	}
	for _, n := range custom {
		entries = append(entries,
			Entry{Name: n, Variant: Success, Key: Key(n, Success)},
			Entry{Name: n, Variant: Error, Key: Key(n, Error)},
			Entry{Name: n, Variant: Unscoped, Key: Key(n, Unscoped)},
		)
	}
	return entries
}

func validateName(n Name) error {
	s := string(n)
	if s == "" {
		return fmt.Errorf("%w: empty", ErrInvalidName)
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q contains whitespace", ErrInvalidName, s)
	}
	lower := strings.ToLower(s)
	for _, p := range []string{keyPrefix, successPrefix, errorPrefix} {
		if strings.HasPrefix(lower, strings.ToLower(p)) {
			return fmt.Errorf("%w: %q must not start with %q", ErrInvalidName, s, p)
		}
	}
	return nil
}
