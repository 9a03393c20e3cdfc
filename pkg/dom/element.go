package dom

// Element is a node of a document tree as seen by attribute lookups.
// Parent returns nil at the top of the chain.
type Element interface {
	Attr(name string) (string, bool)
	Parent() Element
}

// Closest returns the nearest element carrying attr, starting with el itself
// and moving up through its ancestors. An attribute with an empty value still counts.
func Closest(el Element, attr string) (Element, bool) {
	for cur := el; cur != nil; cur = cur.Parent() {
		if _, ok := cur.Attr(attr); ok {
			return cur, true
		}
	}
	return nil, false
}

// Lookup returns the value of attr on the closest element that declares it.
func Lookup(el Element, attr string) (string, bool) {
	found, ok := Closest(el, attr)
	if !ok {
		return "", false
	}
	return found.Attr(attr)
}

// Ancestors returns el followed by each of its ancestors, nearest first.
func Ancestors(el Element) []Element {
	var chain []Element
	for cur := el; cur != nil; cur = cur.Parent() {
		chain = append(chain, cur)
	}
	return chain
}
