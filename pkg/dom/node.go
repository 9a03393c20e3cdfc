package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Node is an Element backed by an *html.Node of type html.ElementNode.
type Node struct {
	n *html.Node
}

// NewNode wraps n. It returns nil unless n is an element node.
func NewNode(n *html.Node) *Node {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return &Node{n: n}
}

// HTML returns the wrapped node.
func (n *Node) HTML() *html.Node {
	if n == nil {
		return nil
	}
	return n.n
}

// Tag returns the lower-case tag name.
func (n *Node) Tag() string {
	if n == nil {
		return ""
	}
	return n.n.Data
}

// Attr looks up a literal attribute. Names compare case-insensitively, as
// getAttribute does for HTML documents. Namespaced attributes are ignored.
func (n *Node) Attr(name string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

// Parent returns the enclosing element. The document node and fragments end the chain.
func (n *Node) Parent() Element {
	if n == nil {
		return nil
	}
	p := NewNode(n.n.Parent)
	if p == nil {
		// Avoid returning a typed nil inside the interface.
		return nil
	}
	return p
}

// Parse parses a full HTML document.
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// FindByID returns the first element whose id attribute equals id.
func FindByID(root *html.Node, id string) (*Node, bool) {
	var found *Node
	walk(root, func(n *html.Node) bool {
		el := NewNode(n)
		if el == nil {
			return true
		}
		if v, ok := el.Attr("id"); ok && v == id {
			found = el
			return false
		}
		return true
	})
	return found, found != nil
}

// FindAll returns every element declaring attr, in document order.
func FindAll(root *html.Node, attr string) []*Node {
	var out []*Node
	walk(root, func(n *html.Node) bool {
		if el := NewNode(n); el != nil {
			if _, ok := el.Attr(attr); ok {
				out = append(out, el)
			}
		}
		return true
	})
	return out
}

// walk visits n and its descendants depth first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}
