package directive_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"golang.org/x/net/html"

	"github.com/dmitrymomot/okayjack/pkg/directive"
	"github.com/dmitrymomot/okayjack/pkg/dom"
)

// resolveBDDContext holds per-scenario state.
type resolveBDDContext struct {
	root    *html.Node
	headers directive.Headers
}

func (c *resolveBDDContext) theDocument(doc *godog.DocString) error {
	root, err := dom.Parse(strings.NewReader(doc.Content))
	if err != nil {
		return err
	}
	c.root = root
	return nil
}

func (c *resolveBDDContext) theRequestAlreadyCarriesHeader(name, value string) error {
	c.headers[name] = value
	return nil
}

func (c *resolveBDDContext) aRequestIsConfiguredFromElement(id string) error {
	el, ok := dom.FindByID(c.root, id)
	if !ok {
		return fmt.Errorf("element %q not found", id)
	}
	directive.NewExtension().OnEvent(directive.EventConfigRequest, &directive.Event{
		Elt:     el,
		Headers: c.headers,
	})
	return nil
}

func (c *resolveBDDContext) theHeaderIs(name, want string) error {
	got, ok := c.headers[name]
	if !ok {
		return fmt.Errorf("header %q not set", name)
	}
	if got != want {
		return fmt.Errorf("header %q = %q, want %q", name, got, want)
	}
	return nil
}

func (c *resolveBDDContext) theHeaderIsAbsent(name string) error {
	if v, ok := c.headers[name]; ok {
		return fmt.Errorf("header %q unexpectedly set to %q", name, v)
	}
	return nil
}

func (c *resolveBDDContext) headersAreSet(n int) error {
	if len(c.headers) != n {
		return fmt.Errorf("got %d headers %v, want %d", len(c.headers), c.headers, n)
	}
	return nil
}

func initializeResolveScenario(s *godog.ScenarioContext) {
	c := &resolveBDDContext{headers: directive.Headers{}}

	s.Given(`^the document:$`, c.theDocument)
	s.Given(`^the request already carries header "([^"]*)" with "([^"]*)"$`, c.theRequestAlreadyCarriesHeader)
	s.When(`^a request is configured from element "([^"]*)"$`, c.aRequestIsConfiguredFromElement)
	s.Then(`^the header "([^"]*)" is "([^"]*)"$`, c.theHeaderIs)
	s.Then(`^the header "([^"]*)" is absent$`, c.theHeaderIsAbsent)
	s.Then(`^(\d+) headers? (?:is|are) set$`, c.headersAreSet)
}

func TestResolveFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "directive-resolve",
		ScenarioInitializer: initializeResolveScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/resolve.feature"},
			TestingT: t,
			Strict:   true,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
