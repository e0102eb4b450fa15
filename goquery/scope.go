// Package goquery implements CSS-selector document scoping using
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/varcheck"
)

// Ensure Scoper implements the interface.
var _ varcheck.Scoper = (*Scoper)(nil)

// Scoper narrows a document to the subtrees matched by a CSS selector,
// so that comparison can ignore page chrome (headers, navigation,
// footers) and focus on a content region such as main.
type Scoper struct{}

// NewScoper creates a new Scoper.
func NewScoper() *Scoper {
	return &Scoper{}
}

// Scope returns the outer HTML of every element matched by selector,
// concatenated in document order. Returns EINVALID if the selector does
// not parse and ENOTFOUND if it matches no elements.
func (s *Scoper) Scope(doc, selector string) (string, error) {
	// Compile through cascadia directly: goquery's Find panics on an
	// invalid selector, and a user-supplied selector must surface as an
	// error instead.
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return "", varcheck.Errorf(varcheck.EINVALID, "invalid selector %q: %v", selector, err)
	}

	gq, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return "", varcheck.Errorf(varcheck.EINVALID, "failed to parse HTML: %v", err)
	}

	sel := gq.FindMatcher(matcher)
	if sel.Length() == 0 {
		return "", varcheck.Errorf(varcheck.ENOTFOUND, "selector %q matched no elements", selector)
	}

	var parts []string
	var outerErr error
	sel.EachWithBreak(func(_ int, node *goquery.Selection) bool {
		outer, err := goquery.OuterHtml(node)
		if err != nil {
			outerErr = varcheck.Errorf(varcheck.EINTERNAL, "failed to render selection: %v", err)
			return false
		}
		parts = append(parts, outer)
		return true
	})
	if outerErr != nil {
		return "", outerErr
	}

	return strings.Join(parts, "\n"), nil
}
