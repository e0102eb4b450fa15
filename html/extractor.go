// Package html implements content extraction on top of the
// golang.org/x/net/html tokenizer.
package html

import (
	"strings"

	"github.com/fwojciec/varcheck"
	xhtml "golang.org/x/net/html"
)

// Ensure Extractor implements the interface.
var _ varcheck.Extractor = (*Extractor)(nil)

// Extractor walks an HTML document once and collects its visible text
// nodes, element ids, and anchor href targets. Malformed markup is
// tolerated: unmatched end tags are ignored and unclosed tags are
// popped implicitly when an ancestor closes.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract tokenizes doc and returns the final collections. The only
// error condition is a malfunctioning reader, which cannot happen with
// an in-memory string, so the returned error is effectively reserved
// for future streaming callers.
func (e *Extractor) Extract(doc string) (*varcheck.Extraction, error) {
	z := xhtml.NewTokenizer(strings.NewReader(doc))

	result := &varcheck.Extraction{
		IDs:         make(map[string]bool),
		AnchorHrefs: make(map[string]bool),
	}

	// Open-element stack, lower-cased tag names, innermost last.
	var stack []string

	for {
		switch z.Next() {
		case xhtml.ErrorToken:
			// The tokenizer recovers from every markup error, so the
			// only terminal state for string input is EOF.
			return result, nil

		case xhtml.StartTagToken, xhtml.SelfClosingTagToken:
			tok := z.Token()
			name := strings.ToLower(tok.Data)
			selfClosing := tok.Type == xhtml.SelfClosingTagToken
			if !selfClosing {
				stack = append(stack, name)
			}
			inSVG := name == "svg" || stackContains(stack, "svg")
			for _, attr := range tok.Attr {
				key := strings.ToLower(attr.Key)
				if key == "id" && attr.Val != "" && !inSVG {
					result.IDs[attr.Val] = true
				}
				if name == "a" && key == "href" {
					result.AnchorHrefs[attr.Val] = true
				}
			}

		case xhtml.EndTagToken:
			tok := z.Token()
			stack = popToMatch(stack, strings.ToLower(tok.Data))

		case xhtml.TextToken:
			if stackContainsAny(stack, varcheck.ExcludedTextTags) {
				continue
			}
			// Token() resolves character references in the chunk.
			if text := varcheck.NormalizeText(z.Token().Data); text != "" {
				result.TextNodes = append(result.TextNodes, text)
			}
		}
	}
}

// popToMatch pops the nearest open tag named name together with
// everything opened after it. An end tag with no matching open tag
// leaves the stack untouched.
func popToMatch(stack []string, name string) []string {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == name {
			return stack[:i]
		}
	}
	return stack
}

func stackContains(stack []string, name string) bool {
	for _, tag := range stack {
		if tag == name {
			return true
		}
	}
	return false
}

func stackContainsAny(stack []string, tags map[string]bool) bool {
	for _, tag := range stack {
		if tags[tag] {
			return true
		}
	}
	return false
}
