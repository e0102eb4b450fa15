package varcheck

import (
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ExcludedTextTags are element types whose descendant text is never
// treated as visible content.
var ExcludedTextTags = map[string]bool{
	"script": true,
	"style":  true,
	"svg":    true,
	"defs":   true,
}

// Extraction is the normalized content extracted from one HTML document.
// It is immutable once produced.
type Extraction struct {
	// TextNodes holds one normalized string per contiguous run of
	// visible text, in document order.
	TextNodes []string

	// IDs is the set of id attribute values found outside any svg
	// element.
	IDs map[string]bool

	// AnchorHrefs is the set of href values found on a elements.
	// The empty string is a valid member.
	AnchorHrefs map[string]bool
}

// Fingerprint returns an xxhash of the text-node sequence. Each node is
// length-prefixed so that node boundaries are unambiguous even when the
// text itself contains arbitrary bytes.
func (e *Extraction) Fingerprint() uint64 {
	h := xxhash.New()
	var prefix [8]byte
	for _, text := range e.TextNodes {
		binary.LittleEndian.PutUint64(prefix[:], uint64(len(text)))
		_, _ = h.Write(prefix[:])
		_, _ = h.WriteString(text)
	}
	return h.Sum64()
}

// NormalizeText collapses every whitespace run (spaces, tabs, newlines)
// to a single space and trims leading and trailing space. The result of
// normalizing an already-normalized string is the string itself.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Extractor produces an Extraction from raw HTML.
type Extractor interface {
	// Extract scans the document once and returns the final collections.
	// Malformed markup is tolerated, never an error.
	Extract(html string) (*Extraction, error)
}

// Scoper narrows a document to the subtrees matched by a CSS selector.
// Implementations return the matched subtrees' outer HTML in document
// order.
type Scoper interface {
	// Scope returns ENOTFOUND if the selector matches nothing and
	// EINVALID if the selector cannot be parsed.
	Scope(html, selector string) (string, error)
}
