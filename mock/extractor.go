package mock

import "github.com/fwojciec/varcheck"

var _ varcheck.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of varcheck.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*varcheck.Extraction, error)
}

func (e *Extractor) Extract(html string) (*varcheck.Extraction, error) {
	return e.ExtractFn(html)
}
