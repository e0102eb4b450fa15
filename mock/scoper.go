package mock

import "github.com/fwojciec/varcheck"

var _ varcheck.Scoper = (*Scoper)(nil)

// Scoper is a mock implementation of varcheck.Scoper.
type Scoper struct {
	ScopeFn func(html, selector string) (string, error)
}

func (s *Scoper) Scope(html, selector string) (string, error) {
	return s.ScopeFn(html, selector)
}
