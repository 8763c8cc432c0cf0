// Package docctx holds the state of a single document render.
//
// State lives in the goldmark parser.Context created for each conversion, so
// concurrent conversions never share slug counters or heading lists.
package docctx

import (
	"github.com/yuin/goldmark/parser"

	"github.com/alnah/go-blogmark/internal/slug"
	"github.com/alnah/go-blogmark/internal/toc"
)

var stateKey = parser.NewContextKey()

// State is the mutable per-document render state.
type State struct {
	Slugs    *slug.Counter
	Headings []toc.Heading
	err      error
}

// NewContext returns a parser context carrying fresh document state.
func NewContext() parser.Context {
	pc := parser.NewContext()
	pc.Set(stateKey, newState())
	return pc
}

func newState() *State {
	return &State{Slugs: slug.NewCounter()}
}

// Get returns the document state of pc, attaching a fresh one when pc was
// not created by NewContext.
func Get(pc parser.Context) *State {
	if s, ok := pc.Get(stateKey).(*State); ok {
		return s
	}
	s := newState()
	pc.Set(stateKey, s)
	return s
}

// Fail records err as the document's fatal error. Only the first error is kept.
func (s *State) Fail(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// Err returns the first fatal error recorded for the document.
func (s *State) Err() error {
	return s.err
}
