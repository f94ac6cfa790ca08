package search

import (
	"github.com/hed-editor/hed/doc"
)

// Replacer runs the search-then-substitute workflow.
type Replacer struct {
	d      *doc.Document
	engine *Engine
}

func NewReplacer(d *doc.Document, e *Engine) *Replacer {
	return &Replacer{d: d, engine: e}
}

func (r *Replacer) Engine() *Engine {
	return r.engine
}

// ReplaceCurrent substitutes the occurrence at the engine's anchor and
// returns the position just after the inserted text. Only the mutated
// row recomputes its derived fields.
func (r *Replacer) ReplaceCurrent(query, repl string) (doc.Position, bool) {
	if !r.engine.Anchored() || query == "" {
		return doc.Position{}, false
	}
	at := r.engine.Anchor()
	n := r.d.ReplaceAt(at, query, repl)
	return doc.Position{X: at.X + n, Y: at.Y}, true
}

// ReplaceAll substitutes every non-overlapping occurrence in the
// document and returns the total count.
func (r *Replacer) ReplaceAll(query, repl string) int {
	count := r.d.ReplaceAll(query, repl)
	r.engine.Reset()
	return count
}
