// Package search implements the bidirectional wrapping substring search
// over one document, and the replace workflow built on top of it.
package search

import (
	"github.com/hed-editor/hed/doc"
)

// Search directions.
const (
	Forward  = 1
	Backward = -1
)

// Engine is a stateful cyclic scanner. The anchor records the last
// match; a find resumes just past it (forward) or just before it
// (backward) and wraps around the document at most one full lap.
type Engine struct {
	d         *doc.Document
	anchor    doc.Position
	anchored  bool
	direction int
}

func NewEngine(d *doc.Document) *Engine {
	return &Engine{d: d, direction: Forward}
}

func (e *Engine) Anchor() doc.Position {
	return e.anchor
}

func (e *Engine) Anchored() bool {
	return e.anchored
}

func (e *Engine) Direction() int {
	return e.direction
}

func (e *Engine) SetDirection(dir int) {
	if dir < 0 {
		e.direction = Backward
	} else {
		e.direction = Forward
	}
}

// Reset clears the anchor so the next find starts from (0,0).
func (e *Engine) Reset() {
	e.anchor = doc.Position{}
	e.anchored = false
}

// Find steps the scan once in the current direction. On a miss after a
// full lap the anchor is reset to (0,0) so the next attempt starts
// clean.
func (e *Engine) Find(query string) (doc.Position, bool) {
	e.d.RLock()
	defer e.d.RUnlock()

	n := e.d.RowCount()
	if n == 0 || query == "" {
		e.Reset()
		return doc.Position{}, false
	}

	if e.direction == Backward {
		return e.findBackward(query, n)
	}
	return e.findForward(query, n)
}

func (e *Engine) findForward(query string, n int) (doc.Position, bool) {
	y := e.anchor.Y % n
	x := e.anchor.X
	if e.anchored {
		x++ // resume past the previous hit
	}
	for lap := 0; lap <= n; lap++ {
		if m, ok := e.d.Row(y).Search(query, x); ok {
			e.anchor = doc.Position{X: m, Y: y}
			e.anchored = true
			return e.anchor, true
		}
		y = (y + 1) % n
		x = 0
	}
	e.Reset()
	return doc.Position{}, false
}

func (e *Engine) findBackward(query string, n int) (doc.Position, bool) {
	y := e.anchor.Y % n
	// first visit bounds the match strictly before the anchor column;
	// wrapped visits scan the whole row
	before := e.anchor.X
	if !e.anchored {
		before = e.d.Row(y).Len() + 1
	}
	for lap := 0; lap <= n; lap++ {
		if m, ok := e.d.Row(y).SearchBackward(query, before); ok {
			e.anchor = doc.Position{X: m, Y: y}
			e.anchored = true
			return e.anchor, true
		}
		y--
		if y < 0 {
			y = n - 1
		}
		before = e.d.Row(y).Len() + 1
	}
	e.Reset()
	return doc.Position{}, false
}
