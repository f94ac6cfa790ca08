package doc

import (
	"strings"

	"github.com/hed-editor/hed/syntax"
)

// Row is one line of the document. All public indices are grapheme
// indices; byte offsets never leave this file.
//
// Invariant: len(highlights) == Len() after every mutation.
type Row struct {
	text         string
	gs           []string
	highlights   []syntax.Tag
	displayWidth int
}

func NewRow(text string, hl *syntax.Highlighter) *Row {
	r := &Row{}
	r.reset(text, hl)
	return r
}

func (r *Row) reset(text string, hl *syntax.Highlighter) {
	r.text = text
	r.gs = Graphemes(text)
	r.displayWidth = 0
	for _, g := range r.gs {
		r.displayWidth += GraphemeWidth(g)
	}
	r.Refresh(hl)
}

// Refresh recomputes the highlight tags for the current text.
func (r *Row) Refresh(hl *syntax.Highlighter) {
	r.highlights = hl.Scan(r.text)
}

func (r *Row) Text() string {
	return r.text
}

// Len returns the grapheme count.
func (r *Row) Len() int {
	return len(r.gs)
}

func (r *Row) DisplayWidth() int {
	return r.displayWidth
}

func (r *Row) Highlights() []syntax.Tag {
	return r.highlights
}

func (r *Row) Grapheme(i int) string {
	return r.gs[i]
}

// Insert puts ch at the given grapheme boundary. An index at or past
// the end appends.
func (r *Row) Insert(at int, ch rune, hl *syntax.Highlighter) {
	if at >= len(r.gs) {
		r.reset(r.text+string(ch), hl)
		return
	}
	if at < 0 {
		at = 0
	}
	var sb strings.Builder
	for i, g := range r.gs {
		if i == at {
			sb.WriteRune(ch)
		}
		sb.WriteString(g)
	}
	r.reset(sb.String(), hl)
}

// Delete removes the grapheme at the given index. Out of range is a
// no-op. The string is rebuilt by grapheme concatenation, never by
// byte slicing.
func (r *Row) Delete(at int, hl *syntax.Highlighter) {
	if at < 0 || at >= len(r.gs) {
		return
	}
	var sb strings.Builder
	for i, g := range r.gs {
		if i == at {
			continue
		}
		sb.WriteString(g)
	}
	r.reset(sb.String(), hl)
}

// Split cuts the row at a grapheme boundary and returns the tail as a
// new row. Both sides are re-highlighted.
func (r *Row) Split(at int, hl *syntax.Highlighter) *Row {
	if at < 0 {
		at = 0
	}
	if at > len(r.gs) {
		at = len(r.gs)
	}
	var head, tail strings.Builder
	for i, g := range r.gs {
		if i < at {
			head.WriteString(g)
		} else {
			tail.WriteString(g)
		}
	}
	r.reset(head.String(), hl)
	return NewRow(tail.String(), hl)
}

// Append concatenates other onto r and re-highlights the merged row
// immediately. Leaving it lazy would corrupt rendering at the merge
// boundary.
func (r *Row) Append(other *Row, hl *syntax.Highlighter) {
	r.reset(r.text+other.text, hl)
}

// Replace substitutes the count graphemes starting at the given index
// with repl.
func (r *Row) Replace(at, count int, repl string, hl *syntax.Highlighter) {
	var sb strings.Builder
	for i, g := range r.gs {
		if i == at {
			sb.WriteString(repl)
		}
		if i >= at && i < at+count {
			continue
		}
		sb.WriteString(g)
	}
	if at >= len(r.gs) {
		sb.WriteString(repl)
	}
	r.reset(sb.String(), hl)
}

// Slice returns the text of the grapheme range [from, to). Bounds are
// clamped.
func (r *Row) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(r.gs) {
		to = len(r.gs)
	}
	var sb strings.Builder
	for i := from; i < to; i++ {
		sb.WriteString(r.gs[i])
	}
	return sb.String()
}

// Search finds the first match of query at or after the given grapheme
// index and returns its grapheme index. Substring search is
// byte-oriented; the result is translated back to graphemes.
func (r *Row) Search(query string, from int) (int, bool) {
	if query == "" || from > len(r.gs) {
		return 0, false
	}
	if from < 0 {
		from = 0
	}
	sub := r.Slice(from, len(r.gs))
	idx := strings.Index(sub, query)
	if idx < 0 {
		return 0, false
	}
	return from + GraphemeCount(sub[:idx]), true
}

// SearchBackward finds the rightmost match whose start is strictly
// before the given grapheme index.
func (r *Row) SearchBackward(query string, before int) (int, bool) {
	best := -1
	at := 0
	for {
		m, ok := r.Search(query, at)
		if !ok || m >= before {
			break
		}
		best = m
		at = m + 1
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// WidthTo returns the display width of the first x graphemes.
func (r *Row) WidthTo(x int) int {
	if x > len(r.gs) {
		x = len(r.gs)
	}
	w := 0
	for i := 0; i < x; i++ {
		w += GraphemeWidth(r.gs[i])
	}
	return w
}

// IndexAtWidth returns the largest grapheme index whose left edge is at
// or before the given display column.
func (r *Row) IndexAtWidth(dx int) int {
	w := 0
	for i, g := range r.gs {
		cw := GraphemeWidth(g)
		if w+cw > dx {
			return i
		}
		w += cw
	}
	return len(r.gs)
}
