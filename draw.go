package hed

import (
	"fmt"
	"strings"
	"time"

	"github.com/hed-editor/hed/doc"
	"github.com/hed-editor/hed/theme"
)

func (e *Editor) refreshScreen() {
	cols, rows := e.screen.Size()
	e.screenCols = cols
	e.screenRows = rows - 2
	if e.screenRows < 1 {
		e.screenRows = 1
	}
	e.scroll()

	if !e.searching && e.status.Expired(time.Now()) {
		e.status = StatusMessage{}
	}

	e.screen.Clear()
	e.drawRows()
	e.drawStatusBar()
	e.drawMessageBar()

	e.screen.ShowCursor(e.cursorWidth()-e.offset.X, e.cursor.Y-e.offset.Y)
	e.screen.Show()
}

// cursorWidth is the display column of the cursor within its row.
func (e *Editor) cursorWidth() int {
	e.doc.RLock()
	defer e.doc.RUnlock()
	if e.cursor.Y >= e.doc.RowCount() {
		return 0
	}
	return e.doc.Row(e.cursor.Y).WidthTo(e.cursor.X)
}

// scroll keeps the cursor on screen, shifting the viewport by the minimum
// amount toward the nearer edge.
func (e *Editor) scroll() {
	if e.cursor.Y < e.offset.Y {
		e.offset.Y = e.cursor.Y
	}
	if e.cursor.Y >= e.offset.Y+e.screenRows {
		e.offset.Y = e.cursor.Y - e.screenRows + 1
	}
	w := e.cursorWidth()
	if w < e.offset.X {
		e.offset.X = w
	}
	if w >= e.offset.X+e.screenCols {
		e.offset.X = w - e.screenCols + 1
	}
}

func (e *Editor) drawRows() {
	e.doc.RLock()
	defer e.doc.RUnlock()

	n := e.doc.RowCount()
	for ty := 0; ty < e.screenRows; ty++ {
		fy := ty + e.offset.Y
		if fy >= n {
			if n == 0 && e.filename == "" && ty == e.screenRows/3 {
				e.drawWelcome(ty)
			} else {
				e.screen.Print(0, ty, e.screenCols, "~", theme.ColorDefault)
			}
			continue
		}
		e.drawRow(ty, fy)
	}
}

func (e *Editor) drawWelcome(ty int) {
	msg := fmt.Sprintf("hed editor -- version %s", Version)
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	pad := (e.screenCols - len(msg)) / 2
	if pad > 0 {
		e.screen.Print(0, ty, 1, "~", theme.ColorDefault)
		e.screen.Print(pad, ty, e.screenCols-pad, msg, theme.ColorDefault)
	} else {
		e.screen.Print(0, ty, e.screenCols, msg, theme.ColorDefault)
	}
}

// drawRow renders one document row with syntax colors, the search overlay
// and the selection overlay. Caller holds the document read lock.
func (e *Editor) drawRow(ty, fy int) {
	row := e.doc.Row(fy)
	spans := e.searchSpans(row)
	tags := row.Highlights()

	w := 0
	for i := 0; i < row.Len(); i++ {
		g := row.Grapheme(i)
		gw := doc.GraphemeWidth(g)
		if w+gw <= e.offset.X {
			w += gw
			continue
		}
		x := w - e.offset.X
		if x >= e.screenCols {
			break
		}
		style := theme.StyleFor(tags[i])
		if inSpans(spans, i) {
			style = theme.ColorSearchFound
		}
		if e.selection != nil && e.selection.Contains(doc.Position{X: i, Y: fy}) {
			style = theme.ColorSelection
		}
		if g == "\t" {
			e.screen.FillLine(x, ty, gw, style)
		} else {
			e.screen.SetCell(x, ty, style, g, gw)
		}
		w += gw
	}
}

type span struct{ from, to int }

// searchSpans lists the grapheme intervals of the active query in a row.
func (e *Editor) searchSpans(row *doc.Row) []span {
	if !e.searching || e.currentSearch == "" {
		return nil
	}
	qlen := doc.GraphemeCount(e.currentSearch)
	var spans []span
	from := 0
	for {
		at, ok := row.Search(e.currentSearch, from)
		if !ok {
			return spans
		}
		spans = append(spans, span{from: at, to: at + qlen})
		from = at + 1
	}
}

func inSpans(spans []span, i int) bool {
	for _, s := range spans {
		if i >= s.from && i < s.to {
			return true
		}
	}
	return false
}

func (e *Editor) drawStatusBar() {
	y := e.screenRows
	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	mod := ""
	if e.dirty {
		mod = " (modified)"
	}
	e.doc.RLock()
	n := e.doc.RowCount()
	e.doc.RUnlock()

	left := fmt.Sprintf(" %.20s - %d lines%s", name, n, mod)
	right := fmt.Sprintf("%d:%d/%d ", e.cursor.Y+1, e.cursor.X+1, n)

	e.screen.FillLine(0, y, e.screenCols, theme.ColorModeline)
	used := e.screen.Print(0, y, e.screenCols, left, theme.ColorModeline)
	if pad := e.screenCols - used - len(right); pad > 0 {
		e.screen.Print(used+pad, y, len(right), right, theme.ColorModeline)
	}
}

func (e *Editor) drawMessageBar() {
	y := e.screenRows + 1
	e.screen.FillLine(0, y, e.screenCols, theme.ColorDefault)
	if e.status.Text == "" {
		return
	}
	style := theme.ColorStatusNormal
	switch e.status.Category {
	case StatusSearch:
		style = theme.ColorStatusSearch
	case StatusError:
		style = theme.ColorStatusError
	}
	text := strings.ReplaceAll(e.status.Text, "\n", " ")
	e.screen.Print(0, y, e.screenCols, text, style)
}
