package hed

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/hed-editor/hed/clip"
	"github.com/hed-editor/hed/doc"
	"github.com/hed-editor/hed/log"
)

// rowLen is the grapheme length of row y, 0 past the last row.
func (e *Editor) rowLen(y int) int {
	e.doc.RLock()
	defer e.doc.RUnlock()
	if y >= e.doc.RowCount() {
		return 0
	}
	return e.doc.Row(y).Len()
}

func (e *Editor) rowCount() int {
	e.doc.RLock()
	defer e.doc.RUnlock()
	return e.doc.RowCount()
}

func (e *Editor) insertRune(ch rune) {
	e.doc.InsertRune(e.cursor, ch)
	e.cursor.X++
	e.markDirty()
	e.coord.ScheduleHighlight()
}

func (e *Editor) insertNewline() {
	e.doc.SplitRow(e.cursor)
	e.cursor.Y++
	e.cursor.X = 0
	e.markDirty()
	e.coord.ScheduleHighlight()
}

func (e *Editor) deleteBackward() {
	if e.cursor.X == 0 && e.cursor.Y == 0 {
		return
	}
	if e.cursor.X > 0 {
		e.cursor.X--
		e.doc.DeleteAt(e.cursor)
	} else {
		prev, ok := e.doc.MergeRowUp(e.cursor.Y)
		if !ok {
			return
		}
		e.cursor.Y--
		e.cursor.X = prev
	}
	e.markDirty()
	e.coord.ScheduleHighlight()
}

func (e *Editor) deleteForward() {
	n := e.rowCount()
	if e.cursor.Y >= n {
		return
	}
	if e.cursor.X < e.rowLen(e.cursor.Y) {
		e.doc.DeleteAt(e.cursor)
	} else if e.cursor.Y+1 < n {
		e.doc.MergeRowUp(e.cursor.Y + 1)
	} else {
		return
	}
	e.markDirty()
	e.coord.ScheduleHighlight()
}

// insertText types text at the cursor, splitting rows at newlines. The
// highlight pass runs once at the end rather than per character.
func (e *Editor) insertText(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	for _, ch := range text {
		if ch == '\n' {
			e.doc.SplitRow(e.cursor)
			e.cursor.Y++
			e.cursor.X = 0
			continue
		}
		e.doc.InsertRune(e.cursor, ch)
		e.cursor.X++
	}
	e.markDirty()
	e.coord.ScheduleHighlight()
}

func (e *Editor) moveCursor(key tcell.Key) {
	n := e.rowCount()
	switch key {
	case tcell.KeyUp:
		if e.cursor.Y > 0 {
			e.cursor.Y--
		}
	case tcell.KeyDown:
		if e.cursor.Y < n {
			e.cursor.Y++
		}
	case tcell.KeyLeft:
		if e.cursor.X > 0 {
			e.cursor.X--
		} else if e.cursor.Y > 0 {
			e.cursor.Y--
			e.cursor.X = e.rowLen(e.cursor.Y)
		}
	case tcell.KeyRight:
		if e.cursor.X < e.rowLen(e.cursor.Y) {
			e.cursor.X++
		} else if e.cursor.Y < n {
			e.cursor.Y++
			e.cursor.X = 0
		}
	case tcell.KeyPgUp:
		e.cursor.Y -= e.screenRows
		if e.cursor.Y < 0 {
			e.cursor.Y = 0
		}
	case tcell.KeyPgDn:
		e.cursor.Y += e.screenRows
		if e.cursor.Y > n {
			e.cursor.Y = n
		}
	case tcell.KeyHome:
		e.cursor.X = 0
	case tcell.KeyEnd:
		e.cursor.X = e.rowLen(e.cursor.Y)
	}
	// Snap back inside the row the cursor landed on.
	if l := e.rowLen(e.cursor.Y); e.cursor.X > l {
		e.cursor.X = l
	}
}

// Selection.

func (e *Editor) startSelection() {
	e.selection = doc.NewSelection(e.cursor)
}

func (e *Editor) extendSelection(key tcell.Key) {
	if e.selection == nil {
		e.startSelection()
	}
	e.moveCursor(key)
	e.selection.End = e.cursor
}

func (e *Editor) clearSelection() {
	e.selection = nil
}

func (e *Editor) selectionText() (string, bool) {
	if e.selection == nil || e.selection.IsEmpty() {
		return "", false
	}
	start, end := e.selection.Normalized()
	return e.doc.Region(start, end), true
}

func (e *Editor) copySelection() {
	text, ok := e.selectionText()
	if !ok {
		return
	}
	if err := e.clip.Set(text); err != nil {
		if err == clip.ErrUnavailable {
			e.status = statusError("Clipboard unavailable on this system")
		} else {
			e.status = statusError(fmt.Sprintf("Clipboard error: %v", err))
		}
		return
	}
	e.status = statusInfo(fmt.Sprintf("Copied %d characters", doc.GraphemeCount(text)))
}

func (e *Editor) deleteSelection() {
	if e.selection == nil || e.selection.IsEmpty() {
		e.clearSelection()
		return
	}
	start, end := e.selection.Normalized()
	e.doc.DeleteRegion(start, end)
	e.cursor = start
	e.clearSelection()
	e.markDirty()
	e.coord.ScheduleHighlight()
}

func (e *Editor) cutSelection() {
	if _, ok := e.selectionText(); !ok {
		return
	}
	e.copySelection()
	if e.status.Category == StatusError {
		return
	}
	e.deleteSelection()
}

func (e *Editor) paste() {
	text, err := e.clip.Get()
	if err != nil {
		if err == clip.ErrUnavailable {
			e.status = statusError("Clipboard unavailable on this system")
		} else {
			e.status = statusError(fmt.Sprintf("Clipboard error: %v", err))
		}
		return
	}
	if text == "" {
		return
	}
	if e.selection != nil {
		e.deleteSelection()
	}
	e.insertText(text)
	log.Debug(log.CatDoc, "pasted %d bytes", len(text))
}

// Mouse.

func (e *Editor) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		e.cursor.Y -= 3
		if e.cursor.Y < 0 {
			e.cursor.Y = 0
		}
		e.moveCursor(tcell.KeyHome)
	case ev.Buttons()&tcell.WheelDown != 0:
		e.cursor.Y += 3
		if n := e.rowCount(); e.cursor.Y > n {
			e.cursor.Y = n
		}
		e.moveCursor(tcell.KeyHome)
	case ev.Buttons()&tcell.Button1 != 0:
		p := e.positionAt(x, y)
		if !e.mouseDown {
			e.mouseDown = true
			e.clearSelection()
			e.cursor = p
			e.startSelection()
		} else {
			e.cursor = p
			// a key press between drag events may have dropped the
			// selection; restart it rather than extend a missing one
			if e.selection == nil {
				e.startSelection()
			} else {
				e.selection.End = p
			}
		}
	default:
		e.mouseDown = false
		if e.selection != nil && e.selection.IsEmpty() {
			e.clearSelection()
		}
	}
}

// positionAt maps a screen cell to a document position.
func (e *Editor) positionAt(x, y int) doc.Position {
	e.doc.RLock()
	defer e.doc.RUnlock()
	p := doc.Position{Y: e.offset.Y + y}
	if n := e.doc.RowCount(); p.Y > n {
		p.Y = n
	}
	if p.Y < e.doc.RowCount() {
		p.X = e.doc.Row(p.Y).IndexAtWidth(e.offset.X + x)
	}
	return p
}
