package hed

import (
	"fmt"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/hed-editor/hed/doc"
	"github.com/hed-editor/hed/log"
	"github.com/hed-editor/hed/search"
)

// promptCallback sees the input after every keystroke. Returning false
// ends the prompt with the current input.
type promptCallback func(input string, ev *tcell.EventKey) bool

// promptLine asks for a single line on the message bar. ok is false when
// the user cancelled with Esc.
func (e *Editor) promptLine(label string) (string, bool) {
	return e.prompt(label, nil)
}

func (e *Editor) prompt(label string, cb promptCallback) (string, bool) {
	input := ""
	e.status = statusSearch(label)
	for {
		e.refreshScreen()
		ev := e.waitKey()
		if ev == nil {
			return "", false
		}
		// The callback runs after the prompt text is refreshed, so a
		// message it sets wins the bar for this keystroke.
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlG:
			if cb != nil {
				cb(input, ev)
			}
			return "", false
		case tcell.KeyEnter:
			if cb == nil || !cb(input, ev) {
				return input, true
			}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if input != "" {
				gs := doc.Graphemes(input)
				input = ""
				for _, g := range gs[:len(gs)-1] {
					input += g
				}
			}
			e.status = statusSearch(label + input)
			if cb != nil {
				cb(input, ev)
			}
		case tcell.KeyRune:
			if !unicode.IsControl(ev.Rune()) {
				input += string(ev.Rune())
				e.status = statusSearch(label + input)
				if cb != nil {
					cb(input, ev)
				}
			}
		default:
			if cb != nil && !cb(input, ev) {
				return input, true
			}
		}
	}
}

// waitKey blocks for the next key event, handling resizes in place. A nil
// return means the event stream closed.
func (e *Editor) waitKey() *tcell.EventKey {
	for {
		ev, ok := <-e.screen.Events()
		if !ok {
			e.quit = true
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			e.refreshScreen()
		case *tcell.EventKey:
			return ev
		}
	}
}

// Search.

const searchPromptLabel = "Search (arrows next/prev, Esc cancel): "

func (e *Editor) findFlow() {
	savedCursor, savedOffset := e.cursor, e.offset
	e.searching = true
	e.engine.Reset()

	_, ok := e.prompt(searchPromptLabel, e.findCallback)

	e.searching = false
	e.currentSearch = ""
	e.engine.Reset()
	if !ok {
		e.cursor, e.offset = savedCursor, savedOffset
	}
	if e.status.Persistent && e.status.Category != StatusError {
		e.status = statusInfo("")
	}
}

func (e *Editor) findCallback(input string, ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlG:
		return false
	case tcell.KeyEnter:
		if input == "" {
			return false
		}
		e.engine.SetDirection(search.Forward)
		e.searchStep(input)
		return false
	case tcell.KeyRight, tcell.KeyDown:
		e.engine.SetDirection(search.Forward)
		if e.searchStep(input) {
			e.status = statusSearch(searchPromptLabel + input)
		}
		return true
	case tcell.KeyLeft, tcell.KeyUp:
		e.engine.SetDirection(search.Backward)
		if e.searchStep(input) {
			e.status = statusSearch(searchPromptLabel + input)
		}
		return true
	default:
		// The query changed: restart from the top of the document.
		e.currentSearch = input
		e.engine.Reset()
		e.engine.SetDirection(search.Forward)
		e.searchStep(input)
		return true
	}
}

// searchStep runs one search and moves the cursor on a hit. On a miss the
// mode stays active so the query can be edited.
func (e *Editor) searchStep(query string) bool {
	if query == "" {
		return false
	}
	pos, ok := e.engine.Find(query)
	if !ok {
		e.status = statusError(fmt.Sprintf("Not found: %q", query))
		return false
	}
	e.cursor = pos
	log.Debug(log.CatSearch, "match %q at %d:%d", query, pos.Y, pos.X)
	return true
}

// Replace.

func (e *Editor) replaceFlow() {
	savedCursor, savedOffset := e.cursor, e.offset

	query, ok := e.promptLine("Replace: ")
	if !ok || query == "" {
		e.status = statusInfo("Replace aborted.")
		return
	}
	repl, ok := e.promptLine(fmt.Sprintf("Replace %q with: ", query))
	if !ok {
		e.status = statusInfo("Replace aborted.")
		return
	}

	e.searching = true
	e.currentSearch = query
	e.engine.Reset()
	e.engine.SetDirection(search.Forward)

	count := 0
	aborted := false
	var prev doc.Position
	havePrev := false
	for {
		pos, found := e.engine.Find(query)
		if !found {
			break
		}
		if havePrev && !prev.Before(pos) {
			// Wrapped around past the starting point.
			break
		}
		prev, havePrev = pos, true
		e.cursor = pos
		e.status = statusSearch(fmt.Sprintf("Replace %q? (y)es (n)ext (a)ll (Esc)quit", query))
		e.refreshScreen()
		ev := e.waitKey()
		if ev == nil {
			aborted = true
			break
		}
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlG {
			break
		}
		switch ev.Rune() {
		case 'y', 'Y':
			if after, ok := e.replacer.ReplaceCurrent(query, repl); ok {
				e.cursor = after
				count++
				e.markDirty()
				e.coord.ScheduleHighlight()
			}
		case 'a', 'A':
			count += e.replacer.ReplaceAll(query, repl)
			if count > 0 {
				e.markDirty()
				e.coord.ScheduleHighlight()
			}
			aborted = true // the whole document is done
		case 'n', 'N':
			// keep going
		default:
			// keep going
		}
		if aborted {
			break
		}
	}

	e.searching = false
	e.currentSearch = ""
	e.engine.Reset()
	if count == 0 {
		e.cursor, e.offset = savedCursor, savedOffset
		e.status = statusInfo(fmt.Sprintf("No occurrences of %q replaced", query))
		return
	}
	e.status = statusInfo(fmt.Sprintf("Replaced %d occurrence(s) of %q", count, query))
}
