// Package hed implements the interactive editor: event loop, cursor and
// viewport handling, selection, search and replace workflows, and rendering.
package hed

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/hed-editor/hed/clip"
	"github.com/hed-editor/hed/doc"
	"github.com/hed-editor/hed/log"
	"github.com/hed-editor/hed/search"
	"github.com/hed-editor/hed/syntax"
	"github.com/hed-editor/hed/term"
	"github.com/hed-editor/hed/work"
)

// Version is shown on the welcome banner.
const Version = "0.1.0"

// quitConfirmations is how many extra Ctrl-Q presses an unsaved buffer needs.
const quitConfirmations = 3

// pollInterval bounds how long the loop blocks before re-checking the
// message bar expiry.
const pollInterval = 500 * time.Millisecond

// Editor owns the document, the terminal screen and all interactive state.
type Editor struct {
	screen *term.Screen
	doc    *doc.Document
	hl     *syntax.Highlighter
	clip   *clip.Provider
	coord  *work.Coordinator

	engine   *search.Engine
	replacer *search.Replacer

	filename string
	dirty    bool
	editGen  uint64

	// cursor is in grapheme coordinates, offset.X in display columns.
	cursor doc.Position
	offset doc.Position

	screenRows int
	screenCols int

	status StatusMessage

	searching     bool
	currentSearch string

	selection *doc.Selection
	mouseDown bool

	quit      bool
	quitTimes int
}

// New builds an editor over an empty document.
func New(screen *term.Screen, hl *syntax.Highlighter, cp *clip.Provider) *Editor {
	e := &Editor{
		screen:    screen,
		hl:        hl,
		clip:      cp,
		doc:       doc.New(hl),
		quitTimes: quitConfirmations,
		status:    statusInfo("HELP: Ctrl-S save | Ctrl-F find | Ctrl-R replace | Ctrl-Q quit"),
	}
	e.engine = search.NewEngine(e.doc)
	e.replacer = search.NewReplacer(e.doc, e.engine)
	return e
}

// Open loads path into the editor before Run. A missing file starts an
// empty buffer that will be created on first save.
func (e *Editor) Open(path string) error {
	d, err := doc.Open(path, e.hl)
	switch err {
	case doc.ErrLoaded:
		e.status = statusInfo(fmt.Sprintf("%q %s", path, err))
	case doc.ErrNewFile:
		e.status = statusInfo(fmt.Sprintf("%q %s", path, err))
	default:
		return err
	}
	e.filename = path
	e.doc = d
	e.engine = search.NewEngine(d)
	e.replacer = search.NewReplacer(d, e.engine)
	return nil
}

// Run drives the event loop until quit. It owns the background coordinator
// for the lifetime of the session.
func (e *Editor) Run() error {
	e.coord = work.NewCoordinator(e.doc)
	defer e.coord.Close()
	e.coord.ScheduleHighlight()

	for !e.quit {
		e.refreshScreen()
		select {
		case ev, ok := <-e.screen.Events():
			if !ok {
				return nil
			}
			e.handleEvent(ev)
		case res := <-e.coord.Results():
			e.handleSaveResult(res)
		case <-time.After(pollInterval):
		}
	}
	return nil
}

func (e *Editor) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		e.screen.Show()
	case *tcell.EventKey:
		e.handleKey(ev)
	case *tcell.EventMouse:
		e.handleMouse(ev)
	}
}

func (e *Editor) handleKey(ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyCtrlQ && e.quitTimes < quitConfirmations {
		e.quitTimes = quitConfirmations
	}

	switch ev.Key() {
	case tcell.KeyCtrlQ:
		e.requestQuit()
	case tcell.KeyCtrlS:
		e.save()
	case tcell.KeyCtrlF:
		e.findFlow()
	case tcell.KeyCtrlR:
		e.replaceFlow()
	case tcell.KeyCtrlC:
		e.copySelection()
	case tcell.KeyCtrlX:
		e.cutSelection()
	case tcell.KeyCtrlV:
		e.paste()
	case tcell.KeyEscape:
		e.clearSelection()
	case tcell.KeyEnter:
		if e.selection != nil {
			e.deleteSelection()
		}
		e.insertNewline()
	case tcell.KeyTab:
		if e.selection != nil {
			e.deleteSelection()
		}
		e.insertRune('\t')
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if e.selection != nil {
			e.deleteSelection()
		} else {
			e.deleteBackward()
		}
	case tcell.KeyDelete:
		if e.selection != nil {
			e.deleteSelection()
		} else {
			e.deleteForward()
		}
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight,
		tcell.KeyPgUp, tcell.KeyPgDn, tcell.KeyHome, tcell.KeyEnd:
		if ev.Modifiers()&tcell.ModShift != 0 {
			e.extendSelection(ev.Key())
		} else {
			e.clearSelection()
			e.moveCursor(ev.Key())
		}
	case tcell.KeyRune:
		if e.selection != nil {
			e.deleteSelection()
		}
		e.insertRune(ev.Rune())
	}
}

func (e *Editor) requestQuit() {
	if e.dirty && e.quitTimes > 0 {
		e.status = statusError(fmt.Sprintf(
			"WARNING! File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes))
		e.quitTimes--
		return
	}
	e.quit = true
}

// save writes a named buffer through the background worker and a fresh
// filename synchronously, so Save As reports errors before the prompt state
// is gone.
func (e *Editor) save() {
	if e.filename == "" {
		name, ok := e.promptLine("Save as: ")
		if !ok || name == "" {
			e.status = statusInfo("Save aborted.")
			return
		}
		e.filename = name
		if err := e.doc.SaveTo(name); err != nil {
			e.status = statusError(fmt.Sprintf("Error writing %q: %v", name, err))
			return
		}
		e.dirty = false
		e.status = statusInfo(fmt.Sprintf("%q written", name))
		log.Info(log.CatSave, "saved %s", name)
		return
	}
	e.coord.RequestSave(work.SaveRequest{Path: e.filename, Data: e.doc.Snapshot(), Gen: e.editGen})
}

// markDirty records a buffer mutation. The generation lets a save
// result tell whether it covers the latest edits.
func (e *Editor) markDirty() {
	e.dirty = true
	e.editGen++
}

func (e *Editor) handleSaveResult(res work.SaveResult) {
	if res.Err != nil {
		e.status = statusError(fmt.Sprintf("Error writing %q: %v", res.Path, res.Err))
		return
	}
	// only a save of the current generation clears the dirty flag;
	// edits made after the snapshot still need saving
	if res.Gen == e.editGen {
		e.dirty = false
	}
	e.status = statusInfo(fmt.Sprintf("%d bytes written to %q", res.Bytes, res.Path))
}
