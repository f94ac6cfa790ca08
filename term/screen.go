// Package term wraps the tcell screen: raw-mode lifecycle, styled cell
// drawing and the event pump the editing loop selects on.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/hed-editor/hed/doc"
)

type Screen struct {
	tc     tcell.Screen
	events chan tcell.Event
}

// New enters raw mode and starts the event pump. The pump goroutine
// exits when Fini shuts the screen down.
func New() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := tc.Init(); err != nil {
		return nil, err
	}
	tc.EnableMouse()
	s := &Screen{
		tc:     tc,
		events: make(chan tcell.Event, 16),
	}
	go func() {
		for {
			ev := s.tc.PollEvent()
			if ev == nil {
				close(s.events)
				return
			}
			s.events <- ev
		}
	}()
	return s, nil
}

// Events delivers key, mouse and resize events.
func (s *Screen) Events() <-chan tcell.Event {
	return s.events
}

// Fini restores the terminal. Must run before process exit, fatal
// errors included.
func (s *Screen) Fini() {
	s.tc.Fini()
}

func (s *Screen) Size() (int, int) {
	return s.tc.Size()
}

func (s *Screen) Clear() {
	s.tc.Clear()
}

func (s *Screen) Show() {
	s.tc.Show()
}

func (s *Screen) ShowCursor(x, y int) {
	s.tc.ShowCursor(x, y)
}

func (s *Screen) HideCursor() {
	s.tc.HideCursor()
}

// SetCell draws one grapheme, padding the continuation cells of wide
// glyphs.
func (s *Screen) SetCell(x, y int, style tcell.Style, g string, width int) {
	if x < 0 || y < 0 {
		return
	}
	runes := []rune(g)
	if len(runes) == 0 {
		return
	}
	s.tc.SetContent(x, y, runes[0], runes[1:], style)
	for i := 1; i < width; i++ {
		s.tc.SetContent(x+i, y, 0, nil, style)
	}
}

// Print draws text starting at x,y, clipped to width columns. Returns
// the column after the last cell drawn.
func (s *Screen) Print(x, y, width int, text string, style tcell.Style) int {
	limit := x + width
	for _, g := range doc.Graphemes(text) {
		w := doc.GraphemeWidth(g)
		if x+w > limit {
			break
		}
		if g == "\t" {
			for i := 0; i < w; i++ {
				s.tc.SetContent(x+i, y, ' ', nil, style)
			}
		} else {
			s.SetCell(x, y, style, g, w)
		}
		x += w
	}
	return x
}

// FillLine pads [x, x+width) on row y with spaces.
func (s *Screen) FillLine(x, y, width int, style tcell.Style) {
	for i := 0; i < width; i++ {
		s.tc.SetContent(x+i, y, ' ', nil, style)
	}
}
