// Package theme maps highlight tags and UI elements to tcell styles.
package theme

import (
	"github.com/gdamore/tcell/v2"

	"github.com/hed-editor/hed/syntax"
)

var (
	ColorDefault  = tcell.StyleDefault
	ColorModeline = tcell.StyleDefault.Reverse(true)

	ColorStatusNormal = tcell.StyleDefault
	ColorStatusSearch = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	ColorStatusError  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)

	ColorSelection   = tcell.StyleDefault.Reverse(true)
	ColorSearchFound = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack)
)

var tagStyles = map[syntax.Tag]tcell.Style{
	syntax.Normal:           tcell.StyleDefault,
	syntax.Number:           tcell.StyleDefault.Foreground(tcell.ColorRed),
	syntax.String:           tcell.StyleDefault.Foreground(tcell.ColorGreen),
	syntax.CharLiteral:      tcell.StyleDefault.Foreground(tcell.ColorAqua),
	syntax.Comment:          tcell.StyleDefault.Foreground(tcell.ColorGray),
	syntax.KeywordPrimary:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
	syntax.KeywordSecondary: tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
}

// StyleFor returns the style of one highlight tag.
func StyleFor(tag syntax.Tag) tcell.Style {
	if s, ok := tagStyles[tag]; ok {
		return s
	}
	return ColorDefault
}
