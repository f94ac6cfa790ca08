package doc

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TabWidth is the display expansion of one tab.
const TabWidth = 4

// Graphemes splits s into grapheme clusters.
func Graphemes(s string) []string {
	gs := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var g string
		g, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		gs = append(gs, g)
	}
	return gs
}

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// GraphemeWidth returns the display columns one grapheme occupies.
func GraphemeWidth(g string) int {
	if g == "\t" {
		return TabWidth
	}
	return runewidth.StringWidth(g)
}
