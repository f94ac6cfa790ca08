package syntax

import (
	"testing"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestScanOneTagPerGrapheme(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		line := rapid.StringMatching(`[ -~]{0,60}`).Draw(t, "line")
		tags := NewHighlighter(nil).Scan(line)
		require.Len(t, tags, uniseg.GraphemeClusterCount(line))
	})
}

func TestScanNumbers(t *testing.T) {
	h := NewHighlighter(nil)

	tags := h.Scan("x = 42;")
	require.Equal(t, []Tag{Normal, Normal, Normal, Normal, Number, Number, Normal}, tags)

	// digits inside an identifier are not numbers
	tags = h.Scan("a123")
	require.Equal(t, []Tag{Normal, Normal, Normal, Normal}, tags)
}

func TestScanString(t *testing.T) {
	h := NewHighlighter(nil)
	tags := h.Scan(`x "ab" y`)
	want := []Tag{Normal, Normal, String, String, String, String, Normal, Normal}
	require.Equal(t, want, tags)

	// unterminated string runs to end of line
	tags = h.Scan(`"ab`)
	require.Equal(t, []Tag{String, String, String}, tags)
}

func TestScanCharLiteral(t *testing.T) {
	h := NewHighlighter(nil)

	tags := h.Scan("'a' b")
	require.Equal(t, []Tag{CharLiteral, CharLiteral, CharLiteral, Normal, Normal}, tags)

	// unterminated literal takes the rest of the line, tag count intact
	tags = h.Scan("x 'ab")
	require.Equal(t, []Tag{Normal, Normal, CharLiteral, CharLiteral, CharLiteral}, tags)
}

func TestScanLineComment(t *testing.T) {
	h := NewHighlighter(nil)
	tags := h.Scan("x // y")
	require.Equal(t, []Tag{Normal, Normal, Comment, Comment, Comment, Comment}, tags)
}

func TestScanBlockComment(t *testing.T) {
	h := NewHighlighter(nil)

	tags := h.Scan("a /* b */ c")
	want := []Tag{Normal, Normal,
		Comment, Comment, Comment, Comment, Comment, Comment, Comment,
		Normal, Normal}
	require.Equal(t, want, tags)

	// unterminated block comment runs to end of line only; the next
	// line starts fresh
	tags = h.Scan("/* open")
	for _, tag := range tags {
		require.Equal(t, Comment, tag)
	}
	tags = h.Scan("still normal")
	require.Equal(t, Normal, tags[0])
}

func TestScanCommentBeatsString(t *testing.T) {
	h := NewHighlighter(nil)
	// the quote inside a comment stays a comment
	tags := h.Scan(`// "x"`)
	for _, tag := range tags {
		require.Equal(t, Comment, tag)
	}
}

func TestScanKeywords(t *testing.T) {
	h := NewHighlighter(nil)

	tags := h.Scan("if x")
	require.Equal(t, []Tag{KeywordPrimary, KeywordPrimary, Normal, Normal}, tags)

	tags = h.Scan("x bool")
	require.Equal(t, []Tag{Normal, Normal,
		KeywordSecondary, KeywordSecondary, KeywordSecondary, KeywordSecondary}, tags)

	// keywords match whole words only
	tags = h.Scan("iffy")
	for _, tag := range tags {
		require.Equal(t, Normal, tag)
	}
	tags = h.Scan("xif")
	for _, tag := range tags {
		require.Equal(t, Normal, tag)
	}
}

func TestScanEmptyLine(t *testing.T) {
	require.Empty(t, NewHighlighter(nil).Scan(""))
}
