package doc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/hed-editor/hed/syntax"
)

func testHL() *syntax.Highlighter {
	return syntax.NewHighlighter(nil)
}

func TestRowInsert(t *testing.T) {
	hl := testHL()
	r := NewRow("abc", hl)

	r.Insert(1, 'x', hl)
	require.Equal(t, "axbc", r.Text())
	require.Equal(t, 4, r.Len())

	// at or past the end appends
	r.Insert(99, 'z', hl)
	require.Equal(t, "axbcz", r.Text())
	require.Len(t, r.Highlights(), r.Len())
}

func TestRowDelete(t *testing.T) {
	hl := testHL()
	r := NewRow("abc", hl)

	r.Delete(1, hl)
	require.Equal(t, "ac", r.Text())

	// out of range is a no-op
	r.Delete(5, hl)
	r.Delete(-1, hl)
	require.Equal(t, "ac", r.Text())
	require.Len(t, r.Highlights(), r.Len())
}

func TestRowGraphemeClusters(t *testing.T) {
	hl := testHL()
	// "e" + combining acute forms a single cluster
	r := NewRow("aéb", hl)
	require.Equal(t, 3, r.Len())
	require.Equal(t, "é", r.Grapheme(1))

	r.Delete(1, hl)
	require.Equal(t, "ab", r.Text())
	require.Equal(t, 2, r.Len())
}

func TestRowSplitAppendRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hl := testHL()
		text := rapid.String().Filter(func(s string) bool {
			return !strings.ContainsAny(s, "\n\r")
		}).Draw(t, "text")
		r := NewRow(text, hl)
		at := rapid.IntRange(0, r.Len()).Draw(t, "at")

		tail := r.Split(at, hl)
		require.Equal(t, at, r.Len())
		require.Len(t, r.Highlights(), r.Len())
		require.Len(t, tail.Highlights(), tail.Len())

		r.Append(tail, hl)
		require.Equal(t, text, r.Text())
		require.Len(t, r.Highlights(), r.Len())
	})
}

func TestRowDeleteInsertRestoresMetrics(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hl := testHL()
		text := rapid.StringMatching(`[ -~]{1,40}`).Draw(t, "text")
		r := NewRow(text, hl)
		at := rapid.IntRange(0, r.Len()-1).Draw(t, "at")

		wantLen := r.Len()
		wantWidth := r.DisplayWidth()
		ch := []rune(r.Grapheme(at))[0]

		r.Delete(at, hl)
		require.Equal(t, wantLen-1, r.Len())
		r.Insert(at, ch, hl)

		require.Equal(t, text, r.Text())
		require.Equal(t, wantLen, r.Len())
		require.Equal(t, wantWidth, r.DisplayWidth())
	})
}

func TestRowTagsTrackLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		hl := testHL()
		r := NewRow(rapid.StringMatching(`[ -~]{0,40}`).Draw(t, "text"), hl)
		n := rapid.IntRange(1, 20).Draw(t, "ops")
		for i := 0; i < n; i++ {
			switch rapid.IntRange(0, 2).Draw(t, "op") {
			case 0:
				r.Insert(rapid.IntRange(0, r.Len()).Draw(t, "iat"),
					rapid.RuneFrom([]rune("ax1\"'/*")).Draw(t, "ch"), hl)
			case 1:
				r.Delete(rapid.IntRange(0, r.Len()).Draw(t, "dat"), hl)
			case 2:
				r.Replace(rapid.IntRange(0, r.Len()).Draw(t, "rat"),
					rapid.IntRange(0, 3).Draw(t, "count"), "xy", hl)
			}
			require.Len(t, r.Highlights(), r.Len())
		}
	})
}

func TestRowSearchTranslatesToGraphemes(t *testing.T) {
	hl := testHL()
	// the two CJK glyphs are one grapheme each but three bytes each
	r := NewRow("世界 abc", hl)

	at, ok := r.Search("abc", 0)
	require.True(t, ok)
	require.Equal(t, 3, at)

	_, ok = r.Search("abc", 4)
	require.False(t, ok)

	at, ok = r.Search("世", 0)
	require.True(t, ok)
	require.Equal(t, 0, at)
}

func TestRowSearchBackward(t *testing.T) {
	hl := testHL()
	r := NewRow("foo bar foo", hl)

	at, ok := r.SearchBackward("foo", r.Len()+1)
	require.True(t, ok)
	require.Equal(t, 8, at)

	at, ok = r.SearchBackward("foo", 8)
	require.True(t, ok)
	require.Equal(t, 0, at)

	_, ok = r.SearchBackward("foo", 0)
	require.False(t, ok)
}

func TestRowWidths(t *testing.T) {
	hl := testHL()
	r := NewRow("\ta世", hl)

	require.Equal(t, TabWidth+1+2, r.DisplayWidth())
	require.Equal(t, TabWidth, r.WidthTo(1))
	require.Equal(t, TabWidth+1, r.WidthTo(2))

	require.Equal(t, 0, r.IndexAtWidth(TabWidth-1))
	require.Equal(t, 1, r.IndexAtWidth(TabWidth))
	require.Equal(t, 2, r.IndexAtWidth(TabWidth+2))
	require.Equal(t, 3, r.IndexAtWidth(99))
}

func TestRowSlice(t *testing.T) {
	hl := testHL()
	r := NewRow("hello", hl)
	require.Equal(t, "ell", r.Slice(1, 4))
	require.Equal(t, "hello", r.Slice(-2, 99))
	require.Equal(t, "", r.Slice(3, 3))
}
