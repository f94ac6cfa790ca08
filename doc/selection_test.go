package doc

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSelectionEmpty(t *testing.T) {
	s := NewSelection(Position{X: 3, Y: 1})
	require.True(t, s.IsEmpty())
	require.False(t, s.Contains(Position{X: 3, Y: 1}))

	s.End = Position{X: 5, Y: 1}
	require.False(t, s.IsEmpty())
}

func TestSelectionContainsSingleRow(t *testing.T) {
	s := &Selection{Start: Position{X: 2, Y: 1}, End: Position{X: 5, Y: 1}}

	require.False(t, s.Contains(Position{X: 1, Y: 1}))
	require.True(t, s.Contains(Position{X: 2, Y: 1}))
	require.True(t, s.Contains(Position{X: 4, Y: 1}))
	// half-open: the end column is outside
	require.False(t, s.Contains(Position{X: 5, Y: 1}))
	require.False(t, s.Contains(Position{X: 3, Y: 0}))
}

func TestSelectionContainsMultiRow(t *testing.T) {
	s := &Selection{Start: Position{X: 4, Y: 1}, End: Position{X: 2, Y: 3}}

	// start row: at or right of the start column
	require.False(t, s.Contains(Position{X: 3, Y: 1}))
	require.True(t, s.Contains(Position{X: 4, Y: 1}))
	require.True(t, s.Contains(Position{X: 99, Y: 1}))
	// strictly between rows: any column
	require.True(t, s.Contains(Position{X: 0, Y: 2}))
	require.True(t, s.Contains(Position{X: 99, Y: 2}))
	// end row: left of the end column
	require.True(t, s.Contains(Position{X: 1, Y: 3}))
	require.False(t, s.Contains(Position{X: 2, Y: 3}))
	require.False(t, s.Contains(Position{X: 0, Y: 4}))
}

func TestSelectionContainsOrderIndependent(t *testing.T) {
	pos := rapid.Custom(func(t *rapid.T) Position {
		return Position{
			X: rapid.IntRange(0, 8).Draw(t, "x"),
			Y: rapid.IntRange(0, 4).Draw(t, "y"),
		}
	})
	rapid.Check(t, func(t *rapid.T) {
		a := pos.Draw(t, "a")
		b := pos.Draw(t, "b")
		p := pos.Draw(t, "p")

		fwd := &Selection{Start: a, End: b}
		rev := &Selection{Start: b, End: a}
		require.Equal(t, fwd.Contains(p), rev.Contains(p))

		s1, e1 := fwd.Normalized()
		s2, e2 := rev.Normalized()
		require.Equal(t, s1, s2)
		require.Equal(t, e1, e2)
		require.False(t, e1.Before(s1))
	})
}
