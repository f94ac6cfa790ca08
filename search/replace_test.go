package search

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hed-editor/hed/doc"
)

func TestReplaceCurrent(t *testing.T) {
	d := newDoc(t, "let x = 1;", "let y = 2;")
	e := NewEngine(d)
	r := NewReplacer(d, e)

	// nothing anchored yet
	_, ok := r.ReplaceCurrent("let", "var")
	require.False(t, ok)

	_, ok = e.Find("let")
	require.True(t, ok)

	after, ok := r.ReplaceCurrent("let", "const")
	require.True(t, ok)
	require.Equal(t, doc.Position{X: 5, Y: 0}, after)
	require.Equal(t, "const x = 1;", d.Row(0).Text())
	require.Equal(t, "let y = 2;", d.Row(1).Text())
}

func TestReplaceCurrentWithShorterText(t *testing.T) {
	d := newDoc(t, "aaa bbb")
	e := NewEngine(d)
	r := NewReplacer(d, e)

	_, ok := e.Find("bbb")
	require.True(t, ok)

	after, ok := r.ReplaceCurrent("bbb", "")
	require.True(t, ok)
	require.Equal(t, doc.Position{X: 4, Y: 0}, after)
	require.Equal(t, "aaa ", d.Row(0).Text())
}

func TestReplaceAllCountsAndResets(t *testing.T) {
	d := newDoc(t, "let x = 1;", "// comment", "let y = 2;")
	e := NewEngine(d)
	r := NewReplacer(d, e)

	_, ok := e.Find("let")
	require.True(t, ok)

	n := r.ReplaceAll("let", "var")
	require.Equal(t, 2, n)
	require.Equal(t, "var x = 1;", d.Row(0).Text())
	require.Equal(t, "var y = 2;", d.Row(2).Text())
	require.False(t, e.Anchored())

	require.Equal(t, 0, r.ReplaceAll("let", "var"))
}
