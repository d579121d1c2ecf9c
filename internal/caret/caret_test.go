package caret

import (
	"testing"

	"github.com/bethropolis/slate/internal/doctree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContainer(text string) (*doctree.Container, *doctree.Node) {
	n := doctree.NewText(text)
	return doctree.NewContainer(doctree.NewElement("p", n)), n
}

func TestSelectionCaret(t *testing.T) {
	t.Parallel()

	c, n := newContainer("hello")
	sel := NewSelection(c)

	assert.Equal(t, 0, sel.RangeCount())
	_, ok := sel.Locate(c)
	assert.False(t, ok)

	sel.SetCaret(doctree.Point{Node: n, Offset: 3})
	assert.Equal(t, 1, sel.RangeCount())
	assert.True(t, sel.Collapsed())

	p, ok := sel.Locate(c)
	require.True(t, ok)
	assert.Equal(t, 3, c.Measure(p))
}

func TestSelectionExtendNormalizes(t *testing.T) {
	t.Parallel()

	c, n := newContainer("hello world")
	sel := NewSelection(c)

	// Select backwards: anchor at 8, focus dragged to 2.
	sel.SetCaret(doctree.Point{Node: n, Offset: 8})
	sel.Extend(doctree.Point{Node: n, Offset: 2})
	assert.False(t, sel.Collapsed())

	r, ok := sel.First()
	require.True(t, ok)
	assert.Equal(t, 2, c.Measure(r.Start), "range start is the earlier endpoint")
	assert.Equal(t, 8, c.Measure(r.End))

	// Locate reports the normalized start, not the anchor.
	p, ok := sel.Locate(c)
	require.True(t, ok)
	assert.Equal(t, 2, c.Measure(p))
}

func TestSelectionCollapseAndClear(t *testing.T) {
	t.Parallel()

	c, n := newContainer("hello")
	sel := NewSelection(c)
	sel.SetCaret(doctree.Point{Node: n, Offset: 1})
	sel.Extend(doctree.Point{Node: n, Offset: 4})

	sel.Collapse()
	assert.True(t, sel.Collapsed())
	assert.Equal(t, 4, sel.FocusOffset())

	sel.Clear()
	assert.Equal(t, 0, sel.RangeCount())
}

func TestLocateForeignContainer(t *testing.T) {
	t.Parallel()

	c, n := newContainer("hello")
	other, _ := newContainer("other")
	sel := NewSelection(c)
	sel.SetCaret(doctree.Point{Node: n, Offset: 2})

	_, ok := sel.Locate(other)
	assert.False(t, ok)
}

func TestGraphemeBoundaries(t *testing.T) {
	t.Parallel()

	// Family emoji: one grapheme cluster spanning seven runes.
	family := "\U0001F468‍\U0001F469‍\U0001F467‍\U0001F466"
	text := "a" + family + "b"
	clusterLen := len([]rune(family))

	assert.Equal(t, 1, NextBoundary(text, 0))
	assert.Equal(t, 1+clusterLen, NextBoundary(text, 1), "caret skips the whole cluster")
	assert.Equal(t, 1, PrevBoundary(text, 1+clusterLen))
	assert.Equal(t, 0, PrevBoundary(text, 1))

	// Bounds clamp.
	assert.Equal(t, 0, PrevBoundary(text, -1))
	total := len([]rune(text))
	assert.Equal(t, total, NextBoundary(text, total+5))
}

func TestLineBoundaries(t *testing.T) {
	t.Parallel()

	text := "one\ntwo\nthree"
	assert.Equal(t, 0, LineStart(text, 2))
	assert.Equal(t, 3, LineEnd(text, 2))
	assert.Equal(t, 4, LineStart(text, 6))
	assert.Equal(t, 7, LineEnd(text, 6))
	assert.Equal(t, 8, LineStart(text, 13))
	assert.Equal(t, 13, LineEnd(text, 13))
}
