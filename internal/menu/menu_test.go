package menu

import (
	"testing"

	"github.com/bethropolis/slate/internal/block"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	return New(block.NewRegistry())
}

func TestMenuUnfiltered(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	entries := m.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, block.Paragraph, entries[0].Kind, "registration order preserved")

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, entries[0], sel)
}

func TestMenuFilter(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	m.SetQuery("cod")
	entries := m.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, block.Code, entries[0].Kind)

	// Subsequence matching, not prefix: "hd" hits "Heading".
	m.SetQuery("hd")
	entries = m.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, block.Heading, entries[0].Kind)

	// Case-insensitive.
	m.SetQuery("TODO")
	entries = m.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, block.Todo, entries[0].Kind)
}

func TestMenuFilterNoMatch(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	m.SetQuery("zzzzz")
	assert.Empty(t, m.Entries())

	_, ok := m.Selected()
	assert.False(t, ok)

	// Clearing the query restores everything.
	m.SetQuery("")
	assert.NotEmpty(t, m.Entries())
	_, ok = m.Selected()
	assert.True(t, ok)
}

func TestMenuTypedQuery(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	m.AppendQuery('q')
	m.AppendQuery('u')
	assert.Equal(t, "qu", m.Query())

	entries := m.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, block.Quote, entries[0].Kind)

	m.DeleteQueryChar()
	assert.Equal(t, "q", m.Query())
	m.DeleteQueryChar()
	m.DeleteQueryChar() // extra delete on empty query is a no-op
	assert.Equal(t, "", m.Query())
}

func TestMenuCursor(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	total := len(m.Entries())
	require.Greater(t, total, 2)

	m.MoveCursor(2)
	assert.Equal(t, 2, m.Cursor())

	m.MoveCursor(-99)
	assert.Equal(t, 0, m.Cursor())

	m.MoveCursor(99)
	assert.Equal(t, total-1, m.Cursor())

	// Narrowing the filter pulls the cursor back into range.
	m.SetQuery("cod")
	assert.Equal(t, 0, m.Cursor())
}

func TestMenuGrouped(t *testing.T) {
	t.Parallel()

	m := newModel(t)
	groups := m.Grouped()
	require.NotEmpty(t, groups)
	assert.Equal(t, "Basic", groups[0].Name)

	counted := 0
	for _, g := range groups {
		counted += len(g.Entries)
	}
	assert.Equal(t, len(m.Entries()), counted)
}
