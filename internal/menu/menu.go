// internal/menu/menu.go

// Package menu models the block type insert menu: the filterable,
// grouped list of block definitions the user picks from when inserting
// or converting a block. The model is pure state; rendering lives in
// the TUI layer.
package menu

import (
	"strings"

	"github.com/bethropolis/slate/internal/block"
	"github.com/bethropolis/slate/internal/logger"
)

// Entry is one selectable row of the menu.
type Entry struct {
	Kind  block.Kind
	Name  string
	Group string
	Icon  rune
}

// Group is a named run of entries, used by grouped rendering.
type Group struct {
	Name    string
	Entries []Entry
}

// Model holds the menu's state: the full entry set, the current filter
// query, and a cursor into the filtered view.
type Model struct {
	entries  []Entry
	query    string
	filtered []Entry
	cursor   int
}

// New builds a menu model from the registry's definitions, preserving
// registration order.
func New(registry *block.Registry) *Model {
	m := &Model{}
	for _, def := range registry.Definitions() {
		m.entries = append(m.entries, Entry{
			Kind:  def.Kind,
			Name:  def.Name,
			Group: def.Group,
			Icon:  def.Icon,
		})
	}
	m.refilter()
	return m
}

// Query returns the current filter string.
func (m *Model) Query() string { return m.query }

// SetQuery replaces the filter string and resets the cursor.
func (m *Model) SetQuery(q string) {
	m.query = q
	m.refilter()
}

// AppendQuery adds a typed rune to the filter.
func (m *Model) AppendQuery(r rune) {
	m.query += string(r)
	m.refilter()
}

// DeleteQueryChar removes the last rune of the filter.
func (m *Model) DeleteQueryChar() {
	runes := []rune(m.query)
	if len(runes) == 0 {
		return
	}
	m.query = string(runes[:len(runes)-1])
	m.refilter()
}

// Entries returns the filtered entries in stable order.
func (m *Model) Entries() []Entry {
	return m.filtered
}

// Grouped returns the filtered entries bucketed by group, groups
// ordered by first appearance.
func (m *Model) Grouped() []Group {
	var groups []Group
	index := make(map[string]int)
	for _, e := range m.filtered {
		i, ok := index[e.Group]
		if !ok {
			i = len(groups)
			index[e.Group] = i
			groups = append(groups, Group{Name: e.Group})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}

// MoveCursor shifts the cursor within the filtered view, clamped to
// valid rows.
func (m *Model) MoveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// Cursor returns the cursor's row index within Entries().
func (m *Model) Cursor() int { return m.cursor }

// Selected returns the entry under the cursor. ok is false when the
// filter matches nothing.
func (m *Model) Selected() (Entry, bool) {
	if len(m.filtered) == 0 {
		return Entry{}, false
	}
	return m.filtered[m.cursor], true
}

// refilter recomputes the filtered view and keeps the cursor in bounds.
func (m *Model) refilter() {
	m.filtered = m.filtered[:0]
	for _, e := range m.entries {
		if matches(m.query, e) {
			m.filtered = append(m.filtered, e)
		}
	}
	m.clampCursor()
	logger.DebugTagf("menu", "Menu: query %q matches %d entries", m.query, len(m.filtered))
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// matches reports whether the query is a case-insensitive subsequence
// of the entry's display name or kind.
func matches(query string, e Entry) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return isSubsequence(q, strings.ToLower(e.Name)) ||
		isSubsequence(q, strings.ToLower(string(e.Kind)))
}

// isSubsequence reports whether all runes of q appear in s in order.
func isSubsequence(q, s string) bool {
	qr := []rune(q)
	i := 0
	for _, r := range s {
		if i < len(qr) && r == qr[i] {
			i++
		}
	}
	return i == len(qr)
}
