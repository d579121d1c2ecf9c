// internal/caret/selection.go

// Package caret tracks the caret and selection state over one block's
// content tree, node+offset based like a platform selection API.
package caret

import (
	"github.com/bethropolis/slate/internal/doctree"
	"github.com/bethropolis/slate/internal/logger"
)

// Selection owns an anchor/focus pair over a single container. The
// anchor stays where the selection started; the focus follows the
// caret. A collapsed selection (anchor == focus) is a plain caret.
type Selection struct {
	container *doctree.Container

	active bool
	anchor doctree.Point
	focus  doctree.Point
}

// NewSelection creates a selection manager bound to a container.
func NewSelection(container *doctree.Container) *Selection {
	return &Selection{container: container}
}

// Container returns the bound container.
func (s *Selection) Container() *doctree.Container {
	return s.container
}

// RangeCount reports how many ranges the selection holds (0 or 1; the
// engine does not model multi-range selections).
func (s *Selection) RangeCount() int {
	if s.active {
		return 1
	}
	return 0
}

// SetCaret collapses the selection to a single point.
func (s *Selection) SetCaret(p doctree.Point) {
	s.active = true
	s.anchor = p
	s.focus = p
}

// SetCaretAt collapses the selection to a flat rune offset.
func (s *Selection) SetCaretAt(offset int) {
	s.SetCaret(s.container.PointAt(offset))
}

// Extend moves the focus, keeping the anchor. Starts a selection at the
// focus point if none is active.
func (s *Selection) Extend(p doctree.Point) {
	if !s.active {
		s.SetCaret(p)
		logger.DebugTagf("caret", "Selection: started at offset %d", s.container.Measure(p))
		return
	}
	s.focus = p
}

// Collapse reduces an active selection to its focus point.
func (s *Selection) Collapse() {
	if s.active {
		s.anchor = s.focus
	}
}

// Clear removes the selection entirely (no caret).
func (s *Selection) Clear() {
	s.active = false
	s.anchor = doctree.Point{}
	s.focus = doctree.Point{}
}

// Collapsed reports whether the selection is a plain caret.
func (s *Selection) Collapsed() bool {
	if !s.active {
		return true
	}
	return s.container.Measure(s.anchor) == s.container.Measure(s.focus)
}

// First returns the selection's only range, normalized so Start is the
// document-order-earlier endpoint, mirroring how selection APIs report
// range starts. ok is false with no active selection.
func (s *Selection) First() (doctree.Range, bool) {
	if !s.active {
		return doctree.Range{}, false
	}
	start, end := s.anchor, s.focus
	if s.container.Measure(start) > s.container.Measure(end) {
		start, end = end, start
	}
	return doctree.Range{Start: start, End: end}, true
}

// Locate reports the first range's start as the caret location. This is
// the split.Locator capability: a non-collapsed selection contributes
// its start point and nothing else.
func (s *Selection) Locate(c *doctree.Container) (doctree.Point, bool) {
	if c != s.container {
		return doctree.Point{}, false
	}
	r, ok := s.First()
	if !ok {
		return doctree.Point{}, false
	}
	return r.Start, true
}

// FocusOffset returns the focus point's flat rune offset, or the
// container end when no selection is active.
func (s *Selection) FocusOffset() int {
	if !s.active {
		return s.container.Length()
	}
	return s.container.Measure(s.focus)
}
