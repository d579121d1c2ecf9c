// internal/editor/content.go
package editor

import (
	"fmt"

	"github.com/bethropolis/slate/internal/caret"
	"github.com/bethropolis/slate/internal/doctree"
)

// InsertRune inserts a single rune at the caret. An active selection is
// replaced, matching contenteditable typing behavior.
func (e *Editor) InsertRune(r rune) error {
	return e.InsertText(string(r))
}

// InsertNewLine inserts a newline at the caret.
func (e *Editor) InsertNewLine() error {
	return e.InsertRune('\n')
}

// InsertText inserts a string at the caret.
func (e *Editor) InsertText(s string) error {
	if !e.def.HasContent {
		return fmt.Errorf("block kind %q holds no text content", e.def.Kind)
	}
	if s == "" {
		return nil
	}

	e.deleteSelectionIfAny()

	offset := e.sel.FocusOffset()
	point := e.container.PointAt(offset)

	if point.Node != nil && point.Node.Kind() == doctree.TextNode {
		point.Node.InsertText(point.Offset, s)
	} else {
		// Empty tree: seed a text leaf under the root.
		root := e.container.Root()
		if root == nil {
			return fmt.Errorf("container has no root node")
		}
		root.Append(doctree.NewText(s))
	}

	e.sel.SetCaretAt(offset + len([]rune(s)))
	e.contentChanged()
	return nil
}

// ReplaceText swaps the block's entire content, placing the caret at
// the given offset (clamped). Used when a split's surviving half takes
// over the session.
func (e *Editor) ReplaceText(s string, caretOffset int) error {
	if !e.def.HasContent && s != "" {
		return fmt.Errorf("block kind %q holds no text content", e.def.Kind)
	}

	e.deleteFlatRange(0, e.container.Length())
	if s != "" {
		root := e.container.Root()
		if root == nil {
			return fmt.Errorf("container has no root node")
		}
		root.Append(doctree.NewText(s))
	}

	runeLen := len([]rune(s))
	if caretOffset < 0 {
		caretOffset = 0
	}
	if caretOffset > runeLen {
		caretOffset = runeLen
	}
	e.sel.SetCaretAt(caretOffset)
	e.contentChanged()
	return nil
}

// DeleteBackward removes the selection, or the grapheme cluster before
// the caret.
func (e *Editor) DeleteBackward() error {
	if e.deleteSelectionIfAny() {
		e.contentChanged()
		return nil
	}

	offset := e.sel.FocusOffset()
	if offset == 0 {
		return nil
	}
	start := caret.PrevBoundary(e.container.Text(), offset)
	e.deleteFlatRange(start, offset)
	e.sel.SetCaretAt(start)
	e.contentChanged()
	return nil
}

// DeleteForward removes the selection, or the grapheme cluster after
// the caret.
func (e *Editor) DeleteForward() error {
	if e.deleteSelectionIfAny() {
		e.contentChanged()
		return nil
	}

	offset := e.sel.FocusOffset()
	text := e.container.Text()
	if offset >= len([]rune(text)) {
		return nil
	}
	end := caret.NextBoundary(text, offset)
	e.deleteFlatRange(offset, end)
	e.sel.SetCaretAt(offset)
	e.contentChanged()
	return nil
}

// SelectedText returns the flattened text covered by the selection.
func (e *Editor) SelectedText() string {
	r, ok := e.sel.First()
	if !ok {
		return ""
	}
	start := e.container.Measure(r.Start)
	end := e.container.Measure(r.End)
	runes := []rune(e.container.Text())
	return string(runes[start:end])
}

// deleteSelectionIfAny removes a non-collapsed selection's text and
// collapses the caret to its start. Reports whether anything happened.
func (e *Editor) deleteSelectionIfAny() bool {
	r, ok := e.sel.First()
	if !ok || e.sel.Collapsed() {
		return false
	}
	start := e.container.Measure(r.Start)
	end := e.container.Measure(r.End)
	e.deleteFlatRange(start, end)
	e.sel.SetCaretAt(start)
	return true
}

// deleteFlatRange removes the flat rune range [start, end) across text
// leaves. Overlaps are computed against pre-mutation offsets, then
// applied, so earlier deletions can't shift later ones.
func (e *Editor) deleteFlatRange(start, end int) {
	if start >= end {
		return
	}

	type cut struct {
		node       *doctree.Node
		localStart int
		localEnd   int
	}
	var cuts []cut

	nodeStart := 0
	for _, n := range e.container.TextNodes() {
		nodeLen := n.Len()
		localStart := start - nodeStart
		localEnd := end - nodeStart
		if localStart < 0 {
			localStart = 0
		}
		if localEnd > nodeLen {
			localEnd = nodeLen
		}
		if localStart < nodeLen && localEnd > localStart {
			cuts = append(cuts, cut{node: n, localStart: localStart, localEnd: localEnd})
		}
		nodeStart += nodeLen
	}

	for _, c := range cuts {
		c.node.DeleteText(c.localStart, c.localEnd)
	}
}
