// internal/editor/movement.go
package editor

import (
	"github.com/bethropolis/slate/internal/caret"
)

// MoveLeft collapses the selection and steps one grapheme cluster left.
func (e *Editor) MoveLeft() {
	if !e.sel.Collapsed() {
		// Collapse to the selection's start, like contenteditable.
		if r, ok := e.sel.First(); ok {
			e.sel.SetCaret(r.Start)
			e.caretMoved()
			return
		}
	}
	offset := caret.PrevBoundary(e.container.Text(), e.sel.FocusOffset())
	e.sel.SetCaretAt(offset)
	e.caretMoved()
}

// MoveRight collapses the selection and steps one grapheme cluster right.
func (e *Editor) MoveRight() {
	if !e.sel.Collapsed() {
		if r, ok := e.sel.First(); ok {
			e.sel.SetCaret(r.End)
			e.caretMoved()
			return
		}
	}
	offset := caret.NextBoundary(e.container.Text(), e.sel.FocusOffset())
	e.sel.SetCaretAt(offset)
	e.caretMoved()
}

// MoveHome moves the caret to the start of the current visual line.
func (e *Editor) MoveHome() {
	offset := caret.LineStart(e.container.Text(), e.sel.FocusOffset())
	e.sel.SetCaretAt(offset)
	e.caretMoved()
}

// MoveEnd moves the caret to the end of the current visual line.
func (e *Editor) MoveEnd() {
	offset := caret.LineEnd(e.container.Text(), e.sel.FocusOffset())
	e.sel.SetCaretAt(offset)
	e.caretMoved()
}

// SelectLeft extends the selection one grapheme cluster left.
func (e *Editor) SelectLeft() {
	offset := caret.PrevBoundary(e.container.Text(), e.sel.FocusOffset())
	e.sel.Extend(e.container.PointAt(offset))
	e.caretMoved()
}

// SelectRight extends the selection one grapheme cluster right.
func (e *Editor) SelectRight() {
	offset := caret.NextBoundary(e.container.Text(), e.sel.FocusOffset())
	e.sel.Extend(e.container.PointAt(offset))
	e.caretMoved()
}

// SetCaretAt places a collapsed caret at a flat rune offset.
func (e *Editor) SetCaretAt(offset int) {
	e.sel.SetCaretAt(offset)
	e.caretMoved()
}
