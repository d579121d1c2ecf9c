// internal/editor/editor.go

// Package editor ties one block's content tree, caret state, field
// values, and clipboard into an editing session. It owns no document:
// a split hands both halves to whoever embeds the session.
package editor

import (
	"fmt"

	"github.com/bethropolis/slate/internal/block"
	"github.com/bethropolis/slate/internal/caret"
	"github.com/bethropolis/slate/internal/clipboard"
	"github.com/bethropolis/slate/internal/doctree"
	"github.com/bethropolis/slate/internal/event"
	"github.com/bethropolis/slate/internal/split"
)

// Editor is a single-block editing session.
type Editor struct {
	registry  *block.Registry
	def       block.Definition
	container *doctree.Container
	sel       *caret.Selection
	fields    map[string]interface{}
	splitter  *split.Splitter

	clip         *clipboard.Manager
	eventManager *event.Manager
}

// New creates an editing session for a block of the given kind. The
// container may start empty; the caret lands at the end of its text.
func New(registry *block.Registry, kind block.Kind, container *doctree.Container) (*Editor, error) {
	def, ok := registry.Get(kind)
	if !ok {
		return nil, fmt.Errorf("unknown block kind %q", kind)
	}
	if container == nil {
		container = doctree.NewContainer(doctree.NewElement("div"))
	}

	sel := caret.NewSelection(container)
	sel.SetCaretAt(container.Length())

	return &Editor{
		registry:  registry,
		def:       def,
		container: container,
		sel:       sel,
		fields:    def.DefaultValues(),
		splitter:  split.New(sel, nil),
	}, nil
}

// SetEventManager wires the event bus; nil disables dispatching.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

// SetClipboard wires a clipboard manager for yank/paste.
func (e *Editor) SetClipboard(clip *clipboard.Manager) {
	e.clip = clip
}

// Container returns the block's content tree.
func (e *Editor) Container() *doctree.Container { return e.container }

// Selection returns the caret/selection state.
func (e *Editor) Selection() *caret.Selection { return e.sel }

// Kind returns the block's current type.
func (e *Editor) Kind() block.Kind { return e.def.Kind }

// Definition returns the block's current definition.
func (e *Editor) Definition() block.Definition { return e.def }

// Text returns the block's flattened content.
func (e *Editor) Text() string { return e.container.Text() }

// CaretOffset returns the caret's flat rune offset.
func (e *Editor) CaretOffset() int { return e.sel.FocusOffset() }

// SplitBlock splits the content at the caret and reports both halves.
// The content tree is not mutated; the embedding layer decides what the
// two halves become. With no active caret everything lands in Before.
func (e *Editor) SplitBlock() split.Result {
	result := e.splitter.SplitAtCursor(e.container)
	e.dispatch(event.TypeBlockSplit, event.BlockSplitData{
		Before: result.Before,
		After:  result.After,
	})
	return result
}

// SetKind converts the block to another type, resetting field values to
// the new definition's defaults.
func (e *Editor) SetKind(kind block.Kind) error {
	if kind == e.def.Kind {
		return nil
	}
	def, ok := e.registry.Get(kind)
	if !ok {
		return fmt.Errorf("unknown block kind %q", kind)
	}
	previous := e.def.Kind
	e.def = def
	e.fields = def.DefaultValues()
	e.dispatch(event.TypeKindChanged, event.KindChangedData{Previous: previous, Kind: kind})
	return nil
}

// dispatch forwards an event if a manager is wired.
func (e *Editor) dispatch(t event.Type, data interface{}) {
	if e.eventManager != nil {
		e.eventManager.Dispatch(t, data)
	}
}

// contentChanged announces a mutation and the caret's new position.
func (e *Editor) contentChanged() {
	e.dispatch(event.TypeContentChanged, event.ContentChangedData{Text: e.container.Text()})
	e.caretMoved()
}

func (e *Editor) caretMoved() {
	e.dispatch(event.TypeCaretMoved, event.CaretMovedData{Offset: e.sel.FocusOffset()})
}
