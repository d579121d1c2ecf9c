// internal/event/events.go
package event

import (
	"github.com/bethropolis/slate/internal/block"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Core Editor Events
	TypeContentChanged // Fired when block content changes (insert/delete/paste)
	TypeCaretMoved     // Fired when the caret or selection changes
	TypeBlockSplit     // Fired when a block is split at the caret
	TypeKindChanged    // Fired when the block's type changes via the menu
	TypeFieldChanged   // Fired when an editable field value changes

	// Input Events (potentially useful for observers reacting to raw keys)
	TypeKeyPressed // Raw key press event forwarded

	// UI Events
	TypeMenuOpened // Insert menu became visible
	TypeMenuClosed // Insert menu dismissed (selection made or cancelled)
	TypeThemeChanged

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// ContentChangedData describes a content mutation.
type ContentChangedData struct {
	Text string // the block's full flattened text after the change
}

// CaretMovedData carries the caret's new flat rune offset.
type CaretMovedData struct {
	Offset int
}

// BlockSplitData carries both halves produced by a split. The caller
// owns what happens with them; the engine has no document model.
type BlockSplitData struct {
	Before string
	After  string
}

// KindChangedData records a block type conversion.
type KindChangedData struct {
	Previous block.Kind
	Kind     block.Kind
}

// FieldChangedData records an editable field update.
type FieldChangedData struct {
	Name  string
	Value interface{}
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// MenuOpenedData marks the insert menu becoming visible.
type MenuOpenedData struct{}

// MenuClosedData reports whether a block type was picked.
type MenuClosedData struct {
	Picked bool
	Kind   block.Kind
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
