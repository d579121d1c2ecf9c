// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

// Define the set of possible editor actions.
const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit                  // Esc: cancel overlay, or quit from edit mode
	ActionForceQuit

	// --- Caret Movement ---
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line
	ActionSelectLeft
	ActionSelectRight

	// --- Text Manipulation ---
	ActionInsertRune         // Requires Rune argument
	ActionInsertNewLine      // Soft newline inside the block
	ActionSplitBlock         // Enter: split the block at the caret
	ActionDeleteCharForward  // Delete key
	ActionDeleteCharBackward // Backspace key

	// --- Clipboard ---
	ActionYank
	ActionPaste

	// --- Block Menu ---
	ActionOpenMenu        // Special action for '/'
	ActionConfirmMenu     // Enter in menu mode
	ActionCancelOverlay   // Esc in menu/fields mode
	ActionAppendMenuQuery // Runes in menu mode
	ActionDeleteMenuChar  // Backspace in menu mode
	ActionMenuUp
	ActionMenuDown

	// --- Field Panel ---
	ActionToggleFields // Open/close the field panel
	ActionCycleField   // Advance the selected field's value
)

// ActionEvent represents a decoded input event resulting in an action.
// It might carry payload data needed for the action (like the rune to insert).
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune / ActionAppendMenuQuery
}
