// internal/modehandler/action.go
package modehandler

import (
	"github.com/bethropolis/slate/internal/block"
	"github.com/bethropolis/slate/internal/input"
	"github.com/bethropolis/slate/internal/logger"
)

// handleActionEdit handles actions while editing block content.
func (mh *ModeHandler) handleActionEdit(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	// --- Quit ---
	case input.ActionQuit, input.ActionForceQuit:
		close(mh.quitSignal)
		return false

	// --- Overlays ---
	case input.ActionOpenMenu:
		// '/' opens the menu only in an empty block; otherwise it's text.
		if mh.editor.Text() == "" {
			mh.openMenu()
			return true
		}
		return mh.reportIfErr(mh.editor.InsertRune(actionEvent.Rune))

	case input.ActionToggleFields:
		if len(mh.editor.Definition().Fields) == 0 {
			mh.statusBar.SetTemporaryMessage("Block '%s' has no settings", mh.editor.Definition().Name)
			return true
		}
		mh.fieldCursor = 0
		mh.currentMode = ModeFields
		logger.DebugTagf("mode", "ModeHandler: Entering Fields Mode")
		return true

	// --- Text Manipulation ---
	case input.ActionInsertRune:
		return mh.reportIfErr(mh.editor.InsertRune(actionEvent.Rune))
	case input.ActionInsertNewLine:
		return mh.reportIfErr(mh.editor.InsertNewLine())
	case input.ActionSplitBlock:
		return mh.splitBlock()
	case input.ActionDeleteCharBackward:
		return mh.reportIfErr(mh.editor.DeleteBackward())
	case input.ActionDeleteCharForward:
		return mh.reportIfErr(mh.editor.DeleteForward())

	// --- Movement / Selection ---
	case input.ActionMoveLeft:
		mh.editor.MoveLeft()
		return true
	case input.ActionMoveRight:
		mh.editor.MoveRight()
		return true
	case input.ActionMoveHome:
		mh.editor.MoveHome()
		return true
	case input.ActionMoveEnd:
		mh.editor.MoveEnd()
		return true
	case input.ActionSelectLeft:
		mh.editor.SelectLeft()
		return true
	case input.ActionSelectRight:
		mh.editor.SelectRight()
		return true

	// --- Clipboard ---
	case input.ActionYank:
		copied, err := mh.editor.Yank()
		if err != nil {
			mh.statusBar.SetTemporaryMessage("Copy failed: %v", err)
		} else if copied {
			mh.statusBar.SetTemporaryMessage("Selection copied")
		}
		return true
	case input.ActionPaste:
		return mh.reportIfErr(mh.editor.Paste())

	case input.ActionCycleField, input.ActionMenuUp, input.ActionMenuDown:
		return false // Only meaningful with an overlay open

	default:
		return false
	}
}

// splitBlock runs the split at the caret: the session keeps the first
// half, and the second half is announced for whoever embeds the engine.
func (mh *ModeHandler) splitBlock() bool {
	if !mh.editor.Definition().HasContent {
		return false
	}

	result := mh.editor.SplitBlock()
	if err := mh.editor.ReplaceText(result.Before, len([]rune(result.Before))); err != nil {
		mh.statusBar.SetTemporaryMessage("Split failed: %v", err)
		return true
	}
	if result.After != "" {
		mh.statusBar.SetTemporaryMessage("Split off %d chars into a new block", len([]rune(result.After)))
	}
	return true
}

// handleActionMenu handles actions while the block menu is open.
func (mh *ModeHandler) handleActionMenu(actionEvent input.ActionEvent) bool {
	if mh.menuModel == nil {
		// Defensive: menu mode without a model means state got out of sync.
		mh.currentMode = ModeEdit
		return true
	}

	switch actionEvent.Action {
	case input.ActionQuit, input.ActionCancelOverlay:
		mh.closeMenu(false, "")
		return true

	case input.ActionSplitBlock, input.ActionConfirmMenu: // Enter confirms
		entry, ok := mh.menuModel.Selected()
		if !ok {
			mh.closeMenu(false, "")
			return true
		}
		if err := mh.editor.SetKind(entry.Kind); err != nil {
			mh.statusBar.SetTemporaryMessage("Cannot switch block: %v", err)
			mh.closeMenu(false, "")
			return true
		}
		mh.statusBar.SetTemporaryMessage("Block converted to %s", entry.Name)
		mh.closeMenu(true, entry.Kind)
		return true

	case input.ActionMenuUp:
		mh.menuModel.MoveCursor(-1)
		return true
	case input.ActionMenuDown:
		mh.menuModel.MoveCursor(1)
		return true

	case input.ActionDeleteCharBackward, input.ActionDeleteMenuChar:
		mh.menuModel.DeleteQueryChar()
		return true

	case input.ActionInsertRune, input.ActionAppendMenuQuery:
		if actionEvent.Rune != 0 {
			mh.menuModel.AppendQuery(actionEvent.Rune)
			return true
		}
		return false

	default:
		return false
	}
}

// handleActionFields handles actions while the field panel is open.
func (mh *ModeHandler) handleActionFields(actionEvent input.ActionEvent) bool {
	fields := mh.editor.Definition().Fields

	switch actionEvent.Action {
	case input.ActionQuit, input.ActionCancelOverlay, input.ActionToggleFields:
		mh.currentMode = ModeEdit
		logger.DebugTagf("mode", "ModeHandler: Leaving Fields Mode")
		return true

	case input.ActionMenuUp:
		if mh.fieldCursor > 0 {
			mh.fieldCursor--
		}
		return true
	case input.ActionMenuDown:
		if mh.fieldCursor < len(fields)-1 {
			mh.fieldCursor++
		}
		return true

	case input.ActionSplitBlock, input.ActionCycleField: // Enter cycles the value
		if mh.fieldCursor >= len(fields) {
			return false
		}
		return mh.advanceField(fields[mh.fieldCursor])

	default:
		return false
	}
}

// advanceField moves a field to its next value: switches toggle,
// selects cycle through their options.
func (mh *ModeHandler) advanceField(field block.Field) bool {
	var err error
	switch field.Type {
	case block.FieldSwitch:
		err = mh.editor.ToggleField(field.Name)
	case block.FieldSelect:
		err = mh.editor.CycleField(field.Name)
	default:
		mh.statusBar.SetTemporaryMessage("Field '%s' is free-form text", field.Label)
		return true
	}

	if err != nil {
		mh.statusBar.SetTemporaryMessage("Cannot update %s: %v", field.Label, err)
		return true
	}
	value, _ := mh.editor.FieldValue(field.Name)
	mh.statusBar.SetTemporaryMessage("%s: %v", field.Label, value)
	return true
}

// reportIfErr surfaces editor errors on the status bar. Always redraws:
// either content changed or the message did.
func (mh *ModeHandler) reportIfErr(err error) bool {
	if err != nil {
		mh.statusBar.SetTemporaryMessage("%v", err)
	}
	return true
}
