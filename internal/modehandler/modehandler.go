// internal/modehandler/modehandler.go
package modehandler

import (
	"github.com/bethropolis/slate/internal/block"
	"github.com/bethropolis/slate/internal/editor"
	"github.com/bethropolis/slate/internal/event"
	"github.com/bethropolis/slate/internal/input"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/menu"
	"github.com/bethropolis/slate/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeEdit InputMode = iota
	ModeMenu
	ModeFields
)

// ModeHandler routes decoded actions to the editor, the block menu, or
// the field panel depending on the current input mode.
type ModeHandler struct {
	// Dependencies (references to components managed by App)
	editor         *editor.Editor
	registry       *block.Registry
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{} // Channel to signal app termination

	// Internal State
	currentMode InputMode
	menuModel   *menu.Model // Non-nil while the menu is open
	fieldCursor int
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *editor.Editor
	Registry       *block.Registry
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{} // Write-only channel to signal quit
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.Registry == nil || cfg.InputProcessor == nil ||
		cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		// Panic indicates a programming error during setup
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		registry:       cfg.Registry,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeEdit,
	}
}

// HandleKeyEvent decides what to do based on current mode and key event.
// Returns true if the event resulted in an action requiring redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	// Dispatch raw key event first
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	actionEvent := mh.inputProcessor.ProcessEvent(ev)

	switch mh.currentMode {
	case ModeEdit:
		return mh.handleActionEdit(actionEvent)
	case ModeMenu:
		return mh.handleActionMenu(actionEvent)
	case ModeFields:
		return mh.handleActionFields(actionEvent)
	default:
		logger.Debugf("Warning: Unknown input mode: %v", mh.currentMode)
		return false
	}
}

// Mode returns the current input mode.
func (mh *ModeHandler) Mode() InputMode {
	return mh.currentMode
}

// ModeString returns the display name of the current mode.
func (mh *ModeHandler) ModeString() string {
	switch mh.currentMode {
	case ModeMenu:
		return "MENU"
	case ModeFields:
		return "FIELDS"
	default:
		return "EDIT"
	}
}

// Menu returns the open menu model, or nil when the menu is closed.
func (mh *ModeHandler) Menu() *menu.Model {
	return mh.menuModel
}

// FieldCursor returns the selected row of the field panel.
func (mh *ModeHandler) FieldCursor() int {
	return mh.fieldCursor
}

// openMenu switches to menu mode with a fresh model.
func (mh *ModeHandler) openMenu() {
	mh.menuModel = menu.New(mh.registry)
	mh.currentMode = ModeMenu
	mh.eventManager.Dispatch(event.TypeMenuOpened, event.MenuOpenedData{})
	logger.DebugTagf("mode", "ModeHandler: Entering Menu Mode")
}

// closeMenu leaves menu mode, reporting whether a kind was picked.
func (mh *ModeHandler) closeMenu(picked bool, kind block.Kind) {
	mh.menuModel = nil
	mh.currentMode = ModeEdit
	mh.eventManager.Dispatch(event.TypeMenuClosed, event.MenuClosedData{Picked: picked, Kind: kind})
	logger.DebugTagf("mode", "ModeHandler: Leaving Menu Mode (picked=%v)", picked)
}
