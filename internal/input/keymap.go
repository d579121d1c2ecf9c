// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to editor actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, etc.)
type RuneKeymap map[rune]Action         // For simple rune bindings (rarely needed beyond insert)
type ModKeymap map[tcell.ModMask]Keymap // For keys combined with modifiers (Ctrl, Alt, Shift)

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap      Keymap
	shiftKeymap Keymap // Shift + special key (extend selection)
	runeKeymap  RuneKeymap
	modKeymap   ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:      make(Keymap),
		shiftKeymap: make(Keymap),
		runeKeymap:  make(RuneKeymap),
		modKeymap:   make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Simple Keys ---
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward // Often used for Backspace
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyTab] = ActionToggleFields
	p.keymap[tcell.KeyEscape] = ActionQuit // App interprets as cancel when an overlay is open
	p.keymap[tcell.KeyUp] = ActionMenuUp   // Only meaningful with the menu or field panel open
	p.keymap[tcell.KeyDown] = ActionMenuDown

	// --- Shift + Arrow (extend selection) ---
	p.shiftKeymap[tcell.KeyLeft] = ActionSelectLeft
	p.shiftKeymap[tcell.KeyRight] = ActionSelectRight

	// --- Modifier Keys ---
	ctrlMap := make(Keymap)
	ctrlMap[tcell.KeyCtrlC] = ActionYank
	ctrlMap[tcell.KeyCtrlV] = ActionPaste
	ctrlMap[tcell.KeyCtrlQ] = ActionForceQuit
	ctrlMap[tcell.KeyCtrlJ] = ActionInsertNewLine // Soft newline without splitting
	ctrlMap[tcell.KeyCtrlSpace] = ActionCycleField
	p.modKeymap[tcell.ModCtrl] = ctrlMap

	// --- Rune Mappings (Special Case for /) ---
	p.runeKeymap['/'] = ActionOpenMenu // Trigger block menu

	// Default for other runes is handled in ProcessEvent
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
// INPUT MODE IS NOT HANDLED HERE - App decides based on mode + action.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()
	runeVal := ev.Rune()

	// 1. Check Modifier + Key combinations
	if modKeyMap, modOk := p.modKeymap[mod]; modOk {
		if action, keyOk := modKeyMap[key]; keyOk {
			return ActionEvent{Action: action}
		}
	}
	// Clear modifier if it was part of a standard key name (like tcell.KeyCtrlC itself)
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}

	// 2. Shift + special key extends the selection
	if mod == tcell.ModShift {
		if action, ok := p.shiftKeymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 3. Check simple Key mappings
	if mod == tcell.ModNone || mod == tcell.ModShift {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action}
		}
	}

	// 4. Check Rune mappings (like '/')
	if key == tcell.KeyRune && (mod == tcell.ModNone || mod == tcell.ModShift) {
		if action, ok := p.runeKeymap[runeVal]; ok {
			return ActionEvent{Action: action, Rune: runeVal}
		}
		// Default: Treat as rune insertion *request*.
		// App decides whether it goes into the block or the menu query.
		return ActionEvent{Action: ActionInsertRune, Rune: runeVal}
	}

	// Enter is the split trigger; App reinterprets it in menu mode.
	if key == tcell.KeyEnter {
		return ActionEvent{Action: ActionSplitBlock}
	}

	// 5. No mapping found
	return ActionEvent{Action: ActionUnknown}
}
