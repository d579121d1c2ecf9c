// internal/input/keymap_test.go
package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestProcessEventDefaults(t *testing.T) {
	t.Parallel()

	p := NewInputProcessor()

	tests := []struct {
		name       string
		key        tcell.Key
		r          rune
		mod        tcell.ModMask
		wantAction Action
		wantRune   rune
	}{
		{name: "plain rune inserts", key: tcell.KeyRune, r: 'a', wantAction: ActionInsertRune, wantRune: 'a'},
		{name: "shifted rune inserts", key: tcell.KeyRune, r: 'A', mod: tcell.ModShift, wantAction: ActionInsertRune, wantRune: 'A'},
		{name: "slash opens menu", key: tcell.KeyRune, r: '/', wantAction: ActionOpenMenu, wantRune: '/'},
		{name: "enter splits block", key: tcell.KeyEnter, wantAction: ActionSplitBlock},
		{name: "backspace deletes backward", key: tcell.KeyBackspace2, wantAction: ActionDeleteCharBackward},
		{name: "delete deletes forward", key: tcell.KeyDelete, wantAction: ActionDeleteCharForward},
		{name: "left moves caret", key: tcell.KeyLeft, wantAction: ActionMoveLeft},
		{name: "shift left extends selection", key: tcell.KeyLeft, mod: tcell.ModShift, wantAction: ActionSelectLeft},
		{name: "home moves to line start", key: tcell.KeyHome, wantAction: ActionMoveHome},
		{name: "tab toggles fields", key: tcell.KeyTab, wantAction: ActionToggleFields},
		{name: "escape quits", key: tcell.KeyEscape, wantAction: ActionQuit},
		{name: "ctrl-q force quits", key: tcell.KeyCtrlQ, mod: tcell.ModCtrl, wantAction: ActionForceQuit},
		{name: "ctrl-c yanks", key: tcell.KeyCtrlC, mod: tcell.ModCtrl, wantAction: ActionYank},
		{name: "ctrl-v pastes", key: tcell.KeyCtrlV, mod: tcell.ModCtrl, wantAction: ActionPaste},
		{name: "function key unmapped", key: tcell.KeyF5, wantAction: ActionUnknown},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ev := tcell.NewEventKey(tc.key, tc.r, tc.mod)
			got := p.ProcessEvent(ev)
			assert.Equal(t, tc.wantAction, got.Action)
			if tc.wantRune != 0 {
				assert.Equal(t, tc.wantRune, got.Rune)
			}
		})
	}
}
