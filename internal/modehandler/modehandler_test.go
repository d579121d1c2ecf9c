// internal/modehandler/modehandler_test.go
package modehandler

import (
	"testing"

	"github.com/bethropolis/slate/internal/block"
	"github.com/bethropolis/slate/internal/editor"
	"github.com/bethropolis/slate/internal/event"
	"github.com/bethropolis/slate/internal/input"
	"github.com/bethropolis/slate/internal/statusbar"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, kind block.Kind) (*ModeHandler, *editor.Editor) {
	t.Helper()

	registry := block.NewRegistry()
	ed, err := editor.New(registry, kind, nil)
	require.NoError(t, err)

	eventManager := event.NewManager()
	ed.SetEventManager(eventManager)

	mh := New(Config{
		Editor:         ed,
		Registry:       registry,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusbar.New(statusbar.DefaultConfig()),
		QuitSignal:     make(chan struct{}),
	})
	return mh, ed
}

func keyEvent(key tcell.Key, r rune, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(key, r, mod)
}

func typeString(mh *ModeHandler, s string) {
	for _, r := range s {
		mh.HandleKeyEvent(keyEvent(tcell.KeyRune, r, tcell.ModNone))
	}
}

func TestTypingInEditMode(t *testing.T) {
	t.Parallel()

	mh, ed := newTestHandler(t, block.Paragraph)
	typeString(mh, "hello")

	assert.Equal(t, "hello", ed.Text())
	assert.Equal(t, 5, ed.CaretOffset())
	assert.Equal(t, ModeEdit, mh.Mode())
}

func TestSlashInsertsWhenBlockNotEmpty(t *testing.T) {
	t.Parallel()

	mh, ed := newTestHandler(t, block.Paragraph)
	typeString(mh, "a/b")

	assert.Equal(t, "a/b", ed.Text())
	assert.Equal(t, ModeEdit, mh.Mode())
}

func TestMenuFlowConvertsBlock(t *testing.T) {
	t.Parallel()

	mh, ed := newTestHandler(t, block.Paragraph)

	// '/' in an empty block opens the menu.
	mh.HandleKeyEvent(keyEvent(tcell.KeyRune, '/', tcell.ModNone))
	require.Equal(t, ModeMenu, mh.Mode())
	require.NotNil(t, mh.Menu())

	// Runes filter the entries instead of editing content.
	typeString(mh, "cod")
	assert.Equal(t, "", ed.Text())
	assert.Equal(t, "cod", mh.Menu().Query())

	selected, ok := mh.Menu().Selected()
	require.True(t, ok)
	assert.Equal(t, block.Code, selected.Kind)

	// Enter confirms the selection and converts the block.
	mh.HandleKeyEvent(keyEvent(tcell.KeyEnter, 0, tcell.ModNone))
	assert.Equal(t, ModeEdit, mh.Mode())
	assert.Nil(t, mh.Menu())
	assert.Equal(t, block.Code, ed.Kind())
}

func TestMenuEscapeCancels(t *testing.T) {
	t.Parallel()

	mh, ed := newTestHandler(t, block.Paragraph)
	mh.HandleKeyEvent(keyEvent(tcell.KeyRune, '/', tcell.ModNone))
	require.Equal(t, ModeMenu, mh.Mode())

	mh.HandleKeyEvent(keyEvent(tcell.KeyEscape, 0, tcell.ModNone))
	assert.Equal(t, ModeEdit, mh.Mode())
	assert.Equal(t, block.Paragraph, ed.Kind())
}

func TestEnterSplitsAndKeepsFirstHalf(t *testing.T) {
	t.Parallel()

	mh, ed := newTestHandler(t, block.Paragraph)
	typeString(mh, "hello world")
	ed.SetCaretAt(5)

	var splitData event.BlockSplitData
	// The session subscribes after typing so only the split is recorded.
	evtMgr := event.NewManager()
	ed.SetEventManager(evtMgr)
	evtMgr.Subscribe(event.TypeBlockSplit, func(e event.Event) bool {
		splitData = e.Data.(event.BlockSplitData)
		return false
	})

	mh.HandleKeyEvent(keyEvent(tcell.KeyEnter, 0, tcell.ModNone))

	assert.Equal(t, "hello", splitData.Before)
	assert.Equal(t, " world", splitData.After)
	assert.Equal(t, "hello", ed.Text(), "session keeps the first half")
	assert.Equal(t, 5, ed.CaretOffset())
}

func TestSoftNewlineDoesNotSplit(t *testing.T) {
	t.Parallel()

	mh, ed := newTestHandler(t, block.Paragraph)
	typeString(mh, "ab")
	mh.HandleKeyEvent(keyEvent(tcell.KeyCtrlJ, 0, tcell.ModCtrl))
	typeString(mh, "cd")

	assert.Equal(t, "ab\ncd", ed.Text())
}

func TestFieldsFlowTogglesSwitch(t *testing.T) {
	t.Parallel()

	mh, ed := newTestHandler(t, block.Todo)

	mh.HandleKeyEvent(keyEvent(tcell.KeyTab, 0, tcell.ModNone))
	require.Equal(t, ModeFields, mh.Mode())

	v, _ := ed.FieldValue("checked")
	require.Equal(t, false, v)

	// Enter toggles the selected switch field.
	mh.HandleKeyEvent(keyEvent(tcell.KeyEnter, 0, tcell.ModNone))
	v, _ = ed.FieldValue("checked")
	assert.Equal(t, true, v)

	// Esc returns to edit mode.
	mh.HandleKeyEvent(keyEvent(tcell.KeyEscape, 0, tcell.ModNone))
	assert.Equal(t, ModeEdit, mh.Mode())
}

func TestFieldsOnBlockWithoutFields(t *testing.T) {
	t.Parallel()

	mh, _ := newTestHandler(t, block.Paragraph)
	mh.HandleKeyEvent(keyEvent(tcell.KeyTab, 0, tcell.ModNone))
	assert.Equal(t, ModeEdit, mh.Mode(), "paragraph has no settings panel")
}

func TestFieldCursorMovement(t *testing.T) {
	t.Parallel()

	mh, _ := newTestHandler(t, block.Code) // code has two fields

	mh.HandleKeyEvent(keyEvent(tcell.KeyTab, 0, tcell.ModNone))
	require.Equal(t, ModeFields, mh.Mode())
	assert.Equal(t, 0, mh.FieldCursor())

	mh.HandleKeyEvent(keyEvent(tcell.KeyDown, 0, tcell.ModNone))
	assert.Equal(t, 1, mh.FieldCursor())

	mh.HandleKeyEvent(keyEvent(tcell.KeyDown, 0, tcell.ModNone))
	assert.Equal(t, 1, mh.FieldCursor(), "cursor clamps at the last field")

	mh.HandleKeyEvent(keyEvent(tcell.KeyUp, 0, tcell.ModNone))
	assert.Equal(t, 0, mh.FieldCursor())
}
