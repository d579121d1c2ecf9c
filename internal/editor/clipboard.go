// internal/editor/clipboard.go
package editor

import "fmt"

// Yank copies the selected text to the clipboard. Returns false without
// error when nothing is selected.
func (e *Editor) Yank() (bool, error) {
	if e.clip == nil {
		return false, fmt.Errorf("no clipboard manager wired")
	}
	text := e.SelectedText()
	if text == "" {
		return false, nil
	}
	if err := e.clip.Copy(text); err != nil {
		return false, err
	}
	e.sel.Collapse()
	return true, nil
}

// Paste inserts the clipboard's text at the caret, replacing any
// selection.
func (e *Editor) Paste() error {
	if e.clip == nil {
		return fmt.Errorf("no clipboard manager wired")
	}
	text, err := e.clip.Paste()
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	return e.InsertText(text)
}
