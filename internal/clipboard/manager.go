// internal/clipboard/manager.go

// Package clipboard provides the copy/paste buffer for the editor,
// optionally bridged to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/slate/internal/logger"
)

// Manager handles clipboard operations. With system disabled (or
// unsupported on the platform) it falls back to an internal register.
type Manager struct {
	system   bool
	internal string
}

// NewManager creates a clipboard manager. useSystem requests the OS
// clipboard via atotto/clipboard.
func NewManager(useSystem bool) *Manager {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("ClipboardManager: system clipboard unsupported, using internal register")
		useSystem = false
	}
	return &Manager{system: useSystem}
}

// Copy stores text. The internal register is always updated so Paste
// keeps working if the system clipboard fails later.
func (m *Manager) Copy(text string) error {
	m.internal = text
	if !m.system {
		logger.DebugTagf("clipboard", "ClipboardManager: copied %d bytes (internal)", len(text))
		return nil
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard write failed: %w", err)
	}
	logger.DebugTagf("clipboard", "ClipboardManager: copied %d bytes (system)", len(text))
	return nil
}

// Paste retrieves the stored text.
func (m *Manager) Paste() (string, error) {
	if !m.system {
		return m.internal, nil
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("system clipboard read failed: %w", err)
	}
	return text, nil
}
