// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg" // For proper Unicode width calculation
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleModified  tcell.Style // Style for the modified indicator
	StyleMessage   tcell.Style // Style for temporary messages
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleModified:  tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlue).Bold(true),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex // Protect access to text fields

	// Content fields (updated externally)
	blockName    string // Display name of the active block kind
	caretOffset  int
	contentLen   int
	selectionLen int
	editorMode   string // EDIT, MENU, FIELDS

	// Temporary message state
	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
	}
}

// SetBlockInfo updates the block kind shown in the status bar.
func (sb *StatusBar) SetBlockInfo(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.blockName = name
}

// SetCaretInfo updates the caret position and selection size shown.
func (sb *StatusBar) SetCaretInfo(offset, contentLen, selectionLen int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.caretOffset = offset
	sb.contentLen = contentLen
	sb.selectionLen = selectionLen
}

// SetEditorMode updates the displayed editor mode.
func (sb *StatusBar) SetEditorMode(mode string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.editorMode = mode
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// getDefaultDisplayText builds the default status line text.
func (sb *StatusBar) getDefaultDisplayText() string {
	// Assumes lock is held by the caller
	name := sb.blockName
	if name == "" {
		name = "[No Block]"
	}

	selectionIndicator := ""
	if sb.selectionLen > 0 {
		selectionIndicator = fmt.Sprintf(" (%d selected)", sb.selectionLen)
	}

	modeIndicator := ""
	if sb.editorMode != "" {
		modeIndicator = fmt.Sprintf(" -- %s", sb.editorMode)
	}

	return fmt.Sprintf("%s -- Offset: %d/%d%s%s",
		name, sb.caretOffset, sb.contentLen, selectionIndicator, modeIndicator)
}

// Draw renders the status bar onto the screen using visual widths.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1 // Status bar is always the last line

	sb.mu.Lock() // Lock for potential modification of tempMessageTime
	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout

	// Clear expired temporary message *before* getting display text
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text string

	if isTempMsgActive {
		text = sb.tempMessage
		style = sb.config.StyleMessage
	} else {
		text = sb.getDefaultDisplayText()
		style = sb.config.StyleDefault
	}

	sb.mu.Unlock()

	// Fill background first
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	// Draw text using uniseg for width calculation
	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break // Stop if cluster doesn't fit
		}

		runes := gr.Runes()
		if len(runes) > 0 {
			mainRune := runes[0]
			var combiningRunes []rune
			if len(runes) > 1 {
				combiningRunes = runes[1:]
			}
			screen.SetContent(currentX, y, mainRune, combiningRunes, style)
		}

		currentX += clusterWidth // Advance by the calculated visual width
	}
}
