// internal/tui/tui.go

// Package tui owns the tcell screen and everything drawn on it: the
// block surface, caret, insert menu overlay, field panel and status
// bar. Layout values (status bar height, tab width) come from the
// editor configuration at construction time.
package tui

import (
	"fmt"

	"github.com/bethropolis/slate/internal/config"
	"github.com/bethropolis/slate/internal/statusbar"
	"github.com/bethropolis/slate/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen and the layout the drawing routines
// share.
type TUI struct {
	screen          tcell.Screen
	statusBarHeight int // rows reserved at the bottom for the status bar
	tabWidth        int // visual cells per tab stop in block content
}

// New creates and initializes the terminal surface. The configuration
// supplies layout values; a nil config falls back to the defaults.
func New(cfg *config.Config) (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}

	t := &TUI{
		screen:          s,
		statusBarHeight: config.StatusBarHeight,
		tabWidth:        config.DefaultTabWidth,
	}
	if cfg != nil {
		if cfg.Editor.StatusBarHeight > 0 {
			t.statusBarHeight = cfg.Editor.StatusBarHeight
		}
		if cfg.Editor.TabWidth > 0 {
			t.tabWidth = cfg.Editor.TabWidth
		}
	}

	t.ApplyTheme(theme.GetCurrentTheme())
	return t, nil
}

// ApplyTheme repaints the screen background from the theme's default
// style. Called at startup and whenever the active theme changes.
func (t *TUI) ApplyTheme(th *theme.Theme) {
	if th == nil {
		return
	}
	t.screen.SetStyle(th.GetStyle("Default"))
	t.screen.Clear()
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent retrieves the next terminal event, blocking until one
// arrives.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Sync forces a full repaint, needed after a terminal resize.
func (t *TUI) Sync() {
	t.screen.Sync()
}

// BeginFrame clears the back buffer ahead of a redraw.
func (t *TUI) BeginFrame() {
	t.screen.Clear()
}

// EndFrame flushes the completed frame to the terminal.
func (t *TUI) EndFrame() {
	t.screen.Show()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// DrawStatusBar renders the status bar into its reserved bottom rows.
func (t *TUI) DrawStatusBar(sb *statusbar.StatusBar) {
	width, height := t.screen.Size()
	sb.Draw(t.screen, width, height)
}
