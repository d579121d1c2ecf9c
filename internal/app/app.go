// internal/app/app.go
package app

import (
	"fmt"
	"os"

	"github.com/bethropolis/slate/internal/block"
	"github.com/bethropolis/slate/internal/clipboard"
	"github.com/bethropolis/slate/internal/config"
	"github.com/bethropolis/slate/internal/editor"
	"github.com/bethropolis/slate/internal/event"
	"github.com/bethropolis/slate/internal/highlight"
	"github.com/bethropolis/slate/internal/input"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/modehandler"
	"github.com/bethropolis/slate/internal/statusbar"
	"github.com/bethropolis/slate/internal/theme"
	"github.com/bethropolis/slate/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg          *config.Config
	tuiManager   *tui.TUI
	registry     *block.Registry
	editor       *editor.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	themeManager *theme.Manager
	highlightMgr *highlight.Manager
	activeTheme  *theme.Theme

	// Channels managed by the App
	quit          chan struct{}
	redrawRequest chan struct{}
}

// NewApp creates and initializes a new application instance.
func NewApp(cfg *config.Config) (*App, error) {
	// --- Theme ---
	themeManager := theme.NewManager()
	if cfg.Editor.ThemeFilePath != "" {
		if custom, err := theme.LoadThemeFromFile(cfg.Editor.ThemeFilePath); err != nil {
			logger.Warnf("Failed to load theme '%s': %v", cfg.Editor.ThemeFilePath, err)
		} else {
			theme.SetCurrentTheme(custom)
		}
	}
	activeTheme := theme.GetCurrentTheme()

	// --- TUI (after the theme so the screen gets the right background) ---
	tuiManager, err := tui.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	// --- Block registry, plus user-defined block types ---
	registry := block.NewRegistry()
	blocksPath := cfg.Editor.BlocksFilePath
	if blocksPath == "" {
		blocksPath = config.DefaultBlocksFilePath()
	}
	if blocksPath != "" {
		if _, statErr := os.Stat(blocksPath); statErr == nil {
			if loadErr := block.LoadInto(registry, blocksPath); loadErr != nil {
				logger.Warnf("Failed to load block definitions from '%s': %v", blocksPath, loadErr)
			}
		}
	}

	// --- Editing session ---
	kind := block.Kind(cfg.Editor.DefaultBlock)
	ed, err := editor.New(registry, kind, nil)
	if err != nil {
		tuiManager.Close()
		return nil, fmt.Errorf("cannot start editor: %w", err)
	}

	eventManager := event.NewManager()
	ed.SetEventManager(eventManager)
	ed.SetClipboard(clipboard.NewManager(cfg.Editor.SystemClipboard))

	// --- Status bar styled from the theme ---
	sbConfig := statusbar.Config{
		StyleDefault:   activeTheme.GetStyle("StatusBar"),
		StyleModified:  activeTheme.GetStyle("StatusBar.Modified"),
		StyleMessage:   activeTheme.GetStyle("StatusBar.Message"),
		MessageTimeout: config.MessageTimeout,
	}
	statusBar := statusbar.New(sbConfig)

	quitChan := make(chan struct{})

	modeHandler := modehandler.New(modehandler.Config{
		Editor:         ed,
		Registry:       registry,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		QuitSignal:     quitChan,
	})

	appInstance := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		registry:      registry,
		editor:        ed,
		statusBar:     statusBar,
		eventManager:  eventManager,
		modeHandler:   modeHandler,
		themeManager:  themeManager,
		activeTheme:   activeTheme,
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
	}

	appInstance.highlightMgr = highlight.NewManager(appInstance.requestRedraw)

	// --- Subscribe App-level wiring ---
	eventManager.Subscribe(event.TypeContentChanged, appInstance.handleContentChanged)
	eventManager.Subscribe(event.TypeCaretMoved, appInstance.handleCaretMoved)
	eventManager.Subscribe(event.TypeKindChanged, appInstance.handleKindChanged)
	eventManager.Subscribe(event.TypeFieldChanged, appInstance.handleFieldChanged)
	eventManager.Subscribe(event.TypeBlockSplit, appInstance.handleBlockSplit)

	return appInstance, nil
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.highlightMgr.Shutdown()

	go a.eventLoop() // Start event loop

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("Slate - '/' block menu | Tab settings | Ctrl+Q quit")
	a.requestRedraw()

	// --- Main Drawing Loop ---
	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case <-a.redrawRequest:
			a.draw()
		}
	}
}

// eventLoop handles TUI events, delegating key events to ModeHandler.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.Sync()
			needsRedraw = true

		case *tcell.EventKey:
			// Delegate ALL key handling to ModeHandler
			needsRedraw = a.modeHandler.HandleKeyEvent(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// draw clears the screen and redraws all components for the current mode.
func (a *App) draw() {
	a.updateStatusBarContent()

	a.tuiManager.BeginFrame()
	a.tuiManager.DrawBlock(a.editor, a.highlightMgr, a.activeTheme)

	switch a.modeHandler.Mode() {
	case modehandler.ModeMenu:
		if m := a.modeHandler.Menu(); m != nil {
			a.tuiManager.DrawMenu(m, a.activeTheme)
		}
		a.tuiManager.HideCaret()
	case modehandler.ModeFields:
		a.tuiManager.DrawFields(a.editor, a.modeHandler.FieldCursor(), a.activeTheme)
		a.tuiManager.HideCaret()
	default:
		a.tuiManager.DrawCaret(a.editor)
	}

	a.tuiManager.DrawStatusBar(a.statusBar)
	a.tuiManager.EndFrame()
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetBlockInfo(a.editor.Definition().Name)
	selectionLen := len([]rune(a.editor.SelectedText()))
	a.statusBar.SetCaretInfo(a.editor.CaretOffset(), a.editor.Container().Length(), selectionLen)
	a.statusBar.SetEditorMode(a.modeHandler.ModeString())
}

// --- Event Handlers (App reacts to events) ---

func (a *App) handleContentChanged(e event.Event) bool {
	a.refreshHighlights()
	return false
}

func (a *App) handleCaretMoved(e event.Event) bool {
	if data, ok := e.Data.(event.CaretMovedData); ok {
		a.statusBar.SetCaretInfo(data.Offset, a.editor.Container().Length(),
			len([]rune(a.editor.SelectedText())))
	}
	return false
}

func (a *App) handleKindChanged(e event.Event) bool {
	a.refreshHighlights()
	return false
}

func (a *App) handleFieldChanged(e event.Event) bool {
	// The language field changing re-highlights with the new grammar.
	a.refreshHighlights()
	return false
}

func (a *App) handleBlockSplit(e event.Event) bool {
	if data, ok := e.Data.(event.BlockSplitData); ok {
		logger.DebugTagf("split", "Block split: before=%d runes, after=%d runes",
			len([]rune(data.Before)), len([]rune(data.After)))
	}
	return false
}

// refreshHighlights requests a highlight pass for code blocks, or
// clears stale spans for everything else.
func (a *App) refreshHighlights() {
	if a.editor.Kind() != block.Code {
		a.highlightMgr.Clear()
		return
	}
	langName := ""
	if v, ok := a.editor.FieldValue("language"); ok {
		langName, _ = v.(string)
	}
	a.highlightMgr.Request(a.editor.Text(), langName)
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}

// Theme returns the app's active theme.
func (a *App) Theme() *theme.Theme {
	return a.activeTheme
}

// SetTheme changes the app's active theme by name and triggers a redraw.
func (a *App) SetTheme(name string) error {
	if err := a.themeManager.SetTheme(name); err != nil {
		return err
	}
	a.activeTheme = a.themeManager.Current()
	a.tuiManager.ApplyTheme(a.activeTheme)
	a.eventManager.Dispatch(event.TypeThemeChanged, nil)
	a.requestRedraw()
	return nil
}
