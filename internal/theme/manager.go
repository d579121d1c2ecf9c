// internal/theme/manager.go
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bethropolis/slate/internal/config"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Manager holds loaded themes and manages the active theme.
type Manager struct {
	themes      map[string]*Theme // theme name (lowercase) -> Theme
	activeTheme *Theme
	themesDir   string
	mutex       sync.RWMutex
}

// NewManager creates a theme manager, loading built-ins plus any .toml
// themes under the user config dir.
func NewManager() *Manager {
	mgr := &Manager{
		themes: make(map[string]*Theme),
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		logger.Warnf("Could not find user config dir: %v. Themes cannot be loaded from default location.", err)
		mgr.themesDir = ""
	} else {
		mgr.themesDir = filepath.Join(configDir, config.ConfigDirName, config.ThemesDirName)
	}

	mgr.loadBuiltinThemes()

	if mgr.themesDir != "" {
		if err := mgr.LoadThemesFromDir(); err != nil {
			logger.Errorf("Error loading themes from '%s': %v", mgr.themesDir, err)
		}
	}

	// Set initial active theme (built-in default, fallback to any loaded).
	if t, ok := mgr.themes[strings.ToLower(SlateDark.Name)]; ok {
		mgr.activeTheme = t
	} else {
		for _, t := range mgr.themes {
			mgr.activeTheme = t
			break
		}
	}

	if mgr.activeTheme == nil {
		mgr.activeTheme = &Theme{
			Name:   "Failsafe",
			Styles: map[string]tcell.Style{"Default": tcell.StyleDefault},
		}
	}
	SetCurrentTheme(mgr.activeTheme)

	return mgr
}

// loadBuiltinThemes adds themes compiled into the binary.
func (m *Manager) loadBuiltinThemes() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.themes[strings.ToLower(SlateDark.Name)] = &SlateDark
	logger.Debugf("Loaded built-in theme: %s", SlateDark.Name)
}

// LoadThemesFromDir scans the themes directory and loads .toml files.
func (m *Manager) LoadThemesFromDir() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.themesDir == "" {
		return errors.New("theme directory path is not set")
	}

	if _, err := os.Stat(m.themesDir); os.IsNotExist(err) {
		// Not an error; create so users can drop files in later.
		if err := os.MkdirAll(m.themesDir, 0755); err != nil {
			return fmt.Errorf("failed to create theme dir: %w", err)
		}
		return nil
	}

	files, err := os.ReadDir(m.themesDir)
	if err != nil {
		return fmt.Errorf("failed to read theme directory '%s': %w", m.themesDir, err)
	}

	loadedCount := 0
	for _, file := range files {
		if !file.IsDir() && strings.HasSuffix(strings.ToLower(file.Name()), ".toml") {
			filePath := filepath.Join(m.themesDir, file.Name())
			theme, err := LoadThemeFromFile(filePath)
			if err != nil {
				logger.Warnf("Failed to load theme from '%s': %v", filePath, err)
				continue
			}
			m.themes[strings.ToLower(theme.Name)] = theme
			loadedCount++
		}
	}
	logger.Infof("Loaded %d custom themes.", loadedCount)
	return nil
}

// Current returns the currently active theme.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.activeTheme == nil {
		return &Theme{Name: "NilFallback", Styles: map[string]tcell.Style{"Default": tcell.StyleDefault}}
	}
	return m.activeTheme
}

// SetTheme sets the active theme by name (case-insensitive).
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	theme, ok := m.themes[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}

	if m.activeTheme != theme {
		m.activeTheme = theme
		logger.Infof("Active theme set to: %s", theme.Name)
		SetCurrentTheme(theme)
	}
	return nil
}

// ListThemes returns the names of all loaded themes.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, theme := range m.themes {
		names = append(names, theme.Name)
	}
	return names
}
