// internal/theme/theme.go
package theme

import (
	"strings"
	"sync"

	"github.com/bethropolis/slate/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Theme maps named UI roles to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle resolves a style name with fallbacks: exact name, then the
// base name before the first dot, then "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	baseName := name
	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		baseName = name[:dotIndex]
		if style, ok := t.Styles[baseName]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// --- Slate Dark Theme Definition ---

var SlateDark Theme

func init() {
	// Palette
	background := tcell.NewHexColor(0x20242c) // Editor surface
	foreground := tcell.NewHexColor(0xc9d1dc) // Default text
	muted := tcell.NewHexColor(0x5c6370)      // Comments, dividers, hints
	accent := tcell.NewHexColor(0x61afef)     // Menu selection, links
	green := tcell.NewHexColor(0x98c379)      // Strings, enabled switches
	orange := tcell.NewHexColor(0xd19a66)     // Numbers, constants
	purple := tcell.NewHexColor(0xc678dd)     // Keywords
	yellow := tcell.NewHexColor(0xe5c07b)     // Types, field labels
	barBg := tcell.NewHexColor(0x2a2f38)      // Status bar / panels

	base := tcell.StyleDefault.Foreground(foreground).Background(background)

	SlateDark = Theme{
		Name:   "Slate Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default":   base,
			"Selection": base.Background(tcell.NewHexColor(0x3e4451)),

			"StatusBar":          base.Background(barBg),
			"StatusBar.Modified": base.Background(barBg).Foreground(yellow).Bold(true),
			"StatusBar.Message":  base.Background(barBg).Foreground(green).Bold(true),

			"Menu":          base.Background(barBg),
			"Menu.Selected": base.Background(accent).Foreground(background).Bold(true),
			"Menu.Group":    base.Background(barBg).Foreground(muted).Bold(true),
			"Menu.Query":    base.Background(barBg).Foreground(green),

			"Field.Label":    base.Foreground(yellow),
			"Field.Value":    base,
			"Field.Selected": base.Background(tcell.NewHexColor(0x3e4451)).Bold(true),

			"Block.Heading": base.Bold(true),
			"Block.Quote":   base.Foreground(muted).Italic(true),
			"Block.Code":    base.Background(tcell.NewHexColor(0x282c34)),
			"Block.Divider": base.Foreground(muted),

			"Code.keyword":  base.Foreground(purple),
			"Code.string":   base.Foreground(green),
			"Code.comment":  base.Foreground(muted).Italic(true),
			"Code.number":   base.Foreground(orange),
			"Code.function": base.Foreground(accent),
			"Code.type":     base.Foreground(yellow),
		},
	}
}

// --- Global active theme (simple accessor used by the TUI layer) ---

var (
	currentTheme   *Theme
	currentThemeMu sync.RWMutex
)

// GetCurrentTheme returns the globally active theme.
func GetCurrentTheme() *Theme {
	currentThemeMu.RLock()
	defer currentThemeMu.RUnlock()
	if currentTheme == nil {
		return &SlateDark
	}
	return currentTheme
}

// SetCurrentTheme swaps the globally active theme.
func SetCurrentTheme(t *Theme) {
	if t == nil {
		return
	}
	currentThemeMu.Lock()
	currentTheme = t
	currentThemeMu.Unlock()
}
