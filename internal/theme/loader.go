// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// TomlStyleDef represents a single style definition in the TOML file
type TomlStyleDef struct {
	Fg        *string `toml:"fg"` // Use pointers to detect missing values
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// TomlTheme represents the structure of a theme file
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// LoadThemeFromFile parses a TOML file and converts it to a Theme object
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}

	var tomlTheme TomlTheme
	metadata, err := toml.Decode(string(data), &tomlTheme)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML theme file '%s': %w", filePath, err)
	}

	// Undedecoded keys are usually typos in the theme file
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Theme '%s': Unrecognized keys in file '%s': %v", tomlTheme.Name, filePath, metadata.Undecoded())
	}

	if tomlTheme.Name == "" {
		// Use filename as fallback name if not specified
		tomlTheme.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		logger.Debugf("Theme file '%s' missing 'name', using filename '%s'", filePath, tomlTheme.Name)
	}

	theme := &Theme{
		Name:   tomlTheme.Name,
		IsDark: tomlTheme.IsDark,
		Styles: make(map[string]tcell.Style),
	}

	// Base style to inherit from: the file's own Default if present.
	baseStyle := tcell.StyleDefault
	if defaultTomlStyle, ok := tomlTheme.Styles["Default"]; ok {
		var parseErr error
		baseStyle, parseErr = convertTomlStyle(defaultTomlStyle, tcell.StyleDefault)
		if parseErr != nil {
			logger.Warnf("Theme '%s': Failed to parse 'Default' style, using tcell default as base: %v", theme.Name, parseErr)
			baseStyle = tcell.StyleDefault
		}
	}
	theme.Styles["Default"] = baseStyle

	for name, tomlStyle := range tomlTheme.Styles {
		if name == "Default" {
			continue
		}
		style, err := convertTomlStyle(tomlStyle, baseStyle)
		if err != nil {
			logger.Warnf("Theme '%s': Failed to parse style '%s', skipping: %v", theme.Name, name, err)
			continue
		}
		theme.Styles[name] = style
	}

	logger.Debugf("Successfully loaded theme '%s' from '%s'", theme.Name, filePath)
	return theme, nil
}

// convertTomlStyle converts the TOML definition to a tcell.Style, inheriting from a base
func convertTomlStyle(tomlStyle TomlStyleDef, baseStyle tcell.Style) (tcell.Style, error) {
	style := baseStyle

	if tomlStyle.Fg != nil {
		color, err := parseColorString(*tomlStyle.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color '%s': %w", *tomlStyle.Fg, err)
		}
		style = style.Foreground(color)
	}
	if tomlStyle.Bg != nil {
		color, err := parseColorString(*tomlStyle.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color '%s': %w", *tomlStyle.Bg, err)
		}
		style = style.Background(color)
	}
	if tomlStyle.Bold != nil {
		style = style.Bold(*tomlStyle.Bold)
	}
	if tomlStyle.Italic != nil {
		style = style.Italic(*tomlStyle.Italic)
	}
	if tomlStyle.Underline != nil {
		style = style.Underline(*tomlStyle.Underline)
	}
	if tomlStyle.Reverse != nil {
		style = style.Reverse(*tomlStyle.Reverse)
	}

	return style, nil
}

// parseColorString converts hex codes or the reset/default keywords to tcell.Color
func parseColorString(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color format '%s', must be #RRGGBB", s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex value '%s': %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	}

	if s == "reset" {
		return tcell.ColorReset, nil
	}
	if s == "default" {
		return tcell.ColorDefault, nil
	}

	return tcell.ColorDefault, fmt.Errorf("unknown color format or name '%s'", s)
}
