// internal/theme/theme_test.go
package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStyleFallbackChain(t *testing.T) {
	t.Parallel()

	base := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	th := &Theme{
		Name: "test",
		Styles: map[string]tcell.Style{
			"Default":   base,
			"StatusBar": base.Bold(true),
		},
	}

	assert.Equal(t, base.Bold(true), th.GetStyle("StatusBar"), "exact name")
	assert.Equal(t, base.Bold(true), th.GetStyle("StatusBar.Message"), "dotted name falls back to base name")
	assert.Equal(t, base, th.GetStyle("Menu"), "unknown name falls back to Default")
}

func TestGetStyleWithoutDefault(t *testing.T) {
	t.Parallel()

	th := &Theme{Name: "bare", Styles: map[string]tcell.Style{}}
	assert.Equal(t, tcell.StyleDefault, th.GetStyle("Anything"))
}

func TestParseColorString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    tcell.Color
		wantErr bool
	}{
		{input: "#ff0000", want: tcell.NewHexColor(0xff0000)},
		{input: "  #00FF00 ", want: tcell.NewHexColor(0x00ff00)},
		{input: "reset", want: tcell.ColorReset},
		{input: "default", want: tcell.ColorDefault},
		{input: "#f00", wantErr: true},
		{input: "red", wantErr: true},
		{input: "#zzzzzz", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, err := parseColorString(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	t.Parallel()

	content := `
name = "Test Light"
is_dark = false

[styles.Default]
fg = "#222222"
bg = "#fafafa"

[styles.Selection]
bg = "#cce0ff"

[styles.Broken]
fg = "not-a-color"
`
	path := filepath.Join(t.TempDir(), "light.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "Test Light", th.Name)
	assert.False(t, th.IsDark)

	// Selection inherits the Default foreground and overrides background.
	want := tcell.StyleDefault.
		Foreground(tcell.NewHexColor(0x222222)).
		Background(tcell.NewHexColor(0xcce0ff))
	assert.Equal(t, want, th.GetStyle("Selection"))

	// The unparsable style is skipped; lookups fall back to Default.
	assert.Equal(t, th.GetStyle("Default"), th.GetStyle("Broken"))
}

func TestLoadThemeNameFallsBackToFilename(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "midnight.toml")
	require.NoError(t, os.WriteFile(path, []byte("[styles.Default]\nfg = \"#ffffff\"\n"), 0644))

	th, err := LoadThemeFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "midnight", th.Name)
}

func TestLoadThemeMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadThemeFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestSlateDarkHasCoreStyles(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"Default", "Selection", "StatusBar", "Menu.Selected", "Code.keyword"} {
		_, ok := SlateDark.Styles[name]
		assert.True(t, ok, "built-in theme missing style %q", name)
	}
}
