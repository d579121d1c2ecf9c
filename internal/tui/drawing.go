// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/bethropolis/slate/internal/block"
	"github.com/bethropolis/slate/internal/config"
	"github.com/bethropolis/slate/internal/editor"
	"github.com/bethropolis/slate/internal/highlight"
	"github.com/bethropolis/slate/internal/menu"
	"github.com/bethropolis/slate/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// visualColumn returns the visual width of the line's first runeIndex
// runes. Tabs advance to the next multiple of tabWidth.
func visualColumn(line string, runeIndex, tabWidth int) int {
	if runeIndex <= 0 {
		return 0
	}
	if tabWidth <= 0 {
		tabWidth = config.DefaultTabWidth
	}
	visualWidth := 0
	currentRuneIndex := 0

	gr := uniseg.NewGraphemes(line)
	for gr.Next() { // Iterate through grapheme clusters (user-perceived characters)
		if currentRuneIndex >= runeIndex {
			break
		}
		runes := gr.Runes()
		if runes[0] == '\t' {
			visualWidth += tabWidth - (visualWidth % tabWidth)
		} else {
			visualWidth += gr.Width()
		}
		currentRuneIndex += len(runes)
	}
	return visualWidth
}

// drawText renders a string at (x, y), clipping at maxX. Returns the x
// position after the last drawn cluster.
func drawText(screen tcell.Screen, x, y, maxX int, style tcell.Style, text string) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusterWidth := gr.Width()
		if x+clusterWidth > maxX {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			var combining []rune
			if len(runes) > 1 {
				combining = runes[1:]
			}
			screen.SetContent(x, y, runes[0], combining, style)
		}
		x += clusterWidth
	}
	return x
}

// fillRow paints a horizontal run of cells with a style.
func fillRow(screen tcell.Screen, x0, x1, y int, style tcell.Style) {
	for x := x0; x < x1; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// blockStyleName maps a block kind to its base content style.
func blockStyleName(kind block.Kind) string {
	switch kind {
	case block.Heading:
		return "Block.Heading"
	case block.Quote:
		return "Block.Quote"
	case block.Code:
		return "Block.Code"
	case block.Divider:
		return "Block.Divider"
	default:
		return "Default"
	}
}

// selectionOffsets returns the flat rune range of the active selection.
func selectionOffsets(ed *editor.Editor) (int, int, bool) {
	sel := ed.Selection()
	if sel.RangeCount() == 0 || sel.Collapsed() {
		return 0, 0, false
	}
	r, ok := sel.First()
	if !ok {
		return 0, 0, false
	}
	c := ed.Container()
	return c.Measure(r.Start), c.Measure(r.End), true
}

// lineNumbersEnabled reports whether a code block wants its gutter.
func lineNumbersEnabled(ed *editor.Editor) bool {
	if ed.Kind() != block.Code {
		return false
	}
	v, ok := ed.FieldValue("line_numbers")
	if !ok {
		return false
	}
	enabled, _ := v.(bool)
	return enabled
}

// gutterWidth computes the left margin: the block icon plus, for code
// blocks with line numbers on, the number column.
func gutterWidth(ed *editor.Editor, lineCount, screenWidth int) int {
	width := runewidth.RuneWidth(ed.Definition().Icon) + 1
	if lineNumbersEnabled(ed) {
		if lineCount == 0 {
			lineCount = 1 // Avoid Log10(0)
		}
		maxDigits := int(math.Log10(float64(lineCount))) + 1
		width += maxDigits + 1
	}
	if width >= screenWidth {
		return 0 // Disable gutter if screen too narrow
	}
	return width
}

// DrawBlock draws the active block's content area using the provided theme.
func (t *TUI) DrawBlock(ed *editor.Editor, hl *highlight.Manager, activeTheme *theme.Theme) {
	if activeTheme == nil {
		activeTheme = theme.GetCurrentTheme()
	}

	defaultStyle := activeTheme.GetStyle("Default")
	baseStyle := activeTheme.GetStyle(blockStyleName(ed.Kind()))
	selectionStyle := activeTheme.GetStyle("Selection")

	width, height := t.Size()
	viewHeight := height - t.statusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	// Background fill for the whole content area.
	for y := 0; y < viewHeight; y++ {
		fillRow(t.screen, 0, width, y, defaultStyle)
	}

	// Contentless blocks render as a decoration instead of text.
	if !ed.Definition().HasContent {
		for x := 0; x < width; x++ {
			t.screen.SetContent(x, viewHeight/2, '─', nil, baseStyle)
		}
		return
	}

	content := ed.Text()
	lines := strings.Split(content, "\n")
	gutter := gutterWidth(ed, len(lines), width)
	selStart, selEnd, selActive := selectionOffsets(ed)
	showLineNumbers := lineNumbersEnabled(ed)
	isCode := ed.Kind() == block.Code

	maxDigits := 0
	if showLineNumbers {
		maxDigits = int(math.Log10(float64(len(lines)))) + 1
	}

	icon := ed.Definition().Icon
	lineStartOffset := 0 // flat rune offset of the current line's first rune

	for lineIdx, line := range lines {
		if lineIdx >= viewHeight {
			break
		}

		// Gutter: icon on the first row, line numbers on every row.
		if gutter > 0 {
			if lineIdx == 0 && icon != 0 {
				t.screen.SetContent(0, 0, icon, nil, baseStyle)
			}
			if showLineNumbers {
				x := runewidth.RuneWidth(icon) + 1
				numStr := fmt.Sprintf("%*d", maxDigits, lineIdx+1)
				drawText(t.screen, x, lineIdx, gutter, baseStyle, numStr)
			}
		}

		// Content row.
		currentVisualX := 0
		currentRuneIndex := 0
		gr := uniseg.NewGraphemes(line)
		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := gr.Width()
			isTab := clusterRunes[0] == '\t'
			if isTab {
				clusterWidth = t.tabWidth - (currentVisualX % t.tabWidth)
			}
			flatOffset := lineStartOffset + currentRuneIndex

			currentStyle := baseStyle
			if isCode && hl != nil {
				if styleName, ok := hl.StyleAt(flatOffset); ok {
					currentStyle = activeTheme.GetStyle(styleName)
				}
			}
			if selActive && flatOffset >= selStart && flatOffset < selEnd {
				currentStyle = selectionStyle
			}

			screenX := gutter + currentVisualX
			if screenX < width {
				if isTab {
					// Tabs render as spaces up to the next tab stop.
					for cw := 0; cw < clusterWidth; cw++ {
						if screenX+cw < width {
							t.screen.SetContent(screenX+cw, lineIdx, ' ', nil, currentStyle)
						}
					}
				} else {
					mainRune := clusterRunes[0]
					combining := clusterRunes[1:]
					t.screen.SetContent(screenX, lineIdx, mainRune, combining, currentStyle)
					// Fill remaining cells for wide characters
					for cw := 1; cw < clusterWidth; cw++ {
						if screenX+cw < width {
							t.screen.SetContent(screenX+cw, lineIdx, ' ', nil, currentStyle)
						}
					}
				}
			}

			currentVisualX += clusterWidth
			currentRuneIndex += len(clusterRunes)
			if gutter+currentVisualX >= width {
				break
			}
		}

		lineStartOffset += len([]rune(line)) + 1 // +1 for the '\n'
	}
}

// DrawCaret positions the terminal cursor at the caret's visual location.
func (t *TUI) DrawCaret(ed *editor.Editor) {
	width, height := t.Size()
	viewHeight := height - t.statusBarHeight

	content := ed.Text()
	offset := ed.CaretOffset()

	// Translate the flat offset into line / rune-column.
	lines := strings.Split(content, "\n")
	lineIdx := 0
	col := offset
	for _, line := range lines {
		runeLen := len([]rune(line))
		if col <= runeLen {
			break
		}
		col -= runeLen + 1 // skip the '\n'
		lineIdx++
	}
	if lineIdx >= len(lines) {
		lineIdx = len(lines) - 1
		col = len([]rune(lines[lineIdx]))
	}

	gutter := gutterWidth(ed, len(lines), width)
	screenX := gutter + visualColumn(lines[lineIdx], col, t.tabWidth)
	screenY := lineIdx

	if screenX >= width || screenY < 0 || screenY >= viewHeight || viewHeight <= 0 {
		t.screen.HideCursor()
		return
	}
	t.screen.ShowCursor(screenX, screenY)
}

// HideCaret hides the terminal cursor (menu or field panel open).
func (t *TUI) HideCaret() {
	t.screen.HideCursor()
}

// DrawMenu renders the block insert menu as an overlay box.
func (t *TUI) DrawMenu(m *menu.Model, activeTheme *theme.Theme) {
	if activeTheme == nil {
		activeTheme = theme.GetCurrentTheme()
	}

	menuStyle := activeTheme.GetStyle("Menu")
	selectedStyle := activeTheme.GetStyle("Menu.Selected")
	groupStyle := activeTheme.GetStyle("Menu.Group")
	queryStyle := activeTheme.GetStyle("Menu.Query")

	width, height := t.Size()
	boxWidth := 40
	if boxWidth > width-4 {
		boxWidth = width - 4
	}
	if boxWidth < 10 {
		return // Not enough room for a usable menu
	}
	x0 := 2
	y := 1

	maxRows := config.MenuMaxVisibleRows
	if maxRows > height-3 {
		maxRows = height - 3
	}
	if maxRows <= 0 {
		return
	}

	// Query row.
	fillRow(t.screen, x0, x0+boxWidth, y, queryStyle)
	drawText(t.screen, x0+1, y, x0+boxWidth, queryStyle, "/"+m.Query())
	y++

	selected, hasSelection := m.Selected()
	rows := 0
	for _, group := range m.Grouped() {
		if rows >= maxRows {
			break
		}
		fillRow(t.screen, x0, x0+boxWidth, y, groupStyle)
		drawText(t.screen, x0+1, y, x0+boxWidth, groupStyle, group.Name)
		y++
		rows++

		for _, entry := range group.Entries {
			if rows >= maxRows {
				break
			}
			style := menuStyle
			if hasSelection && entry.Kind == selected.Kind {
				style = selectedStyle
			}
			fillRow(t.screen, x0, x0+boxWidth, y, style)
			label := fmt.Sprintf("%c  %s", entry.Icon, entry.Name)
			drawText(t.screen, x0+2, y, x0+boxWidth, style, label)
			y++
			rows++
		}
	}

	if rows == 0 {
		fillRow(t.screen, x0, x0+boxWidth, y, menuStyle)
		drawText(t.screen, x0+1, y, x0+boxWidth, menuStyle, "(no matching blocks)")
	}
}

// DrawFields renders the block's field panel above the status bar.
func (t *TUI) DrawFields(ed *editor.Editor, selectedIndex int, activeTheme *theme.Theme) {
	if activeTheme == nil {
		activeTheme = theme.GetCurrentTheme()
	}

	labelStyle := activeTheme.GetStyle("Field.Label")
	valueStyle := activeTheme.GetStyle("Field.Value")
	selectedStyle := activeTheme.GetStyle("Field.Selected")

	fields := ed.Definition().Fields
	if len(fields) == 0 {
		return
	}

	width, height := t.Size()
	panelHeight := len(fields) + 1 // +1 for the title row
	y0 := height - t.statusBarHeight - panelHeight
	if y0 < 0 {
		y0 = 0
	}

	fillRow(t.screen, 0, width, y0, labelStyle)
	drawText(t.screen, 1, y0, width, labelStyle, ed.Definition().Name+" settings")

	for i, field := range fields {
		y := y0 + 1 + i
		if y >= height-t.statusBarHeight {
			break
		}
		rowStyle := valueStyle
		if i == selectedIndex {
			rowStyle = selectedStyle
		}
		fillRow(t.screen, 0, width, y, rowStyle)

		value, _ := ed.FieldValue(field.Name)
		x := drawText(t.screen, 1, y, width, rowStyle, field.Label+": ")
		drawText(t.screen, x, y, width, rowStyle, formatFieldValue(field, value))
	}
}

// formatFieldValue renders a field value for the panel.
func formatFieldValue(field block.Field, value interface{}) string {
	if field.Type == block.FieldSwitch {
		if on, _ := value.(bool); on {
			return "on"
		}
		return "off"
	}
	return fmt.Sprintf("%v", value)
}
