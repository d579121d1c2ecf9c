// internal/caret/movement.go
package caret

import (
	"github.com/rivo/uniseg"
)

// NextBoundary returns the rune offset one grapheme cluster to the
// right of offset in text, so a caret never lands inside a user
// perceived character (emoji, combining sequences).
func NextBoundary(text string, offset int) int {
	runes := []rune(text)
	if offset >= len(runes) {
		return len(runes)
	}
	if offset < 0 {
		offset = 0
	}

	gr := uniseg.NewGraphemes(string(runes[offset:]))
	if gr.Next() {
		return offset + len(gr.Runes())
	}
	return len(runes)
}

// PrevBoundary returns the rune offset one grapheme cluster to the left
// of offset in text.
func PrevBoundary(text string, offset int) int {
	runes := []rune(text)
	if offset <= 0 {
		return 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	// Walk clusters from the start; the last boundary before offset wins.
	prev := 0
	pos := 0
	gr := uniseg.NewGraphemes(string(runes[:offset]))
	for gr.Next() {
		prev = pos
		pos += len(gr.Runes())
	}
	return prev
}

// LineStart returns the offset of the first rune of the line containing
// offset (lines separated by '\n').
func LineStart(text string, offset int) int {
	runes := []rune(text)
	if offset > len(runes) {
		offset = len(runes)
	}
	for i := offset - 1; i >= 0; i-- {
		if runes[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// LineEnd returns the offset just past the last rune of the line
// containing offset, excluding the terminating '\n'.
func LineEnd(text string, offset int) int {
	runes := []rune(text)
	if offset < 0 {
		offset = 0
	}
	for i := offset; i < len(runes); i++ {
		if runes[i] == '\n' {
			return i
		}
	}
	return len(runes)
}
