// internal/split/split.go

// Package split implements cursor-aware content splitting for block
// containers: the operation behind "press Enter mid-block, get two
// blocks". The split point comes from a caret location expressed as a
// node+offset pair, translated into a flat rune offset by measuring the
// flattened text that precedes it.
package split

import (
	"strings"

	"github.com/bethropolis/slate/internal/doctree"
)

// Result holds the two halves produced by a split. Before+After equals
// the original content, except when the newline-preservation rule adds
// one '\n' to Before.
type Result struct {
	Before string
	After  string
}

// Locator reports the active caret location within a container.
// The second return value is false when no selection exists or the
// selection holds no ranges.
type Locator interface {
	Locate(c *doctree.Container) (doctree.Point, bool)
}

// Measurer converts a caret location into a flat rune offset: the
// length of the flattened text preceding the location.
type Measurer interface {
	Measure(c *doctree.Container, p doctree.Point) int
}

// containerMeasurer measures through the container's own tree walk.
type containerMeasurer struct{}

func (containerMeasurer) Measure(c *doctree.Container, p doctree.Point) int {
	return c.Measure(p)
}

// Splitter binds the two capabilities. Both are injected so the core
// stays testable without a live selection or rendering surface.
type Splitter struct {
	locator  Locator
	measurer Measurer
}

// New creates a Splitter. A nil measurer falls back to measuring via
// the container's node tree directly.
func New(locator Locator, measurer Measurer) *Splitter {
	if measurer == nil {
		measurer = containerMeasurer{}
	}
	return &Splitter{locator: locator, measurer: measurer}
}

// SplitAtCursor splits the container's flattened text at the current
// caret. With no locator or no active caret the whole content lands in
// Before, which is the "caret at end" degenerate case. Never errors.
func (s *Splitter) SplitAtCursor(c *doctree.Container) Result {
	content := c.Text()

	if s.locator == nil {
		return Result{Before: content, After: ""}
	}
	point, ok := s.locator.Locate(c)
	if !ok {
		return Result{Before: content, After: ""}
	}

	return At(content, s.measurer.Measure(c, point))
}

// At splits content at a flat rune offset, applying the
// newline-preservation rule. The offset is clamped into
// [0, rune length of content], so At is total over its inputs.
func At(content string, offset int) Result {
	runes := []rune(content)
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	rawBefore := string(runes[:offset])
	after := string(runes[offset:])

	return Result{Before: preserveNewline(rawBefore, after), After: after}
}

// preserveNewline duplicates a single trailing newline at the split
// point. A lone '\n' at the end of Before would visually collapse the
// intended blank line once the halves render as separate blocks; an
// already-doubled newline is left alone so repeated splits cannot grow
// it further. The rule only applies when After is non-empty.
func preserveNewline(rawBefore, after string) string {
	if after == "" {
		return rawBefore
	}
	if strings.HasSuffix(rawBefore, "\n") && !strings.HasSuffix(rawBefore, "\n\n") {
		return rawBefore + "\n"
	}
	return rawBefore
}
