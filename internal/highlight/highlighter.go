// internal/highlight/highlighter.go
package highlight

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/bethropolis/slate/internal/logger"
	sitter "github.com/smacker/go-tree-sitter"
)

// Span is a styled run of content, addressed in rune offsets.
type Span struct {
	Start     int    // inclusive rune offset
	End       int    // exclusive rune offset
	StyleName string // theme style name, e.g. "Code.keyword"
}

// Highlighter parses code block content and produces styled spans.
// The parser holds mutable C-side state, so passes run one at a time.
type Highlighter struct {
	mu     sync.Mutex // Serializes access to the parser
	parser *sitter.Parser
}

// NewHighlighter creates a highlighter with a fresh parser.
func NewHighlighter() *Highlighter {
	return &Highlighter{parser: sitter.NewParser()}
}

// Highlight parses content with the named language's grammar and returns
// the styled spans sorted by start offset. An unknown language yields no
// spans and no error. Safe for concurrent use: a superseded pass blocks
// here until the previous one finishes, then aborts on its cancelled
// context.
func (h *Highlighter) Highlight(ctx context.Context, content string, langName string) ([]Span, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	lang := GetLanguage(langName)
	if lang == nil {
		logger.DebugTagf("highlight", "No grammar registered for language '%s'", langName)
		return nil, nil
	}

	queryBytes := lang.GetQuery()
	if queryBytes == nil {
		return nil, fmt.Errorf("no highlight query available for language '%s'", langName)
	}

	h.parser.SetLanguage(lang.TreeSitterLang)

	source := []byte(content)
	tree, err := h.parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parsing failed: %w", err)
	}
	defer tree.Close()

	query, err := sitter.NewQuery(queryBytes, lang.TreeSitterLang)
	if err != nil {
		return nil, fmt.Errorf("query parse failed: %w", err)
	}
	defer query.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, tree.RootNode())

	// tree-sitter reports byte offsets; drawing wants rune offsets.
	// Build the byte->rune table once per highlight pass.
	byteToRune := buildByteToRuneTable(source)

	var spans []Span
	for {
		match, exists := qc.NextMatch()
		if !exists {
			break
		}
		for _, capture := range match.Captures {
			captureName := query.CaptureNameForId(capture.Index)
			node := capture.Node

			start := byteToRune[int(node.StartByte())]
			end := byteToRune[int(node.EndByte())]
			if end <= start {
				continue
			}

			spans = append(spans, Span{
				Start:     start,
				End:       end,
				StyleName: captureNameToStyleName(captureName),
			})
		}
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})

	logger.DebugTagf("highlight", "Highlight pass for '%s' produced %d spans", langName, len(spans))
	return spans, nil
}

// captureNameToStyleName maps a tree-sitter capture name (e.g. "keyword.control")
// to a theme style name under the "Code" namespace.
func captureNameToStyleName(captureName string) string {
	if len(captureName) > 0 && captureName[0] == '@' {
		captureName = captureName[1:]
	}
	if dotIndex := strings.Index(captureName, "."); dotIndex != -1 {
		captureName = captureName[:dotIndex]
	}
	return "Code." + captureName
}

// buildByteToRuneTable maps every byte offset (0..len inclusive) to the rune
// index of the rune containing it.
func buildByteToRuneTable(source []byte) []int {
	table := make([]int, len(source)+1)
	runeIndex := 0
	byteOffset := 0
	for byteOffset < len(source) {
		_, size := utf8.DecodeRune(source[byteOffset:])
		for i := 0; i < size; i++ {
			table[byteOffset+i] = runeIndex
		}
		byteOffset += size
		runeIndex++
	}
	table[len(source)] = runeIndex
	return table
}
