// internal/highlight/highlighter_test.go
package highlight

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureNameToStyleName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		capture string
		want    string
	}{
		{capture: "keyword", want: "Code.keyword"},
		{capture: "keyword.control", want: "Code.keyword"},
		{capture: "@string", want: "Code.string"},
		{capture: "@function.builtin", want: "Code.function"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, captureNameToStyleName(tc.capture))
	}
}

func TestBuildByteToRuneTable(t *testing.T) {
	t.Parallel()

	// "héllo": h=1 byte, é=2 bytes, l/l/o=1 byte each.
	table := buildByteToRuneTable([]byte("héllo"))

	assert.Len(t, table, 7)
	assert.Equal(t, 0, table[0]) // h
	assert.Equal(t, 1, table[1]) // first byte of é
	assert.Equal(t, 1, table[2]) // second byte of é
	assert.Equal(t, 2, table[3]) // l
	assert.Equal(t, 5, table[6]) // one past the end
}

func TestBuildByteToRuneTableEmpty(t *testing.T) {
	t.Parallel()

	table := buildByteToRuneTable(nil)
	assert.Equal(t, []int{0}, table)
}

func TestLanguageRegistry(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, GetLanguage("go"))
	assert.NotNil(t, GetLanguage("Python"), "lookup is case-insensitive")
	assert.Nil(t, GetLanguage("cobol"))
	assert.Len(t, LanguageNames(), 3)
}

func TestGetQueryEmbedded(t *testing.T) {
	t.Parallel()

	for _, name := range LanguageNames() {
		lang := GetLanguage(name)
		assert.NotEmpty(t, lang.GetQuery(), "language %q has no highlight query", name)
	}
}

func TestHighlightGoKeywords(t *testing.T) {
	t.Parallel()

	h := NewHighlighter()
	spans, err := h.Highlight(context.Background(), "package main\n", "go")
	require.NoError(t, err)
	require.NotEmpty(t, spans)

	// "package" occupies runes [0,7) and is a keyword.
	assert.Equal(t, 0, spans[0].Start)
	assert.Equal(t, 7, spans[0].End)
	assert.Equal(t, "Code.keyword", spans[0].StyleName)
}

func TestHighlightConcurrentPasses(t *testing.T) {
	t.Parallel()

	// Overlapping passes share one parser; each must still produce a
	// complete result (run with -race to catch regressions here).
	h := NewHighlighter()
	sources := []struct {
		content string
		lang    string
	}{
		{"package main\nfunc main() {}\n", "go"},
		{"def f():\n    return None\n", "python"},
		{"function f() { return null; }\n", "javascript"},
	}

	type passResult struct {
		spans []Span
		err   error
	}

	var wg sync.WaitGroup
	results := make([]passResult, 12)
	for i := range results {
		i := i
		src := sources[i%len(sources)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			spans, err := h.Highlight(context.Background(), src.content, src.lang)
			results[i] = passResult{spans: spans, err: err}
		}()
	}
	wg.Wait()

	for i, res := range results {
		assert.NoError(t, res.err, "pass %d", i)
		assert.NotEmpty(t, res.spans, "pass %d", i)
	}
}

func TestStyleAt(t *testing.T) {
	t.Parallel()

	m := NewManager(nil)
	m.spans = []Span{
		{Start: 0, End: 4, StyleName: "Code.keyword"},
		{Start: 10, End: 15, StyleName: "Code.string"},
	}

	style, ok := m.StyleAt(2)
	assert.True(t, ok)
	assert.Equal(t, "Code.keyword", style)

	_, ok = m.StyleAt(4)
	assert.False(t, ok, "span end is exclusive")

	style, ok = m.StyleAt(12)
	assert.True(t, ok)
	assert.Equal(t, "Code.string", style)

	_, ok = m.StyleAt(20)
	assert.False(t, ok)
}
