// internal/highlight/manager.go
package highlight

import (
	"context"
	"sync"

	"github.com/bethropolis/slate/internal/config"
	"github.com/bethropolis/slate/internal/logger"
	"github.com/bethropolis/slate/internal/utils"
)

// Manager runs debounced asynchronous highlight passes and caches the
// latest result for the drawing layer.
type Manager struct {
	highlighter *Highlighter
	debouncer   utils.Debouncer
	appRedraw   func() // Function to request app redraw

	mu         sync.RWMutex
	spans      []Span
	cancelFunc context.CancelFunc // Cancels the in-flight pass, if any
}

// NewManager creates a highlight manager.
func NewManager(redrawFunc func()) *Manager {
	return &Manager{
		highlighter: NewHighlighter(),
		appRedraw:   redrawFunc,
	}
}

// Request schedules a highlight pass for the given content. Rapid calls
// collapse into one pass after the debounce interval; a pass still in
// flight is cancelled in favour of the newest content.
func (m *Manager) Request(content string, langName string) {
	m.debouncer.Debounce(config.HighlightDebounce, func() {
		m.mu.Lock()
		if m.cancelFunc != nil {
			m.cancelFunc()
		}
		ctx, cancel := context.WithCancel(context.Background())
		m.cancelFunc = cancel
		m.mu.Unlock()

		go m.run(ctx, content, langName)
	})
}

func (m *Manager) run(ctx context.Context, content string, langName string) {
	spans, err := m.highlighter.Highlight(ctx, content, langName)
	if err != nil {
		if ctx.Err() == context.Canceled {
			logger.DebugTagf("highlight", "Highlight pass cancelled")
			return
		}
		logger.Warnf("Highlight pass failed: %v", err)
		spans = nil
	}

	select {
	case <-ctx.Done():
		return // Superseded by a newer request
	default:
	}

	m.mu.Lock()
	m.spans = spans
	m.mu.Unlock()

	if m.appRedraw != nil {
		m.appRedraw()
	}
}

// Spans returns the most recent highlight result.
func (m *Manager) Spans() []Span {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.spans
}

// StyleAt returns the style name covering the given rune offset.
func (m *Manager) StyleAt(offset int) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Later spans win so more specific captures override broader ones.
	name := ""
	found := false
	for _, span := range m.spans {
		if span.Start > offset {
			break
		}
		if offset < span.End {
			name = span.StyleName
			found = true
		}
	}
	return name, found
}

// Clear drops the cached result, e.g. when the block stops being code.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.spans = nil
	m.mu.Unlock()
}

// Shutdown cancels any in-flight highlight pass.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancelFunc != nil {
		m.cancelFunc()
		m.cancelFunc = nil
	}
}
