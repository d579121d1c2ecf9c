// internal/logger/handler.go
package logger

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

const tagKey = "tag" // The slog attribute key used for filtering tags

// filteringHandler wraps a base slog.Handler to add tag/package/file filtering.
type filteringHandler struct {
	baseHandler slog.Handler
	cfg         *Config
}

// newFilteringHandler creates a handler with filtering capabilities.
func newFilteringHandler(base slog.Handler, cfg *Config) *filteringHandler {
	return &filteringHandler{
		baseHandler: base,
		cfg:         cfg,
	}
}

// Enabled checks if the level is enabled by the base handler.
func (h *filteringHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.baseHandler.Enabled(ctx, level)
}

// Handle applies filtering logic before passing the record to the base handler.
func (h *filteringHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.cfg == nil {
		return h.baseHandler.Handle(ctx, r)
	}

	pkg, file := recordSource(r)

	// Package filtering. Disabled list wins over the enabled list.
	if pkg != "" {
		pkgLower := strings.ToLower(pkg)
		if foundInSet(h.cfg.disabledPackagesSet, pkgLower) {
			return nil
		}
		if h.cfg.enabledPackagesSet != nil && !foundInSet(h.cfg.enabledPackagesSet, pkgLower) {
			return nil
		}
	}

	// File filtering.
	if file != "" {
		fileLower := strings.ToLower(file)
		if foundInSet(h.cfg.disabledFilesSet, fileLower) {
			return nil
		}
		if h.cfg.enabledFilesSet != nil && !foundInSet(h.cfg.enabledFilesSet, fileLower) {
			return nil
		}
	}

	// Tag filtering.
	var tagValue string
	var tagFound bool
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == tagKey {
			tagValue = strings.ToLower(a.Value.String())
			tagFound = true
			return false
		}
		return true
	})

	if tagFound {
		if foundInSet(h.cfg.disabledTagsSet, tagValue) {
			return nil
		}
		if h.cfg.enabledTagsSet != nil && !foundInSet(h.cfg.enabledTagsSet, tagValue) {
			return nil
		}
	} else if h.cfg.enabledTagsSet != nil {
		// Specific tags are enabled but this message carries none.
		return nil
	}

	return h.baseHandler.Handle(ctx, r)
}

// recordSource extracts the package and file name a record originated from,
// preferring the Source attribute and falling back to the record's PC.
func recordSource(r slog.Record) (pkg, file string) {
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == slog.SourceKey {
			if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
				file = filepath.Base(source.File)
				pkg = filepath.Base(filepath.Dir(source.File))
				return false
			}
		}
		return true
	})

	if file == "" && r.PC != 0 {
		frames := runtime.CallersFrames([]uintptr{r.PC})
		// With a single PC the first frame is valid even though Next
		// reports no frames after it; a zero PC marks the real miss.
		frame, _ := frames.Next()
		if frame.PC != 0 {
			file = filepath.Base(frame.File)
			pkg = filepath.Base(filepath.Dir(frame.File))
		}
	}
	return pkg, file
}

// foundInSet is a helper for nil-safe set lookup.
func foundInSet(set map[string]struct{}, key string) bool {
	if set == nil {
		return false
	}
	_, found := set[key]
	return found
}

// WithAttrs returns a new handler with attributes added.
func (h *filteringHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithAttrs(attrs), h.cfg)
}

// WithGroup returns a new handler with a group added.
func (h *filteringHandler) WithGroup(name string) slog.Handler {
	return newFilteringHandler(h.baseHandler.WithGroup(name), h.cfg)
}
