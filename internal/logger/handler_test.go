// internal/logger/handler_test.go
package logger

import (
	"context"
	"log/slog"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler captures the records that pass the filter chain.
type recordingHandler struct {
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

// recordFromHere builds a record whose PC points at this test file.
func recordFromHere(msg string) slog.Record {
	var pcs [1]uintptr
	runtime.Callers(2, pcs[:])
	return slog.NewRecord(time.Now(), slog.LevelInfo, msg, pcs[0])
}

func filteredHandle(t *testing.T, cfg Config, r slog.Record) bool {
	t.Helper()
	cfg.process()
	sink := &recordingHandler{}
	h := newFilteringHandler(sink, &cfg)
	require.NoError(t, h.Handle(context.Background(), r))
	return len(sink.records) == 1
}

func TestHandlerPassesWithoutFilters(t *testing.T) {
	t.Parallel()

	assert.True(t, filteredHandle(t, NewConfig(), recordFromHere("hello")))
}

func TestHandlerFileFilters(t *testing.T) {
	t.Parallel()

	enabled := NewConfig()
	enabled.EnabledFiles = []string{"handler_test.go"}
	assert.True(t, filteredHandle(t, enabled, recordFromHere("from this file")))

	other := NewConfig()
	other.EnabledFiles = []string{"somewhere_else.go"}
	assert.False(t, filteredHandle(t, other, recordFromHere("suppressed")))

	disabled := NewConfig()
	disabled.DisabledFiles = []string{"handler_test.go"}
	assert.False(t, filteredHandle(t, disabled, recordFromHere("suppressed")))
}

func TestHandlerPackageFilters(t *testing.T) {
	t.Parallel()

	// The package name is the source file's immediate directory.
	enabled := NewConfig()
	enabled.EnabledPackages = []string{"logger"}
	assert.True(t, filteredHandle(t, enabled, recordFromHere("from logger")))

	disabled := NewConfig()
	disabled.DisabledPackages = []string{"logger"}
	assert.False(t, filteredHandle(t, disabled, recordFromHere("suppressed")))
}

func TestHandlerTagFilters(t *testing.T) {
	t.Parallel()

	tagged := recordFromHere("tagged")
	tagged.AddAttrs(slog.String(tagKey, "split"))

	enabled := NewConfig()
	enabled.EnabledTags = []string{"split"}
	assert.True(t, filteredHandle(t, enabled, tagged))
	assert.False(t, filteredHandle(t, enabled, recordFromHere("untagged")),
		"enabled tag list drops untagged records")

	disabled := NewConfig()
	disabled.DisabledTags = []string{"split"}
	otherTagged := recordFromHere("tagged")
	otherTagged.AddAttrs(slog.String(tagKey, "split"))
	assert.False(t, filteredHandle(t, disabled, otherTagged))
}
