// internal/utils/util.go
package utils

import (
	"sync"
	"time"
)

// Debouncer provides a way to debounce function calls
type Debouncer struct {
	mutex      sync.Mutex
	timer      *time.Timer
	lastCalled time.Time
}

// Debounce calls the provided function after the specified duration,
// canceling any previous pending calls
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	// Cancel existing timer if present
	if d.timer != nil {
		d.timer.Stop()
	}

	// Schedule new timer
	d.timer = time.AfterFunc(duration, func() {
		d.mutex.Lock()
		d.lastCalled = time.Now()
		d.timer = nil
		d.mutex.Unlock()
		fn()
	})
}
