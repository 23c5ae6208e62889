package watch

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of change signals into a single callback.
// Every signal restarts the quiet window, so the callback fires once no
// further signal has arrived for the full window. There is no upper bound
// on how long continuous signalling can defer the callback.
//
// The window is implemented as a restartable single-shot timer so that
// "last signal wins" stays trivially correct.
type Debouncer struct {
	window time.Duration
	fire   func()

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer that calls fire after the window elapses
// with no further signals.
func NewDebouncer(window time.Duration, fire func()) *Debouncer {
	return &Debouncer{window: window, fire: fire}
}

// Signal notifies the debouncer that something changed. Multiple rapid
// calls collapse into a single fire, timed from the last call.
func (d *Debouncer) Signal() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.mu.Lock()
		d.timer = nil
		d.mu.Unlock()
		d.fire()
	})
}

// Cancel drops any pending fire without tearing the debouncer down.
// A manual refresh uses this to bypass the quiet window.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a fire is currently scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop shuts the debouncer down, dropping any pending fire.
func (d *Debouncer) Stop() {
	d.Cancel()
}
