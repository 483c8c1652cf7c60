package session

import (
	"sync"
	"time"
)

// DefaultQueryDelay is the quiet period before a search text event is
// applied downstream.
const DefaultQueryDelay = 300 * time.Millisecond

// Debouncer runs only the last scheduled task after a quiet period. Each
// Schedule supersedes any pending task.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultQueryDelay
	}
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
