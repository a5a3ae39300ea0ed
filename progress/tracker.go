package progress

import (
	"sync"
	"time"

	"go-marketplace-core/models"
)

// Tracker wraps a ProgressCallback and rate-limits OnProgress forwarding to
// a fixed interval, so chatty download loops do not overwhelm slow sinks
// (terminal redraws, remote status updates). OnStart and the terminal call
// are always forwarded immediately; the last buffered position is flushed
// before the terminal call so the sink never misses the final state.
//
// Tracker itself implements models.ProgressCallback and preserves the
// ordering guarantees of the wrapped callback.
type Tracker struct {
	// Configuration
	updateInterval time.Duration
	cb             models.ProgressCallback

	// State management
	mu            sync.RWMutex
	isRunning     bool
	current       int64
	total         int64
	lastForwarded int64

	// Goroutine management
	ticker   *time.Ticker
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewTracker creates a Tracker forwarding to cb at the default 2-second
// interval
func NewTracker(cb models.ProgressCallback) *Tracker {
	return &Tracker{
		updateInterval: 2 * time.Second,
		cb:             cb,
	}
}

// NewTrackerWithInterval creates a Tracker with a custom forwarding interval
func NewTrackerWithInterval(cb models.ProgressCallback, interval time.Duration) *Tracker {
	t := NewTracker(cb)
	t.updateInterval = interval
	return t
}

// OnStart forwards the start immediately and begins the forwarding loop
func (t *Tracker) OnStart(total int64) {
	t.mu.Lock()
	if t.isRunning {
		t.mu.Unlock()
		return
	}
	t.current = 0
	t.total = total
	t.lastForwarded = 0
	t.stopChan = make(chan struct{})
	t.doneChan = make(chan struct{})
	t.ticker = time.NewTicker(t.updateInterval)
	t.isRunning = true
	t.mu.Unlock()

	t.cb.OnStart(total)

	go t.updateLoop()
}

// OnProgress records the latest position; forwarding happens on the next
// tick. Safe for concurrent use
func (t *Tracker) OnProgress(current, total int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.isRunning {
		return
	}
	t.current = current
	t.total = total
}

// OnComplete stops the loop, flushes the last buffered position and
// forwards the completion
func (t *Tracker) OnComplete() {
	t.stop()
	t.flush()
	t.cb.OnComplete()
}

// OnError stops the loop, flushes the last buffered position and forwards
// the failure
func (t *Tracker) OnError(err error) {
	t.stop()
	t.flush()
	t.cb.OnError(err)
}

// IsRunning returns whether the forwarding loop is active
func (t *Tracker) IsRunning() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isRunning
}

// Current returns the latest recorded position and total (thread-safe)
func (t *Tracker) Current() (current, total int64) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current, t.total
}

// stop terminates the forwarding loop and waits for it to finish, so no
// OnProgress can be forwarded after the terminal call
func (t *Tracker) stop() {
	t.mu.Lock()
	if !t.isRunning {
		t.mu.Unlock()
		return
	}
	close(t.stopChan)
	t.isRunning = false
	t.mu.Unlock()

	<-t.doneChan

	t.ticker.Stop()
}

// flush forwards the last recorded position if the loop has not forwarded
// it yet
func (t *Tracker) flush() {
	t.mu.Lock()
	current, total := t.current, t.total
	pending := current > t.lastForwarded
	if pending {
		t.lastForwarded = current
	}
	t.mu.Unlock()

	if pending {
		t.cb.OnProgress(current, total)
	}
}

// updateLoop forwards the latest position on each tick until stopped
func (t *Tracker) updateLoop() {
	defer close(t.doneChan)

	for {
		select {
		case <-t.stopChan:
			return

		case <-t.ticker.C:
			t.mu.Lock()
			current, total := t.current, t.total
			changed := current > t.lastForwarded
			if changed {
				t.lastForwarded = current
			}
			t.mu.Unlock()

			if changed {
				t.cb.OnProgress(current, total)
			}
		}
	}
}
