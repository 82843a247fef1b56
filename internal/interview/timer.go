package interview

import (
	"sync"
	"time"
)

// Timer enforces the maximum interview duration. It only ticks while the
// session is idle: the Orchestrator pauses it for the duration of every
// generation call and while synthesized audio is playing, so network
// latency never consumes candidate time. Expiry fires onExpire exactly
// once, regardless of how the countdown reaches zero.
type Timer struct {
	mu         sync.Mutex
	remaining  int
	paused     bool
	stopped    bool
	interval   time.Duration
	onExpire   func()
	expireOnce sync.Once
	done       chan struct{}
}

// NewTimer creates a countdown of the given number of seconds. onExpire may
// be nil. Start must be called to begin ticking.
func NewTimer(seconds int, onExpire func()) *Timer {
	return &Timer{
		remaining: seconds,
		interval:  time.Second,
		onExpire:  onExpire,
		done:      make(chan struct{}),
	}
}

// Start launches the countdown goroutine.
func (t *Timer) Start() {
	go t.loop()
}

func (t *Timer) loop() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.done:
			return
		case <-ticker.C:
			if t.tick() {
				return
			}
		}
	}
}

// tick decrements the countdown once. It returns true when the timer has
// finished, firing onExpire if the countdown just reached zero.
func (t *Timer) tick() bool {
	t.mu.Lock()

	if t.stopped {
		t.mu.Unlock()
		return true
	}
	if t.paused {
		t.mu.Unlock()
		return false
	}

	t.remaining--
	if t.remaining > 0 {
		t.mu.Unlock()
		return false
	}

	t.remaining = 0
	t.stopped = true
	t.mu.Unlock()

	if t.onExpire != nil {
		t.expireOnce.Do(t.onExpire)
	}
	return true
}

// Pause suspends the countdown.
func (t *Timer) Pause() {
	t.mu.Lock()
	t.paused = true
	t.mu.Unlock()
}

// Resume restarts a paused countdown.
func (t *Timer) Resume() {
	t.mu.Lock()
	t.paused = false
	t.mu.Unlock()
}

// Remaining returns the seconds left.
func (t *Timer) Remaining() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Stop terminates the countdown without firing onExpire. Safe to call more
// than once.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	close(t.done)
}
