package auction

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// countdown is the per-room bidding timer. It counts down at 1s granularity,
// freezes on pause and continues from the frozen value on resume. Every
// (re)start bumps a generation counter; the expiry callback carries the
// generation it was armed with so a stale callback can be recognized after
// the room has already moved on.
type countdown struct {
	clock  clockwork.Clock
	expire func(gen uint64)

	mu        sync.Mutex
	gen       uint64
	timer     clockwork.Timer
	running   bool
	paused    bool
	remaining time.Duration // frozen value while paused
	deadline  time.Time
}

func newCountdown(clock clockwork.Clock, expire func(gen uint64)) *countdown {
	return &countdown{clock: clock, expire: expire}
}

func (c *countdown) start(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	c.gen++
	gen := c.gen
	c.running = true
	c.paused = false
	c.deadline = c.clock.Now().Add(d)
	c.timer = c.clock.AfterFunc(d, func() { c.fire(gen) })
}

func (c *countdown) fire(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || !c.running || c.paused {
		c.mu.Unlock()
		return
	}
	c.running = false
	c.mu.Unlock()
	c.expire(gen)
}

// currentGen reports whether gen is still the live generation. The room
// checks this under its own lock before acting on an expiry, so a callback
// that raced a restart becomes a no-op.
func (c *countdown) currentGen(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return gen == c.gen
}

func (c *countdown) pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running || c.paused {
		return
	}
	c.remaining = c.deadline.Sub(c.clock.Now())
	if c.remaining < 0 {
		c.remaining = 0
	}
	c.paused = true
	if c.timer != nil {
		c.timer.Stop()
	}
}

func (c *countdown) resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running || !c.paused {
		return
	}
	c.paused = false
	c.gen++
	gen := c.gen
	c.deadline = c.clock.Now().Add(c.remaining)
	c.timer = c.clock.AfterFunc(c.remaining, func() { c.fire(gen) })
}

// extendTo stretches a running countdown back to d when less than d remains.
// Used for the optional anti-snipe window; a no-op when paused or idle.
func (c *countdown) extendTo(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running || c.paused {
		return
	}
	if c.deadline.Sub(c.clock.Now()) >= d {
		return
	}
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.deadline = c.clock.Now().Add(d)
	c.timer = c.clock.AfterFunc(d, func() { c.fire(gen) })
}

func (c *countdown) stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *countdown) stopLocked() {
	c.gen++
	c.running = false
	c.paused = false
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// remainingSeconds is what polling clients see, rounded up so a freshly
// started 15s timer reads 15, not 14.
func (c *countdown) remainingSeconds() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return 0
	}
	rem := c.remaining
	if !c.paused {
		rem = c.deadline.Sub(c.clock.Now())
	}
	if rem <= 0 {
		return 0
	}
	return int((rem + time.Second - 1) / time.Second)
}
