// Package clock implements the per-turn countdown: each side gets a fixed
// budget per move, and running out loses the game.
package clock

import (
	"context"
	"fmt"
	"sync"
	"time"
)

const (
	DefaultTurn = 60 * time.Second
	TimesUp     = "Time's up!"
)

type Clock struct {
	mu        sync.Mutex
	limit     time.Duration
	step      time.Duration
	remaining time.Duration
	stopped   bool
	expired   bool

	onExpire func()
	onTick   func(time.Duration)
}

// New returns a running clock with the full budget. onExpire runs once
// per expiry, without the clock's lock held.
func New(limit time.Duration, onExpire func()) *Clock {
	if limit <= 0 {
		limit = DefaultTurn
	}
	return &Clock{limit: limit, step: time.Second, remaining: limit, onExpire: onExpire}
}

// OnTick registers a callback invoked with the remaining time after every
// tick. Renderers use it to redraw.
func (c *Clock) OnTick(fn func(time.Duration)) {
	c.mu.Lock()
	c.onTick = fn
	c.mu.Unlock()
}

// Run ticks once per second until ctx is done.
func (c *Clock) Run(ctx context.Context) {
	t := time.NewTicker(c.step)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			c.tick()
		}
	}
}

func (c *Clock) tick() {
	c.mu.Lock()
	if c.stopped || c.expired {
		c.mu.Unlock()
		return
	}
	c.remaining -= c.step
	if c.remaining < 0 {
		c.remaining = 0
	}
	expired := c.remaining == 0
	c.expired = expired
	remaining, onTick, onExpire := c.remaining, c.onTick, c.onExpire
	c.mu.Unlock()

	if onTick != nil {
		onTick(remaining)
	}
	if expired && onExpire != nil {
		onExpire()
	}
}

// Reset restores the full budget and resumes counting. Called after every
// executed move.
func (c *Clock) Reset() {
	c.mu.Lock()
	c.remaining = c.limit
	c.stopped = false
	c.expired = false
	c.mu.Unlock()
}

// Expire runs the clock out at once, as if the last tick had landed. It is a
// no-op on an already expired clock.
func (c *Clock) Expire() {
	c.mu.Lock()
	if c.expired {
		c.mu.Unlock()
		return
	}
	c.remaining = 0
	c.expired = true
	onExpire := c.onExpire
	c.mu.Unlock()

	if onExpire != nil {
		onExpire()
	}
}

// Stop freezes the clock; ticks are ignored until Reset.
func (c *Clock) Stop() {
	c.mu.Lock()
	c.stopped = true
	c.mu.Unlock()
}

func (c *Clock) Limit() time.Duration { return c.limit }

func (c *Clock) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

func (c *Clock) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.expired
}

func (c *Clock) Label() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.expired {
		return TimesUp
	}
	return Format(c.remaining)
}

// Format renders d as m:ss, rounding partial seconds up.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
