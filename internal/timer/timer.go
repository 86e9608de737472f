// Package timer implements the countdown clock driving break and exercise
// sessions: a one-second repeating tick with start/pause/resume/reset
// controls.
package timer

import (
	"fmt"
	"sync"
	"time"
)

// DefaultInterval is the production tick cadence.
const DefaultInterval = time.Second

// Countdown counts down from an initial number of seconds, invoking onTick
// after every elapsed interval and onComplete once when it reaches zero.
// All methods are safe for concurrent use. Callbacks run on the internal
// ticker goroutine and must not call back into the Countdown.
type Countdown struct {
	interval   time.Duration
	onTick     func(remaining int)
	onComplete func()

	mu        sync.Mutex
	initial   int
	remaining int
	active    bool
	paused    bool
	stop      chan struct{}
}

// Option configures a Countdown.
type Option func(*Countdown)

// WithInterval overrides the tick interval; tests use a short one.
func WithInterval(d time.Duration) Option {
	return func(c *Countdown) { c.interval = d }
}

// WithOnTick registers a per-tick callback receiving the remaining seconds.
func WithOnTick(fn func(remaining int)) Option {
	return func(c *Countdown) { c.onTick = fn }
}

// WithOnComplete registers a callback fired once when the countdown hits zero.
func WithOnComplete(fn func()) Option {
	return func(c *Countdown) { c.onComplete = fn }
}

// New creates a stopped countdown with initialSeconds on the clock.
func New(initialSeconds int, opts ...Option) *Countdown {
	c := &Countdown{
		interval:  DefaultInterval,
		initial:   initialSeconds,
		remaining: initialSeconds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start begins ticking. Starting an already-active countdown only clears a
// pause.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.paused = false
	if c.active || c.remaining <= 0 {
		return
	}
	c.active = true
	c.stop = make(chan struct{})
	go c.run(c.stop)
}

// Pause freezes the clock without losing the remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

// Resume continues after a Pause.
func (c *Countdown) Resume() {
	c.mu.Lock()
	c.paused = false
	c.mu.Unlock()
}

// Stop halts the countdown, keeping the remaining time.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
}

func (c *Countdown) stopLocked() {
	if c.active {
		close(c.stop)
		c.active = false
	}
	c.paused = false
}

// Reset stops the countdown and reloads it. newSeconds < 0 keeps the
// original initial time.
func (c *Countdown) Reset(newSeconds int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopLocked()
	if newSeconds >= 0 {
		c.initial = newSeconds
	}
	c.remaining = c.initial
}

// AddTime extends the running clock by the given seconds.
func (c *Countdown) AddTime(seconds int) {
	c.mu.Lock()
	c.remaining += seconds
	c.mu.Unlock()
}

// Remaining returns the seconds left on the clock.
func (c *Countdown) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining
}

// Active reports whether the countdown is running (paused counts as active).
func (c *Countdown) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Paused reports whether the countdown is paused.
func (c *Countdown) Paused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

func (c *Countdown) run(stop chan struct{}) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.paused || !c.active {
				c.mu.Unlock()
				continue
			}
			c.remaining--
			remaining := c.remaining
			done := remaining <= 0
			if done {
				c.remaining = 0
				remaining = 0
				c.active = false
			}
			c.mu.Unlock()

			if c.onTick != nil {
				c.onTick(remaining)
			}
			if done {
				if c.onComplete != nil {
					c.onComplete()
				}
				return
			}
		}
	}
}

// FormatTime renders seconds as m:ss.
func FormatTime(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// FormatTimeDetailed renders seconds as h:mm:ss, falling back to m:ss below
// an hour.
func FormatTimeDetailed(seconds int) string {
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
	}
	return FormatTime(seconds)
}
