package timeline

import (
	"slices"
	"sync"
	"time"
)

// LoopScheduler fires timers through post, which is expected to hand the
// callback to the owning event loop.
type LoopScheduler struct {
	post func(func())
}

// NewLoopScheduler returns a scheduler that dispatches callbacks with post.
func NewLoopScheduler(post func(func())) LoopScheduler {
	return LoopScheduler{post: post}
}

// AfterFunc implements Scheduler.
func (s LoopScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, func() { s.post(f) })
}

// ManualClock is a Scheduler driven by Advance. Callbacks run synchronously on
// the goroutine that calls Advance.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*manualTimer
}

type manualTimer struct {
	clock *ManualClock
	at    time.Duration
	seq   uint64
	f     func()
}

// NewManualClock returns a clock at zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// AfterFunc implements Scheduler.
func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &manualTimer{clock: c, at: c.now + max(d, 0), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Now returns the time elapsed since the clock was created.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the number of timers that have not fired or been stopped.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Advance moves the clock forward by d and fires every timer that falls due,
// in deadline order, including timers scheduled by the callbacks themselves.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	end := c.now + d
	c.mu.Unlock()

	for {
		t := c.popDue(end)
		if t == nil {
			break
		}
		t.f()
	}

	c.mu.Lock()
	c.now = end
	c.mu.Unlock()
}

func (c *ManualClock) popDue(end time.Duration) *manualTimer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.timers) == 0 {
		return nil
	}
	i := 0
	for j, t := range c.timers {
		if t.at < c.timers[i].at || (t.at == c.timers[i].at && t.seq < c.timers[i].seq) {
			i = j
		}
	}
	t := c.timers[i]
	if t.at > end {
		return nil
	}
	c.timers = slices.Delete(c.timers, i, i+1)
	c.now = t.at
	return t
}

func (t *manualTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	i := slices.Index(c.timers, t)
	if i < 0 {
		return false
	}
	c.timers = slices.Delete(c.timers, i, i+1)
	return true
}
