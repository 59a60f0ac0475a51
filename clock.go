package waypoint

import (
	"sort"
	"time"
)

// Clock runs deferred callbacks on the caller's goroutine. Nothing fires
// until Advance is called, normally once per game tick from Guide.Update, so
// all state changes stay on the UI thread.
//
// There is no global clock. Each Guide owns one unless WithClock shares it.
type Clock struct {
	now     time.Duration
	seq     uint64
	pending []*Timer
}

// Timer is a callback scheduled on a Clock.
type Timer struct {
	clock    *Clock
	deadline time.Duration
	seq      uint64
	fn       func()
	stopped  bool
}

// NewClock returns a clock at time zero.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the total time advanced so far.
func (c *Clock) Now() time.Duration {
	return c.now
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (c *Clock) Pending() int {
	return len(c.pending)
}

// AfterFunc schedules fn to run once d has elapsed. A non-positive d runs fn
// on the next Advance call.
func (c *Clock) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &Timer{clock: c, deadline: c.now + d, seq: c.seq, fn: fn}
	c.pending = append(c.pending, t)
	return t
}

// Stop prevents the timer from firing. It reports whether the call stopped
// the timer, false if it already fired or was stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped {
		return false
	}
	t.stopped = true
	t.clock.remove(t)
	return true
}

func (c *Clock) remove(t *Timer) {
	for i, p := range c.pending {
		if p == t {
			copy(c.pending[i:], c.pending[i+1:])
			c.pending[len(c.pending)-1] = nil
			c.pending = c.pending[:len(c.pending)-1]
			return
		}
	}
}

// Advance moves the clock forward by dt and fires every timer whose deadline
// has been reached, earliest first and in scheduling order for equal
// deadlines. Timers scheduled by a firing callback also fire in this call if
// they are already due.
func (c *Clock) Advance(dt time.Duration) {
	if dt > 0 {
		c.now += dt
	}
	for {
		t := c.nextDue()
		if t == nil {
			return
		}
		t.stopped = true
		c.remove(t)
		t.fn()
	}
}

// nextDue returns the earliest due timer, or nil.
func (c *Clock) nextDue() *Timer {
	if len(c.pending) == 0 {
		return nil
	}
	sort.SliceStable(c.pending, func(i, j int) bool {
		a, b := c.pending[i], c.pending[j]
		if a.deadline != b.deadline {
			return a.deadline < b.deadline
		}
		return a.seq < b.seq
	})
	if t := c.pending[0]; t.deadline <= c.now {
		return t
	}
	return nil
}
