package game

import "time"

// frameClock is both the compositor's clock and its frame scheduler. The
// ebiten loop draws every display frame; take tells it when the ripple
// layer is actually due for a repaint.
type frameClock struct {
	start   time.Time
	now     func() time.Time
	due     int64
	pending bool
}

func newFrameClock(now func() time.Time) *frameClock {
	return &frameClock{start: now(), now: now}
}

// Now returns milliseconds since the clock was created.
func (c *frameClock) Now() int64 {
	return c.now().Sub(c.start).Milliseconds()
}

func (c *frameClock) Invalidate() {
	c.request(c.Now())
}

func (c *frameClock) InvalidateDelayed(d time.Duration) {
	c.request(c.Now() + d.Milliseconds())
}

func (c *frameClock) request(at int64) {
	if !c.pending || at < c.due {
		c.due = at
		c.pending = true
	}
}

// take reports whether a repaint is due and consumes the request.
func (c *frameClock) take() bool {
	if !c.pending || c.Now() < c.due {
		return false
	}
	c.pending = false
	return true
}

// uptime is how long the clock has been running.
func (c *frameClock) uptime() time.Duration {
	return c.now().Sub(c.start)
}
