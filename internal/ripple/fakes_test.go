package ripple

import "time"

type circle struct {
	cx, cy, r float64
	paint     Paint
}

// recordingCanvas keeps every circle drawn on it.
type recordingCanvas struct {
	circles []circle
}

func (c *recordingCanvas) DrawCircle(cx, cy, r float64, p Paint) {
	c.circles = append(c.circles, circle{cx: cx, cy: cy, r: r, paint: p})
}

func (c *recordingCanvas) reset() { c.circles = c.circles[:0] }

// virtualLoop is a Clock and FrameScheduler driven by virtual time.
type virtualLoop struct {
	now           int64
	due           int64
	pending       bool
	invalidations int
}

func (l *virtualLoop) Now() int64 { return l.now }

func (l *virtualLoop) Invalidate() { l.request(l.now) }

func (l *virtualLoop) InvalidateDelayed(d time.Duration) {
	l.request(l.now + d.Milliseconds())
}

func (l *virtualLoop) request(at int64) {
	l.invalidations++
	if !l.pending || at < l.due {
		l.due = at
		l.pending = true
	}
}

// run fires due redraws up to and including until and returns the times at
// which OnDraw ran.
func (l *virtualLoop) run(c *Compositor, canvas Canvas, until int64) []int64 {
	var ticks []int64
	for l.pending && l.due <= until {
		l.now = l.due
		l.pending = false
		ticks = append(ticks, l.now)
		c.OnDraw(canvas)
	}
	if l.now < until {
		l.now = until
	}
	return ticks
}
