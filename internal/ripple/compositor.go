package ripple

import "time"

// Clock returns a monotonic timestamp in milliseconds.
type Clock interface {
	Now() int64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() int64

func (f ClockFunc) Now() int64 { return f() }

// FrameScheduler asks the host to call OnDraw again. When several requests
// are outstanding the earliest one wins.
type FrameScheduler interface {
	// Invalidate requests a redraw as soon as possible.
	Invalidate()
	// InvalidateDelayed requests a redraw after d.
	InvalidateDelayed(d time.Duration)
}

// State is the animation state of a Compositor.
type State int

const (
	Idle State = iota
	Animating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Animating:
		return "animating"
	default:
		return "unknown"
	}
}

// Compositor owns the live waves and drives redraws until they drain.
// All methods must be called from the same goroutine as OnDraw.
type Compositor struct {
	opts      Options
	buffer    *Buffer
	clock     Clock
	scheduler FrameScheduler
	underlay  func(Canvas)

	radiusMax float64
	paints    Paints
	pending   bool
}

// NewCompositor creates an idle compositor.
func NewCompositor(opts Options, clock Clock, scheduler FrameScheduler) *Compositor {
	return &Compositor{
		opts:      opts,
		buffer:    NewBuffer(opts),
		clock:     clock,
		scheduler: scheduler,
		paints:    NewPaints(opts),
	}
}

// SetUnderlay sets the host drawing that runs before the waves on every
// OnDraw, typically clearing or painting the layer beneath them.
func (c *Compositor) SetUnderlay(fn func(Canvas)) {
	c.underlay = fn
}

// OnResize recomputes the maximum ripple radius from the surface size.
func (c *Compositor) OnResize(w, h int) {
	c.radiusMax = float64(max(w/3, h/3))
}

// RadiusMax returns the current maximum ripple radius.
func (c *Compositor) RadiusMax() float64 {
	return c.radiusMax
}

// OnDraw renders one frame: the underlay, then every live wave in emission
// order, then drops expired waves. Another frame is scheduled only while
// waves remain.
func (c *Compositor) OnDraw(canvas Canvas) {
	c.pending = false
	if c.underlay != nil {
		c.underlay(canvas)
	}
	if c.buffer.IsEmpty() {
		return
	}

	now := c.clock.Now()
	ctx := DrawContext{RadiusMax: c.radiusMax, Paints: c.paints}
	c.buffer.ForEach(func(w Wave) {
		DrawWave(w, canvas, now, ctx)
	})
	c.buffer.Sweep(now)

	if !c.buffer.IsEmpty() {
		c.pending = true
		c.scheduler.InvalidateDelayed(c.opts.FrameInterval)
	}
}

// RequestEmit starts a wave at (x, y) and asks for an immediate redraw.
// It reports whether the wave was admitted.
func (c *Compositor) RequestEmit(x, y int) bool {
	admitted := c.buffer.Emit(x, y, c.clock.Now())
	c.pending = true
	c.scheduler.Invalidate()
	return admitted
}

// RequestEmitFromEvent starts a wave at the event position.
func (c *Compositor) RequestEmitFromEvent(ev PointerEvent) bool {
	return c.RequestEmit(int(ev.X), int(ev.Y))
}

// Clear drops all waves. A redraw that is already scheduled still runs and
// finds nothing to draw.
func (c *Compositor) Clear() {
	c.buffer.Clear()
}

// State reports whether the compositor is animating or idle.
func (c *Compositor) State() State {
	if c.pending || !c.buffer.IsEmpty() {
		return Animating
	}
	return Idle
}

// Len returns the number of live waves.
func (c *Compositor) Len() int {
	return c.buffer.Len()
}

// Waves returns a snapshot of the live waves, oldest first.
func (c *Compositor) Waves() []Wave {
	return c.buffer.Waves()
}
