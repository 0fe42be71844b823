package ripple

import (
	"image/color"
	"math"
	"time"
)

// Style selects how a circle is rendered.
type Style int

const (
	// Stroke draws only the ring outline.
	Stroke Style = iota
	// FillAndStroke fills the disc and strokes its edge, so the painted
	// area reaches r + Width/2.
	FillAndStroke
)

// Paint describes how one circle is drawn.
type Paint struct {
	Color color.NRGBA
	Width float64
	Style Style
}

// scaled returns a copy of p with its stroke width multiplied by s.
func (p Paint) scaled(s float64) Paint {
	p.Width *= s
	return p
}

// Paints holds the three base styles of a wave at full thickness.
type Paints struct {
	Inner  Paint
	Middle Paint
	Outer  Paint
}

// NewPaints builds the base paints. Inner and outer use half the alpha of
// the middle rings.
func NewPaints(opts Options) Paints {
	return Paints{
		Inner: Paint{
			Color: RGBA(opts.Color, opts.Alpha/2),
			Width: opts.InnerRadius,
			Style: FillAndStroke,
		},
		Middle: Paint{
			Color: RGBA(opts.Color, opts.Alpha),
			Width: opts.MiddleStroke,
			Style: Stroke,
		},
		Outer: Paint{
			Color: RGBA(opts.Color, opts.Alpha/2),
			Width: opts.OuterStroke,
			Style: Stroke,
		},
	}
}

// Canvas is the drawing surface a wave paints onto.
type Canvas interface {
	DrawCircle(cx, cy, r float64, p Paint)
}

// Wave is a single ripple bound to an emission point and a fixed lifetime.
// Timestamps are monotonic milliseconds.
type Wave struct {
	X, Y      int
	BornAt    int64
	ExpiresAt int64
}

// NewWave creates a wave born at now.
func NewWave(x, y int, now int64, lifetime time.Duration) Wave {
	return Wave{
		X:         x,
		Y:         y,
		BornAt:    now,
		ExpiresAt: now + lifetime.Milliseconds(),
	}
}

// Expired reports whether the wave has reached the end of its life.
func (w Wave) Expired(now int64) bool {
	return now >= w.ExpiresAt
}

// Phase is the normalized age of the wave in [0, 1].
func (w Wave) Phase(now int64) float64 {
	lifetime := w.ExpiresAt - w.BornAt
	if lifetime <= 0 {
		return 1
	}
	ttl := w.ExpiresAt - now
	return clamp01(float64(lifetime-ttl) / float64(lifetime))
}

// Scale is the stroke thickness envelope for a phase: 0 at both ends, 1 at
// mid-life.
func Scale(phase float64) float64 {
	return math.Sin(math.Pi * phase)
}

// DrawContext bundles what a wave needs from its compositor to paint.
type DrawContext struct {
	RadiusMax float64
	Paints    Paints
}

// Radius dividers of the four primitives.
const (
	outerDivider   = 1.0
	middleDivider  = 1.5
	trailDivider   = 2.0
	coreDotDivider = 8.0
)

// DrawWave paints the four concentric primitives of w at time now: three
// expanding rings and a core dot that shrinks as the wave ages. Expired
// waves draw nothing.
func DrawWave(w Wave, c Canvas, now int64, ctx DrawContext) {
	if w.Expired(now) {
		return
	}

	phase := w.Phase(now)
	scale := Scale(phase)

	outer := ctx.Paints.Outer.scaled(scale)
	middle := ctx.Paints.Middle.scaled(scale)
	inner := ctx.Paints.Inner.scaled(scale)

	cx, cy := float64(w.X), float64(w.Y)
	circle := func(factor, divider float64, p Paint) {
		c.DrawCircle(cx, cy, ctx.RadiusMax*factor/divider, p)
	}

	circle(phase, outerDivider, outer)
	// Both trailing rings share the middle paint.
	circle(phase, middleDivider, middle)
	circle(phase, trailDivider, middle)

	circle(1-phase, coreDotDivider, inner)
}
