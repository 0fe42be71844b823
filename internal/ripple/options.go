package ripple

import (
	"image/color"
	"time"
)

// Design defaults for the ripple effect.
const (
	DefaultInnerRadius   = 7
	DefaultMiddleStroke  = 15
	DefaultOuterStroke   = 10
	DefaultColor         = 0x016cc2 // RGB, no alpha byte
	DefaultAlpha         = 75
	DefaultFrameInterval = 30 * time.Millisecond
	DefaultDuration      = 2000 * time.Millisecond
	DefaultMaxWaves      = 15
)

// Options configures a Compositor and its Buffer.
type Options struct {
	// InnerRadius is both the admission distance and the stroke width of
	// the core dot.
	InnerRadius   float64
	MiddleStroke  float64
	OuterStroke   float64
	Color         uint32 // 0xRRGGBB
	Alpha         uint8
	FrameInterval time.Duration
	Duration      time.Duration
	MaxWaves      int
}

// DefaultOptions returns the stock look of the effect.
func DefaultOptions() Options {
	return Options{
		InnerRadius:   DefaultInnerRadius,
		MiddleStroke:  DefaultMiddleStroke,
		OuterStroke:   DefaultOuterStroke,
		Color:         DefaultColor,
		Alpha:         DefaultAlpha,
		FrameInterval: DefaultFrameInterval,
		Duration:      DefaultDuration,
		MaxWaves:      DefaultMaxWaves,
	}
}

// RGBA splits a 24-bit RGB value and pairs it with a separate alpha.
func RGBA(rgb uint32, alpha uint8) color.NRGBA {
	return color.NRGBA{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: alpha,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
