package config

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iburimskiy/water-wave/internal/ripple"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640
	WindowTitle  = "Water Wave - drag to make ripples, O: open image, M: mute, C: clear, D: debug, Esc/Q: quit"

	// Background fill used when no image is loaded.
	BackgroundGray = 0x1c

	// Audio feedback
	SampleRate      = 44100
	MaxVoices       = 8
	DripDuration    = 180 * time.Millisecond
	DripFrequency   = 880.0
	DripVolume      = 0.25
	ResampleQuality = 4
)

// Config is everything that can be tuned from the command line.
type Config struct {
	InnerRadius   float64
	MiddleStroke  float64
	OuterStroke   float64
	Color         RGB
	Alpha         uint
	FrameInterval time.Duration
	Duration      time.Duration
	MaxWaves      int

	Width      int
	Height     int
	Background string
	Sound      string
	Mute       bool
	Debug      bool
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		InnerRadius:   ripple.DefaultInnerRadius,
		MiddleStroke:  ripple.DefaultMiddleStroke,
		OuterStroke:   ripple.DefaultOuterStroke,
		Color:         ripple.DefaultColor,
		Alpha:         ripple.DefaultAlpha,
		FrameInterval: ripple.DefaultFrameInterval,
		Duration:      ripple.DefaultDuration,
		MaxWaves:      ripple.DefaultMaxWaves,
		Width:         WindowWidth,
		Height:        WindowHeight,
	}
}

// RegisterFlags binds every field of c to a flag on fs, using the current
// values of c as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Float64Var(&c.InnerRadius, "inner-radius", c.InnerRadius, "core dot stroke width and minimum distance between consecutive waves (px)")
	fs.Float64Var(&c.MiddleStroke, "middle-stroke", c.MiddleStroke, "stroke width of the middle rings at mid-life (px)")
	fs.Float64Var(&c.OuterStroke, "outer-stroke", c.OuterStroke, "stroke width of the outer ring at mid-life (px)")
	fs.Var(&c.Color, "color", "wave color as 24-bit hex RGB, e.g. 016cc2")
	fs.UintVar(&c.Alpha, "alpha", c.Alpha, "wave alpha (0-255); inner and outer rings use half")
	fs.DurationVar(&c.FrameInterval, "frame-interval", c.FrameInterval, "delay between ripple redraws")
	fs.DurationVar(&c.Duration, "duration", c.Duration, "lifetime of a single wave")
	fs.IntVar(&c.MaxWaves, "max-waves", c.MaxWaves, "number of live waves that triggers pruning")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.StringVar(&c.Background, "background", c.Background, "image shown beneath the ripples (png, jpeg, gif, bmp, webp)")
	fs.StringVar(&c.Sound, "sound", c.Sound, "sound played for each wave (wav, mp3, flac); default is a synthesized drip")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable audio feedback")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "show wave count and pointer overlay")
}

// Validate reports the first setting that cannot drive the effect.
func (c Config) Validate() error {
	switch {
	case c.InnerRadius <= 0:
		return errors.New("inner-radius must be positive")
	case c.MiddleStroke <= 0 || c.OuterStroke <= 0:
		return errors.New("stroke widths must be positive")
	case c.Alpha > 255:
		return fmt.Errorf("alpha %d out of range 0-255", c.Alpha)
	case c.FrameInterval <= 0:
		return errors.New("frame-interval must be positive")
	case c.Duration <= 0:
		return errors.New("duration must be positive")
	case c.MaxWaves < ripple.MinMaxWaves:
		return fmt.Errorf("max-waves must be at least %d", ripple.MinMaxWaves)
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	return nil
}

// RippleOptions converts the wave settings for the compositor.
func (c Config) RippleOptions() ripple.Options {
	return ripple.Options{
		InnerRadius:   c.InnerRadius,
		MiddleStroke:  c.MiddleStroke,
		OuterStroke:   c.OuterStroke,
		Color:         uint32(c.Color),
		Alpha:         uint8(c.Alpha),
		FrameInterval: c.FrameInterval,
		Duration:      c.Duration,
		MaxWaves:      c.MaxWaves,
	}
}

// RGB is a 24-bit color that parses from hex. It never carries alpha.
type RGB uint32

func (c RGB) String() string {
	return fmt.Sprintf("%06x", uint32(c))
}

// Set parses "016cc2", "#016cc2" or "0x016cc2".
func (c *RGB) Set(s string) error {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "#"), "0x")
	if len(s) != 6 {
		return fmt.Errorf("color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("color %q: %w", s, err)
	}
	*c = RGB(v)
	return nil
}
