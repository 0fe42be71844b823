package ripple

import (
	"math"
	"time"
)

// pruneFrom and pruneCount describe the overflow rule: removals happen one
// after another at positions 2, 3, ... 7, so each removal shifts the rest
// down. On a buffer of 16 this drops the waves originally at 2, 4, 6, 8, 10
// and 12, keeping the two oldest and the newest.
const (
	pruneFrom  = 2
	pruneCount = 6
)

// MinMaxWaves is the smallest capacity at which every prune removal lands
// on an older wave and the newest one always survives: the last removal
// takes original position pruneFrom+2*(pruneCount-1).
const MinMaxWaves = pruneFrom + 2*(pruneCount-1) + 1

// Buffer is the ordered set of live waves, oldest first.
type Buffer struct {
	waves       []Wave
	minDistance float64
	lifetime    time.Duration
	capacity    int
}

// NewBuffer creates an empty buffer using the admission distance, lifetime
// and capacity from opts.
func NewBuffer(opts Options) *Buffer {
	return &Buffer{
		waves:       make([]Wave, 0, opts.MaxWaves+1),
		minDistance: opts.InnerRadius,
		lifetime:    opts.Duration,
		capacity:    opts.MaxWaves,
	}
}

// Emit admits a new wave at (x, y) unless it lies within the admission
// distance of the most recently added wave. It reports whether the wave was
// added and is still stored; below MinMaxWaves the overflow rule can drop
// the wave it was just given.
func (b *Buffer) Emit(x, y int, now int64) bool {
	if len(b.waves) == 0 {
		b.waves = append(b.waves, NewWave(x, y, now, b.lifetime))
		return true
	}

	last := b.waves[len(b.waves)-1]
	if distance(last.X, last.Y, x, y) <= b.minDistance {
		return false
	}

	// Birth times never go backwards, so Sweep can stop at the first
	// live wave.
	if now < last.BornAt {
		now = last.BornAt
	}
	b.waves = append(b.waves, NewWave(x, y, now, b.lifetime))
	if len(b.waves) > b.capacity {
		return b.prune()
	}
	return true
}

// prune applies the overflow rule and reports whether the newest wave
// survived it.
func (b *Buffer) prune() bool {
	newest := len(b.waves) - 1
	for i := 0; i < pruneCount; i++ {
		idx := pruneFrom + i
		if idx >= len(b.waves) {
			break
		}
		b.waves = append(b.waves[:idx], b.waves[idx+1:]...)
		switch {
		case idx == newest:
			newest = -1
		case idx < newest:
			newest--
		}
	}
	return newest >= 0
}

// Sweep drops the leading waves that have expired at now and returns how
// many were removed.
func (b *Buffer) Sweep(now int64) int {
	n := 0
	for n < len(b.waves) && b.waves[n].ExpiresAt <= now {
		n++
	}
	if n == 0 {
		return 0
	}
	b.waves = append(b.waves[:0], b.waves[n:]...)
	return n
}

// ForEach calls fn for every wave in insertion order.
func (b *Buffer) ForEach(fn func(Wave)) {
	for _, w := range b.waves {
		fn(w)
	}
}

// Waves returns a copy of the live waves, oldest first.
func (b *Buffer) Waves() []Wave {
	out := make([]Wave, len(b.waves))
	copy(out, b.waves)
	return out
}

func (b *Buffer) Len() int      { return len(b.waves) }
func (b *Buffer) IsEmpty() bool { return len(b.waves) == 0 }

// Clear drops every wave.
func (b *Buffer) Clear() {
	b.waves = b.waves[:0]
}

func distance(x1, y1, x2, y2 int) float64 {
	dx := float64(x1 - x2)
	dy := float64(y1 - y2)
	return math.Sqrt(dx*dx + dy*dy)
}
