// Package sound plays a short cue for every ripple that starts.
package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/water-wave/internal/config"
)

// Player mixes ripple cues, at most maxVoices at a time. It is safe to call
// from the game loop while the speaker goroutine drains voices.
type Player struct {
	mu         sync.Mutex
	sampleRate beep.SampleRate
	maxVoices  int
	sample     *beep.Buffer
	active     int
	muted      bool

	// out hands a voice to the mixer; nil until Init succeeds.
	out func(beep.Streamer)
}

func NewPlayer(sr beep.SampleRate, maxVoices int) *Player {
	return &Player{
		sampleRate: sr,
		maxVoices:  maxVoices,
	}
}

// Init opens the audio device.
func (p *Player) Init() error {
	bufferSize := p.sampleRate.N(time.Second / 20)
	if err := speaker.Init(p.sampleRate, bufferSize); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.mu.Lock()
	p.out = func(s beep.Streamer) { speaker.Play(s) }
	p.mu.Unlock()
	return nil
}

// SetSample replaces the synthesized drip with buf. nil restores the drip.
func (p *Player) SetSample(buf *beep.Buffer) {
	p.mu.Lock()
	p.sample = buf
	p.mu.Unlock()
}

func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Active returns the number of voices still playing.
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Play starts one cue. It reports false when muted, when no device is open,
// or when every voice is busy.
func (p *Player) Play() bool {
	p.mu.Lock()
	if p.muted || p.out == nil || p.active >= p.maxVoices {
		p.mu.Unlock()
		return false
	}
	p.active++
	src := p.cue()
	out := p.out
	p.mu.Unlock()

	out(beep.Seq(src, beep.Callback(p.release)))
	return true
}

// cue must be called with p.mu held.
func (p *Player) cue() beep.Streamer {
	if p.sample == nil {
		return Drip(p.sampleRate, config.DripFrequency, config.DripDuration, config.DripVolume)
	}
	return &effects.Volume{
		Streamer: p.sample.Streamer(0, p.sample.Len()),
		Base:     2,
		Volume:   -1,
	}
}

func (p *Player) release() {
	p.mu.Lock()
	if p.active > 0 {
		p.active--
	}
	p.mu.Unlock()
}

// Load decodes a wav, mp3 or flac file fully into memory at sample rate sr.
func Load(path string, sr beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	ext := filepath.Ext(path)
	switch strings.ToLower(ext) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		return nil, errors.New("unsupported sound type: " + ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sr {
		s = beep.Resample(config.ResampleQuality, format.SampleRate, sr, streamer)
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf, nil
}
