package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/water-wave/internal/config"
	"github.com/iburimskiy/water-wave/internal/game"
	"github.com/iburimskiy/water-wave/internal/sound"
	"github.com/iburimskiy/water-wave/internal/surface"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	log.Printf("Ripple: inner=%.0f middle=%.0f outer=%.0f color=%v alpha=%d frame=%v duration=%v max-waves=%d",
		cfg.InnerRadius, cfg.MiddleStroke, cfg.OuterStroke, cfg.Color, cfg.Alpha, cfg.FrameInterval, cfg.Duration, cfg.MaxWaves)

	player := newPlayer(cfg)

	g := game.New(cfg, player, selectImage)
	if cfg.Background != "" {
		if err := g.LoadBackground(cfg.Background); err != nil {
			log.Printf("Background not loaded: %v", err)
		}
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("game loop: %v", err)
	}
}

// newPlayer opens the audio device. Audio is optional: on failure the
// player stays silent.
func newPlayer(cfg config.Config) *sound.Player {
	player := sound.NewPlayer(config.SampleRate, config.MaxVoices)
	player.SetMuted(cfg.Mute)
	if err := player.Init(); err != nil {
		log.Printf("Audio disabled: %v", err)
		return player
	}
	if cfg.Sound == "" {
		return player
	}
	buf, err := sound.Load(cfg.Sound, config.SampleRate)
	if err != nil {
		log.Printf("Sound not loaded, using drip: %v", err)
		return player
	}
	player.SetSample(buf)
	log.Printf("Loaded sound %s (%v)", cfg.Sound, buf.Format().SampleRate.D(buf.Len()))
	return player
}

// selectImage shows a file dialog for the background. Cancelling returns
// an empty path and no error.
func selectImage() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Open Background Image"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: surface.Patterns,
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return path, err
}
