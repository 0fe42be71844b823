//go:build android || ios

// Package mobile binds the ripple view for ebitenmobile:
//
//	ebitenmobile bind -target android -javapkg com.waterwave -o waterwave.aar ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/iburimskiy/water-wave/internal/config"
	"github.com/iburimskiy/water-wave/internal/game"
	"github.com/iburimskiy/water-wave/internal/sound"
)

func init() {
	player := sound.NewPlayer(config.SampleRate, config.MaxVoices)
	if err := player.Init(); err != nil {
		log.Printf("Audio disabled: %v", err)
	}
	mobile.SetGame(game.New(config.Default(), player, nil))
}

// Dummy is exported so that gomobile generates bindings for this package.
func Dummy() {}
