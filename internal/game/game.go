// Package game hosts the ripple compositor in an ebiten window.
package game

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/water-wave/internal/config"
	"github.com/iburimskiy/water-wave/internal/ripple"
	"github.com/iburimskiy/water-wave/internal/sound"
	"github.com/iburimskiy/water-wave/internal/surface"
)

// Game draws a background surface with the ripple layer on top and feeds
// pointer input to both.
type Game struct {
	compositor *ripple.Compositor
	frames     *frameClock
	forwarder  ripple.TouchForwarder
	pointers   *pointerTracker
	backdrop   *backdrop

	// player is optional; nil plays nothing.
	player *sound.Player
	// openImage asks the user for a background file. "" means cancelled.
	openImage func() (string, error)

	// layer holds the last composed ripple frame between repaints.
	layer         *ebiten.Image
	canvas        imageCanvas
	width, height int

	// input edge detection
	prevKey map[ebiten.Key]bool

	debug   bool
	lastErr error
}

// New creates the game. player and openImage may be nil.
func New(cfg config.Config, player *sound.Player, openImage func() (string, error)) *Game {
	frames := newFrameClock(time.Now)
	g := &Game{
		compositor: ripple.NewCompositor(cfg.RippleOptions(), frames, frames),
		frames:     frames,
		pointers:   newPointerTracker(),
		backdrop:   &backdrop{},
		player:     player,
		openImage:  openImage,
		prevKey:    map[ebiten.Key]bool{},
		debug:      cfg.Debug,
	}
	g.forwarder.SetDelegate(g.backdrop.dispatch)
	g.compositor.SetUnderlay(func(ripple.Canvas) {
		g.layer.Clear()
	})
	return g
}

// LoadBackground replaces the surface beneath the ripples.
func (g *Game) LoadBackground(path string) error {
	img, err := surface.Load(path)
	if err != nil {
		return err
	}
	g.backdrop.setImage(img, filepath.Base(path))
	log.Printf("Loaded background %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeyO) {
		if err := g.openBackground(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyM) && g.player != nil {
		g.player.SetMuted(!g.player.Muted())
	}
	if justPressed(ebiten.KeyC) {
		g.compositor.Clear()
	}
	if justPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}

	for _, ev := range g.pointers.poll(g.frames.Now()) {
		g.handlePointer(ev)
	}
	return nil
}

// handlePointer forwards ev to the surface and starts a wave on down and
// move.
func (g *Game) handlePointer(ev ripple.PointerEvent) {
	g.forwarder.OnPointerEvent(ev)
	if !ev.Action.EmitsWave() {
		return
	}
	if g.compositor.RequestEmitFromEvent(ev) && g.player != nil {
		g.player.Play()
	}
}

func (g *Game) openBackground() error {
	if g.openImage == nil {
		return nil
	}
	path, err := g.openImage()
	if err != nil {
		return fmt.Errorf("open background: %w", err)
	}
	if path == "" {
		return nil
	}
	if err := g.LoadBackground(path); err != nil {
		return err
	}
	g.lastErr = nil
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.backdrop.draw(screen)
	if g.layer == nil {
		return
	}

	if g.frames.take() {
		g.compositor.OnDraw(g.canvas)
	}
	screen.DrawImage(g.layer, nil)

	g.drawStatus(screen)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := "Tap or drag to make ripples - O: open image"
	if g.backdrop.name != "" {
		status += " | " + g.backdrop.name
	}
	if g.player != nil && g.player.Muted() {
		status += " | muted"
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)

	if !g.debug {
		return
	}
	c := g.backdrop.counts
	debug := fmt.Sprintf("waves: %d (%v)  radius max: %.0f  fps: %.0f  up: %s\nevents: down %d  move %d  up %d  cancel %d  last: %v #%d at (%.0f, %.0f)",
		g.compositor.Len(), g.compositor.State(), g.compositor.RadiusMax(), ebiten.ActualFPS(), formatDuration(g.frames.uptime()),
		c[ripple.ActionDown], c[ripple.ActionMove], c[ripple.ActionUp], c[ripple.ActionCancel],
		g.backdrop.last.Action, g.backdrop.last.ID, g.backdrop.last.X, g.backdrop.last.Y)
	ebitenutil.DebugPrintAt(screen, debug, 12, 30)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) resize(w, h int) {
	g.width, g.height = w, h
	g.compositor.OnResize(w, h)
	if w <= 0 || h <= 0 {
		return
	}
	if g.layer != nil {
		g.layer.Deallocate()
	}
	g.layer = ebiten.NewImage(w, h)
	g.canvas = imageCanvas{dst: g.layer}
	// The new layer is blank; repaint it even if nothing is animating.
	g.frames.Invalidate()
}
