package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/water-wave/internal/config"
	"github.com/iburimskiy/water-wave/internal/ripple"
	"github.com/iburimskiy/water-wave/internal/surface"
)

// backdrop is the content beneath the ripples. It is the touch forwarder's
// delegate: it sees every raw pointer event but never consumes one.
type backdrop struct {
	img  *ebiten.Image
	name string

	counts [ripple.ActionCancel + 1]int
	last   ripple.PointerEvent
	events int
}

func (b *backdrop) dispatch(ev ripple.PointerEvent) bool {
	if ev.Action >= 0 && int(ev.Action) < len(b.counts) {
		b.counts[ev.Action]++
	}
	b.last = ev
	b.events++
	return false
}

func (b *backdrop) setImage(img image.Image, name string) {
	if b.img != nil {
		b.img.Deallocate()
	}
	b.img = ebiten.NewImageFromImage(img)
	b.name = name
}

func (b *backdrop) draw(screen *ebiten.Image) {
	screen.Fill(color.Gray{Y: config.BackgroundGray})
	if b.img == nil {
		return
	}

	iw, ih := b.img.Bounds().Dx(), b.img.Bounds().Dy()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale, dx, dy := surface.Fit(iw, ih, w, h)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(dx, dy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.img, op)
}
