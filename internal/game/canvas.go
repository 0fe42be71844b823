package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/water-wave/internal/ripple"
)

// imageCanvas draws ripple circles onto an ebiten image.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) DrawCircle(cx, cy, r float64, p ripple.Paint) {
	x, y := float32(cx), float32(cy)
	switch p.Style {
	case ripple.FillAndStroke:
		// The stroke straddles the edge, so the disc grows by half of it.
		outer := r + p.Width/2
		if outer <= 0 {
			return
		}
		vector.DrawFilledCircle(c.dst, x, y, float32(outer), p.Color, true)
	default:
		if p.Width <= 0 {
			return
		}
		vector.StrokeCircle(c.dst, x, y, float32(r), float32(p.Width), p.Color, true)
	}
}
