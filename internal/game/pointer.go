package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/water-wave/internal/ripple"
)

// mousePointer is the pointer id of the mouse; touches use their touch id
// plus one.
const mousePointer = 0

type point struct {
	x, y int
}

type pointerSample struct {
	id int
	point
}

// pointerTracker turns per-frame pressed pointer positions into
// down/move/up/cancel events.
type pointerTracker struct {
	down     map[int]point
	samples  []pointerSample
	touchIDs []ebiten.TouchID
	events   []ripple.PointerEvent
}

func newPointerTracker() *pointerTracker {
	return &pointerTracker{down: map[int]point{}}
}

// poll reads the mouse and touch state from ebiten.
func (t *pointerTracker) poll(now int64) []ripple.PointerEvent {
	t.samples = t.samples[:0]
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		t.samples = append(t.samples, pointerSample{id: mousePointer, point: point{x, y}})
	}
	t.touchIDs = ebiten.AppendTouchIDs(t.touchIDs[:0])
	for _, id := range t.touchIDs {
		x, y := ebiten.TouchPosition(id)
		t.samples = append(t.samples, pointerSample{id: int(id) + 1, point: point{x, y}})
	}
	return t.step(t.samples, ebiten.IsFocused(), now)
}

// step diffs the pressed pointers of this frame against the previous one.
// Losing focus cancels everything that is held.
func (t *pointerTracker) step(pressed []pointerSample, focused bool, now int64) []ripple.PointerEvent {
	t.events = t.events[:0]

	if !focused {
		for id, p := range t.down {
			t.emit(id, p, ripple.ActionCancel, now)
			delete(t.down, id)
		}
		return t.events
	}

	seen := make(map[int]bool, len(pressed))
	for _, s := range pressed {
		seen[s.id] = true
		last, held := t.down[s.id]
		switch {
		case !held:
			t.emit(s.id, s.point, ripple.ActionDown, now)
		case last != s.point:
			t.emit(s.id, s.point, ripple.ActionMove, now)
		default:
			continue
		}
		t.down[s.id] = s.point
	}

	for id, p := range t.down {
		if !seen[id] {
			t.emit(id, p, ripple.ActionUp, now)
			delete(t.down, id)
		}
	}
	return t.events
}

func (t *pointerTracker) emit(id int, p point, a ripple.Action, now int64) {
	t.events = append(t.events, ripple.PointerEvent{
		ID:     id,
		X:      float64(p.x),
		Y:      float64(p.y),
		Action: a,
		Time:   now,
	})
}
