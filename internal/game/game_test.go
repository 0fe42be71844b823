package game

import (
	"errors"
	"testing"
	"time"

	"github.com/iburimskiy/water-wave/internal/config"
	"github.com/iburimskiy/water-wave/internal/ripple"
)

type fakeTime struct {
	t time.Time
}

func newFakeTime() *fakeTime { return &fakeTime{t: time.Unix(1700000000, 0)} }

func (f *fakeTime) now() time.Time          { return f.t }
func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestFrameClock(t *testing.T) {
	ft := newFakeTime()
	c := newFrameClock(ft.now)

	if c.take() {
		t.Fatal("take with nothing requested")
	}

	c.InvalidateDelayed(30 * time.Millisecond)
	ft.advance(29 * time.Millisecond)
	if c.take() {
		t.Fatal("take before the delay elapsed")
	}
	ft.advance(time.Millisecond)
	if !c.take() {
		t.Fatal("take not due after the delay")
	}
	if c.take() {
		t.Fatal("request consumed twice")
	}

	// An immediate request overrides a later one.
	c.InvalidateDelayed(time.Second)
	c.Invalidate()
	if !c.take() {
		t.Error("Invalidate did not make a repaint due now")
	}

	// A later request does not push back an earlier one.
	c.InvalidateDelayed(10 * time.Millisecond)
	c.InvalidateDelayed(500 * time.Millisecond)
	ft.advance(10 * time.Millisecond)
	if !c.take() {
		t.Error("earlier request lost")
	}

	if got := c.Now(); got != 40 {
		t.Errorf("Now = %d, want 40", got)
	}
	if got := c.uptime(); got != 40*time.Millisecond {
		t.Errorf("uptime = %v", got)
	}
}

func TestFrameClockDrivesCompositorToIdle(t *testing.T) {
	ft := newFakeTime()
	frames := newFrameClock(ft.now)
	comp := ripple.NewCompositor(ripple.DefaultOptions(), frames, frames)
	comp.OnResize(600, 600)

	comp.RequestEmit(10, 10)
	draws := 0
	for i := 0; i < 500; i++ {
		if frames.take() {
			comp.OnDraw(nopCanvas{})
			draws++
		}
		ft.advance(16 * time.Millisecond)
	}
	if comp.State() != ripple.Idle {
		t.Errorf("state = %v after 8s", comp.State())
	}
	// 2s at one repaint per 30ms, rounded up to 16ms display frames.
	if draws < 40 || draws > 70 {
		t.Errorf("draws = %d", draws)
	}
}

type nopCanvas struct{}

func (nopCanvas) DrawCircle(float64, float64, float64, ripple.Paint) {}

func samples(ps ...pointerSample) []pointerSample { return ps }

func TestPointerTrackerLifecycle(t *testing.T) {
	tr := newPointerTracker()

	evs := tr.step(samples(pointerSample{id: 0, point: point{50, 50}}), true, 1)
	if len(evs) != 1 || evs[0].Action != ripple.ActionDown || evs[0].X != 50 || evs[0].Time != 1 {
		t.Fatalf("press: %+v", evs)
	}

	if evs := tr.step(samples(pointerSample{id: 0, point: point{50, 50}}), true, 2); len(evs) != 0 {
		t.Fatalf("held still: %+v", evs)
	}

	evs = tr.step(samples(pointerSample{id: 0, point: point{60, 52}}), true, 3)
	if len(evs) != 1 || evs[0].Action != ripple.ActionMove || evs[0].X != 60 || evs[0].Y != 52 {
		t.Fatalf("drag: %+v", evs)
	}

	evs = tr.step(nil, true, 4)
	if len(evs) != 1 || evs[0].Action != ripple.ActionUp || evs[0].X != 60 {
		t.Fatalf("release: %+v", evs)
	}
	if len(tr.down) != 0 {
		t.Errorf("pointers still held: %v", tr.down)
	}
}

func TestPointerTrackerMultiTouchAndFocusLoss(t *testing.T) {
	tr := newPointerTracker()

	evs := tr.step(samples(
		pointerSample{id: 1, point: point{10, 10}},
		pointerSample{id: 2, point: point{90, 90}},
	), true, 0)
	if len(evs) != 2 || evs[0].ID != 1 || evs[1].ID != 2 {
		t.Fatalf("two touches: %+v", evs)
	}

	evs = tr.step(samples(pointerSample{id: 2, point: point{95, 90}}), true, 1)
	if len(evs) != 2 {
		t.Fatalf("one lifted, one moved: %+v", evs)
	}
	if evs[0].ID != 2 || evs[0].Action != ripple.ActionMove {
		t.Errorf("first event %+v, want move of 2", evs[0])
	}
	if evs[1].ID != 1 || evs[1].Action != ripple.ActionUp {
		t.Errorf("second event %+v, want up of 1", evs[1])
	}

	evs = tr.step(samples(pointerSample{id: 2, point: point{95, 90}}), false, 2)
	if len(evs) != 1 || evs[0].Action != ripple.ActionCancel || evs[0].ID != 2 {
		t.Fatalf("focus loss: %+v", evs)
	}
	if len(tr.down) != 0 {
		t.Errorf("pointers still held after cancel: %v", tr.down)
	}
}

func TestHandlePointerForwardsAndEmits(t *testing.T) {
	g := New(config.Default(), nil, nil)
	g.compositor.OnResize(600, 400)

	g.handlePointer(ripple.PointerEvent{X: 50, Y: 50, Action: ripple.ActionDown})
	g.handlePointer(ripple.PointerEvent{X: 53, Y: 50, Action: ripple.ActionMove})
	g.handlePointer(ripple.PointerEvent{X: 80, Y: 50, Action: ripple.ActionMove})
	g.handlePointer(ripple.PointerEvent{X: 80, Y: 50, Action: ripple.ActionUp})

	if g.backdrop.events != 4 {
		t.Errorf("surface saw %d events, want 4", g.backdrop.events)
	}
	c := g.backdrop.counts
	if c[ripple.ActionDown] != 1 || c[ripple.ActionMove] != 2 || c[ripple.ActionUp] != 1 {
		t.Errorf("counts = %v", c)
	}
	if g.backdrop.last.Action != ripple.ActionUp {
		t.Errorf("last = %+v", g.backdrop.last)
	}
	// The move by 3px is too close to the first wave.
	if n := g.compositor.Len(); n != 2 {
		t.Errorf("waves = %d, want 2", n)
	}
	if g.compositor.State() != ripple.Animating {
		t.Errorf("state = %v", g.compositor.State())
	}
}

func TestOpenBackground(t *testing.T) {
	g := New(config.Default(), nil, nil)
	if err := g.openBackground(); err != nil {
		t.Errorf("no dialog: %v", err)
	}

	g.openImage = func() (string, error) { return "", nil }
	if err := g.openBackground(); err != nil {
		t.Errorf("cancelled dialog: %v", err)
	}

	boom := errors.New("no display")
	g.openImage = func() (string, error) { return "", boom }
	if err := g.openBackground(); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}

	g.openImage = func() (string, error) { return "/nonexistent/readme.txt", nil }
	if err := g.openBackground(); err == nil {
		t.Error("loaded a .txt background")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{61 * time.Second, "01:01"},
		{12*time.Minute + 5*time.Second, "12:05"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
