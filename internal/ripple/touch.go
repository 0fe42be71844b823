package ripple

// Action is the kind of a pointer event.
type Action int

const (
	ActionDown Action = iota
	ActionMove
	ActionUp
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// EmitsWave reports whether the host should start a wave for this action.
func (a Action) EmitsWave() bool {
	return a == ActionDown || a == ActionMove
}

// PointerEvent is one pointer sample. ID 0 is the mouse; touches use their
// own ids.
type PointerEvent struct {
	ID     int
	X, Y   float64
	Action Action
	Time   int64
}

// Dispatcher receives forwarded pointer events. Its result is ignored by
// the forwarder.
type Dispatcher func(ev PointerEvent) bool

// TouchForwarder passes raw pointer events through to a delegate surface.
type TouchForwarder struct {
	delegate Dispatcher
}

// SetDelegate sets the surface that receives events. nil stops forwarding.
func (f *TouchForwarder) SetDelegate(d Dispatcher) {
	f.delegate = d
}

// OnPointerEvent forwards ev unchanged and always reports it as not
// consumed, so other handlers still see it.
func (f *TouchForwarder) OnPointerEvent(ev PointerEvent) bool {
	if f.delegate != nil {
		f.delegate(ev)
	}
	return false
}
