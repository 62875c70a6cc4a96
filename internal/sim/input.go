package sim

// EventType classifies input delivered by a frontend.
type EventType int

const (
	PointerDown EventType = iota
	PointerUp
	PointerMove
	KeyUp
)

// Key identifies the keys the simulation reacts to.
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyLeft
	KeyRight
	KeyClear
	KeyRandom
)

// Event is one input event. X and Y are pixel coordinates for pointer
// events; Key is set for KeyUp.
type Event struct {
	Type EventType
	X, Y int
	Key  Key
}

// HandleEvent applies one input event. Clicking or dragging with the pointer
// held paints cells, space toggles pause, left/right step once while paused,
// C clears and R reseeds.
func (l *Life) HandleEvent(ev Event) {
	switch ev.Type {
	case PointerDown:
		l.pointerDown = true
		l.SetAt(ev.X, ev.Y)
	case PointerUp:
		l.pointerDown = false
	case PointerMove:
		if l.pointerDown {
			l.SetAt(ev.X, ev.Y)
		}
	case KeyUp:
		l.handleKey(ev.Key)
	}
}

func (l *Life) handleKey(k Key) {
	switch k {
	case KeySpace:
		l.TogglePaused()
	case KeyLeft, KeyRight:
		if l.paused {
			l.ForceUpdate()
		}
	case KeyClear:
		l.Clear()
	case KeyRandom:
		l.Random()
	}
}

// Tick drains events in order and then runs one regular update. The caller
// draws afterwards.
func (l *Life) Tick(events []Event) {
	for _, ev := range events {
		l.HandleEvent(ev)
	}
	l.Update()
}
