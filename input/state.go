// Package input tracks pointer and keyboard state for a diagram.
//
// A backend (a browser canvas, a window, a test) reports host events
// through the dispatch methods (KeyDown, PointerMove, ...). State updates
// its bookkeeping and calls the user handler registered for that event.
// There is no queuing: every event is handled synchronously, in the order
// the backend reports it.
//
// For "down" events the state is updated before the handler runs; for
// "up" events the handler runs first, so it still sees the key or button
// as held.
package input

import (
	"strings"
	"sync"

	"github.com/antixdev/diagram/vec"
)

// Button identifies a pointer button, numbered as in DOM events.
type Button int

// Pointer buttons.
const (
	ButtonPrimary   Button = iota // usually the left button
	ButtonAuxiliary               // usually the wheel button
	ButtonSecondary               // usually the right button
	ButtonBack
	ButtonForward
)

// NumButtons is the number of tracked buttons.
const NumButtons = 5

// PointerEvent reports a pointer position relative to the surface and the
// button that changed, if any.
type PointerEvent struct {
	X, Y   float64
	Button Button
}

// KeyEvent reports a key by its DOM key name ("a", "Enter", "ArrowUp")
// together with the modifier state at the time of the event.
type KeyEvent struct {
	Key   string
	Shift bool
	Ctrl  bool
	Alt   bool
}

// PointerHandler is called for pointer events.
type PointerHandler func(PointerEvent)

// KeyHandler is called for key events.
type KeyHandler func(KeyEvent)

func nopPointer(PointerEvent) {}
func nopKey(KeyEvent)         {}

// State holds pointer and keyboard state. The zero value is not usable;
// create one with NewState. State is safe for concurrent use. Handlers
// are called without holding the lock, so they may query the State.
type State struct {
	mu sync.Mutex

	// bounds for pointer clamping; zero disables clamping
	width, height float64

	pointer  vec.Vec2
	previous vec.Vec2
	dragging bool
	drag     vec.Vec2
	buttons  [NumButtons]bool

	keys  map[string]bool
	shift bool
	ctrl  bool
	alt   bool

	onKeyDown KeyHandler
	onKeyUp   KeyHandler

	onPointerMove  PointerHandler
	onPointerDown  PointerHandler
	onPointerUp    PointerHandler
	onPointerClick PointerHandler
	onPointerEnter PointerHandler
	onPointerLeave PointerHandler
}

// NewState returns an empty State with no-op handlers and no bounds.
func NewState() *State {
	return &State{
		keys:           make(map[string]bool),
		onKeyDown:      nopKey,
		onKeyUp:        nopKey,
		onPointerMove:  nopPointer,
		onPointerDown:  nopPointer,
		onPointerUp:    nopPointer,
		onPointerClick: nopPointer,
		onPointerEnter: nopPointer,
		onPointerLeave: nopPointer,
	}
}

// SetBounds sets the area pointer positions are clamped to:
// [0, width-1] x [0, height-1]. Non-positive sizes disable clamping.
func (s *State) SetBounds(width, height int) {
	s.mu.Lock()
	s.width, s.height = float64(width), float64(height)
	s.mu.Unlock()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// normalizeKey maps a key name to its key matrix entry.
func normalizeKey(key string) string {
	return strings.ToLower(key)
}

func validButton(b Button) bool {
	return b >= 0 && int(b) < NumButtons
}
