package input

import "github.com/antixdev/diagram/vec"

// KeyHeld reports whether the named key is down. Key names are compared
// case-insensitively.
func (s *State) KeyHeld(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[normalizeKey(key)]
}

// ShiftHeld reports whether shift was down at the last key press.
func (s *State) ShiftHeld() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shift
}

// CtrlHeld reports whether ctrl was down at the last key press.
func (s *State) CtrlHeld() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl
}

// AltHeld reports whether alt was down at the last key press.
func (s *State) AltHeld() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alt
}

// MouseX returns the last pointer X position.
func (s *State) MouseX() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pointer.X
}

// MouseY returns the last pointer Y position.
func (s *State) MouseY() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pointer.Y
}

// MousePosition returns the last pointer position.
func (s *State) MousePosition() vec.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pointer
}

// PreviousPosition returns the pointer position before the last move.
func (s *State) PreviousPosition() vec.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previous
}

// ButtonHeld reports whether button b is down.
func (s *State) ButtonHeld(b Button) bool {
	if !validButton(b) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buttons[b]
}

// Dragging reports whether the primary button is down.
func (s *State) Dragging() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dragging
}

// DragDelta returns the pointer movement of the last move made while
// dragging. It is not reset when the drag ends.
func (s *State) DragDelta() vec.Vec2 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drag
}
