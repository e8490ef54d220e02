package input

// KeyDown records key as held, copies the modifiers and then calls the
// key-down handler.
func (s *State) KeyDown(e KeyEvent) {
	s.mu.Lock()
	s.keys[normalizeKey(e.Key)] = true
	s.shift, s.ctrl, s.alt = e.Shift, e.Ctrl, e.Alt
	h := s.onKeyDown
	s.mu.Unlock()

	h(e)
}

// KeyUp calls the key-up handler, then records the key as released and
// clears all modifiers.
func (s *State) KeyUp(e KeyEvent) {
	s.mu.Lock()
	h := s.onKeyUp
	s.mu.Unlock()

	h(e)

	s.mu.Lock()
	s.keys[normalizeKey(e.Key)] = false
	s.shift, s.ctrl, s.alt = false, false, false
	s.mu.Unlock()
}

// PointerMove stores the new (clamped) pointer position, updates the drag
// delta while the primary button is down and then calls the move handler.
func (s *State) PointerMove(e PointerEvent) {
	s.mu.Lock()
	s.previous = s.pointer
	x, y := e.X, e.Y
	if s.width > 0 && s.height > 0 {
		x = clamp(x, 0, s.width-1)
		y = clamp(y, 0, s.height-1)
	}
	s.pointer.X, s.pointer.Y = x, y
	if s.dragging {
		s.drag = s.pointer.Sub(s.previous)
	}
	h := s.onPointerMove
	s.mu.Unlock()

	h(e)
}

// PointerDown records the button as held; the primary button starts a
// drag. It then calls the down handler.
func (s *State) PointerDown(e PointerEvent) {
	s.mu.Lock()
	if validButton(e.Button) {
		s.buttons[e.Button] = true
	}
	if e.Button == ButtonPrimary {
		s.dragging = true
	}
	h := s.onPointerDown
	s.mu.Unlock()

	h(e)
}

// PointerUp calls the up handler, then ends a drag on the primary button
// and records the button as released.
func (s *State) PointerUp(e PointerEvent) {
	s.mu.Lock()
	h := s.onPointerUp
	s.mu.Unlock()

	h(e)

	s.mu.Lock()
	if e.Button == ButtonPrimary {
		s.dragging = false
	}
	if validButton(e.Button) {
		s.buttons[e.Button] = false
	}
	s.mu.Unlock()
}

// PointerClick calls the click handler.
func (s *State) PointerClick(e PointerEvent) {
	s.mu.Lock()
	h := s.onPointerClick
	s.mu.Unlock()
	h(e)
}

// PointerEnter calls the enter handler.
func (s *State) PointerEnter(e PointerEvent) {
	s.mu.Lock()
	h := s.onPointerEnter
	s.mu.Unlock()
	h(e)
}

// PointerLeave calls the leave handler.
func (s *State) PointerLeave(e PointerEvent) {
	s.mu.Lock()
	h := s.onPointerLeave
	s.mu.Unlock()
	h(e)
}
