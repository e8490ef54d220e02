package input

// HandleKeyDown sets the key-down handler. nil restores the no-op.
func (s *State) HandleKeyDown(f KeyHandler) {
	s.setKey(&s.onKeyDown, f)
}

// HandleKeyUp sets the key-up handler. nil restores the no-op.
func (s *State) HandleKeyUp(f KeyHandler) {
	s.setKey(&s.onKeyUp, f)
}

// HandlePointerMove sets the pointer-move handler. nil restores the no-op.
func (s *State) HandlePointerMove(f PointerHandler) {
	s.setPointer(&s.onPointerMove, f)
}

// HandlePointerUp sets the pointer-up handler. nil restores the no-op.
func (s *State) HandlePointerUp(f PointerHandler) {
	s.setPointer(&s.onPointerUp, f)
}

// HandlePointerDown sets the pointer-down handler. nil restores the no-op.
func (s *State) HandlePointerDown(f PointerHandler) {
	s.setPointer(&s.onPointerDown, f)
}

// HandlePointerClick sets the click handler. nil restores the no-op.
func (s *State) HandlePointerClick(f PointerHandler) {
	s.setPointer(&s.onPointerClick, f)
}

// HandlePointerEnter sets the pointer-enter handler. nil restores the no-op.
func (s *State) HandlePointerEnter(f PointerHandler) {
	s.setPointer(&s.onPointerEnter, f)
}

// HandlePointerLeave sets the pointer-leave handler. nil restores the no-op.
func (s *State) HandlePointerLeave(f PointerHandler) {
	s.setPointer(&s.onPointerLeave, f)
}

func (s *State) setKey(dst *KeyHandler, f KeyHandler) {
	if f == nil {
		f = nopKey
	}
	s.mu.Lock()
	*dst = f
	s.mu.Unlock()
}

func (s *State) setPointer(dst *PointerHandler, f PointerHandler) {
	if f == nil {
		f = nopPointer
	}
	s.mu.Lock()
	*dst = f
	s.mu.Unlock()
}
