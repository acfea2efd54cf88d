package translate

// ModifierState tracks which modifier keys are held. Translation never reads
// it; it is kept for diagnostics.
type ModifierState struct {
	held map[string]bool
}

// NewModifierState returns a state with all six modifiers released.
func NewModifierState() *ModifierState {
	return &ModifierState{held: map[string]bool{
		"KEY_LEFTALT":    false,
		"KEY_RIGHTALT":   false,
		"KEY_LEFTSHIFT":  false,
		"KEY_RIGHTSHIFT": false,
		"KEY_LEFTCTRL":   false,
		"KEY_RIGHTCTRL":  false,
	}}
}

// IsModifier reports whether code is one of the tracked modifiers.
func (s *ModifierState) IsModifier(code string) bool {
	_, ok := s.held[code]
	return ok
}

// Set records a press or release. Unknown codes are ignored.
func (s *ModifierState) Set(code string, held bool) {
	if s.IsModifier(code) {
		s.held[code] = held
	}
}

// Held reports whether the modifier is currently down.
func (s *ModifierState) Held(code string) bool {
	return s.held[code]
}

// Snapshot returns a copy of the current state.
func (s *ModifierState) Snapshot() map[string]bool {
	out := make(map[string]bool, len(s.held))
	for k, v := range s.held {
		out[k] = v
	}
	return out
}
