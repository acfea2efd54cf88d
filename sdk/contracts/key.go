package contracts

import "context"

// KeyState is the transition carried by a key event.
type KeyState int32

const (
	// KeyReleased is reported when a key goes up.
	KeyReleased KeyState = 0
	// KeyPressed is reported when a key goes down.
	KeyPressed KeyState = 1
	// KeyRepeated is reported by the kernel auto-repeat while a key is held.
	KeyRepeated KeyState = 2
)

// String returns a short name for the state.
func (s KeyState) String() string {
	switch s {
	case KeyReleased:
		return "released"
	case KeyPressed:
		return "pressed"
	case KeyRepeated:
		return "repeated"
	}
	return "unknown"
}

// KeyEvent is a decoded key transition.
type KeyEvent struct {
	Device string   // Path of the device that produced the event.
	Code   string   // Symbolic key identifier, e.g. "KEY_DELETE".
	State  KeyState // Transition state.
}

// KeyHandler consumes key events one at a time. A returned error stops the source.
type KeyHandler func(KeyEvent) error

// KeySource defines a provider of key events from one or more input devices.
type KeySource interface {
	Open(ctx context.Context) ([]DeviceInfo, error)   // Waits until at least one device is available and opens all of them.
	Run(ctx context.Context, handle KeyHandler) error // Delivers events to handle serially until ctx is done or a device fails.
	Close() error                                     // Closes every opened device.
}
