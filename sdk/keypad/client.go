package keypad

import (
	"github.com/leandrodaf/keypad-midi/sdk/contracts"
)

// NewBridge creates a keyboard to MIDI bridge configured by opts.
// It applies default options, opens the virtual MIDI port and prepares the
// key source for the current operating system.
//
// opts ...contracts.Option: A variadic list of option functions to customize the bridge configuration.
//
// Returns:
//   - contracts.Bridge: An instance of the bridge.
//   - error: An error, if any occurred during the creation of the bridge.
func NewBridge(opts ...contracts.Option) (contracts.Bridge, error) {
	options, err := applyDefaultOptions(opts...)
	if err != nil {
		return nil, err
	}

	source, sink, err := NewDrivers(&options)
	if err != nil {
		return nil, err
	}

	return newBridge(&options, source, sink), nil
}
