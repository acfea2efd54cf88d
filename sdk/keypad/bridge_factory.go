package keypad

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/leandrodaf/keypad-midi/internal/input/evdevlinux"
	"github.com/leandrodaf/keypad-midi/internal/midi/midivirtual"
	"github.com/leandrodaf/keypad-midi/sdk/contracts"
)

var (
	// ErrUnsupportedOS is returned when the operating system has no key source or MIDI sink.
	ErrUnsupportedOS = errors.New("unsupported operating system")
	// ErrInvalidOption is returned when an option value is out of range.
	ErrInvalidOption = errors.New("invalid bridge option")
)

// sourceInitializers maps OS names to key source initializers.
var sourceInitializers = map[string]func(*contracts.BridgeOptions) (contracts.KeySource, error){
	"linux": evdevlinux.NewSource, // evdev keyboards polled from /dev/input.
}

// sinkInitializers maps OS names to MIDI sink initializers. midivirtual also
// builds on darwin, but there is no key source there to pair it with.
var sinkInitializers = map[string]func(*contracts.BridgeOptions) (contracts.Sink, error){
	"linux": midivirtual.NewSink, // ALSA sequencer through rtmidi.
}

// NewDrivers initializes the key source and the MIDI sink for the current operating system.
// The source is created first so an unsupported OS never opens a MIDI port.
//
// opts *contracts.BridgeOptions: Configuration options for the bridge.
//
// Returns:
//   - contracts.KeySource: The key source for this OS.
//   - contracts.Sink: The opened MIDI sink.
//   - error: An error if the operating system is unsupported or if initialization fails.
func NewDrivers(opts *contracts.BridgeOptions) (contracts.KeySource, contracts.Sink, error) {
	return newDriversFor(runtime.GOOS, opts)
}

func newDriversFor(goos string, opts *contracts.BridgeOptions) (contracts.KeySource, contracts.Sink, error) {
	newSource, ok := sourceInitializers[goos]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s: no key source", ErrUnsupportedOS, goos)
	}
	newSink, ok := sinkInitializers[goos]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %s: no MIDI sink", ErrUnsupportedOS, goos)
	}

	source, err := newSource(opts)
	if err != nil {
		return nil, nil, err
	}
	sink, err := newSink(opts)
	if err != nil {
		_ = source.Close()
		return nil, nil, err
	}
	return source, sink, nil
}
