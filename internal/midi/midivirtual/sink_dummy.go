//go:build !linux && !darwin
// +build !linux,!darwin

package midivirtual

import (
	"fmt"

	"github.com/leandrodaf/keypad-midi/sdk/contracts"
)

type dummySink struct {
	logger contracts.Logger
}

// NewSink initializes a dummy sink for systems without virtual MIDI ports.
func NewSink(options *contracts.BridgeOptions) (contracts.Sink, error) {
	options.Logger.Info("Using dummy MIDI sink: virtual ports are not available on this platform")
	return &dummySink{logger: options.Logger}, nil
}

// Send logs a warning and returns an error indicating that virtual ports are unavailable.
func (s *dummySink) Send(msg contracts.NoteOn) error {
	s.logger.Warn("Send called on dummy MIDI sink")
	return fmt.Errorf("%w: virtual MIDI ports are not available on this platform", ErrOpenPort)
}

// Close does nothing.
func (s *dummySink) Close() error {
	return nil
}
