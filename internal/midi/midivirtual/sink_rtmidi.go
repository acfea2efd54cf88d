//go:build linux || darwin
// +build linux darwin

package midivirtual

import (
	"fmt"
	"sync"

	"github.com/leandrodaf/keypad-midi/sdk/contracts"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// Sink owns a virtual MIDI output port for the lifetime of the process.
type Sink struct {
	logger          contracts.Logger
	defaultVelocity uint8

	mu     sync.Mutex
	drv    *rtmididrv.Driver
	out    drivers.Out
	send   func(gomidi.Message) error
	closed bool
}

// NewSink opens the virtual output port named in the options.
func NewSink(options *contracts.BridgeOptions) (contracts.Sink, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("%w: rtmidi: %v", ErrOpenPort, err)
	}

	out, err := drv.OpenVirtualOut(options.PortName)
	if err != nil {
		_ = drv.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenPort, options.PortName, err)
	}

	send, err := gomidi.SendTo(out)
	if err != nil {
		_ = out.Close()
		_ = drv.Close()
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenPort, options.PortName, err)
	}

	options.Logger.Info("Virtual MIDI port opened",
		options.Logger.Field().String("port", options.PortName))

	return &Sink{
		logger:          options.Logger,
		defaultVelocity: options.DefaultVelocity,
		drv:             drv,
		out:             out,
		send:            send,
	}, nil
}

// Send writes one note-on message to the port.
func (s *Sink) Send(msg contracts.NoteOn) error {
	wire, err := noteOnMessage(msg, s.defaultVelocity)
	if err != nil {
		return fmt.Errorf("note %d: %w", msg.Note, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrPortClosed
	}
	if err := s.send(wire); err != nil {
		return fmt.Errorf("send %s: %w", wire, err)
	}
	return nil
}

// Close closes the port, then the driver.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var firstErr error
	if err := s.out.Close(); err != nil {
		firstErr = fmt.Errorf("close port: %w", err)
	}
	if err := s.drv.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("close driver: %w", err)
	}
	s.logger.Info("Virtual MIDI port closed")
	return firstErr
}
