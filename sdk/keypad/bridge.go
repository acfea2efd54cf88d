package keypad

import (
	"context"
	"sync"

	"github.com/leandrodaf/keypad-midi/sdk/contracts"
	"go.uber.org/multierr"
)

// bridge connects a key source to a MIDI sink through a Dispatcher.
type bridge struct {
	logger     contracts.Logger
	source     contracts.KeySource
	sink       contracts.Sink
	dispatcher *Dispatcher
	stopOnce   sync.Once
	stopErr    error
}

func newBridge(options *contracts.BridgeOptions, source contracts.KeySource, sink contracts.Sink) *bridge {
	return &bridge{
		logger:     options.Logger,
		source:     source,
		sink:       sink,
		dispatcher: NewDispatcher(options.Logger, sink),
	}
}

// Run waits for keyboards, then translates their key presses until ctx is
// done. Cancellation is not an error; device and sink failures are.
func (b *bridge) Run(ctx context.Context) error {
	b.logger.Info("Waiting for keyboard devices")
	devices, err := b.source.Open(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		b.logger.Error("Failed to open keyboard devices", b.logger.Field().Error("error", err))
		return err
	}

	for _, dev := range devices {
		b.logger.Info("Keyboard opened",
			b.logger.Field().String("name", dev.Name),
			b.logger.Field().String("path", dev.Path))
	}

	if err := b.source.Run(ctx, b.dispatcher.Handle); err != nil {
		b.logger.Error("Key translation stopped", b.logger.Field().Error("error", err))
		return err
	}
	b.logger.Info("Key translation stopped")
	return nil
}

// Stop closes the devices and the MIDI port. It only runs once.
func (b *bridge) Stop() error {
	b.stopOnce.Do(func() {
		b.stopErr = multierr.Combine(b.source.Close(), b.sink.Close())
	})
	return b.stopErr
}
