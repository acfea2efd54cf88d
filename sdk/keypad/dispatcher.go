package keypad

import (
	"fmt"

	"github.com/leandrodaf/keypad-midi/internal/keymap"
	"github.com/leandrodaf/keypad-midi/internal/translate"
	"github.com/leandrodaf/keypad-midi/sdk/contracts"
)

// Dispatcher routes decoded key events through modifier tracking, key
// normalization and translation, and forwards resulting notes to the sink.
// Handle must be called from a single goroutine.
type Dispatcher struct {
	logger    contracts.Logger
	sink      contracts.Sink
	modifiers *translate.ModifierState
	machine   *translate.Machine
}

// NewDispatcher creates a dispatcher with no pending velocity entry and all
// modifiers released.
func NewDispatcher(logger contracts.Logger, sink contracts.Sink) *Dispatcher {
	return &Dispatcher{
		logger:    logger,
		sink:      sink,
		modifiers: translate.NewModifierState(),
		machine:   translate.NewMachine(),
	}
}

// Handle processes one key event. Only sink failures are returned.
func (d *Dispatcher) Handle(ev contracts.KeyEvent) error {
	if d.modifiers.IsModifier(ev.Code) &&
		(ev.State == contracts.KeyPressed || ev.State == contracts.KeyReleased) {
		d.modifiers.Set(ev.Code, ev.State == contracts.KeyPressed)
		d.logger.Debug("Modifier changed",
			d.logger.Field().String("key", ev.Code),
			d.logger.Field().Bool("held", d.modifiers.Held(ev.Code)))
		return nil
	}

	if ev.State != contracts.KeyPressed {
		return nil
	}

	code := keymap.Normalize(ev.Code)
	res := d.machine.Handle(code)
	if res.Outcome != translate.Sent {
		d.logIgnored(code, res)
		return nil
	}
	msg := res.Msg

	fields := []contracts.Field{d.logger.Field().Uint8("note", msg.Note)}
	if msg.VelocitySet {
		fields = append(fields, d.logger.Field().Uint8("velocity", msg.Velocity))
	}
	d.logger.Info("Sending note", fields...)

	if err := d.sink.Send(msg); err != nil {
		return fmt.Errorf("send note %d: %w", msg.Note, err)
	}
	return nil
}

// Modifiers returns which modifier keys are currently held.
func (d *Dispatcher) Modifiers() map[string]bool {
	return d.modifiers.Snapshot()
}

// logIgnored records why a key press produced no message.
func (d *Dispatcher) logIgnored(code string, res translate.Result) {
	switch res.Outcome {
	case translate.Dropped:
		d.logger.Debug("Velocity out of range, note dropped",
			d.logger.Field().Uint8("note", res.Msg.Note),
			d.logger.Field().Int("velocity", res.Velocity))
	case translate.Pending:
		d.logger.Debug("Awaiting velocity",
			d.logger.Field().Uint8("note", res.Msg.Note),
			d.logger.Field().String("digits", res.Digits))
	default:
		d.logger.Debug("Unmapped key", d.logger.Field().String("key", code))
	}
}
