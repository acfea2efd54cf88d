package midivirtual

import (
	"errors"

	"github.com/leandrodaf/keypad-midi/sdk/contracts"
	gomidi "gitlab.com/gomidi/midi/v2"
)

// Error definitions for the virtual output port.
var (
	ErrOpenPort    = errors.New("error opening virtual MIDI port")
	ErrPortClosed  = errors.New("virtual MIDI port is closed")
	ErrInvalidNote = errors.New("note or velocity out of MIDI range")
)

// channel is the MIDI channel every note is sent on.
const channel = 0

// noteOnMessage builds the wire message, applying defaultVelocity when the
// note carries none.
func noteOnMessage(msg contracts.NoteOn, defaultVelocity uint8) (gomidi.Message, error) {
	velocity := defaultVelocity
	if msg.VelocitySet {
		velocity = msg.Velocity
	}
	if msg.Note > contracts.MaxNote || velocity > contracts.MaxVelocity {
		return nil, ErrInvalidNote
	}
	return gomidi.NoteOn(channel, msg.Note, velocity), nil
}
