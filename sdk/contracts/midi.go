package contracts

import "context"

// MIDI constants shared by the translator and the sinks.
const (
	MaxNote     = 127 // Highest valid MIDI note number.
	MaxVelocity = 127 // Highest valid MIDI velocity.
)

// NoteOn represents an outbound MIDI note-on message.
type NoteOn struct {
	Note        uint8 // Note is the MIDI note number (0-127).
	Velocity    uint8 // Velocity is only meaningful when VelocitySet is true.
	VelocitySet bool  // VelocitySet is false when the sink should apply its default velocity.
}

// Sink defines the destination for translated MIDI messages.
type Sink interface {
	Send(msg NoteOn) error // Sends a note-on message to the output port.
	Close() error          // Flushes and closes the output port.
}

// Bridge defines the lifecycle of a keyboard to MIDI bridge.
type Bridge interface {
	Run(ctx context.Context) error // Discovers devices and translates key events until ctx is done.
	Stop() error                   // Stops the bridge and releases devices and the MIDI port.
}
