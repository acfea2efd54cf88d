// Package translate turns canonical key identifiers into MIDI note-on
// messages.
//
// Most keys trigger a note directly. The arming keys (delete and F8) instead
// reserve a note and wait for three decimal digits giving its velocity; any
// other key aborts the entry and is then handled on its own.
package translate

import (
	"strconv"

	"github.com/leandrodaf/keypad-midi/sdk/contracts"
)

const velocityDigits = 3

// Outcome describes what one key press did.
type Outcome int

const (
	// Ignored means the key has no note and nothing was pending.
	Ignored Outcome = iota
	// Sent means Result.Msg should be sent.
	Sent
	// Pending means a velocity entry is armed and waiting for digits.
	Pending
	// Dropped means the entry completed with a velocity above 127.
	Dropped
)

func (o Outcome) String() string {
	switch o {
	case Sent:
		return "sent"
	case Pending:
		return "pending"
	case Dropped:
		return "dropped"
	default:
		return "ignored"
	}
}

// Result is the outcome of Handle.
type Result struct {
	Outcome Outcome
	// Msg is the message for Sent. For Pending only Msg.Note is set, the
	// note awaiting a velocity.
	Msg contracts.NoteOn
	// Digits holds the velocity digits collected so far when Pending.
	Digits string
	// Velocity is the rejected value when Dropped.
	Velocity int
}

// Machine holds the pending velocity entry. The zero value is ready to use.
// It is not safe for concurrent use; one goroutine must own it.
type Machine struct {
	armed   bool
	note    uint8
	digits  [velocityDigits]byte
	nDigits int
}

// NewMachine returns an unarmed machine.
func NewMachine() *Machine {
	return &Machine{}
}

// Handle consumes one key-down identifier and reports what it did.
func (m *Machine) Handle(code string) Result {
	key := Classify(code)

	if key.Kind == KindDigit && m.armed {
		m.digits[m.nDigits] = key.Char
		m.nDigits++
		if m.nDigits < velocityDigits {
			return m.pending()
		}
		note := m.note
		velocity, _ := strconv.Atoi(string(m.digits[:]))
		m.Reset()
		if velocity > contracts.MaxVelocity {
			return Result{Outcome: Dropped, Msg: contracts.NoteOn{Note: note}, Velocity: velocity}
		}
		return Result{
			Outcome: Sent,
			Msg:     contracts.NoteOn{Note: note, Velocity: uint8(velocity), VelocitySet: true},
		}
	}

	m.Reset()

	switch key.Kind {
	case KindArm:
		m.armed = true
		m.note = key.Note
		return m.pending()
	case KindFunction, KindDigit, KindChar:
		return Result{Outcome: Sent, Msg: contracts.NoteOn{Note: key.Note}}
	}
	return Result{Outcome: Ignored}
}

func (m *Machine) pending() Result {
	return Result{Outcome: Pending, Msg: contracts.NoteOn{Note: m.note}, Digits: m.Digits()}
}

// Reset abandons any pending velocity entry.
func (m *Machine) Reset() {
	m.armed = false
	m.note = 0
	m.nDigits = 0
}

// Armed reports the note awaiting a velocity, if one is pending.
func (m *Machine) Armed() (uint8, bool) {
	return m.note, m.armed
}

// Digits returns the velocity digits collected so far.
func (m *Machine) Digits() string {
	return string(m.digits[:m.nDigits])
}
