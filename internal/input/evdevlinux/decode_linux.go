//go:build linux
// +build linux

package evdevlinux

import (
	"bytes"
	"encoding/binary"

	"github.com/holoplot/go-evdev"
	"github.com/leandrodaf/keypad-midi/sdk/contracts"
)

// eventSize is the size of one kernel input_event record.
var eventSize = binary.Size(evdev.InputEvent{})

// decodeEvents splits a read buffer into input events. The kernel only hands
// out whole records; trailing bytes are ignored.
func decodeEvents(buf []byte) []evdev.InputEvent {
	n := len(buf) / eventSize
	events := make([]evdev.InputEvent, n)
	r := bytes.NewReader(buf[:n*eventSize])
	for i := range events {
		if err := binary.Read(r, binary.NativeEndian, &events[i]); err != nil {
			return events[:i]
		}
	}
	return events
}

// toKeyEvent keeps EV_KEY events with a known transition state.
func toKeyEvent(ev *evdev.InputEvent, device string) (contracts.KeyEvent, bool) {
	if ev.Type != evdev.EV_KEY {
		return contracts.KeyEvent{}, false
	}

	state := contracts.KeyState(ev.Value)
	switch state {
	case contracts.KeyReleased, contracts.KeyPressed, contracts.KeyRepeated:
	default:
		return contracts.KeyEvent{}, false
	}

	return contracts.KeyEvent{
		Device: device,
		Code:   ev.CodeName(),
		State:  state,
	}, true
}
