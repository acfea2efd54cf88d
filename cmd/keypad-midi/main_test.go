package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/leandrodaf/keypad-midi/sdk/contracts"
)

func stubBridge(t *testing.T, fn func(...contracts.Option) (contracts.Bridge, error)) {
	t.Helper()
	orig := newBridge
	newBridge = fn
	t.Cleanup(func() { newBridge = orig })
}

func TestRunWithArgumentsPrintsUsage(t *testing.T) {
	stubBridge(t, func(...contracts.Option) (contracts.Bridge, error) {
		t.Fatal("bridge constructed despite arguments")
		return nil, nil
	})

	for _, args := range [][]string{
		{"keypad-midi", "x"},
		{"keypad-midi", "--help"},
		{"keypad-midi", "a", "b"},
	} {
		var buf bytes.Buffer
		if code := run(args, &buf); code != 0 {
			t.Errorf("%v: exit code %d, want 0", args, code)
		}
		if got := buf.String(); got != "usage: keypad-midi\n" {
			t.Errorf("%v: printed %q", args, got)
		}
	}
}

func TestRunBridgeInitFailure(t *testing.T) {
	stubBridge(t, func(...contracts.Option) (contracts.Bridge, error) {
		return nil, errors.New("no sequencer")
	})

	var buf bytes.Buffer
	if code := run([]string{"keypad-midi"}, &buf); code != 1 {
		t.Errorf("exit code %d, want 1", code)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}
