package keypad

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leandrodaf/keypad-midi/sdk/contracts"
)

func newTestBridge(source contracts.KeySource, sink contracts.Sink) *bridge {
	log, _ := newObservedLogger()
	return newBridge(&contracts.BridgeOptions{Logger: log}, source, sink)
}

func TestBridgeRunTranslatesUntilCancelled(t *testing.T) {
	source := &scriptedSource{
		devices: []contracts.DeviceInfo{{Path: "/dev/input/by-id/test-kbd", Name: "test-kbd"}},
		events: []contracts.KeyEvent{
			press("KEY_DELETE"), press("KEY_0"), press("KEY_5"), press("KEY_0"),
			press("KEY_F3"),
		},
	}
	sink := &recordingSink{}
	b := newTestBridge(source, sink)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- b.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	assertSent(t, sink,
		contracts.NoteOn{Note: 108, Velocity: 50, VelocitySet: true},
		contracts.NoteOn{Note: 'a' + 3},
	)
}

func TestBridgeRunCancelledWhileWaitingForDevices(t *testing.T) {
	b := newTestBridge(&scriptedSource{}, &recordingSink{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := b.Run(ctx); err != nil {
		t.Fatalf("Run returned %v, want nil on cancellation", err)
	}
}

func TestBridgeRunOpenError(t *testing.T) {
	openErr := errors.New("permission denied")
	b := newTestBridge(&scriptedSource{openErr: openErr}, &recordingSink{})

	if err := b.Run(context.Background()); !errors.Is(err, openErr) {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestBridgeRunSinkFailureIsFatal(t *testing.T) {
	source := &scriptedSource{
		devices: []contracts.DeviceInfo{{Path: "/dev/input/by-id/test-kbd", Name: "test-kbd"}},
		events:  []contracts.KeyEvent{press("KEY_F1")},
	}
	b := newTestBridge(source, &recordingSink{sendErr: errSinkGone})

	if err := b.Run(context.Background()); !errors.Is(err, errSinkGone) {
		t.Fatalf("expected sink error, got %v", err)
	}
}

func TestBridgeStopClosesOnce(t *testing.T) {
	closeErr := errors.New("close failed")
	source := &scriptedSource{closeErr: closeErr}
	sink := &recordingSink{}
	b := newTestBridge(source, sink)

	if err := b.Stop(); !errors.Is(err, closeErr) {
		t.Fatalf("expected close error, got %v", err)
	}
	if err := b.Stop(); !errors.Is(err, closeErr) {
		t.Fatalf("second Stop returned %v", err)
	}
	if source.closed != 1 || sink.closed != 1 {
		t.Errorf("closed source %d times and sink %d times, want 1 each", source.closed, sink.closed)
	}
}
