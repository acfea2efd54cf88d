package keypad

import (
	"context"
	"errors"

	"github.com/leandrodaf/keypad-midi/internal/logger"
	"github.com/leandrodaf/keypad-midi/sdk/contracts"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingSink struct {
	sent     []contracts.NoteOn
	sendErr  error
	closeErr error
	closed   int
}

func (s *recordingSink) Send(msg contracts.NoteOn) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSink) Close() error {
	s.closed++
	return s.closeErr
}

// scriptedSource replays events through the handler, then blocks until ctx is done.
type scriptedSource struct {
	devices  []contracts.DeviceInfo
	openErr  error
	events   []contracts.KeyEvent
	closeErr error
	closed   int
}

func (s *scriptedSource) Open(ctx context.Context) ([]contracts.DeviceInfo, error) {
	if s.openErr != nil {
		return nil, s.openErr
	}
	if len(s.devices) == 0 {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.devices, nil
}

func (s *scriptedSource) Run(ctx context.Context, handle contracts.KeyHandler) error {
	for _, ev := range s.events {
		if err := handle(ev); err != nil {
			return err
		}
	}
	<-ctx.Done()
	return nil
}

func (s *scriptedSource) Close() error {
	s.closed++
	return s.closeErr
}

var errSinkGone = errors.New("sink gone")

func newObservedLogger() (contracts.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.NewFromCore(core), logs
}

func press(code string) contracts.KeyEvent {
	return contracts.KeyEvent{Device: "/dev/input/by-id/test-kbd", Code: code, State: contracts.KeyPressed}
}

func release(code string) contracts.KeyEvent {
	return contracts.KeyEvent{Device: "/dev/input/by-id/test-kbd", Code: code, State: contracts.KeyReleased}
}

func repeat(code string) contracts.KeyEvent {
	return contracts.KeyEvent{Device: "/dev/input/by-id/test-kbd", Code: code, State: contracts.KeyRepeated}
}
