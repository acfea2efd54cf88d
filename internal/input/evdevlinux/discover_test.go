package evdevlinux

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/leandrodaf/keypad-midi/internal/logger"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDiscoverFindsMatches(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"usb-b-event-kbd", "usb-a-event-kbd", "usb-a-event-mouse"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	core, _ := observer.New(zapcore.DebugLevel)
	paths, err := Discover(context.Background(), filepath.Join(dir, "*kbd"), time.Millisecond, logger.NewFromCore(core))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	want := []string{filepath.Join(dir, "usb-a-event-kbd"), filepath.Join(dir, "usb-b-event-kbd")}
	if len(paths) != len(want) {
		t.Fatalf("Discover returned %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("paths[%d] = %s, want %s", i, paths[i], want[i])
		}
	}
}

func TestDiscoverRetriesUntilDeviceAppears(t *testing.T) {
	dir := t.TempDir()
	core, logs := observer.New(zapcore.DebugLevel)

	go func() {
		time.Sleep(30 * time.Millisecond)
		_ = os.WriteFile(filepath.Join(dir, "late-kbd"), nil, 0o644)
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	paths, err := Discover(ctx, filepath.Join(dir, "*kbd"), 5*time.Millisecond, logger.NewFromCore(core))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "late-kbd" {
		t.Fatalf("Discover returned %v", paths)
	}
	if logs.FilterMessage("No keyboard found, waiting").Len() == 0 {
		t.Error("expected at least one retry to be logged")
	}
}

func TestDiscoverStopsOnCancel(t *testing.T) {
	core, _ := observer.New(zapcore.DebugLevel)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := Discover(ctx, filepath.Join(t.TempDir(), "*kbd"), 5*time.Millisecond, logger.NewFromCore(core))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestDiscoverBadPattern(t *testing.T) {
	core, _ := observer.New(zapcore.DebugLevel)
	_, err := Discover(context.Background(), "[", time.Millisecond, logger.NewFromCore(core))
	if !errors.Is(err, filepath.ErrBadPattern) {
		t.Fatalf("expected ErrBadPattern, got %v", err)
	}
}
