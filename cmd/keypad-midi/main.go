package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/leandrodaf/keypad-midi/internal/logger"
	"github.com/leandrodaf/keypad-midi/sdk/contracts"
	"github.com/leandrodaf/keypad-midi/sdk/keypad"
)

const logLevelEnv = "KEYPAD_MIDI_LOG_LEVEL"

var newBridge = keypad.NewBridge

func main() {
	os.Exit(run(os.Args, os.Stdout))
}

// run starts the bridge and blocks until it stops, returning the exit code.
func run(args []string, stdout io.Writer) int {
	if len(args) > 1 {
		fmt.Fprintln(stdout, "usage: keypad-midi")
		return 0
	}

	log := logger.NewStandardLogger()
	defer func() { _ = log.Sync() }()

	level := contracts.InfoLevel
	if name := os.Getenv(logLevelEnv); name != "" {
		parsed, err := contracts.ParseLogLevel(name)
		if err != nil {
			log.Warn("Ignoring log level", log.Field().String("env", logLevelEnv), log.Field().Error("error", err))
		} else {
			level = parsed
		}
	}

	bridge, err := newBridge(
		contracts.WithLogger(log),
		contracts.WithLogLevel(level),
	)
	if err != nil {
		log.Error("Failed to initialize keypad bridge", log.Field().Error("error", err))
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := bridge.Run(ctx)
	if err := bridge.Stop(); err != nil {
		log.Error("Failed to release devices", log.Field().Error("error", err))
	}
	if runErr != nil {
		log.Error("Keypad bridge stopped", log.Field().Error("error", runErr))
		return 1
	}
	return 0
}
