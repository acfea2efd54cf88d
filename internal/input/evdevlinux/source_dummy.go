//go:build !linux
// +build !linux

package evdevlinux

import (
	"context"

	"github.com/leandrodaf/keypad-midi/sdk/contracts"
)

type dummySource struct {
	logger contracts.Logger
}

// NewSource returns a source that refuses to start on non-Linux systems.
func NewSource(options *contracts.BridgeOptions) (contracts.KeySource, error) {
	options.Logger.Info("Using dummy key source for non-Linux system")
	return &dummySource{logger: options.Logger}, nil
}

func (s *dummySource) Open(ctx context.Context) ([]contracts.DeviceInfo, error) {
	s.logger.Warn("Open called on dummy key source")
	return nil, ErrPlatformUnsupported
}

func (s *dummySource) Run(ctx context.Context, handle contracts.KeyHandler) error {
	s.logger.Warn("Run called on dummy key source")
	return ErrPlatformUnsupported
}

func (s *dummySource) Close() error {
	return nil
}
