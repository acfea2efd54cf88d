package keypad

import (
	"fmt"

	"github.com/leandrodaf/keypad-midi/internal/logger"
	"github.com/leandrodaf/keypad-midi/sdk/contracts"
)

// applyDefaultOptions sets default values for BridgeOptions if not explicitly provided.
//
// opts ...contracts.Option: A variadic list of option functions that can modify BridgeOptions.
//
// Returns:
//   - contracts.BridgeOptions: A structure containing the finalized options with defaults applied.
//   - error: An error if an option holds a value outside its valid range.
func applyDefaultOptions(opts ...contracts.Option) (contracts.BridgeOptions, error) {
	options := &contracts.BridgeOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.Logger == nil {
		options.Logger = logger.NewZapLogger()
	}
	if options.PortName == "" {
		options.PortName = contracts.DefaultPortName
	}
	if options.DeviceGlob == "" {
		options.DeviceGlob = contracts.DefaultDeviceGlob
	}
	if options.DiscoveryInterval <= 0 {
		options.DiscoveryInterval = contracts.DefaultDiscoveryInterval
	}
	if options.DefaultVelocity == 0 {
		options.DefaultVelocity = contracts.DefaultVelocity
	}
	if options.DefaultVelocity > contracts.MaxVelocity {
		return contracts.BridgeOptions{}, fmt.Errorf("%w: default velocity %d", ErrInvalidOption, options.DefaultVelocity)
	}

	options.Logger.SetLevel(options.LogLevel)
	return *options, nil
}
