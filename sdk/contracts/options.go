package contracts

import "time"

// Defaults applied when an option is not provided.
const (
	DefaultPortName          = "keypad-midi"
	DefaultDeviceGlob        = "/dev/input/by-id/*kbd"
	DefaultDiscoveryInterval = time.Second
	DefaultVelocity          = 64
)

// BridgeOptions defines the configuration options for the keyboard to MIDI bridge.
type BridgeOptions struct {
	Logger            Logger        // Logger for logging events and errors.
	LogLevel          LogLevel      // Level of logging to use.
	PortName          string        // Name of the virtual MIDI output port.
	DeviceGlob        string        // Glob matching keyboard device nodes.
	DiscoveryInterval time.Duration // Delay between discovery attempts while no keyboard exists.
	DefaultVelocity   uint8         // Velocity applied to notes sent without one.
}

// Option is a function that modifies BridgeOptions.
type Option func(*BridgeOptions)

// WithLogger sets the logger for the bridge.
func WithLogger(l Logger) Option {
	return func(opts *BridgeOptions) {
		opts.Logger = l
	}
}

// WithLogLevel sets the logging level for the bridge.
func WithLogLevel(level LogLevel) Option {
	return func(opts *BridgeOptions) {
		opts.LogLevel = level
	}
}

// WithPortName sets the name of the virtual MIDI output port.
func WithPortName(name string) Option {
	return func(opts *BridgeOptions) {
		opts.PortName = name
	}
}

// WithDeviceGlob sets the glob used to discover keyboard devices.
func WithDeviceGlob(pattern string) Option {
	return func(opts *BridgeOptions) {
		opts.DeviceGlob = pattern
	}
}

// WithDiscoveryInterval sets the retry delay used while no keyboard is present.
func WithDiscoveryInterval(d time.Duration) Option {
	return func(opts *BridgeOptions) {
		opts.DiscoveryInterval = d
	}
}

// WithDefaultVelocity sets the velocity used for notes that carry none.
func WithDefaultVelocity(v uint8) Option {
	return func(opts *BridgeOptions) {
		opts.DefaultVelocity = v
	}
}
