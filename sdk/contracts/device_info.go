package contracts

// DeviceInfo describes an opened keyboard-class input device.
type DeviceInfo struct {
	Path string // Device node the events are read from.
	Name string // Symlink name under the discovery directory.
}
