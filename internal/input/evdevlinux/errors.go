package evdevlinux

import "errors"

// Error definitions for device discovery and reading.
var (
	ErrNoDevices           = errors.New("no keyboard devices opened")
	ErrOpenDevice          = errors.New("error opening keyboard device")
	ErrDeviceClosed        = errors.New("keyboard device closed")
	ErrPlatformUnsupported = errors.New("keyboard input is only available on linux")
)
