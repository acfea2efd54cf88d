//go:build linux
// +build linux

package evdevlinux

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/leandrodaf/keypad-midi/sdk/contracts"
	"golang.org/x/sys/unix"
)

// readBatch is the number of events fetched per read call.
const readBatch = 64

type device struct {
	info contracts.DeviceInfo
	fd   int
}

// Source reads key events from every keyboard matching a glob. All devices are
// polled from the goroutine calling Run, so handlers never run concurrently.
type Source struct {
	logger   contracts.Logger
	pattern  string
	interval time.Duration

	mu        sync.Mutex
	devices   []device
	closeOnce sync.Once
}

// NewSource creates a Linux evdev key source from the bridge options.
func NewSource(options *contracts.BridgeOptions) (contracts.KeySource, error) {
	return &Source{
		logger:   options.Logger,
		pattern:  options.DeviceGlob,
		interval: options.DiscoveryInterval,
	}, nil
}

// Open waits until at least one keyboard exists and opens every match.
func (s *Source) Open(ctx context.Context) ([]contracts.DeviceInfo, error) {
	paths, err := Discover(ctx, s.pattern, s.interval, s.logger)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	infos := make([]contracts.DeviceInfo, 0, len(paths))
	for _, path := range paths {
		fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
		if err != nil {
			s.closeDevices()
			return nil, fmt.Errorf("%w: %s: %v", ErrOpenDevice, path, err)
		}
		info := contracts.DeviceInfo{Path: path, Name: filepath.Base(path)}
		s.devices = append(s.devices, device{info: info, fd: fd})
		infos = append(infos, info)
	}
	return infos, nil
}

// Run blocks in poll until a device is readable, then drains every ready
// device in order before waiting again. It returns nil once ctx is done and
// an error if a device fails or handle returns one.
func (s *Source) Run(ctx context.Context, handle contracts.KeyHandler) error {
	s.mu.Lock()
	devices := append([]device(nil), s.devices...)
	s.mu.Unlock()

	if len(devices) == 0 {
		return ErrNoDevices
	}

	var wake [2]int
	if err := unix.Pipe2(wake[:], unix.O_NONBLOCK|unix.O_CLOEXEC); err != nil {
		return fmt.Errorf("create wake pipe: %w", err)
	}
	woken := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		defer close(woken)
		_, _ = unix.Write(wake[1], []byte{0})
	})
	defer func() {
		// The pipe must outlive a wake-up that already started.
		if !stop() {
			<-woken
		}
		unix.Close(wake[0])
		unix.Close(wake[1])
	}()

	fds := make([]unix.PollFd, len(devices)+1)
	for i, d := range devices {
		fds[i] = unix.PollFd{Fd: int32(d.fd), Events: unix.POLLIN}
	}
	wakeIdx := len(devices)
	fds[wakeIdx] = unix.PollFd{Fd: int32(wake[0]), Events: unix.POLLIN}

	buf := make([]byte, readBatch*eventSize)
	for {
		if ctx.Err() != nil {
			return nil
		}

		if _, err := unix.Poll(fds, -1); err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return fmt.Errorf("poll keyboard devices: %w", err)
		}

		if fds[wakeIdx].Revents != 0 {
			return nil
		}

		for i, d := range devices {
			revents := fds[i].Revents
			if revents == 0 {
				continue
			}
			if revents&unix.POLLIN != 0 {
				if err := s.drain(d, buf, handle); err != nil {
					return err
				}
				continue
			}
			if revents&(unix.POLLERR|unix.POLLHUP|unix.POLLNVAL) != 0 {
				return fmt.Errorf("%w: %s", ErrDeviceClosed, d.info.Path)
			}
		}
	}
}

// drain reads until the device has no more queued events.
func (s *Source) drain(d device, buf []byte, handle contracts.KeyHandler) error {
	for {
		n, err := unix.Read(d.fd, buf)
		switch {
		case errors.Is(err, unix.EAGAIN):
			return nil
		case errors.Is(err, unix.EINTR):
			continue
		case err != nil:
			return fmt.Errorf("%w: %s: %v", ErrDeviceClosed, d.info.Path, err)
		case n == 0:
			return fmt.Errorf("%w: %s", ErrDeviceClosed, d.info.Path)
		}

		events := decodeEvents(buf[:n])
		for i := range events {
			ke, ok := toKeyEvent(&events[i], d.info.Path)
			if !ok {
				continue
			}
			if err := handle(ke); err != nil {
				return err
			}
		}
	}
}

// Close releases every opened device. Safe to call more than once.
func (s *Source) Close() error {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.closeDevices()
	})
	return nil
}

func (s *Source) closeDevices() {
	for _, d := range s.devices {
		if err := unix.Close(d.fd); err != nil {
			s.logger.Warn("Failed to close keyboard device",
				s.logger.Field().String("path", d.info.Path),
				s.logger.Field().Error("error", err))
		}
	}
	s.devices = nil
}
