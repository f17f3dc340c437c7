// Package pad reads a Linux gamepad straight from its evdev node, for handhelds
// where SDL does not see the built-in controls.
package pad

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/holoplot/go-evdev"
	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/sevengears/gearmenu/pkg/gearmenu/input"
	"go.uber.org/atomic"
)

var (
	ErrClosed       = errors.New("pad reader closed")
	ErrCloseTimeout = errors.New("pad read loop did not stop")
)

// closeTimeout bounds the wait for the read loop after the device is closed. A node
// that cannot be polled keeps ReadOne blocked; the goroutine is then abandoned.
const closeTimeout = 500 * time.Millisecond

// Reader folds key and hat events into held states. The read loop runs on its own
// goroutine; Snapshot may be called from the frame loop at any time.
type Reader struct {
	device  *evdev.InputDevice
	keys    map[evdev.EvCode]constants.VirtualButton
	logger  *slog.Logger
	held    [constants.VirtualButtonCount]atomic.Bool
	running atomic.Bool
	err     atomic.Error
	done    chan struct{}
}

func newReader(keys map[evdev.EvCode]constants.VirtualButton, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{
		keys:   keys,
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Open opens the device at path and starts reading it.
func Open(path string, keys map[evdev.EvCode]constants.VirtualButton, logger *slog.Logger) (*Reader, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening evdev device %s: %w", path, err)
	}

	r := newReader(keys, logger)
	r.device = device

	name, _ := device.Name()
	r.logger.Info("Reading gamepad from evdev", "path", path, "name", name)

	r.running.Store(true)
	go r.loop()
	return r, nil
}

func (r *Reader) loop() {
	defer close(r.done)

	for {
		event, err := r.device.ReadOne()
		if err != nil {
			if r.running.Load() {
				r.logger.Error("Evdev read failed, gamepad input stopped", "error", err)
				r.err.Store(err)
			}
			r.release()
			return
		}
		r.apply(event)
	}
}

func (r *Reader) apply(event *evdev.InputEvent) {
	switch event.Type {
	case evdev.EV_KEY:
		if button, ok := r.keys[event.Code]; ok && button.Valid() {
			// 1 is press, 2 autorepeat, 0 release.
			r.held[button].Store(event.Value != 0)
		}
	case evdev.EV_ABS:
		switch event.Code {
		case evdev.ABS_HAT0X:
			r.held[constants.VirtualButtonLeft].Store(event.Value < 0)
			r.held[constants.VirtualButtonRight].Store(event.Value > 0)
		case evdev.ABS_HAT0Y:
			r.held[constants.VirtualButtonUp].Store(event.Value < 0)
			r.held[constants.VirtualButtonDown].Store(event.Value > 0)
		}
	}
}

func (r *Reader) release() {
	for i := range r.held {
		r.held[i].Store(false)
	}
}

func (r *Reader) Snapshot() input.Snapshot {
	var s input.Snapshot
	for i := range r.held {
		s.Set(constants.VirtualButton(i), r.held[i].Load())
	}
	return s
}

// Err returns the error that stopped the read loop, if any.
func (r *Reader) Err() error {
	return r.err.Load()
}

func (r *Reader) Close() error {
	if !r.running.CompareAndSwap(true, false) {
		return ErrClosed
	}

	err := r.device.Close()
	if !r.wait(closeTimeout) {
		r.release()
		return ErrCloseTimeout
	}
	return err
}

// wait reports whether the read loop exited within timeout.
func (r *Reader) wait(timeout time.Duration) bool {
	select {
	case <-r.done:
		return true
	case <-time.After(timeout):
		return false
	}
}
