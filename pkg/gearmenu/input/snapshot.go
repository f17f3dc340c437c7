// Package input describes per-frame button state and edge detection between frames.
package input

import "github.com/sevengears/gearmenu/pkg/gearmenu/constants"

// Snapshot records which virtual buttons are held during one frame.
type Snapshot [constants.VirtualButtonCount]bool

// SnapshotOf builds a snapshot with the given buttons held.
func SnapshotOf(buttons ...constants.VirtualButton) Snapshot {
	var s Snapshot
	for _, b := range buttons {
		s.Set(b, true)
	}
	return s
}

func (s *Snapshot) Set(button constants.VirtualButton, held bool) {
	if !button.Valid() {
		return
	}
	s[button] = held
}

func (s Snapshot) Held(button constants.VirtualButton) bool {
	if !button.Valid() {
		return false
	}
	return s[button]
}

// Any reports whether at least one button is held.
func (s Snapshot) Any() bool {
	for _, held := range s {
		if held {
			return true
		}
	}
	return false
}

// Merge returns the union of the held buttons of s and other.
func (s Snapshot) Merge(other Snapshot) Snapshot {
	for i := range s {
		s[i] = s[i] || other[i]
	}
	return s
}

// Pressed reports a rising edge: button held now but not on the previous frame.
func Pressed(current, previous Snapshot, button constants.VirtualButton) bool {
	return current.Held(button) && !previous.Held(button)
}

// Released reports a falling edge.
func Released(current, previous Snapshot, button constants.VirtualButton) bool {
	return !current.Held(button) && previous.Held(button)
}

// Frame pairs the current and previous snapshots handed to Update calls.
type Frame struct {
	Current  Snapshot
	Previous Snapshot
}

func (f Frame) Pressed(button constants.VirtualButton) bool {
	return Pressed(f.Current, f.Previous, button)
}

func (f Frame) Released(button constants.VirtualButton) bool {
	return Released(f.Current, f.Previous, button)
}

// Advance shifts the current snapshot into the previous slot and installs next.
func (f *Frame) Advance(next Snapshot) {
	f.Previous = f.Current
	f.Current = next
}
