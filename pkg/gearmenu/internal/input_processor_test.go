package internal

import (
	"testing"

	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/sevengears/gearmenu/pkg/gearmenu/input"
	"github.com/veandco/go-sdl2/sdl"
)

func keyEvent(down bool, sym sdl.Keycode, repeat uint8) *sdl.KeyboardEvent {
	e := &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sym}, Repeat: repeat}
	if down {
		e.Type = sdl.KEYDOWN
	}
	return e
}

func padEvent(down bool, button uint8) *sdl.ControllerButtonEvent {
	e := &sdl.ControllerButtonEvent{Type: sdl.CONTROLLERBUTTONUP, Button: button}
	if down {
		e.Type = sdl.CONTROLLERBUTTONDOWN
	}
	return e
}

func TestProcessorHeldAcrossSources(t *testing.T) {
	right := constants.VirtualButtonRight
	dpadRight := uint8(sdl.CONTROLLER_BUTTON_DPAD_RIGHT)

	ip := NewInputProcessor(DefaultInputMapping())
	var f input.Frame
	presses := 0
	step := func(event sdl.Event) {
		ip.ProcessSDLEvent(event)
		f.Advance(ip.Snapshot())
		if f.Pressed(right) {
			presses++
		}
	}

	step(keyEvent(true, sdl.K_RIGHT, 0))
	step(padEvent(true, dpadRight))
	step(padEvent(false, dpadRight))
	if !ip.Snapshot().Held(right) {
		t.Fatal("Right released by the pad while the keyboard still holds it")
	}
	step(keyEvent(true, sdl.K_RIGHT, 1))
	step(keyEvent(false, sdl.K_RIGHT, 0))

	if presses != 1 {
		t.Errorf("Right pressed %d times, want exactly once", presses)
	}
	if ip.Snapshot().Held(right) {
		t.Error("Right still held after every source released it")
	}
}

func TestProcessorIgnoresKeyRepeat(t *testing.T) {
	ip := NewInputProcessor(DefaultInputMapping())

	ip.ProcessSDLEvent(keyEvent(true, sdl.K_a, 1))
	if ip.Snapshot().Held(constants.VirtualButtonA) {
		t.Error("a repeated key event must not change held state")
	}
}

func TestProcessorAxis(t *testing.T) {
	mapping := DefaultInputMapping()
	mapping.JoystickAxisMap[0] = JoystickAxisMapping{
		PositiveButton: constants.VirtualButtonRight,
		NegativeButton: constants.VirtualButtonLeft,
		Threshold:      8000,
	}
	ip := NewInputProcessor(mapping)

	tests := []struct {
		value     int16
		wantRight bool
		wantLeft  bool
	}{
		{value: 20000, wantRight: true},
		{value: 100},
		{value: -20000, wantLeft: true},
		{value: 8000},
	}

	for _, tt := range tests {
		ip.ProcessSDLEvent(&sdl.ControllerAxisEvent{Type: sdl.CONTROLLERAXISMOTION, Axis: 0, Value: tt.value})
		held := ip.Snapshot()
		if held.Held(constants.VirtualButtonRight) != tt.wantRight || held.Held(constants.VirtualButtonLeft) != tt.wantLeft {
			t.Errorf("axis %d: right=%v left=%v, want right=%v left=%v", tt.value,
				held.Held(constants.VirtualButtonRight), held.Held(constants.VirtualButtonLeft), tt.wantRight, tt.wantLeft)
		}
	}
}

func TestProcessorHatDiagonal(t *testing.T) {
	ip := NewInputProcessor(DefaultInputMapping())

	ip.ProcessSDLEvent(&sdl.JoyHatEvent{Type: sdl.JOYHATMOTION, Hat: 0, Value: sdl.HAT_RIGHTUP})
	held := ip.Snapshot()
	if !held.Held(constants.VirtualButtonRight) || !held.Held(constants.VirtualButtonUp) {
		t.Errorf("diagonal should hold Right and Up, got %v", held)
	}

	ip.ProcessSDLEvent(&sdl.JoyHatEvent{Type: sdl.JOYHATMOTION, Hat: 0, Value: sdl.HAT_UP})
	held = ip.Snapshot()
	if held.Held(constants.VirtualButtonRight) || !held.Held(constants.VirtualButtonUp) {
		t.Errorf("moving to Up should release Right only, got %v", held)
	}

	ip.ProcessSDLEvent(&sdl.JoyHatEvent{Type: sdl.JOYHATMOTION, Hat: 0, Value: sdl.HAT_CENTERED})
	if ip.Snapshot().Any() {
		t.Error("centred hat should release everything")
	}
}
