package internal

import (
	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/sevengears/gearmenu/pkg/gearmenu/input"
	"github.com/veandco/go-sdl2/sdl"
)

type Source int

const (
	SourceKeyboard Source = iota
	SourceController
	SourceControllerAxis
	SourceJoystick
	SourceJoystickAxis
	SourceHatSwitch
	sourceCount
)

var sourceNames = [sourceCount]string{"keyboard", "controller", "controller_axis", "joystick", "joystick_axis", "hat"}

func (s Source) String() string {
	if s < 0 || s >= sourceCount {
		return "unknown"
	}
	return sourceNames[s]
}

// Processor folds SDL input events into the held state of every VirtualButton.
// Each source keeps its own held state, so releasing a button on one device does
// not release it while another device still holds it.
// Controllers are opened and closed as SDL reports them attached or removed.
type Processor struct {
	mapping     *InputMapping
	controllers map[sdl.JoystickID]*sdl.GameController
	joysticks   map[sdl.JoystickID]*sdl.Joystick
	axisStates  map[uint8]int8
	hatStates   map[uint8]uint8
	held        [sourceCount]input.Snapshot
}

func NewInputProcessor(mapping *InputMapping) *Processor {
	if mapping == nil {
		mapping = DefaultInputMapping()
	}
	return &Processor{
		mapping:     mapping,
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
		joysticks:   make(map[sdl.JoystickID]*sdl.Joystick),
		axisStates:  make(map[uint8]int8),
		hatStates:   make(map[uint8]uint8),
	}
}

// Snapshot is the held state after every event processed so far, across all sources.
func (ip *Processor) Snapshot() input.Snapshot {
	var s input.Snapshot
	for _, held := range ip.held {
		s = s.Merge(held)
	}
	return s
}

func (ip *Processor) set(source Source, button constants.VirtualButton, held bool, code int) {
	if ip.held[source].Held(button) != held {
		GetInternalLogger().Debug("Input mapped",
			"source", source.String(),
			"code", code,
			"virtual_button", button.GetName(),
			"held", held)
	}
	ip.held[source].Set(button, held)
}

func (ip *Processor) clear(sources ...Source) {
	for _, source := range sources {
		ip.held[source] = input.Snapshot{}
	}
}

// ProcessSDLEvent applies event and reports whether it was an input event.
func (ip *Processor) ProcessSDLEvent(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return true
		}
		if button, ok := ip.mapping.KeyboardMap[e.Keysym.Sym]; ok {
			ip.set(SourceKeyboard, button, e.Type == sdl.KEYDOWN, int(e.Keysym.Sym))
		}
	case *sdl.ControllerButtonEvent:
		if button, ok := ip.mapping.ControllerButtonMap[sdl.GameControllerButton(e.Button)]; ok {
			ip.set(SourceController, button, e.Type == sdl.CONTROLLERBUTTONDOWN, int(e.Button))
		}
	case *sdl.ControllerAxisEvent:
		ip.applyAxis(SourceControllerAxis, e.Axis, e.Value)
	case *sdl.JoyButtonEvent:
		if ip.isController(e.Which) {
			return true
		}
		if button, ok := ip.mapping.JoystickButtonMap[e.Button]; ok {
			ip.set(SourceJoystick, button, e.Type == sdl.JOYBUTTONDOWN, int(e.Button))
		}
	case *sdl.JoyAxisEvent:
		if ip.isController(e.Which) {
			return true
		}
		ip.applyAxis(SourceJoystickAxis, e.Axis, e.Value)
	case *sdl.JoyHatEvent:
		if ip.isController(e.Which) {
			return true
		}
		ip.applyHat(e.Hat, e.Value)
	case *sdl.ControllerDeviceEvent:
		switch e.Type {
		case sdl.CONTROLLERDEVICEADDED:
			ip.openController(int(e.Which))
		case sdl.CONTROLLERDEVICEREMOVED:
			ip.closeController(e.Which)
		}
	case *sdl.JoyDeviceAddedEvent:
		ip.openJoystick(int(e.Which))
	case *sdl.JoyDeviceRemovedEvent:
		ip.closeJoystick(e.Which)
	default:
		return false
	}
	return true
}

func (ip *Processor) isController(id sdl.JoystickID) bool {
	_, ok := ip.controllers[id]
	return ok
}

func (ip *Processor) applyAxis(source Source, axis uint8, value int16) {
	am, ok := ip.mapping.JoystickAxisMap[axis]
	if !ok {
		return
	}

	var state int8
	switch {
	case value > am.Threshold:
		state = 1
	case value < -am.Threshold:
		state = -1
	}
	if state == ip.axisStates[axis] {
		return
	}
	ip.axisStates[axis] = state

	ip.set(source, am.PositiveButton, state == 1, int(axis))
	ip.set(source, am.NegativeButton, state == -1, int(axis))
}

// applyHat releases the buttons of the previous hat position before pressing the
// new one; diagonals press both of their cardinal directions.
func (ip *Processor) applyHat(hat uint8, value uint8) {
	previous := ip.hatStates[hat]
	ip.hatStates[hat] = value

	for _, dir := range []uint8{sdl.HAT_UP, sdl.HAT_DOWN, sdl.HAT_LEFT, sdl.HAT_RIGHT} {
		button, ok := ip.mapping.JoystickHatMap[dir]
		if !ok {
			continue
		}
		was, is := previous&dir != 0, value&dir != 0
		if was != is {
			ip.set(SourceHatSwitch, button, is, int(dir))
		}
	}
}

func (ip *Processor) openController(index int) {
	if !sdl.IsGameController(index) {
		return
	}

	controller := sdl.GameControllerOpen(index)
	if controller == nil {
		GetInternalLogger().Error("Failed to open game controller", "index", index, "error", sdl.GetError())
		return
	}

	id := controller.Joystick().InstanceID()
	if _, ok := ip.controllers[id]; ok {
		controller.Close()
		return
	}

	ip.controllers[id] = controller
	GetInternalLogger().Info("Game controller attached", "index", index, "name", controller.Name())
}

func (ip *Processor) closeController(id sdl.JoystickID) {
	controller, ok := ip.controllers[id]
	if !ok {
		return
	}

	GetInternalLogger().Info("Game controller removed", "name", controller.Name())
	controller.Close()
	delete(ip.controllers, id)
	ip.clear(SourceController, SourceControllerAxis)
}

func (ip *Processor) openJoystick(index int) {
	if sdl.IsGameController(index) {
		return
	}

	joystick := sdl.JoystickOpen(index)
	if joystick == nil {
		GetInternalLogger().Debug("Failed to open raw joystick", "index", index)
		return
	}

	id := joystick.InstanceID()
	if _, ok := ip.joysticks[id]; ok {
		joystick.Close()
		return
	}

	ip.joysticks[id] = joystick
	GetInternalLogger().Info("Raw joystick attached", "index", index, "name", joystick.Name())
}

func (ip *Processor) closeJoystick(id sdl.JoystickID) {
	joystick, ok := ip.joysticks[id]
	if !ok {
		return
	}

	joystick.Close()
	delete(ip.joysticks, id)
	ip.clear(SourceJoystick, SourceJoystickAxis, SourceHatSwitch)
}

func (ip *Processor) Close() {
	for id, controller := range ip.controllers {
		controller.Close()
		delete(ip.controllers, id)
	}
	for id, joystick := range ip.joysticks {
		joystick.Close()
		delete(ip.joysticks, id)
	}
}
