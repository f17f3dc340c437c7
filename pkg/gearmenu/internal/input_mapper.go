package internal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/holoplot/go-evdev"
	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

const MappingPathEnvVar = "INPUT_MAPPING_PATH"

type JoystickAxisMapping struct {
	PositiveButton constants.VirtualButton
	NegativeButton constants.VirtualButton
	Threshold      int16
}

// InputMapping binds every physical source the menu listens to onto VirtualButtons.
type InputMapping struct {
	KeyboardMap         map[sdl.Keycode]constants.VirtualButton
	ControllerButtonMap map[sdl.GameControllerButton]constants.VirtualButton
	JoystickButtonMap   map[uint8]constants.VirtualButton
	JoystickHatMap      map[uint8]constants.VirtualButton
	JoystickAxisMap     map[uint8]JoystickAxisMapping
	EvdevKeyMap         map[evdev.EvCode]constants.VirtualButton
}

// Mapping is the JSON form of InputMapping. Keys are raw SDL or evdev codes and
// values are VirtualButton numbers.
type Mapping struct {
	KeyboardMap         map[int]int `json:"keyboard_map"`
	ControllerButtonMap map[int]int `json:"controller_button_map"`
	JoystickButtonMap   map[int]int `json:"joystick_button_map"`
	JoystickHatMap      map[int]int `json:"joystick_hat_map"`
	JoystickAxisMap     map[int]struct {
		PositiveButton int   `json:"positive_button"`
		NegativeButton int   `json:"negative_button"`
		Threshold      int16 `json:"threshold"`
	} `json:"joystick_axis_map"`
	EvdevKeyMap map[int]int `json:"evdev_key_map"`
}

// DefaultInputMapping leaves Return unbound; the run loop uses it for fullscreen.
func DefaultInputMapping() *InputMapping {
	return &InputMapping{
		KeyboardMap: map[sdl.Keycode]constants.VirtualButton{
			sdl.K_UP:        constants.VirtualButtonUp,
			sdl.K_DOWN:      constants.VirtualButtonDown,
			sdl.K_LEFT:      constants.VirtualButtonLeft,
			sdl.K_RIGHT:     constants.VirtualButtonRight,
			sdl.K_a:         constants.VirtualButtonA,
			sdl.K_b:         constants.VirtualButtonB,
			sdl.K_x:         constants.VirtualButtonX,
			sdl.K_y:         constants.VirtualButtonY,
			sdl.K_l:         constants.VirtualButtonL1,
			sdl.K_SEMICOLON: constants.VirtualButtonL2,
			sdl.K_r:         constants.VirtualButtonR1,
			sdl.K_t:         constants.VirtualButtonR2,
			sdl.K_s:         constants.VirtualButtonStart,
			sdl.K_SPACE:     constants.VirtualButtonSelect,
			sdl.K_h:         constants.VirtualButtonMenu,
		},
		ControllerButtonMap: map[sdl.GameControllerButton]constants.VirtualButton{
			sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
			sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
			sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
			sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
			sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonB,
			sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonA,
			sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonY,
			sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonX,
			sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
			sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
			sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
			sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
			sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
		},
		JoystickButtonMap: map[uint8]constants.VirtualButton{},
		JoystickHatMap: map[uint8]constants.VirtualButton{
			sdl.HAT_UP:    constants.VirtualButtonUp,
			sdl.HAT_DOWN:  constants.VirtualButtonDown,
			sdl.HAT_LEFT:  constants.VirtualButtonLeft,
			sdl.HAT_RIGHT: constants.VirtualButtonRight,
		},
		JoystickAxisMap: map[uint8]JoystickAxisMapping{},
		EvdevKeyMap: map[evdev.EvCode]constants.VirtualButton{
			evdev.BTN_DPAD_UP:    constants.VirtualButtonUp,
			evdev.BTN_DPAD_DOWN:  constants.VirtualButtonDown,
			evdev.BTN_DPAD_LEFT:  constants.VirtualButtonLeft,
			evdev.BTN_DPAD_RIGHT: constants.VirtualButtonRight,
			evdev.BTN_SOUTH:      constants.VirtualButtonB,
			evdev.BTN_EAST:       constants.VirtualButtonA,
			evdev.BTN_NORTH:      constants.VirtualButtonX,
			evdev.BTN_WEST:       constants.VirtualButtonY,
			evdev.BTN_TL:         constants.VirtualButtonL1,
			evdev.BTN_TL2:        constants.VirtualButtonL2,
			evdev.BTN_TR:         constants.VirtualButtonR1,
			evdev.BTN_TR2:        constants.VirtualButtonR2,
			evdev.BTN_START:      constants.VirtualButtonStart,
			evdev.BTN_SELECT:     constants.VirtualButtonSelect,
			evdev.BTN_MODE:       constants.VirtualButtonMenu,
		},
	}
}

// ResolveInputMapping loads the mapping at path, falling back to INPUT_MAPPING_PATH
// and then to the defaults. A broken mapping file is logged, never fatal.
func ResolveInputMapping(path string) *InputMapping {
	logger := GetInternalLogger()

	if path == "" {
		path = os.Getenv(MappingPathEnvVar)
	}
	if path == "" {
		return DefaultInputMapping()
	}

	mapping, err := LoadInputMappingFromJSON(path)
	if err != nil {
		logger.Warn("Failed to load custom input mapping, using default", "path", path, "error", err)
		return DefaultInputMapping()
	}

	logger.Info("Loaded custom input mapping", "path", path)
	return mapping
}

func LoadInputMappingFromJSON(filePath string) (*InputMapping, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read JSON file: %w", err)
	}
	return LoadInputMappingFromBytes(data)
}

func LoadInputMappingFromBytes(data []byte) (*InputMapping, error) {
	var raw Mapping
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	mapping := &InputMapping{
		KeyboardMap:         make(map[sdl.Keycode]constants.VirtualButton),
		ControllerButtonMap: make(map[sdl.GameControllerButton]constants.VirtualButton),
		JoystickButtonMap:   make(map[uint8]constants.VirtualButton),
		JoystickHatMap:      make(map[uint8]constants.VirtualButton),
		JoystickAxisMap:     make(map[uint8]JoystickAxisMapping),
		EvdevKeyMap:         make(map[evdev.EvCode]constants.VirtualButton),
	}

	for code, vb := range raw.KeyboardMap {
		button, err := mappedButton("keyboard", code, vb)
		if err != nil {
			return nil, err
		}
		mapping.KeyboardMap[sdl.Keycode(code)] = button
	}

	for code, vb := range raw.ControllerButtonMap {
		button, err := mappedButton("controller button", code, vb)
		if err != nil {
			return nil, err
		}
		mapping.ControllerButtonMap[sdl.GameControllerButton(code)] = button
	}

	for code, vb := range raw.JoystickButtonMap {
		button, err := mappedButton("joystick button", code, vb)
		if err != nil {
			return nil, err
		}
		mapping.JoystickButtonMap[uint8(code)] = button
	}

	for code, vb := range raw.JoystickHatMap {
		button, err := mappedButton("joystick hat", code, vb)
		if err != nil {
			return nil, err
		}
		mapping.JoystickHatMap[uint8(code)] = button
	}

	for axis, am := range raw.JoystickAxisMap {
		positive, err := mappedButton("joystick axis", axis, am.PositiveButton)
		if err != nil {
			return nil, err
		}
		negative, err := mappedButton("joystick axis", axis, am.NegativeButton)
		if err != nil {
			return nil, err
		}
		mapping.JoystickAxisMap[uint8(axis)] = JoystickAxisMapping{
			PositiveButton: positive,
			NegativeButton: negative,
			Threshold:      am.Threshold,
		}
	}

	for code, vb := range raw.EvdevKeyMap {
		button, err := mappedButton("evdev key", code, vb)
		if err != nil {
			return nil, err
		}
		mapping.EvdevKeyMap[evdev.EvCode(code)] = button
	}

	return mapping, nil
}

func mappedButton(source string, code, value int) (constants.VirtualButton, error) {
	button := constants.VirtualButton(value)
	if !button.Valid() {
		return constants.VirtualButtonUnassigned, fmt.Errorf("%s %d maps to unknown virtual button %d", source, code, value)
	}
	return button, nil
}
