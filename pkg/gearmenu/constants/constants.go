package constants

import "os"

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

const (
	// VirtualWidth and VirtualHeight describe the logical canvas every layout works in.
	VirtualWidth  = 800.0
	VirtualHeight = 600.0

	DefaultWindowWidth  int32 = 1024
	DefaultWindowHeight int32 = 768

	// WindowBorder is the inset between a window frame and its content, in virtual units.
	WindowBorder = 10.0
	// WindowCornerRadius is shared by every layer of the window frame.
	WindowCornerRadius = 6.0

	CursorSize = 25.0

	DefaultFontSize = 38.0

	// DefaultSlideInOffset and DefaultSlideInStep drive the entrance animation.
	DefaultSlideInOffset = 800.0
	DefaultSlideInStep   = 40.0

	DefaultFrameDelayMs = 16
)

const (
	DevModeEnvVar    = "ENVIRONMENT"
	ConfigPathEnvVar = "GEARMENU_CONFIG"
)

func IsDevMode() bool {
	return os.Getenv(DevModeEnvVar) == "DEV"
}
