package widget

import (
	"image/color"

	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
)

// Theme assigns colors to the roles the widgets draw with.
type Theme struct {
	FrameOutline   color.RGBA // outermost window ring
	FrameHighlight color.RGBA // light bevel inside the outline
	FrameShadow    color.RGBA // dark bevel inside the highlight
	GradientTop    color.RGBA
	GradientBottom color.RGBA

	TextColor    color.RGBA
	DisabledText color.RGBA
	TextShadow   color.RGBA
	DebugOutline color.RGBA
	ScreenColor  color.RGBA

	ShadowOffset float64    // text shadow offset in virtual units
	FrameInsets  [3]float64 // highlight, shadow and gradient layer insets
	CornerRadius float64
}

func DefaultTheme() Theme {
	return Theme{
		FrameOutline:   RGB(0x7B7B7B),
		FrameHighlight: RGB(0xDEDEDE),
		FrameShadow:    RGB(0x4A4A4A),
		GradientTop:    RGB(0x00009B),
		GradientBottom: RGB(0x000037),
		TextColor:      RGB(0xE6E6E6),
		DisabledText:   RGB(0x5E5E5E),
		TextShadow:     RGB(0x000000),
		DebugOutline:   RGB(0xFF00FF),
		ScreenColor:    RGB(0x000000),
		ShadowOffset:   2.5,
		FrameInsets:    [3]float64{2, 5, 7},
		CornerRadius:   constants.WindowCornerRadius,
	}
}

// RGB builds an opaque color from a 0xRRGGBB value.
func RGB(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}
