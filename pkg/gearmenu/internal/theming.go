package internal

import (
	"image/color"

	"github.com/sevengears/gearmenu/pkg/gearmenu/widget"
	"github.com/veandco/go-sdl2/sdl"
)

var currentTheme = widget.DefaultTheme()

func SetTheme(theme widget.Theme) {
	currentTheme = theme
}

func GetTheme() widget.Theme {
	return currentTheme
}

func ToSDLColor(c color.RGBA) sdl.Color {
	return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
