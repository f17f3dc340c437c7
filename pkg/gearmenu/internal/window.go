package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/veandco/go-sdl2/sdl"
)

type WindowOptions struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool
}

type Window struct {
	Window     *sdl.Window
	Renderer   *sdl.Renderer
	Title      string
	fullscreen bool
}

// envSize overrides a window dimension in dev mode, like WINDOW_WIDTH=1280.
func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window size override; using configured size", "variable", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

func NewWindow(options WindowOptions) (*Window, error) {
	width, height := options.Width, options.Height
	if constants.IsDevMode() {
		width = envSize("WINDOW_WIDTH", width)
		height = envSize("WINDOW_HEIGHT", height)
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if options.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height, "fullscreen", options.Fullscreen)

	window, err := sdl.CreateWindow(options.Title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, flags)
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		GetInternalLogger().Warn("Accelerated renderer unavailable, falling back to software", "error", err)
		renderer, err = sdl.CreateRenderer(window, -1, sdl.RENDERER_SOFTWARE)
	}
	if err != nil {
		window.Destroy()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	return &Window{
		Window:     window,
		Renderer:   renderer,
		Title:      options.Title,
		fullscreen: options.Fullscreen,
	}, nil
}

// OutputSize is the drawable size in physical pixels, which can differ from the
// window size on high density displays.
func (w *Window) OutputSize() (int32, int32) {
	width, height, err := w.Renderer.GetOutputSize()
	if err != nil {
		return w.Window.GetSize()
	}
	return width, height
}

func (w *Window) ToggleFullscreen() error {
	var flags uint32
	if !w.fullscreen {
		flags = sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if err := w.Window.SetFullscreen(flags); err != nil {
		return fmt.Errorf("toggling fullscreen: %w", err)
	}
	w.fullscreen = !w.fullscreen
	GetInternalLogger().Info("Fullscreen toggled", "fullscreen", w.fullscreen)
	return nil
}

func (w *Window) Close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}
