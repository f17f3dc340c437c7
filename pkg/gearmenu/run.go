package gearmenu

import (
	"fmt"
	"time"

	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/sevengears/gearmenu/pkg/gearmenu/input"
	"github.com/sevengears/gearmenu/pkg/gearmenu/internal"
	"github.com/sevengears/gearmenu/pkg/gearmenu/widget"
	"github.com/veandco/go-sdl2/sdl"
)

const frameTime = constants.DefaultFrameDelayMs * time.Millisecond

// Run drives the menu until the window is closed. Each frame polls SDL, folds the
// held buttons into an input frame, updates the active screen and redraws it.
func Run() error {
	a := current
	if a == nil {
		return ErrNotInitialized
	}

	var frame input.Frame
	for {
		start := time.Now()

		if quit := a.pollEvents(); quit {
			internal.GetInternalLogger().Info("Window closed")
			return nil
		}

		frame.Advance(a.snapshot())
		if err := a.driver.Update(frame); err != nil {
			return fmt.Errorf("updating %q: %w", a.driver.Active(), err)
		}

		a.render()

		if elapsed := time.Since(start); elapsed < frameTime {
			sdl.Delay(uint32((frameTime - elapsed).Milliseconds()))
		}
	}
}

func (a *app) pollEvents() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 && e.Keysym.Sym == sdl.K_RETURN {
				if err := a.window.ToggleFullscreen(); err != nil {
					internal.GetInternalLogger().Warn("Unable to toggle fullscreen", "error", err)
				}
				continue
			}
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w, h := a.window.OutputSize()
				internal.GetInternalLogger().Debug("Output resized", "width", w, "height", h)
				a.canvas.Purge()
			}
			continue
		}
		a.processor.ProcessSDLEvent(event)
	}
	return false
}

func (a *app) snapshot() input.Snapshot {
	held := a.processor.Snapshot()
	if a.pad != nil {
		held = held.Merge(a.pad.Snapshot())
	}
	return held
}

func (a *app) render() {
	w, h := a.window.OutputSize()
	dc := widget.NewDrawContext(a.canvas, a.config.RenderOptions(float64(w), float64(h)), internal.GetTheme())

	renderer := a.window.Renderer
	renderer.SetDrawColor(0, 0, 0, 255)
	renderer.Clear()
	a.driver.Render(dc)
	renderer.Present()
}
