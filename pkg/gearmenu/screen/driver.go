// Package screen drives the menu screens: it owns the widget trees of every screen
// that has been shown, routes each frame's input to the active one and renders it.
package screen

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/sevengears/gearmenu/pkg/gearmenu/input"
	"github.com/sevengears/gearmenu/pkg/gearmenu/widget"
)

var ErrUnknownScreen = errors.New("unknown screen")

type ID string

const (
	None  ID = ""
	Title ID = "title"
	Load  ID = "load"
)

func (a Assets) headingFont() widget.FontHandle {
	if a.BoldFont != widget.NoFont {
		return a.BoldFont
	}
	return a.Font
}

// Screen is one menu page. Update returns the screen to switch to, or None to stay.
type Screen interface {
	Update(f input.Frame) ID
	Render(dc *widget.DrawContext)
}

// Enterer is implemented by screens that reset state whenever they become active.
type Enterer interface {
	Enter()
}

type Factory func(assets Assets) (Screen, error)

// Assets are the handles and settings shared by every screen.
type Assets struct {
	Font widget.FontHandle
	// BoldFont is used for headings; NoFont falls back to Font.
	BoldFont      widget.FontHandle
	Cursor        widget.ImageHandle
	SlideInOffset float64
	SlideInStep   float64
}

func DefaultAssets(font widget.FontHandle, cursor widget.ImageHandle) Assets {
	return Assets{
		Font:          font,
		Cursor:        cursor,
		SlideInOffset: constants.DefaultSlideInOffset,
		SlideInStep:   constants.DefaultSlideInStep,
	}
}

type Driver struct {
	assets    Assets
	factories map[ID]Factory
	screens   map[ID]Screen
	active    ID
	logger    *slog.Logger
}

// NewDriver creates a driver with the title and load screens registered.
func NewDriver(assets Assets, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Driver{
		assets:    assets,
		factories: make(map[ID]Factory),
		screens:   make(map[ID]Screen),
		logger:    logger,
	}
	d.Register(Title, NewTitleScreen)
	d.Register(Load, NewLoadScreen)
	return d
}

func (d *Driver) Register(id ID, factory Factory) {
	d.factories[id] = factory
	delete(d.screens, id)
}

func (d *Driver) Active() ID {
	return d.active
}

// Screen returns the built screen for id, if it has been shown before.
func (d *Driver) Screen(id ID) (Screen, bool) {
	s, ok := d.screens[id]
	return s, ok
}

// Activate makes id the active screen, building it the first time it is shown.
// Screens are kept after they are left so their cursor survives a return visit.
func (d *Driver) Activate(id ID) error {
	s, ok := d.screens[id]
	if !ok {
		factory, registered := d.factories[id]
		if !registered {
			return fmt.Errorf("activate %q: %w", id, ErrUnknownScreen)
		}

		var err error
		s, err = factory(d.assets)
		if err != nil {
			return fmt.Errorf("building screen %q: %w", id, err)
		}
		d.screens[id] = s
		d.logger.Debug("Built screen", "screen", id)
	}

	if e, ok := s.(Enterer); ok {
		e.Enter()
	}

	d.logger.Info("Screen activated", "from", d.active, "to", id)
	d.active = id
	return nil
}

// Update forwards the frame's input to the active screen and follows any switch it requests.
func (d *Driver) Update(f input.Frame) error {
	s, ok := d.screens[d.active]
	if !ok {
		return nil
	}
	if next := s.Update(f); next != None && next != d.active {
		return d.Activate(next)
	}
	return nil
}

// Render clears the virtual canvas and draws the active screen.
func (d *Driver) Render(dc *widget.DrawContext) {
	dc.Canvas.FillRect(dc.Config.ToPhysical(dc.Config.Screen()), dc.Theme.ScreenColor)

	if s, ok := d.screens[d.active]; ok {
		s.Render(dc)
	}
}
