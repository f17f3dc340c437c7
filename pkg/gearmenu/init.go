// Package gearmenu opens the menu window and drives the title and load screens
// from SDL input until the window is closed.
package gearmenu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/sevengears/gearmenu/pkg/gearmenu/config"
	"github.com/sevengears/gearmenu/pkg/gearmenu/i18n"
	"github.com/sevengears/gearmenu/pkg/gearmenu/internal"
	"github.com/sevengears/gearmenu/pkg/gearmenu/internal/pad"
	"github.com/sevengears/gearmenu/pkg/gearmenu/screen"
	"github.com/sevengears/gearmenu/pkg/gearmenu/widget"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// cursorPixels is the raster size of the cursor texture; it is scaled down per frame.
const cursorPixels = 64

var (
	ErrNotInitialized     = errors.New("gearmenu is not initialized")
	ErrAlreadyInitialized = errors.New("gearmenu is already initialized")
)

type Options struct {
	Config config.Config
	// Theme replaces the default frame and text colours when set. The config's
	// theme section is applied on top of it.
	Theme *widget.Theme
}

func DefaultOptions() Options {
	return Options{Config: config.Default()}
}

type app struct {
	config    config.Config
	window    *internal.Window
	fonts     *internal.FontRegistry
	textures  *internal.TextureRegistry
	canvas    *internal.Canvas
	processor *internal.Processor
	pad       *pad.Reader
	driver    *screen.Driver
}

var current *app

// Init initializes SDL, loads the menu assets and shows the title screen.
// Must be called before Run.
func Init(options Options) error {
	if current != nil {
		return ErrAlreadyInitialized
	}

	cfg := options.Config
	if err := cfg.Validate(); err != nil {
		return err
	}

	internal.SetLogFilename(cfg.LogFilename)
	internal.SetRawLogLevel(cfg.LogLevel)
	if internal.ParseLevel(cfg.LogLevel) == slog.LevelDebug {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelWarn)
	}

	theme := internal.GetTheme()
	if options.Theme != nil {
		theme = *options.Theme
	}
	theme, err := cfg.Theme.Apply(theme)
	if err != nil {
		return err
	}
	internal.SetTheme(theme)

	localeFiles, err := cfg.Assets.LocaleFiles()
	if err != nil {
		return err
	}
	if err := i18n.InitI18N(localeFiles); err != nil {
		return fmt.Errorf("loading menu strings: %w", err)
	}
	if err := i18n.SetWithCode(cfg.Language); err != nil {
		internal.GetLogger().Warn("Unsupported language, keeping English", "language", cfg.Language, "error", err)
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_GAMECONTROLLER | sdl.INIT_JOYSTICK); err != nil {
		return fmt.Errorf("initializing SDL: %w", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return fmt.Errorf("initializing SDL_ttf: %w", err)
	}
	img.Init(img.INIT_PNG)

	a, err := newApp(cfg)
	if err != nil {
		sdlCleanup()
		return err
	}

	current = a
	return nil
}

func newApp(cfg config.Config) (*app, error) {
	window, err := internal.NewWindow(internal.WindowOptions{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
	})
	if err != nil {
		return nil, err
	}

	a := &app{
		config:   cfg,
		window:   window,
		fonts:    internal.NewFontRegistry(),
		textures: internal.NewTextureRegistry(window.Renderer),
	}
	a.canvas = internal.NewCanvas(window.Renderer, a.fonts, a.textures)

	font, bold := a.fonts.RegisterDefaults()
	cursor, err := a.loadCursor()
	if err != nil {
		internal.GetInternalLogger().Error("Failed to load cursor, menus will have no pointer", "error", err)
		cursor = widget.NoImage
	}

	mapping := internal.ResolveInputMapping(cfg.Input.MappingPath)
	a.processor = internal.NewInputProcessor(mapping)

	if cfg.Input.EvdevDevice != "" {
		a.pad, err = pad.Open(cfg.Input.EvdevDevice, mapping.EvdevKeyMap, internal.GetInternalLogger())
		if err != nil {
			internal.GetInternalLogger().Warn("Evdev gamepad unavailable, using SDL input only", "error", err)
			a.pad = nil
		}
	}

	assets := screen.Assets{
		Font:          font,
		BoldFont:      bold,
		Cursor:        cursor,
		SlideInOffset: cfg.Animation.SlideInOffset,
		SlideInStep:   cfg.Animation.SlideInStep,
	}
	a.driver = screen.NewDriver(assets, internal.GetLogger())
	if err := a.driver.Activate(screen.Title); err != nil {
		a.close()
		return nil, err
	}

	return a, nil
}

func (a *app) loadCursor() (widget.ImageHandle, error) {
	if path := a.config.Assets.CursorPath; path != "" {
		cursor, err := a.textures.LoadFile(path)
		if err == nil {
			return cursor, nil
		}
		internal.GetInternalLogger().Warn("Custom cursor unavailable, using built-in pointer", "path", path, "error", err)
	}
	return a.textures.LoadCursor(cursorPixels)
}

func (a *app) close() {
	if a.pad != nil {
		if err := a.pad.Close(); err != nil && !errors.Is(err, pad.ErrClosed) {
			internal.GetInternalLogger().Debug("Closing evdev gamepad", "error", err)
		}
	}
	a.processor.Close()
	a.canvas.Purge()
	a.textures.Close()
	a.fonts.Close()
	a.window.Close()
}

func sdlCleanup() {
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

// Close tidies up SDL and the menu. Must be called after Run returns.
func Close() {
	if current != nil {
		current.close()
		current = nil
	}
	sdlCleanup()
	internal.CloseLogger()
}

func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}
