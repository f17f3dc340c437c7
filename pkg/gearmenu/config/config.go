// Package config loads the toml configuration of the menu executable.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/sevengears/gearmenu/pkg/gearmenu/constants"
	"github.com/sevengears/gearmenu/pkg/gearmenu/widget"
)

type Config struct {
	Window    WindowConfig    `toml:"window"`
	Render    RenderConfig    `toml:"render"`
	Animation AnimationConfig `toml:"animation"`
	Input     InputConfig     `toml:"input"`
	Theme     ThemeConfig     `toml:"theme"`
	Assets    AssetsConfig    `toml:"assets"`

	Language    string `toml:"language"`
	LogLevel    string `toml:"log_level"`
	LogFilename string `toml:"log_filename"`
}

type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int32  `toml:"width"`
	Height     int32  `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
}

type RenderConfig struct {
	DebugOutlines bool    `toml:"debug_outlines"`
	VirtualWidth  float64 `toml:"virtual_width"`
	VirtualHeight float64 `toml:"virtual_height"`
	// ScaleX and ScaleY override the scale derived from the window size when non-zero.
	ScaleX      float64 `toml:"scale_x"`
	ScaleY      float64 `toml:"scale_y"`
	ScaleBorder bool    `toml:"scale_border"`
}

type AnimationConfig struct {
	SlideInOffset float64 `toml:"slide_in_offset"`
	SlideInStep   float64 `toml:"slide_in_step"`
}

type InputConfig struct {
	MappingPath string `toml:"mapping_path"`
	// EvdevDevice is an optional /dev/input/event* node read alongside SDL events.
	EvdevDevice string `toml:"evdev_device"`
}

type AssetsConfig struct {
	// CursorPath replaces the built-in pointer with an image file (PNG).
	CursorPath string `toml:"cursor_path"`
	// LocaleDir holds extra go-i18n message files (active.<lang>.toml or .json)
	// layered over the built-in strings.
	LocaleDir string `toml:"locale_dir"`
}

// LocaleFiles lists the message files in LocaleDir, sorted by name.
func (a AssetsConfig) LocaleFiles() ([]string, error) {
	if a.LocaleDir == "" {
		return nil, nil
	}

	var files []string
	for _, pattern := range []string{"*.toml", "*.json"} {
		matches, err := filepath.Glob(filepath.Join(a.LocaleDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("listing locale files: %w", err)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)
	return files, nil
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "7-Gears",
			Width:  constants.DefaultWindowWidth,
			Height: constants.DefaultWindowHeight,
		},
		Render: RenderConfig{
			VirtualWidth:  constants.VirtualWidth,
			VirtualHeight: constants.VirtualHeight,
			ScaleBorder:   true,
		},
		Animation: AnimationConfig{
			SlideInOffset: constants.DefaultSlideInOffset,
			SlideInStep:   constants.DefaultSlideInStep,
		},
		Language:    "en",
		LogLevel:    "info",
		LogFilename: "gearmenu.log",
	}
}

// Load reads path on top of the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("decoding config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Render.VirtualWidth <= 0 || c.Render.VirtualHeight <= 0 {
		return fmt.Errorf("virtual size %vx%v must be positive", c.Render.VirtualWidth, c.Render.VirtualHeight)
	}
	if c.Render.ScaleX < 0 || c.Render.ScaleY < 0 {
		return errors.New("scale factors must not be negative")
	}
	if c.Animation.SlideInStep <= 0 {
		return fmt.Errorf("slide_in_step %v must be positive", c.Animation.SlideInStep)
	}
	if c.Animation.SlideInOffset < 0 {
		return fmt.Errorf("slide_in_offset %v must not be negative", c.Animation.SlideInOffset)
	}
	if _, err := c.Theme.Apply(widget.DefaultTheme()); err != nil {
		return err
	}
	return nil
}

// RenderOptions converts the render section into the widget render configuration
// for an output of outputW x outputH pixels.
func (c Config) RenderOptions(outputW, outputH float64) widget.RenderConfig {
	rc := widget.RenderConfig{
		DebugOutlines: c.Render.DebugOutlines,
		VirtualWidth:  c.Render.VirtualWidth,
		VirtualHeight: c.Render.VirtualHeight,
		ScaleX:        1,
		ScaleY:        1,
		ScaleBorder:   c.Render.ScaleBorder,
	}
	rc = rc.ForOutput(outputW, outputH)
	if c.Render.ScaleX > 0 {
		rc.ScaleX = c.Render.ScaleX
	}
	if c.Render.ScaleY > 0 {
		rc.ScaleY = c.Render.ScaleY
	}
	return rc
}
