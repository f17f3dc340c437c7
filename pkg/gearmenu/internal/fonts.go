package internal

import (
	"fmt"
	"math"
	"os"

	"github.com/sevengears/gearmenu/pkg/gearmenu/widget"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const FallbackFontEnvVar = "FALLBACK_FONT"

type fontKey struct {
	handle widget.FontHandle
	size   int
}

// FontRegistry hands out FontHandles for TTF sources and opens each source lazily
// at every pixel size the widgets ask for.
type FontRegistry struct {
	sources map[widget.FontHandle][]byte
	opened  map[fontKey]*ttf.Font
	next    widget.FontHandle
}

func NewFontRegistry() *FontRegistry {
	return &FontRegistry{
		sources: make(map[widget.FontHandle][]byte),
		opened:  make(map[fontKey]*ttf.Font),
		next:    widget.NoFont + 1,
	}
}

func (fr *FontRegistry) Register(data []byte) widget.FontHandle {
	handle := fr.next
	fr.next++
	fr.sources[handle] = data
	return handle
}

func (fr *FontRegistry) RegisterFile(path string) (widget.FontHandle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return widget.NoFont, fmt.Errorf("reading font %s: %w", path, err)
	}
	return fr.Register(data), nil
}

// RegisterDefaults registers the regular and bold menu faces. The regular face is
// the font named by FALLBACK_FONT, or embedded Go Regular when that is unset or
// unreadable; bold is always embedded Go Bold.
func (fr *FontRegistry) RegisterDefaults() (regular, bold widget.FontHandle) {
	regular = widget.NoFont
	if fallback := os.Getenv(FallbackFontEnvVar); fallback != "" {
		handle, err := fr.RegisterFile(fallback)
		if err == nil {
			regular = handle
		} else {
			GetInternalLogger().Debug("Failed to load fallback font, using embedded font", "fallback", fallback, "error", err)
		}
	}
	if regular == widget.NoFont {
		regular = fr.Register(goregular.TTF)
	}
	return regular, fr.Register(gobold.TTF)
}

func (fr *FontRegistry) Get(handle widget.FontHandle, size float64) (*ttf.Font, error) {
	key := fontKey{handle: handle, size: max(1, int(math.Round(size)))}
	if font, ok := fr.opened[key]; ok {
		return font, nil
	}

	data, ok := fr.sources[handle]
	if !ok {
		return nil, fmt.Errorf("font handle %d is not registered", handle)
	}

	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, fmt.Errorf("font handle %d: %w", handle, err)
	}

	font, err := ttf.OpenFontRW(rw, 1, key.size)
	if err != nil {
		return nil, fmt.Errorf("opening font handle %d at size %d: %w", handle, key.size, err)
	}

	GetInternalLogger().Debug("Opened font", "handle", handle, "size", key.size)
	fr.opened[key] = font
	return font, nil
}

// Purge closes every opened size; sources stay registered. Called after a resize
// so stale sizes do not pile up.
func (fr *FontRegistry) Purge() {
	for key, font := range fr.opened {
		font.Close()
		delete(fr.opened, key)
	}
}

func (fr *FontRegistry) Close() {
	fr.Purge()
}
