package internal

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"

	"github.com/sevengears/gearmenu/pkg/gearmenu/widget"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

//go:embed assets/cursor.svg
var cursorSVG []byte

// TextureRegistry owns every texture the widgets refer to by ImageHandle.
type TextureRegistry struct {
	renderer *sdl.Renderer
	textures map[widget.ImageHandle]*sdl.Texture
	next     widget.ImageHandle
}

func NewTextureRegistry(renderer *sdl.Renderer) *TextureRegistry {
	return &TextureRegistry{
		renderer: renderer,
		textures: make(map[widget.ImageHandle]*sdl.Texture),
		next:     widget.NoImage + 1,
	}
}

func (tr *TextureRegistry) add(texture *sdl.Texture) widget.ImageHandle {
	handle := tr.next
	tr.next++
	tr.textures[handle] = texture
	return handle
}

func (tr *TextureRegistry) Texture(handle widget.ImageHandle) (*sdl.Texture, bool) {
	texture, ok := tr.textures[handle]
	return texture, ok
}

// LoadCursor rasterizes the embedded pointer at size x size pixels.
func (tr *TextureRegistry) LoadCursor(size int32) (widget.ImageHandle, error) {
	return tr.LoadSVG(cursorSVG, size, size)
}

func (tr *TextureRegistry) LoadFile(path string) (widget.ImageHandle, error) {
	texture, err := img.LoadTexture(tr.renderer, path)
	if err != nil {
		return widget.NoImage, fmt.Errorf("loading texture %s: %w", path, err)
	}
	return tr.add(texture), nil
}

func (tr *TextureRegistry) LoadRaster(data []byte) (widget.ImageHandle, error) {
	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return widget.NoImage, fmt.Errorf("failed to create RWops from image data: %w", err)
	}
	texture, err := img.LoadTextureRW(tr.renderer, rw, true)
	if err != nil {
		return widget.NoImage, fmt.Errorf("failed to load texture from image data: %w", err)
	}
	return tr.add(texture), nil
}

// LoadSVG rasterizes svgData at width x height, or at its view box size when
// either is zero.
func (tr *TextureRegistry) LoadSVG(svgData []byte, width, height int32) (widget.ImageHandle, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData))
	if err != nil {
		return widget.NoImage, fmt.Errorf("failed to parse SVG: %w", err)
	}

	if width == 0 || height == 0 {
		width = int32(icon.ViewBox.W)
		height = int32(icon.ViewBox.H)
	}

	target := image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	scanner := rasterx.NewScannerGV(int(width), int(height), target, target.Bounds())
	raster := rasterx.NewDasher(int(width), int(height), scanner)

	icon.SetTarget(0, 0, float64(width), float64(height))
	icon.Draw(raster, 1.0)

	var buf bytes.Buffer
	if err := png.Encode(&buf, target); err != nil {
		return widget.NoImage, fmt.Errorf("failed to encode SVG as PNG: %w", err)
	}

	return tr.LoadRaster(buf.Bytes())
}

func (tr *TextureRegistry) Close() {
	for handle, texture := range tr.textures {
		texture.Destroy()
		delete(tr.textures, handle)
	}
}
