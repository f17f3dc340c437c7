package internal

import (
	"image/color"
	"math"

	"github.com/sevengears/gearmenu/pkg/gearmenu/layout"
	"github.com/sevengears/gearmenu/pkg/gearmenu/widget"
	"github.com/veandco/go-sdl2/sdl"
)

type textKey struct {
	font  widget.FontHandle
	size  int
	text  string
	color color.RGBA
}

// Canvas draws widgets onto an SDL renderer. Rendered text is kept as textures
// until Purge, since labels rarely change between frames.
type Canvas struct {
	renderer *sdl.Renderer
	fonts    *FontRegistry
	textures *TextureRegistry
	text     map[textKey]*sdl.Texture
}

var _ widget.Canvas = (*Canvas)(nil)

func NewCanvas(renderer *sdl.Renderer, fonts *FontRegistry, textures *TextureRegistry) *Canvas {
	renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	return &Canvas{
		renderer: renderer,
		fonts:    fonts,
		textures: textures,
		text:     make(map[textKey]*sdl.Texture),
	}
}

func (c *Canvas) FillRect(r layout.Rect, col color.RGBA) {
	rect := ToSDLRect(r)
	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	c.renderer.FillRect(&rect)
}

func (c *Canvas) FillRoundedRect(r layout.Rect, radius float64, col color.RGBA) {
	rect := ToSDLRect(r)
	DrawRoundedRect(c.renderer, &rect, int32(math.Round(radius)), ToSDLColor(col))
}

func (c *Canvas) FillGradientRoundedRect(r layout.Rect, radius float64, top, bottom color.RGBA) {
	rect := ToSDLRect(r)
	DrawGradientRoundedRect(c.renderer, &rect, int32(math.Round(radius)), top, bottom)
}

func (c *Canvas) StrokeRect(r layout.Rect, col color.RGBA) {
	rect := ToSDLRect(r)
	c.renderer.SetDrawColor(col.R, col.G, col.B, col.A)
	c.renderer.DrawRect(&rect)
}

func (c *Canvas) MeasureText(font widget.FontHandle, size float64, text string) (float64, float64) {
	f, err := c.fonts.Get(font, size)
	if err != nil {
		GetInternalLogger().Debug("Unable to measure text", "error", err)
		return 0, 0
	}

	w, h, err := f.SizeUTF8(text)
	if err != nil {
		GetInternalLogger().Debug("Unable to measure text", "text", text, "error", err)
		return 0, 0
	}
	return float64(w), float64(h)
}

func (c *Canvas) DrawText(font widget.FontHandle, size float64, x, y float64, text string, col color.RGBA) {
	texture := c.textTexture(textKey{font: font, size: int(math.Round(size)), text: text, color: col}, size)
	if texture == nil {
		return
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return
	}

	dst := sdl.Rect{X: int32(math.Round(x)), Y: int32(math.Round(y)), W: w, H: h}
	c.renderer.Copy(texture, nil, &dst)
}

func (c *Canvas) textTexture(key textKey, size float64) *sdl.Texture {
	if texture, ok := c.text[key]; ok {
		return texture
	}

	f, err := c.fonts.Get(key.font, size)
	if err != nil {
		GetInternalLogger().Debug("Unable to draw text", "error", err)
		return nil
	}

	surface, err := f.RenderUTF8Blended(key.text, ToSDLColor(key.color))
	if err != nil {
		GetInternalLogger().Debug("Unable to render text", "text", key.text, "error", err)
		return nil
	}
	defer surface.Free()

	texture, err := c.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		GetInternalLogger().Debug("Unable to create text texture", "text", key.text, "error", err)
		return nil
	}

	c.text[key] = texture
	return texture
}

func (c *Canvas) DrawImage(image widget.ImageHandle, r layout.Rect) {
	texture, ok := c.textures.Texture(image)
	if !ok {
		return
	}
	rect := ToSDLRect(r)
	c.renderer.Copy(texture, nil, &rect)
}

// Purge drops cached text and font sizes, used when the output size changes.
func (c *Canvas) Purge() {
	for key, texture := range c.text {
		texture.Destroy()
		delete(c.text, key)
	}
	c.fonts.Purge()
}
