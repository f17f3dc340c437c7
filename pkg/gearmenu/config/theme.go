package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/sevengears/gearmenu/pkg/gearmenu/widget"
)

// ThemeConfig recolours the menu. Each field is a hex colour such as "0x00009B"
// or "#00009B"; empty fields keep the built-in colour.
type ThemeConfig struct {
	FrameOutline   string `toml:"frame_outline"`
	FrameHighlight string `toml:"frame_highlight"`
	FrameShadow    string `toml:"frame_shadow"`
	GradientTop    string `toml:"gradient_top"`
	GradientBottom string `toml:"gradient_bottom"`
	Text           string `toml:"text"`
	DisabledText   string `toml:"disabled_text"`
	TextShadow     string `toml:"text_shadow"`
	Screen         string `toml:"screen"`
}

func ParseHexColor(hexStr string) (color.RGBA, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(hexStr), "#"), "0x")

	hex, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil || len(trimmed) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex colour %q", hexStr)
	}
	return widget.RGB(uint32(hex)), nil
}

// Apply returns base with every configured colour replaced.
func (tc ThemeConfig) Apply(base widget.Theme) (widget.Theme, error) {
	overrides := []struct {
		name  string
		value string
		dst   *color.RGBA
	}{
		{"frame_outline", tc.FrameOutline, &base.FrameOutline},
		{"frame_highlight", tc.FrameHighlight, &base.FrameHighlight},
		{"frame_shadow", tc.FrameShadow, &base.FrameShadow},
		{"gradient_top", tc.GradientTop, &base.GradientTop},
		{"gradient_bottom", tc.GradientBottom, &base.GradientBottom},
		{"text", tc.Text, &base.TextColor},
		{"disabled_text", tc.DisabledText, &base.DisabledText},
		{"text_shadow", tc.TextShadow, &base.TextShadow},
		{"screen", tc.Screen, &base.ScreenColor},
	}

	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		c, err := ParseHexColor(o.value)
		if err != nil {
			return base, fmt.Errorf("theme %s: %w", o.name, err)
		}
		*o.dst = c
	}
	return base, nil
}
