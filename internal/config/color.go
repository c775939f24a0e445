package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds brand colours as hex strings ("#RRGGBB" or "#RRGGBBAA")
type Palette struct {
	Background string `yaml:"background"`
	Primary    string `yaml:"primary"`
	Accent     string `yaml:"accent"`
	Text       string `yaml:"text"`
	Subtle     string `yaml:"subtle"`
	Card       string `yaml:"card"`
	Glow       string `yaml:"glow"`
}

// Colors is a parsed Palette
type Colors struct {
	Background color.NRGBA
	Primary    color.NRGBA
	Accent     color.NRGBA
	Text       color.NRGBA
	Subtle     color.NRGBA
	Card       color.NRGBA
	Glow       color.NRGBA
}

// Resolve parses every entry of the palette.
func (p Palette) Resolve() (Colors, error) {
	var c Colors
	fields := []struct {
		name string
		hex  string
		dst  *color.NRGBA
	}{
		{"background", p.Background, &c.Background},
		{"primary", p.Primary, &c.Primary},
		{"accent", p.Accent, &c.Accent},
		{"text", p.Text, &c.Text},
		{"subtle", p.Subtle, &c.Subtle},
		{"card", p.Card, &c.Card},
		{"glow", p.Glow, &c.Glow},
	}
	for _, f := range fields {
		v, err := ParseColor(f.hex)
		if err != nil {
			return Colors{}, fmt.Errorf("colour %s: %w", f.name, err)
		}
		*f.dst = v
	}
	return c, nil
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: bad colour %q", ErrInvalidComposition, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: bad colour %q", ErrInvalidComposition, s)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
