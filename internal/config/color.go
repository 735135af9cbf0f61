package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color written as "#rrggbb" or "#rrggbbaa".
type Color struct {
	R, G, B, A uint8
}

// ParseColor parses a hex color. The leading '#' is optional and alpha defaults to opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color format: %q", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		return uint8(v), err
	}

	var c Color
	var err error
	if c.R, err = parse(0); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if c.G, err = parse(2); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if c.B, err = parse(4); err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	c.A = 0xff
	if len(hex) == 8 {
		if c.A, err = parse(6); err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
	}
	return c, nil
}

// String formats the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c Color) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Float returns the color channels normalized to [0, 1].
func (c Color) Float() (r, g, b, a float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255
}
