package signpad

import (
	"fmt"
	"image/color"
)

// RGB is an opaque 8-bit color. It is the unit the configuration panel
// speaks in: brush ink and pad background are both RGB values.
type RGB struct {
	R, G, B uint8
}

// RGBA implements the color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns the color as a fully opaque color.NRGBA.
func (c RGB) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// String formats the color as "#rrggbb".
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a hex color string.
// Supported formats: "RGB" and "RRGGBB", with or without a leading '#'.
func ParseHex(hex string) (RGB, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	switch len(s) {
	case 3:
		if !parseHex(s[0:1], &r) || !parseHex(s[1:2], &g) || !parseHex(s[2:3], &b) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if !parseHex(s[0:2], &r) || !parseHex(s[2:4], &g) || !parseHex(s[4:6], &b) {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
		}
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// MustHex is like ParseHex but panics on malformed input.
// It is intended for package-level color tables.
func MustHex(hex string) RGB {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex accumulates hex digits of s into val; it reports false on a
// non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Common colors
var (
	Black = RGB{0x00, 0x00, 0x00}
	White = RGB{0xff, 0xff, 0xff}
)

// PresetColors is the ink palette offered by the front-ends.
var PresetColors = []RGB{
	MustHex("#000000"),
	MustHex("#0000FF"),
	MustHex("#FF0000"),
	MustHex("#228B22"),
	MustHex("#FFA500"),
}
