// Resolves the fill attributes of the sign template
// into concrete colors, usable by any painting driver.
package signcolor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidColorLiteral is returned when a fill value is neither
// a known color name nor a valid hex literal.
var ErrInvalidColorLiteral = errors.New("invalid color literal")

// RGB is an opaque color. It implements color.Color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the RRGGBB representation of the color.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string { return "#" + c.Hex() }

var (
	Black  = RGB{0x00, 0x00, 0x00}
	White  = RGB{0xFF, 0xFF, 0xFF}
	Yellow = RGB{0xFF, 0xFF, 0x00}
)

// names is the fixed table of symbolic colors.
// Lookup is case sensitive.
var names = map[string]RGB{
	"black":  Black,
	"white":  White,
	"green":  {0x00, 0xFF, 0x00},
	"red":    {0xFF, 0x00, 0x00},
	"purple": {0xBF, 0x40, 0xBF},
	"blue":   {0x00, 0x00, 0xFF},
}

// Resolve maps a fill attribute to a color.
// A nil `fill` means the attribute is absent, which gives black.
// Known names are looked up in the table; everything else
// must be a hex literal (RRGGBB or RGB, with an optional leading #).
func Resolve(fill *string) (RGB, error) {
	if fill == nil {
		return Black, nil
	}
	if c, ok := names[*fill]; ok {
		return c, nil
	}
	return ParseHex(*fill)
}

// ParseHex parses a RRGGBB (or RGB) literal.
func ParseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		var out [3]uint8
		for i := range out {
			v, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorLiteral, s)
			}
			out[i] = uint8(v * 17)
		}
		return RGB{out[0], out[1], out[2]}, nil
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorLiteral, s)
		}
		return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
	default:
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorLiteral, s)
	}
}
