package xfermodes

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gogpu/xfermodes/internal/blend"
)

// RGBA represents a straight-alpha color with red, green, blue, and alpha
// components. Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	p := c.Pixel()
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Pixel returns the color as four 8-bit straight-alpha channels.
func (c RGBA) Pixel() [4]uint8 {
	return [4]uint8{
		blend.ToByte(c.R),
		blend.ToByte(c.G),
		blend.ToByte(c.B),
		blend.ToByte(c.A),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// fromPixel converts four 8-bit straight-alpha channels to RGBA.
func fromPixel(r, g, b, a uint8) RGBA {
	return RGBA{
		R: blend.FromByte(r),
		G: blend.FromByte(g),
		B: blend.FromByte(b),
		A: blend.FromByte(a),
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// NewRGBA creates a color from RGBA components.
func NewRGBA(r, g, b, a float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// ARGB creates a color from a packed 0xAARRGGBB value, the layout used by
// Android color literals such as 0xFFFFCC44.
func ARGB(v uint32) RGBA {
	return fromPixel(uint8(v>>16), uint8(v>>8), uint8(v), uint8(v>>24))
}

// ErrInvalidColor is returned by ParseColor for malformed color strings.
var ErrInvalidColor = errors.New("xfermodes: invalid color")

// ParseColor parses "#RRGGBB" or "#AARRGGBB", the forms accepted by Android's
// Color.parseColor. The leading '#' is optional.
func ParseColor(s string) (RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Transparent, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		v |= 0xFF000000
	}
	return ARGB(uint32(v)), nil
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = NewRGBA(0, 0, 0, 0)
)
