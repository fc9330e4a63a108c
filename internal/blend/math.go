package blend

import "math"

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clampColor(c Color) Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B), A: clamp01(c.A)}
}

// ToByte converts a normalized channel to 8 bits with rounding.
func ToByte(x float64) uint8 {
	return uint8(math.Round(clamp01(x) * 255))
}

// FromByte converts an 8-bit channel to [0, 1].
func FromByte(b uint8) float64 {
	return float64(b) / 255
}

// ApplyBytes composites one straight-alpha RGBA8 pixel pair.
func ApplyBytes(m Mode, s, d [4]uint8) [4]uint8 {
	c := Apply(m,
		Color{R: FromByte(s[0]), G: FromByte(s[1]), B: FromByte(s[2]), A: FromByte(s[3])},
		Color{R: FromByte(d[0]), G: FromByte(d[1]), B: FromByte(d[2]), A: FromByte(d[3])},
	)
	return [4]uint8{ToByte(c.R), ToByte(c.G), ToByte(c.B), ToByte(c.A)}
}
