package blend

// Color is a straight-alpha color with channels in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Transparent is fully transparent black.
var Transparent = Color{}

// Apply composites source s onto destination d with mode m.
// Both inputs and the result are straight alpha. Unknown modes fall back to
// ModeSrcOver.
func Apply(m Mode, s, d Color) Color {
	if fn, ok := Separable(m); ok {
		return Unpremultiply(separable(clampColor(s), clampColor(d), fn))
	}
	s, d = clampColor(s), clampColor(d)
	fs, fd, ok := Coefficients(m, s.A, d.A)
	if !ok {
		fs, fd, _ = Coefficients(ModeSrcOver, s.A, d.A)
	}
	return Unpremultiply(porterDuff(Premultiply(s), Premultiply(d), fs, fd))
}

// Premultiply scales the color channels by alpha.
func Premultiply(c Color) Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply divides the color channels by alpha. A color with zero alpha
// becomes transparent black.
func Unpremultiply(c Color) Color {
	if c.A <= 0 {
		return Transparent
	}
	a := min(c.A, 1)
	return Color{
		R: clamp01(c.R / c.A),
		G: clamp01(c.G / c.A),
		B: clamp01(c.B / c.A),
		A: a,
	}
}
