package blend

// ChannelFunc blends one unpremultiplied source channel with one
// unpremultiplied destination channel.
type ChannelFunc func(s, d float64) float64

// Separable returns the per-channel function for a separable blend mode.
// ok is false for Porter-Duff modes.
func Separable(m Mode) (fn ChannelFunc, ok bool) {
	switch m {
	case ModeDarken:
		return darken, true
	case ModeLighten:
		return lighten, true
	case ModeMultiply:
		return multiply, true
	case ModeScreen:
		return screen, true
	case ModeAdd:
		return add, true
	case ModeOverlay:
		return overlay, true
	default:
		return nil, false
	}
}

// separable computes B(Sc, Dc) per channel on straight color, then
// composites the blended color over the destination:
//
//	C = B*Sa + Dc*Da*(1 - Sa)
//	A = Sa + Da*(1 - Sa)
//
// The returned color is premultiplied.
func separable(s, d Color, fn ChannelFunc) Color {
	invSa := 1 - s.A
	dA := d.A * invSa
	return Color{
		R: fn(s.R, d.R)*s.A + d.R*dA,
		G: fn(s.G, d.G)*s.A + d.G*dA,
		B: fn(s.B, d.B)*s.A + d.B*dA,
		A: s.A + dA,
	}
}

func darken(s, d float64) float64 {
	return min(s, d)
}

func lighten(s, d float64) float64 {
	return max(s, d)
}

func multiply(s, d float64) float64 {
	return s * d
}

func screen(s, d float64) float64 {
	return s + d - s*d
}

func add(s, d float64) float64 {
	return clamp01(s + d)
}

// overlay multiplies where the backdrop is dark and screens where it is light.
func overlay(s, d float64) float64 {
	if d <= 0.5 {
		return 2 * s * d
	}
	return 1 - 2*(1-s)*(1-d)
}
