// Package blend implements Porter-Duff compositing operators and separable
// blend modes.
//
// All functions take straight (non-premultiplied) colors with channels in
// [0, 1]. Porter-Duff operators premultiply internally, apply the operator's
// coefficient pair and unpremultiply the result.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode selects a compositing formula.
type Mode uint8

const (
	// Porter-Duff modes (standard compositing operators)
	ModeClear   Mode = iota // Result: 0 (clear destination)
	ModeSrc                 // Result: S (replace with source)
	ModeDst                 // Result: D (keep destination)
	ModeSrcOver             // Result: S + D*(1-Sa) [default]
	ModeDstOver             // Result: S*(1-Da) + D
	ModeSrcIn               // Result: S*Da
	ModeDstIn               // Result: D*Sa
	ModeSrcOut              // Result: S*(1-Da)
	ModeDstOut              // Result: D*(1-Sa)
	ModeSrcATop             // Result: S*Da + D*(1-Sa)
	ModeDstATop             // Result: S*(1-Da) + D*Sa
	ModeXor                 // Result: S*(1-Da) + D*(1-Sa)

	// Separable blend modes, composited with source-over alpha
	ModeDarken   // min(S, D)
	ModeLighten  // max(S, D)
	ModeMultiply // S * D
	ModeScreen   // S + D - S*D
	ModeAdd      // min(S + D, 1)
	ModeOverlay  // HardLight with swapped layers

	modeCount
)

var modeNames = [modeCount]string{
	ModeClear:    "Clear",
	ModeSrc:      "Src",
	ModeDst:      "Dst",
	ModeSrcOver:  "SrcOver",
	ModeDstOver:  "DstOver",
	ModeSrcIn:    "SrcIn",
	ModeDstIn:    "DstIn",
	ModeSrcOut:   "SrcOut",
	ModeDstOut:   "DstOut",
	ModeSrcATop:  "SrcATop",
	ModeDstATop:  "DstATop",
	ModeXor:      "Xor",
	ModeDarken:   "Darken",
	ModeLighten:  "Lighten",
	ModeMultiply: "Multiply",
	ModeScreen:   "Screen",
	ModeAdd:      "Add",
	ModeOverlay:  "Overlay",
}

const unknownMode = "Unknown"

// String returns the display label of the mode.
func (m Mode) String() string {
	if !m.IsValid() {
		return unknownMode
	}
	return modeNames[m]
}

// IsValid reports whether m is one of the defined modes.
func (m Mode) IsValid() bool {
	return m < modeCount
}

// IsPorterDuff reports whether m is one of the twelve coefficient-pair operators.
func (m Mode) IsPorterDuff() bool {
	return m <= ModeXor
}

// Modes returns every defined mode in declaration order.
func Modes() []Mode {
	modes := make([]Mode, modeCount)
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

// Coefficients returns the Porter-Duff factors (Fs, Fd) for the given source
// and destination alpha. ok is false for separable modes and unknown values.
func Coefficients(m Mode, sa, da float64) (fs, fd float64, ok bool) {
	switch m {
	case ModeClear:
		return 0, 0, true
	case ModeSrc:
		return 1, 0, true
	case ModeDst:
		return 0, 1, true
	case ModeSrcOver:
		return 1, 1 - sa, true
	case ModeDstOver:
		return 1 - da, 1, true
	case ModeSrcIn:
		return da, 0, true
	case ModeDstIn:
		return 0, sa, true
	case ModeSrcOut:
		return 1 - da, 0, true
	case ModeDstOut:
		return 0, 1 - sa, true
	case ModeSrcATop:
		return da, 1 - sa, true
	case ModeDstATop:
		return 1 - da, sa, true
	case ModeXor:
		return 1 - da, 1 - sa, true
	default:
		return 0, 0, false
	}
}

// porterDuff applies a coefficient pair to premultiplied source and destination.
func porterDuff(s, d Color, fs, fd float64) Color {
	return Color{
		R: s.R*fs + d.R*fd,
		G: s.G*fs + d.G*fd,
		B: s.B*fs + d.B*fd,
		A: s.A*fs + d.A*fd,
	}
}
