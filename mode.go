package xfermodes

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gogpu/xfermodes/internal/blend"
)

// Mode selects the compositing formula used by Composite.
type Mode = blend.Mode

// Blend operators, in the order the sample grid shows them.
const (
	Clear    = blend.ModeClear
	Src      = blend.ModeSrc
	Dst      = blend.ModeDst
	SrcOver  = blend.ModeSrcOver
	DstOver  = blend.ModeDstOver
	SrcIn    = blend.ModeSrcIn
	DstIn    = blend.ModeDstIn
	SrcOut   = blend.ModeSrcOut
	DstOut   = blend.ModeDstOut
	SrcATop  = blend.ModeSrcATop
	DstATop  = blend.ModeDstATop
	Xor      = blend.ModeXor
	Darken   = blend.ModeDarken
	Lighten  = blend.ModeLighten
	Multiply = blend.ModeMultiply
	Screen   = blend.ModeScreen
	Add      = blend.ModeAdd
	Overlay  = blend.ModeOverlay
)

// ErrUnknownMode is returned by ParseMode for names that match no mode.
var ErrUnknownMode = errors.New("unknown mode")

// Modes returns all blend operators in display order.
func Modes() []Mode {
	return blend.Modes()
}

var modeByName = func() map[string]Mode {
	m := make(map[string]Mode)
	for _, mode := range blend.Modes() {
		m[foldName(mode.String())] = mode
	}
	return m
}()

// foldName strips separators and case-folds a mode name.
func foldName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case '_', '-', ' ':
			return -1
		}
		return r
	}, strings.TrimSpace(name))
	return cases.Fold().String(name)
}

// ParseMode returns the mode with the given name. Matching ignores case and
// the separators '_', '-' and ' ', so "SrcOver", "src_over" and "SRC-OVER"
// all select SrcOver.
func ParseMode(name string) (Mode, error) {
	if m, ok := modeByName[foldName(name)]; ok {
		return m, nil
	}
	return SrcOver, fmt.Errorf("xfermodes: %q: %w", name, ErrUnknownMode)
}
