// Package sample renders the blend-mode sample grid: for every mode, a
// yellow disc (the destination) and a blue square (the source) composited
// in an isolated cell over a checkerboard, with the mode's name above it.
package sample

import (
	"github.com/gogpu/xfermodes"
)

// Sample colors, as 0xAARRGGBB. DstColor and SrcColor are the defaults for
// the shapes.
const (
	DstColor    = 0xFFFFCC44
	SrcColor    = 0xFF66AAFF
	checkLight  = 0xFFFFFFFF
	checkDark   = 0xFFCCCCCC
	borderColor = 0xFF000000
	labelColor  = 0xFF000000
)

// MakeDst returns the destination image for a w×h cell: a (3w/4)×(3h/4)
// pixmap holding an anti-aliased ellipse that touches all four edges.
func MakeDst(w, h int) *xfermodes.Pixmap {
	return makeDst(w, h, xfermodes.ARGB(DstColor))
}

func makeDst(w, h int, c xfermodes.RGBA) *xfermodes.Pixmap {
	w, h = w*3/4, h*3/4
	pm := xfermodes.NewPixmap(w, h)
	pm.FillEllipse(0, 0, w, h, c)
	return pm
}

// MakeSrc returns the source image for a w×h cell: a (5w/8)×(5h/8) opaque
// rectangle.
func MakeSrc(w, h int) *xfermodes.Pixmap {
	return makeSrc(w, h, xfermodes.ARGB(SrcColor))
}

func makeSrc(w, h int, c xfermodes.RGBA) *xfermodes.Pixmap {
	w, h = w*5/8, h*5/8
	pm := xfermodes.NewPixmap(w, h)
	pm.FillRect(0, 0, w, h, c)
	return pm
}

// SrcOffset returns where the source image sits inside a w×h cell.
func SrcOffset(w, h int) (x, y int) {
	return w * 3 / 8, h * 3 / 8
}

// Checkerboard returns a w×h pixmap tiled with a 2×2 light/dark pattern
// whose squares are scale pixels wide.
func Checkerboard(w, h, scale int) *xfermodes.Pixmap {
	base := xfermodes.NewPixmap(2, 2)
	base.SetPixel(0, 0, xfermodes.ARGB(checkLight))
	base.SetPixel(1, 0, xfermodes.ARGB(checkDark))
	base.SetPixel(0, 1, xfermodes.ARGB(checkDark))
	base.SetPixel(1, 1, xfermodes.ARGB(checkLight))

	tile := base.ScaleNearest(2*scale, 2*scale)
	board := xfermodes.NewPixmap(w, h)
	if board.Empty() || tile.Empty() {
		return board
	}
	for y := 0; y < h; y += tile.Height() {
		for x := 0; x < w; x += tile.Width() {
			board.Blit(tile, x, y)
		}
	}
	return board
}
