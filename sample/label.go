package sample

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/xfermodes"
)

// labeler draws centered single-line labels. Not safe for concurrent use.
type labeler struct {
	face font.Face
	src  image.Image
}

func newLabeler(size float64) (*labeler, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("sample: parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("sample: new face: %w", err)
	}
	return &labeler{
		face: face,
		src:  image.NewUniform(xfermodes.ARGB(labelColor).Color()),
	}, nil
}

// draw renders text horizontally centered on cx with its baseline at y.
func (l *labeler) draw(dst *xfermodes.Pixmap, text string, cx, y int) {
	d := font.Drawer{Dst: dst, Src: l.src, Face: l.face}
	width := d.MeasureString(text)
	d.Dot = fixed.Point26_6{X: fixed.I(cx) - width/2, Y: fixed.I(y)}
	d.DrawString(text)
}

func (l *labeler) Close() error {
	return l.face.Close()
}
