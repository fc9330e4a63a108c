package xfermodes

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/gogpu/xfermodes/internal/blend"
)

// Pixmap represents a rectangular pixel buffer.
//
// Pixels are stored row-major as straight-alpha R, G, B, A bytes with no row
// padding, the same layout as image.NRGBA with Stride == 4*width.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // NRGBA format, 4 bytes per pixel
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
// Non-positive dimensions yield an empty pixmap.
func NewPixmap(width, height int) *Pixmap {
	if width <= 0 || height <= 0 {
		return &Pixmap{}
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Stride returns the number of bytes per row.
func (p *Pixmap) Stride() int {
	return p.width * 4
}

// Empty reports whether the pixmap has no pixels.
func (p *Pixmap) Empty() bool {
	return p == nil || p.width == 0 || p.height == 0
}

// Data returns the raw pixel data (NRGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

func (p *Pixmap) offset(x, y int) int {
	return (y*p.width + x) * 4
}

func (p *Pixmap) inBounds(x, y int) bool {
	return x >= 0 && x < p.width && y >= 0 && y < p.height
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if !p.inBounds(x, y) {
		return
	}
	px := c.Pixel()
	copy(p.data[p.offset(x, y):], px[:])
}

// GetPixel returns the color of a single pixel, or Transparent when (x, y)
// lies outside the pixmap.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !p.inBounds(x, y) {
		return Transparent
	}
	i := p.offset(x, y)
	return fromPixel(p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3])
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	px := c.Pixel()
	for i := 0; i < len(p.data); i += 4 {
		copy(p.data[i:i+4], px[:])
	}
}

// FillRect paints c over the rectangle (x, y, w, h) with source-over
// compositing. The rectangle is clipped to the pixmap.
func (p *Pixmap) FillRect(x, y, w, h int, c RGBA) {
	r := image.Rect(x, y, x+w, y+h).Intersect(p.Bounds())
	if r.Empty() {
		return
	}
	src := c.Pixel()
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			p.paint(px, py, src)
		}
	}
}

// kappa places cubic control points so four arcs approximate a quarter
// ellipse each.
const kappa = 0.5522847498

// FillEllipse paints an anti-aliased ellipse inscribed in the rectangle
// (x, y, w, h) with source-over compositing. Partial coverage scales the
// color's alpha.
func (p *Pixmap) FillEllipse(x, y, w, h int, c RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(p.Bounds())
	if r.Empty() {
		return
	}
	mask := ellipseMask(r, x, y, w, h)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			a := mask.AlphaAt(px-r.Min.X, py-r.Min.Y).A
			if a == 0 {
				continue
			}
			p.paint(px, py, c.WithAlpha(c.A*float64(a)/255).Pixel())
		}
	}
}

// ellipseMask rasterizes the ellipse inscribed in (x, y, w, h) into a
// coverage mask covering clip, with the mask origin at clip.Min.
func ellipseMask(clip image.Rectangle, x, y, w, h int) *image.Alpha {
	ox := float32(x - clip.Min.X)
	oy := float32(y - clip.Min.Y)
	rx, ry := float32(w)/2, float32(h)/2
	cx, cy := ox+rx, oy+ry
	kx, ky := rx*kappa, ry*kappa

	z := vector.NewRasterizer(clip.Dx(), clip.Dy())
	z.DrawOp = draw.Src
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, clip.Dx(), clip.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// paint composites one straight-alpha pixel over (x, y). The caller
// guarantees (x, y) is in bounds.
func (p *Pixmap) paint(x, y int, src [4]uint8) {
	i := p.offset(x, y)
	var dst [4]uint8
	copy(dst[:], p.data[i:i+4])
	out := blend.ApplyBytes(blend.ModeSrcOver, src, dst)
	copy(p.data[i:i+4], out[:])
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	c := &Pixmap{width: p.width, height: p.height, data: make([]uint8, len(p.data))}
	copy(c.data, p.data)
	return c
}

// SubPixmap returns a copy of the pixels inside r, clipped to the pixmap.
func (p *Pixmap) SubPixmap(r image.Rectangle) *Pixmap {
	r = r.Intersect(p.Bounds())
	sub := NewPixmap(r.Dx(), r.Dy())
	if sub.Empty() {
		return sub
	}
	sub.Blit(p, -r.Min.X, -r.Min.Y)
	return sub
}

// Blit copies src into p with its top-left corner at (x, y), replacing the
// destination pixels. No blending is performed.
func (p *Pixmap) Blit(src *Pixmap, x, y int) {
	r := Region(p, src, x, y)
	if r.Empty() {
		return
	}
	n := r.Dx() * 4
	for dy := r.Min.Y; dy < r.Max.Y; dy++ {
		di := p.offset(r.Min.X, dy)
		si := src.offset(r.Min.X-x, dy-y)
		copy(p.data[di:di+n], src.data[si:si+n])
	}
}

// ScaleNearest returns a w×h copy of the pixmap resampled with nearest
// neighbor, which keeps hard pixel edges.
func (p *Pixmap) ScaleNearest(w, h int) *Pixmap {
	out := NewPixmap(w, h)
	if out.Empty() || p.Empty() {
		return out
	}
	draw.NearestNeighbor.Scale(out.view(), out.Bounds(), p.view(), p.Bounds(), draw.Src, nil)
	return out
}

// view returns an image.NRGBA sharing the pixmap's memory.
func (p *Pixmap) view() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.data,
		Stride: p.Stride(),
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// ToImage converts the pixmap to an image.NRGBA.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	if pm.Empty() {
		return pm
	}
	draw.Draw(pm.view(), pm.Bounds(), img, bounds.Min, draw.Src)
	return pm
}

// EncodePNG writes the pixmap to w as a PNG image.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.view()); err != nil {
		return fmt.Errorf("xfermodes: encode png: %w", err)
	}
	return nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("xfermodes: create file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return p.EncodePNG(f)
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	if !p.inBounds(x, y) {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := p.offset(x, y)
	p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = n.R, n.G, n.B, n.A
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
