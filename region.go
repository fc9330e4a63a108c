package xfermodes

import "image"

// Region returns the part of dst covered by src when src's top-left corner
// is placed at (x, y) in dst coordinates. The result is empty when the two
// do not overlap.
func Region(dst, src *Pixmap, x, y int) image.Rectangle {
	if dst.Empty() || src.Empty() {
		return image.Rectangle{}
	}
	return src.Bounds().Add(image.Pt(x, y)).Intersect(dst.Bounds())
}
