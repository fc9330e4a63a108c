package parallel

// Band is a half-open row range [Y0, Y1).
type Band struct {
	Y0, Y1 int
}

// Rows returns the band's height.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows divides [y0, y1) into at most n contiguous bands of near-equal
// height, each at least minRows tall. Bands never overlap and together cover
// the whole range. An empty range yields no bands.
func SplitRows(y0, y1, n, minRows int) []Band {
	rows := y1 - y0
	if rows <= 0 {
		return nil
	}
	minRows = max(minRows, 1)
	n = min(max(n, 1), max(rows/minRows, 1))

	bands := make([]Band, 0, n)
	base, extra := rows/n, rows%n
	y := y0
	for i := range n {
		h := base
		if i < extra {
			h++
		}
		bands = append(bands, Band{Y0: y, Y1: y + h})
		y += h
	}
	return bands
}
