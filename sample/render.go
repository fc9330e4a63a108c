package sample

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/xfermodes"
)

// cellImages holds the shared, read-only shape images for one cell size.
type cellImages struct {
	dst, src *xfermodes.Pixmap
	w, h     int
}

func newCellImages(w, h int, dst, src xfermodes.RGBA) *cellImages {
	return &cellImages{dst: makeDst(w, h, dst), src: makeSrc(w, h, src), w: w, h: h}
}

// render composites the shapes into a fresh transparent scratch pixmap: the
// destination with SrcOver, then the source with mode. The scratch buffer
// isolates the blend from whatever lies under the cell.
func (ci *cellImages) render(mode xfermodes.Mode) *xfermodes.Pixmap {
	cell := xfermodes.NewPixmap(ci.w, ci.h)
	xfermodes.Composite(cell, ci.dst, 0, 0, xfermodes.SrcOver)
	sx, sy := SrcOffset(ci.w, ci.h)
	xfermodes.Composite(cell, ci.src, sx, sy, mode)
	return cell
}

// RenderCell returns the w×h sample cell for mode on a transparent
// background.
func RenderCell(mode xfermodes.Mode, w, h int) *xfermodes.Pixmap {
	return newCellImages(w, h, xfermodes.ARGB(DstColor), xfermodes.ARGB(SrcColor)).render(mode)
}

// Render draws the full grid, one cell per mode in display order.
func Render(ctx context.Context, cfg Config) (*xfermodes.Pixmap, error) {
	return RenderModes(ctx, cfg, xfermodes.Modes())
}

// RenderModes draws a grid with one cell for each of modes.
//
// Cells are composited concurrently, each into its own scratch pixmap, and
// then placed onto the canvas in order. Rendering stops early if ctx is
// cancelled.
func RenderModes(ctx context.Context, cfg Config, modes []xfermodes.Mode) (*xfermodes.Pixmap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(modes) == 0 {
		return nil, fmt.Errorf("sample: %w: no modes", ErrInvalidConfig)
	}

	log := xfermodes.Logger()
	start := time.Now()

	dstColor, srcColor, err := cfg.colors()
	if err != nil {
		return nil, err
	}
	images := newCellImages(cfg.Cell, cfg.Cell, dstColor, srcColor)
	cells := make([]*xfermodes.Pixmap, len(modes))

	g, gctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}
	for i, mode := range modes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cells[i] = images.render(mode)
			log.Debug("sample: cell rendered", "index", i, "mode", mode.String())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sample: render cells: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("sample: render cells: %w", err)
	}

	labels, err := newLabeler(cfg.LabelSize)
	if err != nil {
		return nil, err
	}
	defer func() { _ = labels.Close() }()

	w, h := cfg.CanvasSize(len(modes))
	canvas := xfermodes.NewPixmap(w, h)
	canvas.Clear(xfermodes.White)
	board := Checkerboard(cfg.Cell, cfg.Cell, cfg.CheckerScale)
	border := xfermodes.ARGB(borderColor)

	for i, mode := range modes {
		o := cfg.CellOrigin(i)

		drawBorder(canvas, o.X-1, o.Y-1, cfg.Cell+2, cfg.Cell+2, border)
		canvas.Blit(board, o.X, o.Y)
		xfermodes.Composite(canvas, cells[i], o.X, o.Y, xfermodes.SrcOver)

		labels.draw(canvas, mode.String(), o.X+cfg.Cell/2, o.Y-int(cfg.LabelSize/2))
	}

	log.Info("sample: grid rendered",
		"cells", len(modes),
		"width", w,
		"height", h,
		"elapsed", time.Since(start))
	return canvas, nil
}

// drawBorder strokes a 1-pixel rectangle outline.
func drawBorder(pm *xfermodes.Pixmap, x, y, w, h int, c xfermodes.RGBA) {
	pm.FillRect(x, y, w, 1, c)
	pm.FillRect(x, y+h-1, w, 1, c)
	pm.FillRect(x, y, 1, h, c)
	pm.FillRect(x+w-1, y, 1, h, c)
}
