package xfermodes

import (
	"image"

	"github.com/gogpu/xfermodes/internal/blend"
	"github.com/gogpu/xfermodes/internal/parallel"
)

// minParallelRows is the smallest row band handed to a worker. Regions
// shorter than this are composited on the calling goroutine.
const minParallelRows = 16

// Composite blends src onto dst with src's top-left corner at (x, y) in dst
// coordinates, writing the result into dst.
//
// Only pixels inside Region(dst, src, x, y) are touched; src is never
// modified. Offsets may be negative or lie beyond dst; a region with no
// overlap is a no-op. Both pixmaps hold straight (non-premultiplied) alpha.
// An undefined mode composites as SrcOver.
//
// Composite holds no state and takes no locks. Callers that share a
// destination across goroutines must partition it themselves.
func Composite(dst, src *Pixmap, x, y int, op Mode) {
	r := Region(dst, src, x, y)
	if r.Empty() {
		return
	}
	src = detach(dst, src)
	compositeRows(dst, src, x, y, op, r.Min.X, r.Max.X, r.Min.Y, r.Max.Y)
}

// detach copies src when it is the destination itself, so that no pixel is
// read after the same call has overwritten it.
func detach(dst, src *Pixmap) *Pixmap {
	if dst == src {
		return src.Clone()
	}
	return src
}

// CompositeParallel is Composite with the region split into row bands that
// run concurrently on a temporary worker pool. workers <= 0 uses GOMAXPROCS.
// The result is identical to Composite.
func CompositeParallel(dst, src *Pixmap, x, y int, op Mode, workers int) {
	r := Region(dst, src, x, y)
	if r.Dy() < 2*minParallelRows {
		Composite(dst, src, x, y, op)
		return
	}
	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()
	compositeWithPool(pool, dst, detach(dst, src), x, y, op, r)
}

// Pool composites on a reusable set of worker goroutines, for callers that
// composite many times and do not want a new pool per call.
type Pool struct {
	workers *parallel.WorkerPool
}

// NewPool starts a pool with the given number of workers. workers <= 0 uses
// GOMAXPROCS. Close must be called to release the goroutines.
func NewPool(workers int) *Pool {
	return &Pool{workers: parallel.NewWorkerPool(workers)}
}

// Composite behaves like CompositeParallel using the pool's workers.
func (p *Pool) Composite(dst, src *Pixmap, x, y int, op Mode) {
	r := Region(dst, src, x, y)
	if r.Empty() {
		return
	}
	compositeWithPool(p.workers, dst, detach(dst, src), x, y, op, r)
}

// Close stops the pool's workers.
func (p *Pool) Close() {
	p.workers.Close()
}

func compositeWithPool(pool *parallel.WorkerPool, dst, src *Pixmap, x, y int, op Mode, r image.Rectangle) {
	bands := parallel.SplitRows(r.Min.Y, r.Max.Y, pool.Workers(), minParallelRows)
	Logger().Debug("composite parallel",
		"mode", op.String(),
		"region", r.String(),
		"bands", len(bands))

	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			compositeRows(dst, src, x, y, op, r.Min.X, r.Max.X, b.Y0, b.Y1)
		}
	}
	pool.ExecuteAll(work)
}

// compositeRows blends the destination rectangle [x0,x1)×[y0,y1), which must
// lie inside the composite region. Each destination pixel is read once before
// it is written, so results never feed back into later pixels.
func compositeRows(dst, src *Pixmap, x, y int, op Mode, x0, x1, y0, y1 int) {
	dstStride := dst.Stride()
	srcStride := src.Stride()
	for dy := y0; dy < y1; dy++ {
		di := dy*dstStride + x0*4
		si := (dy-y)*srcStride + (x0-x)*4
		for dx := x0; dx < x1; dx++ {
			var s, d [4]uint8
			copy(s[:], src.data[si:si+4])
			copy(d[:], dst.data[di:di+4])
			out := blend.ApplyBytes(op, s, d)
			copy(dst.data[di:di+4], out[:])
			di += 4
			si += 4
		}
	}
}
