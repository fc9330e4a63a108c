package parallel

import "testing"

// BenchmarkWorkerPool_Create benchmarks creating a worker pool.
func BenchmarkWorkerPool_Create(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		pool := NewWorkerPool(0) // Use GOMAXPROCS
		pool.Close()
	}
}

// BenchmarkWorkerPool_ExecuteAll_Bands benchmarks one band per worker over
// a 1080-row image, each band touching every byte of its rows.
func BenchmarkWorkerPool_ExecuteAll_Bands(b *testing.B) {
	const width, height = 1920, 1080
	pool := NewWorkerPool(0)
	defer pool.Close()

	buf := make([]byte, width*height*4)
	bands := SplitRows(0, height, pool.Workers(), 16)
	work := make([]func(), len(bands))
	for i, band := range bands {
		work[i] = func() {
			row := buf[band.Y0*width*4 : band.Y1*width*4]
			for j := range row {
				row[j] ^= 0xFF
			}
		}
	}

	b.ReportAllocs()
	for b.Loop() {
		pool.ExecuteAll(work)
	}
}

func BenchmarkSplitRows(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = SplitRows(0, 2160, 16, 16)
	}
}
