// Package xfermodes provides a software Porter-Duff compositor.
//
// # Overview
//
// Composite blends a source Pixmap onto a destination Pixmap at an integer
// offset using one of eighteen blend operators: the twelve Porter-Duff
// operators (Clear, Src, Dst, SrcOver, DstOver, SrcIn, DstIn, SrcOut,
// DstOut, SrcATop, DstATop, Xor) and six separable blend modes (Darken,
// Lighten, Multiply, Screen, Add, Overlay).
//
// # Quick Start
//
//	dst := xfermodes.NewPixmap(10, 10)
//	dst.Clear(xfermodes.ARGB(0xFFFFCC44))
//
//	src := xfermodes.NewPixmap(4, 4)
//	src.Clear(xfermodes.ARGB(0xFF66AAFF))
//
//	xfermodes.Composite(dst, src, 3, 3, xfermodes.SrcOver)
//	_ = dst.SavePNG("out.png")
//
// # Pixel Format
//
// A Pixmap stores straight (non-premultiplied) alpha as R, G, B, A bytes,
// row-major with no padding. Porter-Duff operators premultiply internally,
// apply the operator's (Fs, Fd) coefficients and divide by the result alpha
// before storing. A result with zero alpha is stored as transparent black.
// Passing premultiplied data produces wrong colors; it is not detected.
//
// Separable modes blend straight color per channel and then composite the
// blended color with source-over alpha.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Offsets may be negative or lie past the destination. Only the overlap,
// see Region, is written.
//
// # Concurrency
//
// Composite is synchronous and keeps no state. CompositeParallel and Pool
// split the overlap into disjoint row bands. Concurrent calls that write the
// same destination pixels are not synchronized.
package xfermodes

// Version is the library version reported by cmd/xfermodes -version.
const Version = "0.1.0"
