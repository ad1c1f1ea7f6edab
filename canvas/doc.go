// Package canvas holds a rectangular grid of floating-point RGB colors
// and serializes it to the plain-text PPM (P3) image format.
//
// Color components are unbounded float64 values while drawing; they are
// clamped to [0, 1] and quantized to 8-bit channels only at
// serialization time. Besides PPM, a Canvas adapts to the standard
// image.Image interface, which opens the door to any encoder in the
// image ecosystem (EncodeBMP uses golang.org/x/image/bmp).
package canvas
