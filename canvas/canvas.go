// SPDX-License-Identifier: MIT
package canvas

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned by New when width or height is
	// not positive.
	ErrInvalidDimensions = errors.New("canvas: dimensions must be > 0")

	// ErrOutOfBounds is returned by pixel accessors when (x, y) falls
	// outside the canvas.
	ErrOutOfBounds = errors.New("canvas: pixel out of bounds")
)

// boundsErrorf wraps ErrOutOfBounds with the offending coordinates and
// the canvas extent, mirroring the matrix package's index errors.
func boundsErrorf(method string, x, y, width, height int) error {
	return fmt.Errorf("%s(%d,%d): bounds %dx%d: %w", method, x, y, width, height, ErrOutOfBounds)
}

// Canvas is a width×height grid of Color pixels stored row-major,
// every pixel initialized to black. (0, 0) is the top-left corner; x
// grows rightward and y grows downward.
type Canvas struct {
	width, height int
	pixels        []Color
}

// New returns a width×height canvas with every pixel black, or
// ErrInvalidDimensions when either extent is not positive.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", width, height, ErrInvalidDimensions)
	}

	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]Color, width*height),
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Size returns the total number of pixels.
func (c *Canvas) Size() int { return len(c.pixels) }

// ColorAt returns the color of pixel (x, y), or ErrOutOfBounds.
func (c *Canvas) ColorAt(x, y int) (Color, error) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Color{}, boundsErrorf("ColorAt", x, y, c.width, c.height)
	}

	return c.pixels[y*c.width+x], nil
}

// SetPixel paints pixel (x, y) with col, or returns ErrOutOfBounds.
func (c *Canvas) SetPixel(x, y int, col Color) error {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return boundsErrorf("SetPixel", x, y, c.width, c.height)
	}
	c.pixels[y*c.width+x] = col

	return nil
}
