// SPDX-License-Identifier: MIT
package canvas

import (
	"fmt"
	"math"

	"github.com/katalvlaran/affine3d/tuple"
)

// Color is an RGB triple with unbounded float64 components. Values
// outside [0, 1] are legal and survive arithmetic; clamping happens
// only when the canvas is serialized.
type Color struct {
	R, G, B float64
}

// NewColor returns the color (r, g, b).
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the component-wise sum c + o.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Sub returns the component-wise difference c - o.
func (c Color) Sub(o Color) Color {
	return Color{R: c.R - o.R, G: c.G - o.G, B: c.B - o.B}
}

// Neg returns the component-wise negation of c.
func (c Color) Neg() Color {
	return Color{R: -c.R, G: -c.G, B: -c.B}
}

// Scale returns c with every component multiplied by f.
func (c Color) Scale(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f}
}

// Div returns c with every component divided by f.
func (c Color) Div(f float64) Color {
	return Color{R: c.R / f, G: c.G / f, B: c.B / f}
}

// Hadamard returns the component-wise product c ⊙ o, the blend of a
// surface color with a light color.
func (c Color) Hadamard(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// Equal reports whether every component of c and o differs by less
// than tuple.Epsilon.
func (c Color) Equal(o Color) bool {
	return math.Abs(c.R-o.R) < tuple.Epsilon &&
		math.Abs(c.G-o.G) < tuple.Epsilon &&
		math.Abs(c.B-o.B) < tuple.Epsilon
}

// String implements fmt.Stringer for debug output.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}
