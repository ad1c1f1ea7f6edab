package transform

import (
	"github.com/katalvlaran/affine3d/matrix"
	"github.com/katalvlaran/affine3d/tuple"
)

// Chain accumulates affine transforms in application order: each call
// premultiplies its step onto the product, so the step described first
// acts first. Chain is a thin builder around plain matrix
// multiplication: Matrix returns exactly the product the equivalent
// Mul chain would.
type Chain struct {
	m matrix.Matrix4
}

// NewChain returns a Chain holding the identity transform.
func NewChain() *Chain {
	return &Chain{m: matrix.Identity4()}
}

// apply premultiplies step so that it acts after everything chained
// before it.
func (c *Chain) apply(step matrix.Matrix4) *Chain {
	c.m = step.Mul(c.m)

	return c
}

// Translate appends a translation by (x, y, z).
func (c *Chain) Translate(x, y, z float64) *Chain {
	return c.apply(Translation(x, y, z))
}

// Scale appends a scaling by (x, y, z).
func (c *Chain) Scale(x, y, z float64) *Chain {
	return c.apply(Scaling(x, y, z))
}

// RotateX appends a rotation around the x axis by rad radians.
func (c *Chain) RotateX(rad float64) *Chain {
	return c.apply(RotationX(rad))
}

// RotateY appends a rotation around the y axis by rad radians.
func (c *Chain) RotateY(rad float64) *Chain {
	return c.apply(RotationY(rad))
}

// RotateZ appends a rotation around the z axis by rad radians.
func (c *Chain) RotateZ(rad float64) *Chain {
	return c.apply(RotationZ(rad))
}

// Shear appends a shear with the six proportionality factors of
// Shearing.
func (c *Chain) Shear(xy, xz, yx, yz, zx, zy float64) *Chain {
	return c.apply(Shearing(xy, xz, yx, yz, zx, zy))
}

// Matrix returns the accumulated product.
func (c *Chain) Matrix() matrix.Matrix4 {
	return c.m
}

// Apply runs the accumulated transform on a tuple.
func (c *Chain) Apply(t tuple.Tuple) tuple.Tuple {
	return c.m.MulTuple(t)
}
