// SPDX-License-Identifier: MIT
package tuple

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the process-wide tolerance for approximate floating-point
// comparison. Two components compare equal when their absolute difference
// is below Epsilon. It is a compile-time constant; composed transforms
// and inverses accumulate rounding error and still need to compare
// equal to hand-computed expectations.
const Epsilon = 1e-5

// ErrNotVector indicates that an operation requiring vector operands
// (W == 0) received a tuple that is not a vector.
var ErrNotVector = errors.New("tuple: operand is not a vector")

// Tuple is a 4-component homogeneous coordinate. W == 1 designates a
// point, W == 0 a vector. Tuple is an immutable value type: every
// operation returns a new Tuple.
type Tuple struct {
	X, Y, Z, W float64
}

// New returns a Tuple with explicit components, including W.
func New(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint returns a point: a Tuple with W = 1.
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector returns a vector: a Tuple with W = 0.
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether t designates a point (W == 1).
func (t Tuple) IsPoint() bool { return t.W == 1 }

// IsVector reports whether t designates a vector (W == 0).
func (t Tuple) IsVector() bool { return t.W == 0 }

// Add returns t + o component-wise.
//
// Add does not validate that the resulting W is coordinate-valid; callers
// are responsible for combining only meaningful pairs (point+vector,
// vector+vector).
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{X: t.X + o.X, Y: t.Y + o.Y, Z: t.Z + o.Z, W: t.W + o.W}
}

// Sub returns t − o component-wise. Like Add, it does not validate the
// resulting W.
func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{X: t.X - o.X, Y: t.Y - o.Y, Z: t.Z - o.Z, W: t.W - o.W}
}

// Neg returns t with every component negated, including W.
func (t Tuple) Neg() Tuple {
	return t.Scale(-1)
}

// Scale returns t with every component (including W) multiplied by f.
func (t Tuple) Scale(f float64) Tuple {
	return Tuple{X: t.X * f, Y: t.Y * f, Z: t.Z * f, W: t.W * f}
}

// Div returns t with every component (including W) divided by f.
func (t Tuple) Div(f float64) Tuple {
	return Tuple{X: t.X / f, Y: t.Y / f, Z: t.Z / f, W: t.W / f}
}

// Magnitude returns the Euclidean length √(x²+y²+z²+w²).
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns t scaled to magnitude 1.
func (t Tuple) Normalize() Tuple {
	return t.Div(t.Magnitude())
}

// Dot returns the 4-component dot product Σ tᵢ·oᵢ.
func (t Tuple) Dot(o Tuple) float64 {
	return t.X*o.X + t.Y*o.Y + t.Z*o.Z + t.W*o.W
}

// Cross returns the 3-component cross product t × o as a vector (W = 0);
// the W components of the operands are ignored by the product itself.
// Both operands must be vectors: Cross returns ErrNotVector otherwise.
func (t Tuple) Cross(o Tuple) (Tuple, error) {
	if !t.IsVector() || !o.IsVector() {
		return Tuple{}, fmt.Errorf("Cross: %w", ErrNotVector)
	}

	return NewVector(
		t.Y*o.Z-t.Z*o.Y,
		t.Z*o.X-t.X*o.Z,
		t.X*o.Y-t.Y*o.X,
	), nil
}

// MustCross is Cross without the recoverable error path: it panics when
// either operand is not a vector. For callers that have already
// established vector-ness and want the unchecked form.
func (t Tuple) MustCross(o Tuple) Tuple {
	v, err := t.Cross(o)
	if err != nil {
		panic(err)
	}

	return v
}

// Equal reports approximate equality: every corresponding component
// differs by less than Epsilon.
func (t Tuple) Equal(o Tuple) bool {
	return math.Abs(t.X-o.X) < Epsilon &&
		math.Abs(t.Y-o.Y) < Epsilon &&
		math.Abs(t.Z-o.Z) < Epsilon &&
		math.Abs(t.W-o.W) < Epsilon
}

// String implements fmt.Stringer for easy debugging.
func (t Tuple) String() string {
	return fmt.Sprintf("(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
}
