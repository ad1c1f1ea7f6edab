package transform

import (
	"math"

	"github.com/katalvlaran/affine3d/matrix"
)

// Translation returns the matrix moving points by (x, y, z).
// Vectors (W == 0) pass through unchanged because the translation lives
// in column 3, which only the W component reaches.
func Translation(x, y, z float64) matrix.Matrix4 {
	m := matrix.Identity4()
	_ = m.Set(0, 3, x)
	_ = m.Set(1, 3, y)
	_ = m.Set(2, 3, z)

	return m
}

// Scaling returns the matrix multiplying each coordinate by the given
// factor. Negative factors reflect across the corresponding axis.
func Scaling(x, y, z float64) matrix.Matrix4 {
	m := matrix.Identity4()
	_ = m.Set(0, 0, x)
	_ = m.Set(1, 1, y)
	_ = m.Set(2, 2, z)

	return m
}

// RotationX returns the right-handed rotation around the x axis by rad
// radians.
func RotationX(rad float64) matrix.Matrix4 {
	sin, cos := math.Sincos(rad)

	return matrix.NewMatrix4([16]float64{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	})
}

// RotationY returns the right-handed rotation around the y axis by rad
// radians.
func RotationY(rad float64) matrix.Matrix4 {
	sin, cos := math.Sincos(rad)

	return matrix.NewMatrix4([16]float64{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	})
}

// RotationZ returns the right-handed rotation around the z axis by rad
// radians.
func RotationZ(rad float64) matrix.Matrix4 {
	sin, cos := math.Sincos(rad)

	return matrix.NewMatrix4([16]float64{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// Shearing returns the shear matrix with six proportionality factors:
// each parameter names the coordinate it moves and the coordinate it
// moves in proportion to (xy shifts x in proportion to y, and so on).
// Entry (row, col) receives the factor scaling coordinate col's
// contribution to coordinate row.
func Shearing(xy, xz, yx, yz, zx, zy float64) matrix.Matrix4 {
	return matrix.NewMatrix4([16]float64{
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	})
}
