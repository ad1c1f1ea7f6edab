package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/affine3d/tuple"
)

// size3 is the dimension of Matrix3; the backing array holds size3² elements.
const size3 = 3

// Matrix3 is a 3×3 matrix of float64 values stored in a flat row-major
// array. It is a value type: every operation except Set returns a new
// matrix and leaves the receiver untouched.
type Matrix3 struct {
	data [size3 * size3]float64
}

// Zero3 returns the 3×3 zero matrix.
func Zero3() Matrix3 {
	return Matrix3{}
}

// Identity3 returns the 3×3 identity matrix.
func Identity3() Matrix3 {
	return NewMatrix3([9]float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
}

// NewMatrix3 builds a Matrix3 from row-major data.
func NewMatrix3(rowMajor [9]float64) Matrix3 {
	return Matrix3{data: rowMajor}
}

// NewMatrix3ColumnMajor builds a Matrix3 from column-major data,
// transposing the input during construction.
func NewMatrix3ColumnMajor(colMajor [9]float64) Matrix3 {
	var m Matrix3
	for row := 0; row < size3; row++ {
		for col := 0; col < size3; col++ {
			m.data[row*size3+col] = colMajor[col*size3+row]
		}
	}

	return m
}

// At retrieves the element at (row, col), or a wrapped ErrOutOfRange when
// either index is outside [0, 3).
func (m Matrix3) At(row, col int) (float64, error) {
	if row < 0 || row >= size3 || col < 0 || col >= size3 {
		return 0, indexErrorf("Matrix3.At", row, col, size3)
	}

	return m.data[row*size3+col], nil
}

// Set assigns v at (row, col), or returns a wrapped ErrOutOfRange when
// either index is outside [0, 3).
func (m *Matrix3) Set(row, col int, v float64) error {
	if row < 0 || row >= size3 || col < 0 || col >= size3 {
		return indexErrorf("Matrix3.Set", row, col, size3)
	}
	m.data[row*size3+col] = v

	return nil
}

// Add returns the element-wise sum m + o.
func (m Matrix3) Add(o Matrix3) Matrix3 {
	var out Matrix3
	for i := range m.data {
		out.data[i] = m.data[i] + o.data[i]
	}

	return out
}

// Sub returns the element-wise difference m − o.
func (m Matrix3) Sub(o Matrix3) Matrix3 {
	var out Matrix3
	for i := range m.data {
		out.data[i] = m.data[i] - o.data[i]
	}

	return out
}

// Mul returns the matrix product m × o (row·column dot products).
// Complexity: O(n³) with n = 3.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var out Matrix3
	for row := 0; row < size3; row++ {
		for col := 0; col < size3; col++ {
			var sum float64
			for k := 0; k < size3; k++ {
				sum += m.data[row*size3+k] * o.data[k*size3+col]
			}
			out.data[row*size3+col] = sum
		}
	}

	return out
}

// Scale returns m with every element multiplied by f.
func (m Matrix3) Scale(f float64) Matrix3 {
	var out Matrix3
	for i := range m.data {
		out.data[i] = m.data[i] * f
	}

	return out
}

// Div returns m with every element divided by f.
func (m Matrix3) Div(f float64) Matrix3 {
	return m.Scale(1 / f)
}

// Transpose returns a new matrix with rows and columns swapped.
func (m Matrix3) Transpose() Matrix3 {
	var out Matrix3
	for row := 0; row < size3; row++ {
		for col := 0; col < size3; col++ {
			out.data[col*size3+row] = m.data[row*size3+col]
		}
	}

	return out
}

// Equal reports approximate equality: every corresponding element differs
// by less than tuple.Epsilon.
func (m Matrix3) Equal(o Matrix3) bool {
	for i := range m.data {
		if math.Abs(m.data[i]-o.data[i]) >= tuple.Epsilon {
			return false
		}
	}

	return true
}

// submatrix copies m without the given row and column into a Matrix2.
// Indices must be valid; the exported Submatrix enforces bounds.
func (m Matrix3) submatrix(row, col int) Matrix2 {
	var out Matrix2
	i := 0
	for r := 0; r < size3; r++ {
		if r == row {
			continue
		}
		for c := 0; c < size3; c++ {
			if c == col {
				continue
			}
			out.data[i] = m.data[r*size3+c]
			i++
		}
	}

	return out
}

// Submatrix returns the 2×2 matrix obtained by deleting the given row and
// column, or a wrapped ErrOutOfRange when either index is outside [0, 3).
func (m Matrix3) Submatrix(row, col int) (Matrix2, error) {
	if row < 0 || row >= size3 || col < 0 || col >= size3 {
		return Matrix2{}, indexErrorf("Matrix3.Submatrix", row, col, size3)
	}

	return m.submatrix(row, col), nil
}

// Minor returns the determinant of the submatrix at (row, col).
func (m Matrix3) Minor(row, col int) (float64, error) {
	sub, err := m.Submatrix(row, col)
	if err != nil {
		return 0, err
	}

	return sub.Determinant(), nil
}

// cofactor is Minor with the checkerboard sign applied; indices must be
// valid.
func (m Matrix3) cofactor(row, col int) float64 {
	minor := m.submatrix(row, col).Determinant()
	if (row+col)%2 == 1 {
		return -minor
	}

	return minor
}

// Cofactor returns the minor at (row, col), negated when row+col is odd.
func (m Matrix3) Cofactor(row, col int) (float64, error) {
	if row < 0 || row >= size3 || col < 0 || col >= size3 {
		return 0, indexErrorf("Matrix3.Cofactor", row, col, size3)
	}

	return m.cofactor(row, col), nil
}

// Determinant expands along the first row: Σⱼ m[0][j]·cofactor(0, j).
func (m Matrix3) Determinant() float64 {
	var det float64
	for col := 0; col < size3; col++ {
		det += m.data[col] * m.cofactor(0, col)
	}

	return det
}

// Invertible reports whether |det| exceeds tuple.Epsilon.
func (m Matrix3) Invertible() bool {
	return math.Abs(m.Determinant()) > tuple.Epsilon
}

// Inverse returns the inverse matrix, or ErrSingular when m is not
// invertible. The adjugate transpose is folded into the construction
// loop: out[row][col] = cofactor(col, row) / det.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Determinant()
	if math.Abs(det) <= tuple.Epsilon {
		return Matrix3{}, fmt.Errorf("Matrix3.Inverse: %w", ErrSingular)
	}

	var out Matrix3
	for row := 0; row < size3; row++ {
		for col := 0; col < size3; col++ {
			out.data[row*size3+col] = m.cofactor(col, row) / det
		}
	}

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
func (m Matrix3) String() string {
	return matrixString(m.data[:], size3)
}
