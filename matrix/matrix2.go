package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/affine3d/tuple"
)

// size2 is the dimension of Matrix2; the backing array holds size2² elements.
const size2 = 2

// Matrix2 is a 2×2 matrix of float64 values stored in a flat row-major
// array. It is a value type: every operation except Set returns a new
// matrix and leaves the receiver untouched.
type Matrix2 struct {
	data [size2 * size2]float64
}

// Zero2 returns the 2×2 zero matrix.
func Zero2() Matrix2 {
	return Matrix2{}
}

// Identity2 returns the 2×2 identity matrix.
func Identity2() Matrix2 {
	return NewMatrix2([4]float64{
		1, 0,
		0, 1,
	})
}

// NewMatrix2 builds a Matrix2 from row-major data.
func NewMatrix2(rowMajor [4]float64) Matrix2 {
	return Matrix2{data: rowMajor}
}

// NewMatrix2ColumnMajor builds a Matrix2 from column-major data,
// transposing the input during construction.
func NewMatrix2ColumnMajor(colMajor [4]float64) Matrix2 {
	var m Matrix2
	for row := 0; row < size2; row++ {
		for col := 0; col < size2; col++ {
			m.data[row*size2+col] = colMajor[col*size2+row]
		}
	}

	return m
}

// At retrieves the element at (row, col), or a wrapped ErrOutOfRange when
// either index is outside [0, 2).
func (m Matrix2) At(row, col int) (float64, error) {
	if row < 0 || row >= size2 || col < 0 || col >= size2 {
		return 0, indexErrorf("Matrix2.At", row, col, size2)
	}

	return m.data[row*size2+col], nil
}

// Set assigns v at (row, col), or returns a wrapped ErrOutOfRange when
// either index is outside [0, 2).
func (m *Matrix2) Set(row, col int, v float64) error {
	if row < 0 || row >= size2 || col < 0 || col >= size2 {
		return indexErrorf("Matrix2.Set", row, col, size2)
	}
	m.data[row*size2+col] = v

	return nil
}

// Add returns the element-wise sum m + o.
func (m Matrix2) Add(o Matrix2) Matrix2 {
	var out Matrix2
	for i := range m.data {
		out.data[i] = m.data[i] + o.data[i]
	}

	return out
}

// Sub returns the element-wise difference m − o.
func (m Matrix2) Sub(o Matrix2) Matrix2 {
	var out Matrix2
	for i := range m.data {
		out.data[i] = m.data[i] - o.data[i]
	}

	return out
}

// Mul returns the matrix product m × o (row·column dot products).
// Complexity: O(n³) with n = 2.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	var out Matrix2
	for row := 0; row < size2; row++ {
		for col := 0; col < size2; col++ {
			var sum float64
			for k := 0; k < size2; k++ {
				sum += m.data[row*size2+k] * o.data[k*size2+col]
			}
			out.data[row*size2+col] = sum
		}
	}

	return out
}

// Scale returns m with every element multiplied by f.
func (m Matrix2) Scale(f float64) Matrix2 {
	var out Matrix2
	for i := range m.data {
		out.data[i] = m.data[i] * f
	}

	return out
}

// Div returns m with every element divided by f.
func (m Matrix2) Div(f float64) Matrix2 {
	return m.Scale(1 / f)
}

// Transpose returns a new matrix with rows and columns swapped.
func (m Matrix2) Transpose() Matrix2 {
	var out Matrix2
	for row := 0; row < size2; row++ {
		for col := 0; col < size2; col++ {
			out.data[col*size2+row] = m.data[row*size2+col]
		}
	}

	return out
}

// Equal reports approximate equality: every corresponding element differs
// by less than tuple.Epsilon.
func (m Matrix2) Equal(o Matrix2) bool {
	for i := range m.data {
		if math.Abs(m.data[i]-o.data[i]) >= tuple.Epsilon {
			return false
		}
	}

	return true
}

// Determinant returns a·d − b·c for the matrix [[a, b], [c, d]].
// This is the base case of the cofactor-expansion chain used by the
// larger sizes.
func (m Matrix2) Determinant() float64 {
	return m.data[0]*m.data[3] - m.data[1]*m.data[2]
}

// Invertible reports whether |det| exceeds tuple.Epsilon.
func (m Matrix2) Invertible() bool {
	return math.Abs(m.Determinant()) > tuple.Epsilon
}

// Inverse returns the 2×2 inverse (adjugate [[d, −b], [−c, a]] divided by
// the determinant), or ErrSingular when the matrix is not invertible.
func (m Matrix2) Inverse() (Matrix2, error) {
	det := m.Determinant()
	if math.Abs(det) <= tuple.Epsilon {
		return Matrix2{}, fmt.Errorf("Matrix2.Inverse: %w", ErrSingular)
	}

	return NewMatrix2([4]float64{
		m.data[3] / det, -m.data[1] / det,
		-m.data[2] / det, m.data[0] / det,
	}), nil
}

// String implements fmt.Stringer for easy debugging.
func (m Matrix2) String() string {
	return matrixString(m.data[:], size2)
}

// matrixString renders a flat row-major slice as bracketed rows; shared
// by the String methods of all three sizes.
func matrixString(data []float64, size int) string {
	var s string
	for row := 0; row < size; row++ {
		s += "["
		for col := 0; col < size; col++ {
			s += fmt.Sprintf("%g", data[row*size+col])
			if col < size-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
