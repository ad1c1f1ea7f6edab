package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/affine3d/tuple"
)

// size4 is the dimension of Matrix4; the backing array holds size4² elements.
const size4 = 4

// Matrix4 is a 4×4 matrix of float64 values stored in a flat row-major
// array. It is the workhorse of the kernel: every affine transform is a
// Matrix4, composed by Mul and applied to tuples by MulTuple. It is a
// value type: every operation except Set returns a new matrix and leaves
// the receiver untouched.
type Matrix4 struct {
	data [size4 * size4]float64
}

// Zero4 returns the 4×4 zero matrix.
func Zero4() Matrix4 {
	return Matrix4{}
}

// Identity4 returns the 4×4 identity matrix.
func Identity4() Matrix4 {
	return NewMatrix4([16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
}

// NewMatrix4 builds a Matrix4 from row-major data.
func NewMatrix4(rowMajor [16]float64) Matrix4 {
	return Matrix4{data: rowMajor}
}

// NewMatrix4ColumnMajor builds a Matrix4 from column-major data,
// transposing the input during construction.
func NewMatrix4ColumnMajor(colMajor [16]float64) Matrix4 {
	var m Matrix4
	for row := 0; row < size4; row++ {
		for col := 0; col < size4; col++ {
			m.data[row*size4+col] = colMajor[col*size4+row]
		}
	}

	return m
}

// Matrix4FromColumns builds a matrix whose columns are the four tuples:
//
//	| t1.X  t2.X  t3.X  t4.X |
//	| t1.Y  t2.Y  t3.Y  t4.Y |
//	| t1.Z  t2.Z  t3.Z  t4.Z |
//	| t1.W  t2.W  t3.W  t4.W |
func Matrix4FromColumns(t1, t2, t3, t4 tuple.Tuple) Matrix4 {
	return NewMatrix4([16]float64{
		t1.X, t2.X, t3.X, t4.X,
		t1.Y, t2.Y, t3.Y, t4.Y,
		t1.Z, t2.Z, t3.Z, t4.Z,
		t1.W, t2.W, t3.W, t4.W,
	})
}

// Matrix4FromRows builds a matrix whose rows are the four tuples:
//
//	| t1.X  t1.Y  t1.Z  t1.W |
//	| t2.X  t2.Y  t2.Z  t2.W |
//	| t3.X  t3.Y  t3.Z  t3.W |
//	| t4.X  t4.Y  t4.Z  t4.W |
func Matrix4FromRows(t1, t2, t3, t4 tuple.Tuple) Matrix4 {
	return NewMatrix4([16]float64{
		t1.X, t1.Y, t1.Z, t1.W,
		t2.X, t2.Y, t2.Z, t2.W,
		t3.X, t3.Y, t3.Z, t3.W,
		t4.X, t4.Y, t4.Z, t4.W,
	})
}

// At retrieves the element at (row, col), or a wrapped ErrOutOfRange when
// either index is outside [0, 4).
func (m Matrix4) At(row, col int) (float64, error) {
	if row < 0 || row >= size4 || col < 0 || col >= size4 {
		return 0, indexErrorf("Matrix4.At", row, col, size4)
	}

	return m.data[row*size4+col], nil
}

// Set assigns v at (row, col), or returns a wrapped ErrOutOfRange when
// either index is outside [0, 4).
func (m *Matrix4) Set(row, col int, v float64) error {
	if row < 0 || row >= size4 || col < 0 || col >= size4 {
		return indexErrorf("Matrix4.Set", row, col, size4)
	}
	m.data[row*size4+col] = v

	return nil
}

// Add returns the element-wise sum m + o.
func (m Matrix4) Add(o Matrix4) Matrix4 {
	var out Matrix4
	for i := range m.data {
		out.data[i] = m.data[i] + o.data[i]
	}

	return out
}

// Sub returns the element-wise difference m − o.
func (m Matrix4) Sub(o Matrix4) Matrix4 {
	var out Matrix4
	for i := range m.data {
		out.data[i] = m.data[i] - o.data[i]
	}

	return out
}

// Mul returns the matrix product m × o (row·column dot products).
// Composition contract: the rightmost factor in a product acts first, so
// a.Mul(b).MulTuple(t) applies b to t before a.
// Complexity: O(n³) with n = 4.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var out Matrix4
	for row := 0; row < size4; row++ {
		for col := 0; col < size4; col++ {
			var sum float64
			for k := 0; k < size4; k++ {
				sum += m.data[row*size4+k] * o.data[k*size4+col]
			}
			out.data[row*size4+col] = sum
		}
	}

	return out
}

// MulTuple returns the matrix–vector product m × t, treating the tuple as
// a column vector.
func (m Matrix4) MulTuple(t tuple.Tuple) tuple.Tuple {
	d := &m.data

	return tuple.New(
		d[0]*t.X+d[1]*t.Y+d[2]*t.Z+d[3]*t.W,
		d[4]*t.X+d[5]*t.Y+d[6]*t.Z+d[7]*t.W,
		d[8]*t.X+d[9]*t.Y+d[10]*t.Z+d[11]*t.W,
		d[12]*t.X+d[13]*t.Y+d[14]*t.Z+d[15]*t.W,
	)
}

// Scale returns m with every element multiplied by f.
func (m Matrix4) Scale(f float64) Matrix4 {
	var out Matrix4
	for i := range m.data {
		out.data[i] = m.data[i] * f
	}

	return out
}

// Div returns m with every element divided by f.
func (m Matrix4) Div(f float64) Matrix4 {
	return m.Scale(1 / f)
}

// Transpose returns a new matrix with rows and columns swapped.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for row := 0; row < size4; row++ {
		for col := 0; col < size4; col++ {
			out.data[col*size4+row] = m.data[row*size4+col]
		}
	}

	return out
}

// Equal reports approximate equality: every corresponding element differs
// by less than tuple.Epsilon.
func (m Matrix4) Equal(o Matrix4) bool {
	for i := range m.data {
		if math.Abs(m.data[i]-o.data[i]) >= tuple.Epsilon {
			return false
		}
	}

	return true
}

// submatrix copies m without the given row and column into a Matrix3.
// Indices must be valid; the exported Submatrix enforces bounds.
func (m Matrix4) submatrix(row, col int) Matrix3 {
	var out Matrix3
	i := 0
	for r := 0; r < size4; r++ {
		if r == row {
			continue
		}
		for c := 0; c < size4; c++ {
			if c == col {
				continue
			}
			out.data[i] = m.data[r*size4+c]
			i++
		}
	}

	return out
}

// Submatrix returns the 3×3 matrix obtained by deleting the given row and
// column, or a wrapped ErrOutOfRange when either index is outside [0, 4).
func (m Matrix4) Submatrix(row, col int) (Matrix3, error) {
	if row < 0 || row >= size4 || col < 0 || col >= size4 {
		return Matrix3{}, indexErrorf("Matrix4.Submatrix", row, col, size4)
	}

	return m.submatrix(row, col), nil
}

// Minor returns the determinant of the submatrix at (row, col).
func (m Matrix4) Minor(row, col int) (float64, error) {
	sub, err := m.Submatrix(row, col)
	if err != nil {
		return 0, err
	}

	return sub.Determinant(), nil
}

// cofactor is Minor with the checkerboard sign applied; indices must be
// valid.
func (m Matrix4) cofactor(row, col int) float64 {
	minor := m.submatrix(row, col).Determinant()
	if (row+col)%2 == 1 {
		return -minor
	}

	return minor
}

// Cofactor returns the minor at (row, col), negated when row+col is odd.
func (m Matrix4) Cofactor(row, col int) (float64, error) {
	if row < 0 || row >= size4 || col < 0 || col >= size4 {
		return 0, indexErrorf("Matrix4.Cofactor", row, col, size4)
	}

	return m.cofactor(row, col), nil
}

// Determinant expands along the first row: Σⱼ m[0][j]·cofactor(0, j).
// Each cofactor recurses through a 3×3 and then 2×2 determinant.
func (m Matrix4) Determinant() float64 {
	var det float64
	for col := 0; col < size4; col++ {
		det += m.data[col] * m.cofactor(0, col)
	}

	return det
}

// Invertible reports whether |det| exceeds tuple.Epsilon.
func (m Matrix4) Invertible() bool {
	return math.Abs(m.Determinant()) > tuple.Epsilon
}

// Inverse returns the inverse matrix, or ErrSingular when m is not
// invertible. The adjugate transpose is folded into the construction
// loop: out[row][col] = cofactor(col, row) / det.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if math.Abs(det) <= tuple.Epsilon {
		return Matrix4{}, fmt.Errorf("Matrix4.Inverse: %w", ErrSingular)
	}

	var out Matrix4
	for row := 0; row < size4; row++ {
		for col := 0; col < size4; col++ {
			out.data[row*size4+col] = m.cofactor(col, row) / det
		}
	}

	return out, nil
}

// String implements fmt.Stringer for easy debugging.
func (m Matrix4) String() string {
	return matrixString(m.data[:], size4)
}
