package matrix_test

import (
	"testing"

	"github.com/katalvlaran/affine3d/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatrix2_Construction verifies row-major element placement.
func TestMatrix2_Construction(t *testing.T) {
	m := matrix.NewMatrix2([4]float64{
		-3, 5,
		1, -2,
	})

	mustAt2 := func(row, col int) float64 {
		v, err := m.At(row, col)
		require.NoError(t, err)
		return v
	}

	assert.Equal(t, -3.0, mustAt2(0, 0))
	assert.Equal(t, 5.0, mustAt2(0, 1))
	assert.Equal(t, 1.0, mustAt2(1, 0))
	assert.Equal(t, -2.0, mustAt2(1, 1))
}

// TestMatrix2_ColumnMajorConstruction verifies the input is transposed.
func TestMatrix2_ColumnMajorConstruction(t *testing.T) {
	byCols := matrix.NewMatrix2ColumnMajor([4]float64{
		1, 3,
		2, 4,
	})
	byRows := matrix.NewMatrix2([4]float64{
		1, 2,
		3, 4,
	})

	assert.True(t, byCols.Equal(byRows))
}

// TestMatrix2_AtSetOutOfRange confirms indexers return ErrOutOfRange
// rather than panicking.
func TestMatrix2_AtSetOutOfRange(t *testing.T) {
	m := matrix.Zero2()

	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, 2, 1.0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestMatrix2_Arithmetic covers Add/Sub/Scale/Div and the matrix product.
func TestMatrix2_Arithmetic(t *testing.T) {
	a := matrix.NewMatrix2([4]float64{
		1, 2,
		3, 4,
	})
	b := matrix.NewMatrix2([4]float64{
		5, 6,
		7, 8,
	})

	assert.True(t, a.Add(b).Equal(matrix.NewMatrix2([4]float64{6, 8, 10, 12})))
	assert.True(t, b.Sub(a).Equal(matrix.NewMatrix2([4]float64{4, 4, 4, 4})))
	assert.True(t, a.Scale(2).Equal(matrix.NewMatrix2([4]float64{2, 4, 6, 8})))
	assert.True(t, a.Scale(2).Div(2).Equal(a))
	assert.True(t, a.Mul(b).Equal(matrix.NewMatrix2([4]float64{19, 22, 43, 50})))
	assert.True(t, a.Mul(matrix.Identity2()).Equal(a))
}

// TestMatrix2_Transpose verifies index swapping.
func TestMatrix2_Transpose(t *testing.T) {
	m := matrix.NewMatrix2([4]float64{
		1, 2,
		3, 4,
	})

	assert.True(t, m.Transpose().Equal(matrix.NewMatrix2([4]float64{1, 3, 2, 4})))
	assert.True(t, matrix.Identity2().Transpose().Equal(matrix.Identity2()))
}

// TestMatrix2_Determinant checks the ad − bc base case.
func TestMatrix2_Determinant(t *testing.T) {
	m := matrix.NewMatrix2([4]float64{
		1, 5,
		-3, 2,
	})

	assert.Equal(t, 17.0, m.Determinant())
}

// TestMatrix2_Inverse verifies the closed-form inverse and the singular
// error path.
func TestMatrix2_Inverse(t *testing.T) {
	m := matrix.NewMatrix2([4]float64{
		4, 7,
		2, 6,
	})
	require.True(t, m.Invertible())

	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.True(t, m.Mul(inv).Equal(matrix.Identity2()), "M * M⁻¹ must be identity")

	singular := matrix.NewMatrix2([4]float64{
		1, 2,
		2, 4,
	})
	assert.False(t, singular.Invertible())
	_, err = singular.Inverse()
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestMatrix2_EqualEpsilon verifies the approximate-equality contract.
func TestMatrix2_EqualEpsilon(t *testing.T) {
	a := matrix.NewMatrix2([4]float64{1, 2, 3, 4})
	b := matrix.NewMatrix2([4]float64{1 + 1e-6, 2, 3, 4 - 1e-6})
	c := matrix.NewMatrix2([4]float64{1 + 1e-4, 2, 3, 4})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
