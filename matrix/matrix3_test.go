package matrix_test

import (
	"testing"

	"github.com/katalvlaran/affine3d/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatrix3_Construction verifies row-major element placement.
func TestMatrix3_Construction(t *testing.T) {
	m := matrix.NewMatrix3([9]float64{
		-3, 5, 0,
		1, -2, -7,
		0, 1, 1,
	})

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, -3.0, v)

	v, err = m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, -2.0, v)

	v, err = m.At(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestMatrix3_ColumnMajorConstruction verifies the input is transposed.
func TestMatrix3_ColumnMajorConstruction(t *testing.T) {
	byCols := matrix.NewMatrix3ColumnMajor([9]float64{
		1, 4, 7,
		2, 5, 8,
		3, 6, 9,
	})
	byRows := matrix.NewMatrix3([9]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	assert.True(t, byCols.Equal(byRows))
}

// TestMatrix3_AtSetOutOfRange confirms indexers return ErrOutOfRange.
func TestMatrix3_AtSetOutOfRange(t *testing.T) {
	m := matrix.Zero3()

	_, err := m.At(3, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(-1, 1, 2.5)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestMatrix3_Submatrix verifies deleting a row and a column yields the
// expected 2×2 matrix, and that bad indices error.
func TestMatrix3_Submatrix(t *testing.T) {
	m := matrix.NewMatrix3([9]float64{
		1, 5, 0,
		-3, 2, 7,
		0, 6, -3,
	})

	sub, err := m.Submatrix(0, 2)
	require.NoError(t, err)
	assert.True(t, sub.Equal(matrix.NewMatrix2([4]float64{
		-3, 2,
		0, 6,
	})))

	_, err = m.Submatrix(3, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestMatrix3_MinorAndCofactor verifies the minor/cofactor relationship,
// including the checkerboard sign flip.
func TestMatrix3_MinorAndCofactor(t *testing.T) {
	m := matrix.NewMatrix3([9]float64{
		3, 5, 0,
		2, -1, -7,
		6, -1, 5,
	})

	minor, err := m.Minor(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 25.0, minor)

	// (0,0) is even parity: cofactor == minor.
	cof, err := m.Cofactor(0, 0)
	require.NoError(t, err)
	assert.Equal(t, -12.0, cof)

	// (1,0) is odd parity: cofactor == −minor.
	cof, err = m.Cofactor(1, 0)
	require.NoError(t, err)
	assert.Equal(t, -25.0, cof)
}

// TestMatrix3_Determinant verifies first-row expansion against the
// individually asserted cofactors.
func TestMatrix3_Determinant(t *testing.T) {
	m := matrix.NewMatrix3([9]float64{
		1, 2, 6,
		-5, 8, -4,
		2, 6, 4,
	})

	cof00, err := m.Cofactor(0, 0)
	require.NoError(t, err)
	cof01, err := m.Cofactor(0, 1)
	require.NoError(t, err)
	cof02, err := m.Cofactor(0, 2)
	require.NoError(t, err)

	assert.Equal(t, 56.0, cof00)
	assert.Equal(t, 12.0, cof01)
	assert.Equal(t, -46.0, cof02)
	assert.Equal(t, -196.0, m.Determinant())
}

// TestMatrix3_Inverse verifies the inverse roundtrip and the singular
// error path.
func TestMatrix3_Inverse(t *testing.T) {
	m := matrix.NewMatrix3([9]float64{
		1, 2, 6,
		-5, 8, -4,
		2, 6, 4,
	})
	require.True(t, m.Invertible())

	inv, err := m.Inverse()
	require.NoError(t, err)
	assert.True(t, m.Mul(inv).Equal(matrix.Identity3()), "M * M⁻¹ must be identity")

	singular := matrix.NewMatrix3([9]float64{
		1, 2, 3,
		2, 4, 6,
		0, 0, 0,
	})
	assert.False(t, singular.Invertible())
	_, err = singular.Inverse()
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

// TestMatrix3_TransposeProduct verifies (A·B)ᵀ == Bᵀ·Aᵀ.
func TestMatrix3_TransposeProduct(t *testing.T) {
	a := matrix.NewMatrix3([9]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	b := matrix.NewMatrix3([9]float64{
		-2, 1, 2,
		3, 2, 1,
		4, 3, 6,
	})

	assert.True(t, a.Mul(b).Transpose().Equal(b.Transpose().Mul(a.Transpose())))
}

// TestMatrix3_Arithmetic covers Add/Sub/Scale/Div sanity.
func TestMatrix3_Arithmetic(t *testing.T) {
	a := matrix.NewMatrix3([9]float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	assert.True(t, a.Add(a).Equal(a.Scale(2)))
	assert.True(t, a.Sub(a).Equal(matrix.Zero3()))
	assert.True(t, a.Scale(3).Div(3).Equal(a))
	assert.True(t, matrix.Identity3().Mul(a).Equal(a))
}
