// Package matrix provides the fixed-size square matrices of affine3d:
// Matrix2, Matrix3 and Matrix4, stored as flat row-major arrays.
//
// All three sizes share the same surface: construction (zero, identity,
// row-major, column-major), bounds-checked At/Set, element-wise Add/Sub,
// matrix and scalar multiplication, Transpose, and approximate Equal.
// They also share the same determinant/inverse chain:
//
//	Submatrix(row, col) deletes one row and one column
//	Minor(row, col)     = Submatrix(row, col).Determinant()
//	Cofactor(row, col)  = ±Minor (checkerboard sign on row+col parity)
//	Determinant         = Σⱼ m[0][j]·Cofactor(0, j)   (first-row expansion)
//	Inverse             = adjugate / det               (ErrSingular if |det| ≤ ε)
//
// Matrix4 additionally multiplies with tuple.Tuple and can be built from
// four tuples taken as rows or as columns.
//
// Matrices are value types: no operation mutates its receiver except Set,
// and submatrix extraction copies into a new, smaller value. Fallible
// operations return the package sentinels (ErrOutOfRange, ErrSingular)
// wrapped with operation context; match them with errors.Is.
package matrix
