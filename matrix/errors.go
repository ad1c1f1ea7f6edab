// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All fallible operations return these sentinels, wrapped with operation
// context, and tests check them via errors.Is. No public operation panics
// on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that a row or column index is outside the
	// matrix size. Public indexers (At/Set) and Submatrix/Minor/Cofactor
	// MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSingular is returned by Inverse when the matrix is not
	// invertible, i.e. |det| ≤ tuple.Epsilon. It carries no further
	// detail; callers check Invertible before relying on an inverse.
	ErrSingular = errors.New("matrix: singular matrix")
)

// indexErrorf wraps ErrOutOfRange with method context, the offending
// indices and the matrix bounds.
func indexErrorf(method string, row, col, size int) error {
	return fmt.Errorf("%s(%d,%d): bounds %dx%d: %w", method, row, col, size, size, ErrOutOfRange)
}
