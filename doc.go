// Package affine3d is a small, fixed-size 3D affine-geometry kernel:
// homogeneous-coordinate tuples, 2×2/3×3/4×4 matrices, affine transform
// constructors, and a pixel canvas that serializes to plain-text PPM.
//
// What is inside?
//
//	A deliberately small, single-threaded library that brings together:
//		• Tuples: points (w=1) and vectors (w=0) with full vector algebra
//		• Matrices: fixed-size 2×2, 3×3 and 4×4 values with transpose,
//		  submatrix/minor/cofactor, determinant and inverse
//		• Transforms: translation, scaling, axis rotations and shear,
//		  composable by plain matrix multiplication or a fluent Chain
//		• Canvas: a bounds-checked color grid with P3 (PPM) serialization
//		  and BMP export
//
// Design principles:
//
//   - Value semantics everywhere: every operation returns a new value;
//     the canvas is the only mutable entity.
//   - No panics on user input: fallible operations return sentinel errors
//     matched with errors.Is.
//   - One epsilon: all approximate comparisons share tuple.Epsilon.
//
// Everything is organized under four subpackages:
//
//	tuple/     — homogeneous 4-component coordinates and vector algebra
//	matrix/    — fixed-size square matrices and the cofactor-expansion
//	             determinant/inverse chain
//	transform/ — affine Matrix4 constructors and composition
//	canvas/    — colors, the pixel grid, and PPM/BMP output
//
// The cmd/ directory holds two toy consumers (a projectile trajectory and
// a clock face) that exercise the public surface end to end.
//
//	go get github.com/katalvlaran/affine3d
package affine3d
