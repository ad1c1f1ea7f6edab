// Package tuple provides the homogeneous 4-component coordinate that the
// rest of affine3d is built on.
//
// A Tuple with W == 1 designates a point; W == 0 designates a vector.
// Other W values occur transiently during scalar arithmetic and carry no
// geometric meaning. The usual combinations stay coordinate-valid:
//
//	point  + vector = point
//	point  − point  = vector
//	vector ± vector = vector
//
// Add and Sub do not enforce this; it is a documented precondition, not
// a runtime check. Cross is the one operation that validates its operands
// (both must be vectors) and reports ErrNotVector otherwise; MustCross is
// the unchecked, panicking variant.
//
// All approximate comparisons in affine3d share the Epsilon constant
// defined here.
package tuple
