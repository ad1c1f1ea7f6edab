// Package transform builds the affine Matrix4 values used to move,
// resize, rotate and skew points and vectors.
//
// Every constructor is a pure function returning a matrix.Matrix4 built
// on top of the identity. Transforms compose by ordinary matrix
// multiplication, and the rightmost factor in a product acts first:
//
//	T.Mul(S).Mul(R).MulTuple(p) // rotates p, then scales, then translates
//
// Chain offers the same composition in application order, so the code
// reads in the order the transforms act:
//
//	transform.NewChain().RotateX(math.Pi/2).Scale(5, 5, 5).Translate(10, 5, 7).Apply(p)
package transform
