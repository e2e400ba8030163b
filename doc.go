// Package geomat is a compact linear-algebra toolkit for geometry
// processing: fixed-dimension matrices and vectors with the classical
// dense decompositions, tuned for the small sizes that dominate
// transform and fitting code.
//
// 🚀 What is geomat?
//
//	A deterministic, thread-safe-by-value library that brings together:
//		• Vector primitives: runtime-dimension Vector plus Vec2/Vec3/Vec4
//		• Generic Mat: dense N×M storage, elementwise & product algebra
//		• Decompositions: Gauss–Jordan (full pivoting), LU (Crout, scaled
//		  partial pivoting), Cholesky — with uniform error reporting
//		• Closed-form 2×2/3×3/4×4 fast paths: cofactor determinant/inverse
//		• Transform constructors: scale, rotation (axis–angle, quaternion,
//		  Euler orders), translation, scale-rotation-translation
//		• Spline curves: cubic interpolation of N-dimensional point samples
//
// ✨ Why choose geomat?
//
//   - Predictable numerics – explicit epsilon policy, sentinel errors,
//     no hidden pivoting surprises
//   - Pure values – every operation returns a fresh result; no shared state
//   - Small-matrix focus – the 2–4 dimensional cases get branch-free
//     closed-form kernels
//
// Everything is organized under three subpackages:
//
//	vec/    — vector and quaternion value types
//	mat/    — the matrix core: storage, algebra, decompositions, Mat2/3/4
//	spline/ — cubic spline curve interpolation built on vec
//
// A quick taste:
//
//	a := mat.MustFromSlice(3, 3, []float64{2, 0, 0, 0, 4, 0, 0, 0, 5})
//	inv, err := mat.Inverse(a) // diag(0.5, 0.25, 0.2)
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
package geomat
