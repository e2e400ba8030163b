// Package mat implements dense fixed-dimension matrix algebra for geometry
// processing.
//
// The package provides:
//
//   - Mat, a dense N×M matrix with a flat row-major backing slice, whose
//     dimensions are fixed at construction (runtime-dimension in exchange
//     for Go's lack of const-generic array sizes).
//   - Elementwise and product algebra: Add, Sub, Neg, Scale, Div, Mul,
//     MulVec, Transpose, Tensor, tolerance-aware equality.
//   - Square-matrix algorithms generic over the dimension: Trace,
//     Determinant (LU-based), Inverse (Gauss–Jordan with full pivoting),
//     GaussJordan (simultaneous inversion + multi-RHS solve), LU (Crout
//     with implicit row scaling) + LUSolve, Cholesky + CholeskySolve.
//   - Closed-form Mat2/Mat3/Mat4 value types with direct cofactor
//     determinant/inverse and the transform constructors (scale, rotation
//     from angle/axis–angle/quaternion/Euler orders, translation, SRT).
//   - A fixed-width textual dump (Fprint) and its row-major reader (Fscan).
//
// # Numeric policy
//
// Every fallible operation returns (value, error); singularity and
// non-positive-definiteness surface as the sentinels ErrSingular and
// ErrNotPositiveDefinite, matched with errors.Is. Pivot magnitudes at or
// below Epsilon are treated as zero. The closed-form Mat2/3/4 inverses are
// the one deliberate exception: they do not guard the determinant and will
// produce Inf/NaN on singular input — check Det first when the input may
// be degenerate.
//
// # Storage order
//
// Row-major, always: element (r,c) lives at data[r*cols+c]. This is a fixed
// design decision, never a runtime switch. Raw coefficient slices passed to
// NewFromSlice and returned by Data follow the same order.
//
// All operations are pure CPU-bound value computations: no global state,
// no I/O, no locking. Concurrent calls on distinct matrices are safe;
// serializing mutation of a shared *Mat is the caller's job.
package mat
