// Package vec provides the vector value types consumed by the matrix core:
// a runtime-dimension Vector backed by a flat []float64, the fixed 2/3/4
// dimensional Vec2, Vec3 and Vec4, and the Quat quaternion used by the
// rotation constructors in package mat.
//
// All types are plain values. Operations never mutate their operands and
// return fresh results; concurrent use on distinct values needs no
// synchronization.
//
// Dimension mismatches and out-of-range indices are reported through the
// package sentinels (ErrDimensionMismatch, ErrOutOfRange, ...) and matched
// with errors.Is. Nothing in this package panics on user input.
package vec
