// SPDX-License-Identifier: MIT
// Package mat: validation helpers and operation tags.
// Validators are pure and allocation-free: they return plain sentinels and
// never wrap. Wrapping with the operation tag happens exactly once, at the
// public API boundary, via matErrorf — so errors.Is always matches and the
// message still names the failing operation.

package mat

import "fmt"

// Operation tags used in wrapped error messages.
const (
	opNew          = "New"
	opNewFromSlice = "NewFromSlice"
	opAt           = "At"
	opSet          = "Set"
	opRow          = "Row"
	opCol          = "Col"
	opSetRow       = "SetRow"
	opSetCol       = "SetCol"
	opSwapRows     = "SwapRows"
	opSwapCols     = "SwapCols"
	opAdd          = "Add"
	opSub          = "Sub"
	opDiv          = "Div"
	opMul          = "Mul"
	opMulVec       = "MulVec"
	opTensor       = "Tensor"
	opTrace        = "Trace"
	opGaussJordan  = "GaussJordan"
	opInverse      = "Inverse"
	opLU           = "LU"
	opLUSolve      = "LUSolve"
	opDeterminant  = "Determinant"
	opCholesky     = "Cholesky"
	opCholSolve    = "CholeskySolve"
	opCholSolveMat = "CholeskySolveMat"
	opFscan        = "Fscan"
	opEuler        = "RotationEuler"
)

// matErrorf wraps a sentinel with the operation tag, preserving errors.Is.
func matErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// validateShape rejects non-positive dimensions.
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return ErrBadShape
	}

	return nil
}

// validateIndex rejects out-of-bounds element coordinates.
func (m *Mat) validateIndex(r, c int) error {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return ErrOutOfRange
	}

	return nil
}

// validateNotNil rejects nil operands before any field access.
func validateNotNil(ms ...*Mat) error {
	for _, m := range ms {
		if m == nil || m.data == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// validateSameShape rejects operand pairs of different shapes.
func validateSameShape(a, b *Mat) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrDimensionMismatch
	}

	return nil
}

// validateSquare rejects non-square inputs to the square-only algorithms.
func validateSquare(m *Mat) error {
	if m.rows != m.cols {
		return ErrDimensionMismatch
	}

	return nil
}
