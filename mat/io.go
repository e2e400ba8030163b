// SPDX-License-Identifier: MIT
// Package mat: plain-text serialization of matrices.
// The format is one row per line, each element rendered fixed-point with
// eight decimals in a minimum width of seven runes, preceded by a single
// space. Fscan reads the same layout back (any whitespace separates
// elements).

package mat

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes m to w, one row per line. Each element is formatted as
// " %7.8f", so columns line up for small magnitudes and simply widen for
// large ones. The dump is lossy past eight decimals; it is a debugging
// and interchange format, not an archival one.
//
// Errors: ErrNilMatrix, plus any writer error.
func Fprint(w io.Writer, m *Mat) error {
	if err := validateNotNil(m); err != nil {
		return err
	}
	var (
		r, c int
		err  error
	)
	for r = 0; r < m.rows; r++ {
		for c = 0; c < m.cols; c++ {
			if _, err = fmt.Fprintf(w, " %7.8f", m.data[r*m.cols+c]); err != nil {
				return err
			}
		}
		if _, err = fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// Fscan fills m from r, reading Rows()*Cols() whitespace-separated
// numbers in row-major order. The shape of m decides how many values are
// consumed; line breaks in the input are irrelevant.
//
// Errors: ErrNilMatrix, plus any scan error (wrapped) when the stream
// ends early or holds a non-numeric token.
func Fscan(r io.Reader, m *Mat) error {
	if err := validateNotNil(m); err != nil {
		return matErrorf(opFscan, err)
	}
	for i := range m.data {
		if _, err := fmt.Fscan(r, &m.data[i]); err != nil {
			return fmt.Errorf("%s: element %d: %w", opFscan, i, err)
		}
	}

	return nil
}

// String renders m via Fprint. A nil matrix prints as "<nil>".
func (m *Mat) String() string {
	if m == nil || m.data == nil {
		return "<nil>"
	}
	var sb strings.Builder
	_ = Fprint(&sb, m)

	return sb.String()
}
