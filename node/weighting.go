// SPDX-License-Identifier: MIT
package node

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Weight is one masked-weighting entry: either a finite coefficient or a
// skip marker stating that the unit contributes nothing at that position.
type Weight struct {
	coef float64
	skip bool
}

// Coef returns a contributing entry with coefficient c.
func Coef(c float64) Weight { return Weight{coef: c} }

// Skip returns a non-contributing entry.
func Skip() Weight { return Weight{skip: true} }

// IsSkip reports whether w marks a skipped position.
func (w Weight) IsSkip() bool { return w.skip }

// Value returns the coefficient of a contributing entry, zero for Skip.
func (w Weight) Value() float64 { return w.coef }

// Weighting prescribes how per-unit outputs merge into the node output.
// It is one of two mutually exclusive conventions:
//
//   - Uniform: one scalar per unit; output position k receives the weighted
//     sum of every unit's k-th series, so all units must produce the same
//     number of series.
//   - Masked: one row per unit, all rows of one length (the output width);
//     each row states, per position, whether the unit contributes there and
//     with which coefficient. A unit's output series are consumed left to
//     right across the contributing positions of its row, so it must
//     produce exactly as many series as its row has non-skip entries.
//
// The zero Weighting is invalid; construct through Uniform or Masked.
type Weighting struct {
	uniform []float64
	masked  [][]Weight
}

// Uniform builds a scalar-per-unit weighting. The coefficients are copied.
func Uniform(coefs ...float64) Weighting {
	w := Weighting{uniform: make([]float64, len(coefs))}
	copy(w.uniform, coefs)

	return w
}

// Masked builds a per-position weighting, one row per unit. Rows are
// deep-copied.
func Masked(rows ...[]Weight) Weighting {
	w := Weighting{masked: make([][]Weight, len(rows))}
	for i, row := range rows {
		w.masked[i] = make([]Weight, len(row))
		copy(w.masked[i], row)
	}

	return w
}

// IsMasked reports whether w uses the per-position convention.
func (w Weighting) IsMasked() bool { return w.masked != nil }

// entries returns the number of per-unit entries the weighting carries.
func (w Weighting) entries() int {
	if w.IsMasked() {
		return len(w.masked)
	}

	return len(w.uniform)
}

// validate reports every defect of the weighting itself: non-finite
// coefficients and ragged masked rows.
func (w Weighting) validate() []error {
	var errs []error
	if !w.IsMasked() {
		for i, c := range w.uniform {
			if !isFinite(c) {
				errs = append(errs, fmt.Errorf("%w: coefficient %d", ErrBadWeight, i))
			}
		}

		return errs
	}

	width := -1
	for i, row := range w.masked {
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			errs = append(errs, fmt.Errorf("%w: row %d has %d positions, want %d", ErrMaskShape, i, len(row), width))
		}
		for j, entry := range row {
			if !entry.skip && !isFinite(entry.coef) {
				errs = append(errs, fmt.Errorf("%w: row %d, position %d", ErrBadWeight, i, j))
			}
		}
	}

	return errs
}

// String renders the weighting in literal form: "[0.25 0.75]" under the
// uniform convention, "[1 -; - 1]" under the masked one, where "-" marks a
// skipped position and ";" separates per-unit rows.
func (w Weighting) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	if w.IsMasked() {
		for i, row := range w.masked {
			if i > 0 {
				sb.WriteString("; ")
			}
			for j, entry := range row {
				if j > 0 {
					sb.WriteByte(' ')
				}
				if entry.skip {
					sb.WriteByte('-')
				} else {
					sb.WriteString(strconv.FormatFloat(entry.coef, 'g', -1, 64))
				}
			}
		}
	} else {
		for i, c := range w.uniform {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		}
	}
	sb.WriteByte(']')

	return sb.String()
}

// contributing counts the non-skip entries of a masked row.
func contributing(row []Weight) int {
	c := 0
	for _, entry := range row {
		if !entry.skip {
			c++
		}
	}

	return c
}

// isFinite reports whether f is neither NaN nor infinite.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
