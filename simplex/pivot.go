// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplex

import (
	"github.com/pkg/errors"

	"github.com/lpsteps/simplex/tableau"
	"github.com/lpsteps/simplex/value"
)

// Pivot performs one Gauss-Jordan pivot on t at (row, col) and returns
// the new tableau and basis. Neither t nor basis is modified.
//
// The pivot row is divided by the pivot; every other row then has the
// new pivot row, scaled by its own entry in col, subtracted from it.
// Arithmetic is exact. Afterwards whole numbers are held as Int, and if
// t held any decimal entry, every entry is rounded to places decimal
// digits. The variable of col becomes basic in row.
func Pivot(t *tableau.Tableau, basis tableau.Basis, row, col, places int) (*tableau.Tableau, tableau.Basis, error) {
	if row < 0 || row >= t.Constraints() {
		return nil, nil, errors.Errorf("pivot row %d out of range", row)
	}
	if col < 0 || col >= t.RHSColumn() {
		return nil, nil, errors.Errorf("pivot column %d out of range", col)
	}
	if len(basis) != t.Constraints() {
		return nil, nil, errors.Errorf("basis has %d entries for %d constraints", len(basis), t.Constraints())
	}
	p := t.At(row, col)
	if p.Sign() == 0 {
		return nil, nil, errors.Errorf("zero pivot at [%d][%d]", row, col)
	}
	inv := value.Inv(p)
	m := t.Matrix()
	pivotRow := m[row]
	for j, v := range pivotRow {
		pivotRow[j] = value.Mul(v, inv)
	}
	for i, r := range m {
		if i == row {
			continue
		}
		factor := r[col]
		for j, v := range r {
			r[j] = value.Sub(v, value.Mul(pivotRow[j], factor))
		}
	}
	decimal := t.Decimal()
	for _, r := range m {
		for j, v := range r {
			r[j] = value.Normalize(v, places, decimal)
		}
	}
	next, err := tableau.New(m)
	if err != nil {
		return nil, nil, err
	}
	nextBasis := basis.Clone()
	nextBasis[row] = t.ColumnName(col)
	return next, nextBasis, nil
}
