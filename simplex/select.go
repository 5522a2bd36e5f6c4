// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplex

import (
	"github.com/lpsteps/simplex/tableau"
	"github.com/lpsteps/simplex/value"
)

// legacyRatioRows is the number of rows the legacy ratio test examines.
const legacyRatioRows = 2

// IsOptimal reports whether no entry in the objective row of t is negative.
// The RHS entry, the current objective value, is not a coefficient and
// is not examined.
func IsOptimal(t *tableau.Tableau) bool {
	obj := t.ObjectiveRow()
	for j := 0; j < t.RHSColumn(); j++ {
		if t.At(obj, j).Sign() < 0 {
			return false
		}
	}
	return true
}

// PivotColumn chooses the entering variable by Dantzig's rule: the column
// whose objective-row entry is most negative, the lowest index winning
// ties. The RHS column is never chosen. It returns -1 if no entry is
// negative.
func PivotColumn(t *tableau.Tableau) int {
	obj := t.ObjectiveRow()
	col := -1
	var least value.Value = value.Int(0)
	for j := 0; j < t.RHSColumn(); j++ {
		if v := t.At(obj, j); value.Cmp(v, least) < 0 {
			least = v
			col = j
		}
	}
	return col
}

// HasPositiveEntry reports whether some constraint row of t has a
// strictly positive entry in column col. If none does, the entering
// variable can grow without bound.
func HasPositiveEntry(t *tableau.Tableau, col int) bool {
	for i := 0; i < t.Constraints(); i++ {
		if t.At(i, col).Sign() > 0 {
			return true
		}
	}
	return false
}

// PivotRow chooses the leaving variable by the minimum-ratio test over
// the constraint rows with a strictly positive entry in column col,
// the lowest index winning ties. It returns -1 if there is no such row.
func PivotRow(t *tableau.Tableau, col int) int {
	return pivotRow(t, col, t.Constraints())
}

// LegacyPivotRow is PivotRow restricted to the first two constraint rows.
// It reproduces a classroom tool whose ratio test stopped at the number
// of decision variables; with more than two constraints it can choose
// a row that makes the next tableau infeasible.
func LegacyPivotRow(t *tableau.Tableau, col int) int {
	return pivotRow(t, col, min(legacyRatioRows, t.Constraints()))
}

func pivotRow(t *tableau.Tableau, col, rows int) int {
	row := -1
	var least value.Value
	for i := 0; i < rows; i++ {
		entry := t.At(i, col)
		if entry.Sign() <= 0 {
			continue
		}
		ratio := value.Quo(t.RHS(i), entry)
		if row < 0 || value.Cmp(ratio, least) < 0 {
			least = ratio
			row = i
		}
	}
	return row
}
