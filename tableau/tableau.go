// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tableau defines the simplex tableau and builds the initial one
// from a parsed objective function and constraints.
//
// A tableau for m constraints has m+1 rows and len(parse.Variables)+m+1
// columns: [x, y, S1 ... Sm, RHS]. Rows 0 to m-1 are the constraints and
// row m is the objective row. A Tableau is never modified once made;
// pivoting produces a new one.
package tableau // import "github.com/lpsteps/simplex/tableau"

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/lpsteps/simplex/parse"
	"github.com/lpsteps/simplex/value"
)

type Tableau struct {
	rows [][]value.Value
}

// New returns a Tableau holding a copy of rows. The rows must form an
// (m+1)×(len(parse.Variables)+m+1) matrix for some m >= 1.
func New(rows [][]value.Value) (*Tableau, error) {
	m := len(rows) - 1
	if m < 1 {
		return nil, errors.Errorf("tableau needs at least one constraint row and an objective row; have %d rows", len(rows))
	}
	cols := len(parse.Variables) + m + 1
	t := &Tableau{rows: make([][]value.Value, len(rows))}
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Errorf("tableau row %d has %d columns; want %d", i, len(row), cols)
		}
		for j, v := range row {
			if v == nil {
				return nil, errors.Errorf("tableau entry [%d][%d] is empty", i, j)
			}
		}
		t.rows[i] = append([]value.Value(nil), row...)
	}
	return t, nil
}

// Constraints returns m, the number of constraint rows.
func (t *Tableau) Constraints() int {
	return len(t.rows) - 1
}

// Rows returns the number of rows, m+1.
func (t *Tableau) Rows() int {
	return len(t.rows)
}

// Cols returns the number of columns including RHS.
func (t *Tableau) Cols() int {
	return len(t.rows[0])
}

// RHSColumn returns the index of the right-hand-side column.
func (t *Tableau) RHSColumn() int {
	return t.Cols() - 1
}

// ObjectiveRow returns the index of the objective row.
func (t *Tableau) ObjectiveRow() int {
	return len(t.rows) - 1
}

// At returns the entry at row i, column j.
func (t *Tableau) At(i, j int) value.Value {
	return t.rows[i][j]
}

// RHS returns the right-hand side of row i.
func (t *Tableau) RHS(i int) value.Value {
	return t.rows[i][t.RHSColumn()]
}

// Row returns a copy of row i.
func (t *Tableau) Row(i int) []value.Value {
	return append([]value.Value(nil), t.rows[i]...)
}

// Matrix returns a copy of all the entries, row by row.
func (t *Tableau) Matrix() [][]value.Value {
	m := make([][]value.Value, len(t.rows))
	for i := range t.rows {
		m[i] = t.Row(i)
	}
	return m
}

// Decimal reports whether any entry is in decimal representation.
// Pivoting a decimal tableau rounds every entry of the result.
func (t *Tableau) Decimal() bool {
	for _, row := range t.rows {
		for _, v := range row {
			if value.IsDecimal(v) {
				return true
			}
		}
	}
	return false
}

// ColumnName returns the name of the variable in column j,
// or "RHS" for the last column.
func (t *Tableau) ColumnName(j int) string {
	switch {
	case j < len(parse.Variables):
		return parse.Variables[j]
	case j == t.RHSColumn():
		return "RHS"
	}
	return SlackName(j - len(parse.Variables))
}

// ColumnNames returns the names of all the columns.
func (t *Tableau) ColumnNames() []string {
	names := make([]string, t.Cols())
	for j := range names {
		names[j] = t.ColumnName(j)
	}
	return names
}

// Equal reports whether t and u hold the same exact values.
func (t *Tableau) Equal(u *Tableau) bool {
	if t.Rows() != u.Rows() || t.Cols() != u.Cols() {
		return false
	}
	for i, row := range t.rows {
		for j, v := range row {
			if !value.Equal(v, u.rows[i][j]) {
				return false
			}
		}
	}
	return true
}

func (t *Tableau) String() string {
	var b strings.Builder
	for i, row := range t.rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprint(&b, row)
	}
	return b.String()
}

// SlackName returns the name of the slack variable of constraint i (0-based).
func SlackName(i int) string {
	return fmt.Sprintf("S%d", i+1)
}

// Basis records the variable that is basic in each constraint row.
type Basis []string

// InitialBasis returns the all-slack basis for m constraints.
func InitialBasis(m int) Basis {
	b := make(Basis, m)
	for i := range b {
		b[i] = SlackName(i)
	}
	return b
}

// Clone returns a copy of b.
func (b Basis) Clone() Basis {
	return append(Basis(nil), b...)
}

// Index returns the row in which name is basic, or -1.
func (b Basis) Index(name string) int {
	for i, n := range b {
		if n == name {
			return i
		}
	}
	return -1
}
