// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tableau

import (
	"fmt"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/lpsteps/simplex/parse"
	"github.com/lpsteps/simplex/value"
)

// DimensionError reports an equation whose term count does not fit
// the two-variable model.
type DimensionError struct {
	Name  string // "objective function" or "constraint N"
	Terms int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s has %d terms; want %d", e.Name, e.Terms, parse.Terms)
}

// Build returns the initial tableau and the all-slack basis.
//
// The objective row holds the negated objective coefficients, so that
// driving its negative entries out maximizes the objective. Constraint i
// holds its own coefficients, a 1 in the column of slack S(i+1) and its
// right-hand side.
//
// The all-slack basis is feasible only if every right-hand side is
// non-negative and every constraint is a <= (or <) constraint.
// Build does not reject other problems, but it logs a warning, since
// the solution found for them is meaningless.
func Build(objective parse.Equation, constraints []parse.Equation) (*Tableau, Basis, error) {
	if len(constraints) == 0 {
		return nil, nil, errors.New("no constraints")
	}
	if len(objective.Terms) != parse.Terms {
		return nil, nil, &DimensionError{"objective function", len(objective.Terms)}
	}
	for i, c := range constraints {
		if len(c.Terms) != parse.Terms {
			return nil, nil, &DimensionError{fmt.Sprintf("constraint %d", i+1), len(c.Terms)}
		}
	}
	n := len(parse.Variables)
	m := len(constraints)
	cols := n + m + 1
	rows := make([][]value.Value, m+1)
	for i := range rows {
		rows[i] = make([]value.Value, cols)
		for j := range rows[i] {
			rows[i][j] = value.Int(0)
		}
	}
	for i, c := range constraints {
		row := rows[i]
		copy(row, c.Terms[:n])
		row[n+i] = value.Int(1)
		row[cols-1] = c.Terms[n]
		if c.Terms[n].Sign() < 0 {
			klog.Warningf("constraint %d (%s) has a negative right-hand side; the initial basis is not feasible", i+1, c.Text)
		}
		if c.Relation == parse.Ge || c.Relation == parse.Gt {
			klog.Warningf("constraint %d (%s) is treated as <=", i+1, c.Text)
		}
	}
	obj := rows[m]
	for j := 0; j < n; j++ {
		obj[j] = value.Neg(objective.Terms[j])
	}
	obj[cols-1] = objective.Terms[n]
	t, err := New(rows)
	if err != nil {
		return nil, nil, err
	}
	return t, InitialBasis(m), nil
}
