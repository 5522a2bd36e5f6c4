// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplex

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/lpsteps/simplex/parse"
	"github.com/lpsteps/simplex/tableau"
	"github.com/lpsteps/simplex/value"
)

// Solution is the basic solution read from a tableau: each basic
// variable takes the right-hand side of its row, every other
// variable is zero.
type Solution struct {
	Names  []string      // x, y, S1 ... Sm
	Values []value.Value // parallel to Names
	Z      value.Value   // objective value
}

// ReadSolution returns the basic solution of t under basis.
func ReadSolution(t *tableau.Tableau, basis tableau.Basis) Solution {
	var s Solution
	for j := 0; j < t.RHSColumn(); j++ {
		name := t.ColumnName(j)
		var v value.Value = value.Int(0)
		if i := basis.Index(name); i >= 0 {
			v = t.RHS(i)
		}
		s.Names = append(s.Names, name)
		s.Values = append(s.Values, v)
	}
	s.Z = t.RHS(t.ObjectiveRow())
	return s
}

// Solution returns the optimal solution. It is an error to ask
// for the solution of a solve that did not reach Optimal.
func (r *Result) Solution() (Solution, error) {
	final := r.Final()
	if final.Status != Optimal {
		return Solution{}, errors.Errorf("no optimal solution: status %s", final.Status)
	}
	return ReadSolution(final.Tableau, final.Basis), nil
}

// Value returns the value of the named variable, or nil.
func (s Solution) Value(name string) value.Value {
	for i, n := range s.Names {
		if n == name {
			return s.Values[i]
		}
	}
	return nil
}

// String returns the decision variables and the objective value,
// as in "x = 3/2, y = 5/2, z = 430".
func (s Solution) String() string {
	var parts []string
	for _, v := range parse.Variables {
		parts = append(parts, fmt.Sprintf("%s = %s", v, s.Value(v)))
	}
	parts = append(parts, fmt.Sprintf("z = %s", s.Z))
	return strings.Join(parts, ", ")
}

func float(v value.Value) float64 {
	f, _ := v.Exact().Float64()
	return f
}

// Check verifies in floating point that the decision variables of s
// satisfy objective and constraints: every constraint holds as <=, the
// variables are non-negative, and the objective evaluates to Z. Each
// comparison allows tol scaled by one plus the sum of the magnitudes of
// the coefficients involved.
func (s Solution) Check(objective parse.Equation, constraints []parse.Equation, tol float64) error {
	n := len(parse.Variables)
	x := mat.NewVecDense(n, nil)
	for j, name := range parse.Variables {
		v := s.Value(name)
		if v == nil {
			return errors.Errorf("solution has no value for %s", name)
		}
		if v.Sign() < 0 {
			return errors.Errorf("%s = %s is negative", name, v)
		}
		x.SetVec(j, float(v))
	}
	m := len(constraints)
	a := mat.NewDense(m, n, nil)
	b := mat.NewVecDense(m, nil)
	for i, c := range constraints {
		if len(c.Terms) != parse.Terms {
			return &tableau.DimensionError{Name: fmt.Sprintf("constraint %d", i+1), Terms: len(c.Terms)}
		}
		for j := 0; j < n; j++ {
			a.Set(i, j, float(c.Terms[j]))
		}
		b.SetVec(i, float(c.Terms[n]))
	}
	var ax mat.VecDense
	ax.MulVec(a, x)
	for i := 0; i < m; i++ {
		if ax.AtVec(i) > b.AtVec(i)+scaled(tol, a.RawRowView(i)) {
			return errors.Errorf("constraint %d (%s) violated: %g > %g", i+1, constraints[i].Text, ax.AtVec(i), b.AtVec(i))
		}
	}
	c := mat.NewVecDense(n, nil)
	for j := 0; j < n; j++ {
		c.SetVec(j, float(objective.Terms[j]))
	}
	if z := mat.Dot(c, x); math.Abs(z-float(s.Z)) > scaled(tol, c.RawVector().Data) {
		return errors.Errorf("objective evaluates to %g, tableau says %s", z, s.Z)
	}
	return nil
}

func scaled(tol float64, coef []float64) float64 {
	sum := 1.0
	for _, c := range coef {
		sum += math.Abs(c)
	}
	return tol * sum
}

// Check verifies the optimal solution of r against its own problem.
// Decimal tableaux are rounded at every step, so they are checked
// with a tolerance of a few units in the last kept place.
func (r *Result) Check(places int) error {
	sol, err := r.Solution()
	if err != nil {
		return err
	}
	tol := 1e-9
	if r.Final().Tableau.Decimal() || r.Steps[0].Tableau.Decimal() {
		tol = 5 * math.Pow(10, -float64(places)) * float64(len(r.Steps))
	}
	return sol.Check(r.Objective, r.Constraints, tol)
}
