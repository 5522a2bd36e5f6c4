// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplex

import (
	"errors"
	"strings"
	"testing"

	"github.com/lpsteps/simplex/config"
	"github.com/lpsteps/simplex/parse"
	"github.com/lpsteps/simplex/tableau"
	"github.com/lpsteps/simplex/value"
)

var (
	boundedObjective   = "z = 120x + 100y"
	boundedConstraints = []string{"2x + 2y <= 8", "5x + 3y <= 15"}

	unboundedObjective   = "z = x + y"
	unboundedConstraints = []string{"x - y <= 2", "-x + y <= 1"}
)

func solve(t *testing.T, conf *config.Config, objective string, constraints ...string) *Result {
	t.Helper()
	res, err := Solve(conf, objective, constraints)
	if err != nil {
		t.Fatalf("%s %q: %v", objective, constraints, err)
	}
	return res
}

func matrix(rows ...[]int64) *tableau.Tableau {
	m := make([][]value.Value, len(rows))
	for i, row := range rows {
		for _, v := range row {
			m[i] = append(m[i], value.Int(v))
		}
	}
	t, err := tableau.New(m)
	if err != nil {
		panic(err)
	}
	return t
}

// checkPivot verifies that column col of t is the unit vector for row.
func checkPivot(t *testing.T, name string, tab *tableau.Tableau, row, col int) {
	t.Helper()
	for i := 0; i < tab.Rows(); i++ {
		want := value.Value(value.Int(0))
		if i == row {
			want = value.Int(1)
		}
		if !value.Equal(tab.At(i, col), want) {
			t.Errorf("%s: after pivot at (%d,%d), entry [%d][%d] = %s; want %s", name, row, col, i, col, tab.At(i, col), want)
		}
	}
}

func TestBounded(t *testing.T) {
	res := solve(t, nil, boundedObjective, boundedConstraints...)
	want := []struct {
		tableau string
		basis   string
		tag     string
	}{
		{"[2 2 1 0 8]\n[5 3 0 1 15]\n[-120 -100 0 0 0]", "S1 S2", "RUNNING step 0"},
		{"[0 4/5 1 -2/5 2]\n[1 3/5 0 1/5 3]\n[0 -28 0 24 360]", "S1 x", "RUNNING step 1"},
		{"[0 1 5/4 -1/2 5/2]\n[1 0 -3/4 1/2 3/2]\n[0 0 35 10 430]", "y x", "OPTIMAL"},
	}
	if len(res.Steps) != len(want) {
		t.Fatalf("got %d steps; want %d", len(res.Steps), len(want))
	}
	for i, w := range want {
		step := res.Steps[i]
		if got := step.Tableau.String(); got != w.tableau {
			t.Errorf("step %d:\ngot\n%s\nwant\n%s", i, got, w.tableau)
		}
		if got := strings.Join(step.Basis, " "); got != w.basis {
			t.Errorf("step %d: basis %s; want %s", i, got, w.basis)
		}
		if step.Tag() != w.tag {
			t.Errorf("step %d: tag %q; want %q", i, step.Tag(), w.tag)
		}
		if i > 0 {
			checkPivot(t, "bounded", step.Tableau, step.Row, step.Col)
		}
	}
	sol, err := res.Solution()
	if err != nil {
		t.Fatal(err)
	}
	if sol.String() != "x = 3/2, y = 5/2, z = 430" {
		t.Errorf("solution %s", sol)
	}
	if got := sol.Value("S1").String() + " " + sol.Value("S2").String(); got != "0 0" {
		t.Errorf("slacks %s", got)
	}
	if err := res.Check(config.DefaultPlaces); err != nil {
		t.Error(err)
	}
}

func TestUnbounded(t *testing.T) {
	res := solve(t, nil, unboundedObjective, unboundedConstraints...)
	if res.Status() != Unbounded {
		t.Fatalf("status %s", res.Status())
	}
	if len(res.Steps) != 2 {
		t.Fatalf("got %d steps; want 2", len(res.Steps))
	}
	final := res.Final()
	want := "[1 -1 1 0 2]\n[0 0 1 1 3]\n[0 -2 1 0 2]"
	if final.Tableau.String() != want {
		t.Errorf("final tableau:\n%s\nwant\n%s", final.Tableau, want)
	}
	if final.Tag() != "UNBOUNDED" {
		t.Errorf("tag %q", final.Tag())
	}
	if PivotColumn(final.Tableau) != 1 || HasPositiveEntry(final.Tableau, 1) {
		t.Error("column y should be the entering column with no positive entry")
	}
	if _, err := res.Solution(); err == nil {
		t.Error("Solution of unbounded problem succeeded")
	}
}

func TestMinimumRatio(t *testing.T) {
	tab := matrix(
		[]int64{4, 1, 1, 0, 20},
		[]int64{2, 1, 0, 1, 8},
		[]int64{-1, -1, 0, 0, 0},
	)
	if row := PivotRow(tab, 0); row != 1 {
		t.Errorf("PivotRow = %d; want 1", row)
	}
	// Non-positive entries never bound the entering variable.
	tab = matrix(
		[]int64{-4, 1, 1, 0, 1},
		[]int64{0, 1, 0, 1, 1},
		[]int64{-1, -1, 0, 0, 0},
	)
	if row := PivotRow(tab, 0); row != -1 {
		t.Errorf("PivotRow with no positive entry = %d; want -1", row)
	}
	// Ties go to the lowest row.
	tab = matrix(
		[]int64{2, 1, 1, 0, 4},
		[]int64{1, 1, 0, 1, 2},
		[]int64{-1, -1, 0, 0, 0},
	)
	if row := PivotRow(tab, 0); row != 0 {
		t.Errorf("PivotRow tie = %d; want 0", row)
	}
}

func TestPivotColumn(t *testing.T) {
	tab := matrix(
		[]int64{1, 1, 1, 0, 4},
		[]int64{1, 1, 0, 1, 2},
		[]int64{-3, -3, -1, 0, -9},
	)
	if col := PivotColumn(tab); col != 0 {
		t.Errorf("PivotColumn tie = %d; want 0", col)
	}
	tab = matrix(
		[]int64{1, 1, 1, 4},
		[]int64{0, 0, 0, -9},
	)
	if col := PivotColumn(tab); col != -1 {
		t.Errorf("PivotColumn ignoring RHS = %d; want -1", col)
	}
	if !IsOptimal(tab) || !IsOptimal(tab) {
		t.Error("negative objective value alone is not suboptimal")
	}
}

func TestAllRowsConsidered(t *testing.T) {
	res := solve(t, nil, "z = 2x + y", "x + y <= 10", "2x + y <= 16", "4x + y <= 8")
	first := res.Steps[0].Tableau
	if row := PivotRow(first, 0); row != 2 {
		t.Errorf("PivotRow = %d; want 2", row)
	}
	if row := LegacyPivotRow(first, 0); row != 1 {
		t.Errorf("LegacyPivotRow = %d; want 1", row)
	}
	sol, err := res.Solution()
	if err != nil {
		t.Fatal(err)
	}
	if sol.String() != "x = 0, y = 8, z = 8" {
		t.Errorf("solution %s", sol)
	}
	if len(res.Steps) != 3 {
		t.Errorf("got %d steps; want 3", len(res.Steps))
	}
	if err := res.Check(config.DefaultPlaces); err != nil {
		t.Error(err)
	}
}

func TestDecimal(t *testing.T) {
	res := solve(t, nil, "z = 1.5x + y", "x + y <= 4", "x + 3y <= 6")
	want := "[1 1 1 0 4]\n[0 2 -1 1 2]\n[0 0.5 1.5 0 6]"
	if got := res.Final().Tableau.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	if res.Status() != Optimal {
		t.Errorf("status %s", res.Status())
	}
	if _, ok := res.Final().Tableau.At(2, 1).(value.Decimal); !ok {
		t.Errorf("0.5 is %T", res.Final().Tableau.At(2, 1))
	}
	if err := res.Check(config.DefaultPlaces); err != nil {
		t.Error(err)
	}
}

func TestDecimalRounding(t *testing.T) {
	res := solve(t, nil, "z = 0.5x + y", "3x + 3y <= 2")
	want := "[1 1 0.33 0.67]\n[0.5 0 0.33 0.67]"
	if got := res.Final().Tableau.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
	sol, err := res.Solution()
	if err != nil {
		t.Fatal(err)
	}
	if sol.String() != "x = 0, y = 0.67, z = 0.67" {
		t.Errorf("solution %s", sol)
	}
	if err := res.Check(config.DefaultPlaces); err != nil {
		t.Error(err)
	}

	var conf config.Config
	conf.SetPlaces(4)
	res = solve(t, &conf, "z = 0.5x + y", "3x + 3y <= 2")
	if got := res.Final().Tableau.RHS(0).String(); got != "0.6667" {
		t.Errorf("4 places: got %s", got)
	}
}

func TestPivotLaw(t *testing.T) {
	problems := [][]string{
		append([]string{boundedObjective}, boundedConstraints...),
		{"z = 3x + 2y", "x + y <= 4", "x + 3y <= 6", "x + 0y <= 3"},
		{"z = 2/3x + 0.25y", "1/2x + y <= 3", "x + 1/3y <= 2"},
		{"z = 5x + 4y", "6x + 4y <= 24", "x + 2y <= 6", "-x + y <= 1", "0x + y <= 2"},
	}
	for _, p := range problems {
		res := solve(t, nil, p[0], p[1:]...)
		for _, step := range res.Steps[1:] {
			checkPivot(t, p[0], step.Tableau, step.Row, step.Col)
			if step.Basis[step.Row] != step.Tableau.ColumnName(step.Col) {
				t.Errorf("%s: basis %v after pivot in column %d", p[0], step.Basis, step.Col)
			}
		}
		if res.Status() != Optimal {
			t.Errorf("%s: status %s", p[0], res.Status())
		}
		if err := res.Check(config.DefaultPlaces); err != nil {
			t.Errorf("%s: %v", p[0], err)
		}
	}
}

func TestOptimalIsFinal(t *testing.T) {
	res := solve(t, nil, boundedObjective, boundedConstraints...)
	final := res.Final()
	e := NewEngine(nil, final.Tableau, final.Basis)
	if !IsOptimal(final.Tableau) || !IsOptimal(final.Tableau) {
		t.Fatal("final tableau not optimal")
	}
	status, err := e.Advance()
	if status != Optimal || err != nil {
		t.Fatalf("first Advance: %s %v", status, err)
	}
	status, err = e.Advance()
	if status != Optimal || !errors.Is(err, ErrFinished) {
		t.Errorf("second Advance: %s %v", status, err)
	}
	if e.Steps() != 0 || e.Tableau() != final.Tableau {
		t.Error("Advance on an optimal tableau pivoted")
	}
}

func TestStepLimit(t *testing.T) {
	var conf config.Config
	conf.SetMaxSteps(1)
	res, err := Solve(&conf, boundedObjective, boundedConstraints)
	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("expected step limit; got %v", err)
	}
	if len(res.Steps) != 2 || res.Status() != Running {
		t.Errorf("got %d steps, status %s", len(res.Steps), res.Status())
	}
}

func TestPivotErrors(t *testing.T) {
	tab := matrix(
		[]int64{0, 1, 1, 0, 4},
		[]int64{1, 1, 0, 1, 2},
		[]int64{-1, -1, 0, 0, 0},
	)
	basis := tableau.InitialBasis(2)
	if _, _, err := Pivot(tab, basis, 0, 0, 2); err == nil {
		t.Error("zero pivot accepted")
	}
	if _, _, err := Pivot(tab, basis, 2, 0, 2); err == nil {
		t.Error("objective row accepted as pivot row")
	}
	if _, _, err := Pivot(tab, basis, 1, 4, 2); err == nil {
		t.Error("RHS accepted as pivot column")
	}
	next, nextBasis, err := Pivot(tab, basis, 1, 0, 2)
	if err != nil {
		t.Fatal(err)
	}
	if basis[1] != "S2" || nextBasis[1] != "x" {
		t.Errorf("basis %v -> %v", basis, nextBasis)
	}
	if tab.At(1, 0).String() != "1" || next == tab {
		t.Error("Pivot modified its input")
	}
}

func TestParseFailure(t *testing.T) {
	_, err := Solve(nil, "z = x + y", []string{"x + y <= 1", "x + y <="})
	var perr *parse.Error
	if !errors.As(err, &perr) {
		t.Fatalf("expected *parse.Error; got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "constraint 2: ") {
		t.Errorf("error %q", err)
	}
	_, err = Solve(nil, "z = x", []string{"x + y <= 1"})
	if !errors.As(err, &perr) || !strings.HasPrefix(err.Error(), "objective function: ") {
		t.Errorf("objective error %v", err)
	}
}

func TestStatusString(t *testing.T) {
	for s, want := range map[Status]string{Running: "RUNNING", Optimal: "OPTIMAL", Unbounded: "UNBOUNDED", Status(7): "Status(7)"} {
		if s.String() != want {
			t.Errorf("%d: %q", int(s), s)
		}
	}
}
