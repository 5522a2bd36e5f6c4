// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simplex solves two-variable linear programs in standard form
// by the tableau Simplex method, keeping every intermediate tableau.
//
// Each iteration tests the objective row for optimality, chooses the
// entering column by Dantzig's rule, detects unboundedness, chooses the
// leaving row by the minimum-ratio test and pivots. No anti-cycling rule
// is applied, so a degenerate problem may cycle; the step limit in the
// configuration bounds the work.
package simplex // import "github.com/lpsteps/simplex/simplex"

import (
	"fmt"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/lpsteps/simplex/config"
	"github.com/lpsteps/simplex/tableau"
)

// Status is the state of a solve.
type Status int

const (
	Running   Status = iota // more pivots may follow
	Optimal                 // the tableau is optimal
	Unbounded               // the objective has no finite maximum
)

func (s Status) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Optimal:
		return "OPTIMAL"
	case Unbounded:
		return "UNBOUNDED"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

var (
	// ErrFinished is returned by Advance once the status is terminal.
	ErrFinished = errors.New("simplex: solve already finished")
	// ErrStepLimit is returned when the configured number of pivots
	// has been performed without reaching a terminal status.
	ErrStepLimit = errors.New("simplex: step limit reached")
)

// Engine runs the pivoting loop over one tableau.
// It is not safe for concurrent use; distinct Engines share nothing.
type Engine struct {
	conf   *config.Config
	tab    *tableau.Tableau
	basis  tableau.Basis
	status Status
	steps  int
	row    int
	col    int
}

// NewEngine returns an Engine starting from t with the given basis.
// A nil configuration uses the defaults.
func NewEngine(conf *config.Config, t *tableau.Tableau, basis tableau.Basis) *Engine {
	if conf == nil {
		conf = new(config.Config)
	}
	return &Engine{
		conf:  conf,
		tab:   t,
		basis: basis.Clone(),
		row:   -1,
		col:   -1,
	}
}

// Tableau returns the current tableau.
func (e *Engine) Tableau() *tableau.Tableau {
	return e.tab
}

// Basis returns a copy of the current basis.
func (e *Engine) Basis() tableau.Basis {
	return e.basis.Clone()
}

func (e *Engine) Status() Status {
	return e.status
}

// Steps returns the number of pivots performed.
func (e *Engine) Steps() int {
	return e.steps
}

// LastPivot returns the coordinates of the most recent pivot,
// or -1, -1 if there has been none.
func (e *Engine) LastPivot() (row, col int) {
	return e.row, e.col
}

// Advance performs one iteration. If the current tableau is optimal or
// shows the problem to be unbounded, the status becomes terminal and
// the tableau is left as it is; otherwise the tableau is pivoted and the
// status stays Running. Calling Advance after a terminal status returns
// ErrFinished.
func (e *Engine) Advance() (Status, error) {
	if e.status != Running {
		return e.status, ErrFinished
	}
	if IsOptimal(e.tab) {
		e.status = Optimal
		return e.status, nil
	}
	col := PivotColumn(e.tab)
	if !HasPositiveEntry(e.tab, col) {
		klog.V(2).Infof("column %s has no positive entry: unbounded", e.tab.ColumnName(col))
		e.status = Unbounded
		return e.status, nil
	}
	if limit := e.conf.MaxSteps(); limit > 0 && e.steps >= limit {
		return e.status, ErrStepLimit
	}
	var row int
	if e.conf.LegacyRatio() {
		row = LegacyPivotRow(e.tab, col)
	} else {
		row = PivotRow(e.tab, col)
	}
	if row < 0 {
		// Only the legacy ratio test can miss every positive entry.
		return e.status, errors.Errorf("no pivot row for column %s among the first %d rows", e.tab.ColumnName(col), legacyRatioRows)
	}
	e.trace(row, col)
	tab, basis, err := Pivot(e.tab, e.basis, row, col, e.conf.Places())
	if err != nil {
		return e.status, err
	}
	e.tab, e.basis = tab, basis
	e.row, e.col = row, col
	e.steps++
	return e.status, nil
}

func (e *Engine) trace(row, col int) {
	p := e.tab.At(row, col)
	name := e.tab.ColumnName(col)
	klog.V(2).Infof("step %d: %s enters, %s leaves (row %d), pivot %s", e.steps+1, name, e.basis[row], row+1, p)
	if e.conf.Debug("pivot") > 0 {
		fmt.Fprintf(e.conf.Output(), "pivot: %s enters, %s leaves, pivot %s\n", name, e.basis[row], p)
	}
}
