// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package run provides the console front end for the solver: printing
// the trace of one problem, and the question-and-answer loop that reads
// problems one after another. It is factored out of main so it can be
// used for tests.
package run // import "github.com/lpsteps/simplex/run"

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/lpsteps/simplex/config"
	"github.com/lpsteps/simplex/problem"
	"github.com/lpsteps/simplex/simplex"
	"github.com/lpsteps/simplex/table"
)

// Solve solves one problem and writes its trace to the configured output:
// the model, the initial table, the table after every pivot and the
// outcome. If solving fails partway, the tables so far are written
// before the error is returned.
func Solve(conf *config.Config, p problem.Problem) error {
	w := conf.Output()
	if p.Name != "" {
		fmt.Fprintf(w, "Problem %s\n", p.Name)
	}
	fmt.Fprintln(w, "LP Model:")
	table.FprintModel(w, p.Objective, p.Constraints)
	fmt.Fprintln(w)
	res, err := simplex.Solve(conf, p.Objective, p.Constraints)
	if res == nil {
		return err
	}
	for _, step := range res.Steps {
		if step.N == 0 {
			fmt.Fprintln(w, "Initial table:")
		} else {
			fmt.Fprintf(w, "\nStep %d:\n", step.N)
		}
		if err := table.Fprint(w, step.Tableau, step.Basis); err != nil {
			return err
		}
	}
	if err != nil {
		return err
	}
	final := res.Final()
	switch final.Status {
	case simplex.Optimal:
		sol, err := res.Solution()
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\nOptimal solution: %s\n", sol)
		if err := res.Check(conf.Places()); err != nil {
			klog.Warningf("solution does not check: %v", err)
		}
	case simplex.Unbounded:
		fmt.Fprintln(w, "\nThere is no finite optimal solution. Stopping.")
		return table.Fprint(w, final.Tableau, final.Basis)
	}
	return nil
}

// Run reads problems from r and solves each in turn, asking after each
// whether to continue. When interactive is set, questions are printed
// before each answer is read. Errors in a problem are reported to the
// configured error output and the loop goes on; Run returns when the
// answer to "continue?" is n, or at the end of input.
func Run(conf *config.Config, r io.Reader, interactive bool) error {
	w := conf.Output()
	in := bufio.NewScanner(r)
	ask := func(question string) (string, bool) {
		if interactive {
			fmt.Fprint(w, conf.Prompt()+question)
		}
		if !in.Scan() {
			return "", false
		}
		return strings.TrimSpace(in.Text()), true
	}
	if interactive {
		fmt.Fprintln(w, "SIMPLEX METHOD SOLVER")
	}
	for {
		p, err := readProblem(ask)
		if err == io.EOF {
			return in.Err()
		}
		if err == nil {
			err = Solve(conf, p)
		}
		if err != nil {
			fmt.Fprintln(conf.ErrOutput(), err)
		}
		answer, ok := ask("\nWould you like to continue? (y/n): ")
		if !ok {
			return in.Err()
		}
		switch strings.ToLower(answer) {
		case "y":
			fmt.Fprint(w, "Continuing!\n\n")
		case "n":
			return nil
		default:
			fmt.Fprint(w, "Invalid choice. Continuing anyway!\n\n")
		}
	}
}

// readProblem asks for an objective function, a number of constraints and
// that many constraints. It returns io.EOF if input ends first.
func readProblem(ask func(string) (string, bool)) (problem.Problem, error) {
	var p problem.Problem
	var ok bool
	if p.Objective, ok = ask("Enter objective function: "); !ok {
		return p, io.EOF
	}
	count, ok := ask("Enter the number of constraints (excluding non-negativity constraints): ")
	if !ok {
		return p, io.EOF
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 1 {
		return p, errors.Errorf("invalid number of constraints %q", count)
	}
	for i := 0; i < n; i++ {
		c, ok := ask(fmt.Sprintf("Enter constraint %d: ", i+1))
		if !ok {
			return p, io.EOF
		}
		p.Constraints = append(p.Constraints, c)
	}
	return p, nil
}
