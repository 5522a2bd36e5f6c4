// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table renders tableaux and linear programs for people to read.
// It only formats; it never changes what it is given.
package table // import "github.com/lpsteps/simplex/table"

import (
	"fmt"
	"io"
	"strings"

	"github.com/liggitt/tabwriter"

	"github.com/lpsteps/simplex/parse"
	"github.com/lpsteps/simplex/tableau"
)

const (
	basisHeader    = "B.V"
	objectiveLabel = "z"
)

// Fprint writes t as a table. The header row names the columns; each
// constraint row starts with its basic variable from basis and the
// objective row starts with z.
func Fprint(w io.Writer, t *tableau.Tableau, basis tableau.Basis) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	header := append([]string{basisHeader}, t.ColumnNames()...)
	writeRow(tw, header)
	writeRule(tw, len(header))
	for i := 0; i < t.Rows(); i++ {
		label := objectiveLabel
		if i < t.Constraints() {
			label = "?"
			if i < len(basis) {
				label = basis[i]
			}
		}
		cells := []string{label}
		for _, v := range t.Row(i) {
			cells = append(cells, v.String())
		}
		writeRow(tw, cells)
	}
	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	fmt.Fprintln(w, strings.Join(cells, "\t"))
}

func writeRule(w io.Writer, n int) {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = "---"
	}
	writeRow(w, cells)
}

// FprintModel writes the linear program as it was entered:
//
//	Max z = 120x + 100y
//	subject to the constraints
//	  2x + 2y <= 8
//	  x, y >= 0
func FprintModel(w io.Writer, objective string, constraints []string) {
	fmt.Fprintf(w, "Max %s\n", strings.TrimSpace(objective))
	fmt.Fprintln(w, "subject to the constraints")
	for _, c := range constraints {
		fmt.Fprintf(w, "  %s\n", strings.TrimSpace(c))
	}
	fmt.Fprintf(w, "  %s >= 0\n", strings.Join(parse.Variables, ", "))
}
