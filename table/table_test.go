// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lpsteps/simplex/parse"
	"github.com/lpsteps/simplex/tableau"
)

// fields collapses each line of s to its space-separated fields,
// so tests do not depend on column widths.
func fields(s string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		lines = append(lines, strings.Join(strings.Fields(line), " "))
	}
	return lines
}

func TestFprint(t *testing.T) {
	obj, _ := parse.Parse("z = 120x + 100y", true)
	c1, _ := parse.Parse("2x + 2y <= 8", false)
	c2, _ := parse.Parse("5x + 3/2y <= 15", false)
	tab, basis, err := tableau.Build(obj, []parse.Equation{c1, c2})
	if err != nil {
		t.Fatal(err)
	}
	before := tab.String()
	var b bytes.Buffer
	if err := Fprint(&b, tab, basis); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"B.V x y S1 S2 RHS",
		"--- --- --- --- --- ---",
		"S1 2 2 1 0 8",
		"S2 5 3/2 0 1 15",
		"z -120 -100 0 0 0",
	}
	got := fields(b.String())
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("got\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
	if tab.String() != before {
		t.Error("Fprint modified the tableau")
	}
	// Columns line up: every row has the same width up to the last cell.
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	col := strings.Index(lines[0], "RHS")
	for _, line := range lines[1:] {
		if len(line) < col || line[col-1] != ' ' {
			t.Errorf("misaligned line %q", line)
		}
	}
}

func TestFprintModel(t *testing.T) {
	var b bytes.Buffer
	FprintModel(&b, " z = x + y", []string{"x - y <= 2", "-x + y <= 1 "})
	want := "Max z = x + y\nsubject to the constraints\n  x - y <= 2\n  -x + y <= 1\n  x, y >= 0\n"
	if b.String() != want {
		t.Errorf("got\n%q\nwant\n%q", b.String(), want)
	}
}
