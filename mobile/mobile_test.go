// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mobile

import (
	"io"
	"strings"
	"testing"
)

// Solver behavior is covered in package simplex; these check the string plumbing.

func TestSolve(t *testing.T) {
	var tests = []struct {
		objective   string
		constraints string
		last        string
	}{
		{"z = 120x + 100y", "2x + 2y <= 8\n5x + 3y <= 15", "Optimal solution: x = 3/2, y = 5/2, z = 430\n"},
		{"z = x + y", "\nx + y <= 4\n\n", "Optimal solution: x = 4, y = 0, z = 4\n"},
		{"z = 0.5x + 2y", "x + y <= 4", "Optimal solution: x = 0, y = 4, z = 8\n"},
	}
	for _, test := range tests {
		Reset()
		out, err := Solve(test.objective, test.constraints)
		if err != nil {
			t.Errorf("solving %q: %v", test.objective, err)
			continue
		}
		if !strings.HasSuffix(out, test.last) {
			t.Errorf("%q: expected trace ending %q; got %q", test.objective, test.last, out)
		}
	}
}

func TestSolveError(t *testing.T) {
	Reset()
	_, err := Solve("z = x + y", "x + y <=")
	if err == nil {
		t.Fatal("expected error for missing right-hand side")
	}
	if !strings.Contains(err.Error(), "constraint 1") {
		t.Errorf("error %q does not name the constraint", err)
	}
}

func TestSession(t *testing.T) {
	Reset()
	s, err := NewSession("z = 120x + 100y", "2x + 2y <= 8\n5x + 3y <= 15")
	if err != nil {
		t.Fatal(err)
	}
	var parts []string
	for {
		part, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		parts = append(parts, part)
	}
	if len(parts) != 4 {
		t.Fatalf("got %d parts; want 4:\n%s", len(parts), strings.Join(parts, "\n"))
	}
	prefixes := []string{"Initial table:", "Step 1:", "Step 2:", "Optimal solution: x = 3/2, y = 5/2, z = 430"}
	for i, p := range prefixes {
		if !strings.HasPrefix(parts[i], p) {
			t.Errorf("part %d = %q; want prefix %q", i, parts[i], p)
		}
	}
	if s.Status() != "OPTIMAL" {
		t.Errorf("status %s", s.Status())
	}
}

func TestSessionUnbounded(t *testing.T) {
	Reset()
	s, err := NewSession("z = x + y", "x - y <= 2\n-x + y <= 1")
	if err != nil {
		t.Fatal(err)
	}
	var last string
	for {
		part, err := s.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		last = part
	}
	if last != "There is no finite optimal solution. Stopping.\n" {
		t.Errorf("last part %q", last)
	}
	if s.Status() != "UNBOUNDED" {
		t.Errorf("status %s", s.Status())
	}
}

func TestSessionError(t *testing.T) {
	Reset()
	if _, err := NewSession("z = x + q", "x + y <= 1"); err == nil {
		t.Error("expected error for unknown variable")
	}
	if _, err := NewSession("z = x + y", ""); err == nil {
		t.Error("expected error for no constraints")
	}
}

func TestDemo(t *testing.T) {
	Reset()
	out, err := Demo()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Optimal solution: x = 3/2, y = 5/2, z = 430", "There is no finite optimal solution. Stopping."} {
		if !strings.Contains(out, want) {
			t.Errorf("demo output lacks %q", want)
		}
	}
}

func TestHelp(t *testing.T) {
	if !strings.Contains(Help(), "2x + 2y <= 8") {
		t.Error("help lacks example constraint")
	}
}
