// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo holds the reference problems shown by "simplex demo":
// one with a finite optimum and one without. The problems are kept in
// demo.yaml in this directory and embedded in the package.
package demo // import "github.com/lpsteps/simplex/demo"

import (
	"bytes"

	_ "embed"

	"github.com/lpsteps/simplex/problem"
)

//go:embed demo.yaml
var demoText []byte

// Text returns the YAML source of the demo problems.
func Text() string {
	return string(demoText)
}

// Problems returns the demo problems.
func Problems() []problem.Problem {
	problems, err := problem.Decode(bytes.NewReader(demoText))
	if err != nil {
		panic("demo: " + err.Error())
	}
	return problems
}
