// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package problem reads linear programs from YAML. A stream may hold
// several documents, one problem each:
//
//	name: bounded
//	objective: z = 120x + 100y
//	constraints:
//	  - 2x + 2y <= 8
//	  - 5x + 3y <= 15
package problem // import "github.com/lpsteps/simplex/problem"

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Problem is the text of one linear program.
type Problem struct {
	Name        string   `yaml:"name,omitempty"`
	Objective   string   `yaml:"objective"`
	Constraints []string `yaml:"constraints"`
}

// Validate reports a problem with nothing to solve.
func (p Problem) Validate() error {
	if p.Objective == "" {
		return errors.New("missing objective")
	}
	if len(p.Constraints) == 0 {
		return errors.New("no constraints")
	}
	return nil
}

// Decode reads every problem in r.
func Decode(r io.Reader) ([]Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.SetStrict(true)
	var problems []Problem
	for {
		var p Problem
		err := dec.Decode(&p)
		if err == io.EOF {
			return problems, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "problem %d", len(problems)+1)
		}
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "problem %d", len(problems)+1)
		}
		problems = append(problems, p)
	}
}

// Load reads every problem in the named file.
func Load(name string) ([]Problem, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	problems, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}
	return problems, nil
}

// Encode writes problems to w as a YAML stream.
func Encode(w io.Writer, problems []Problem) error {
	for i, p := range problems {
		if i > 0 {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
		}
		data, err := yaml.Marshal(p)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}
