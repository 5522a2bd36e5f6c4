// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parse turns the text of an objective function or a constraint
// into its coefficients: [coef(x), coef(y), rhs].
package parse // import "github.com/lpsteps/simplex/parse"

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/lpsteps/simplex/config"
	"github.com/lpsteps/simplex/scan"
	"github.com/lpsteps/simplex/value"
)

// Variables names the decision variables in column order.
var Variables = []string{"x", "y"}

// Terms is the number of terms in every Equation: one per decision
// variable plus the right-hand side.
var Terms = len(Variables) + 1

// Relation is the relational operator of a constraint. It is recorded
// but does not change how the constraint enters the tableau.
type Relation int

const (
	Eq Relation = iota // =
	Lt                 // <
	Le                 // <=
	Gt                 // >
	Ge                 // >=
)

var relations = map[string]Relation{
	"=":  Eq,
	"<":  Lt,
	"<=": Le,
	">":  Gt,
	">=": Ge,
}

func (r Relation) String() string {
	switch r {
	case Lt:
		return "<"
	case Le:
		return "<="
	case Gt:
		return ">"
	case Ge:
		return ">="
	}
	return "="
}

// Equation is a parsed objective function or constraint.
type Equation struct {
	Text string // The input, as given.
	// Terms holds the coefficients of x and y followed by the right-hand
	// side. The right-hand side of an objective function is zero.
	Terms     []value.Value
	Relation  Relation
	Objective bool
}

// Error is a ParseError: the text could not be read as an equation.
type Error struct {
	Input string
	Pos   int // Byte offset of the problem in Input.
	Msg   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%q:%d: %s", e.Input, e.Pos+1, e.Msg)
}

// Parser parses equations. Its configuration controls debugging output.
type Parser struct {
	conf *config.Config
}

// NewParser returns a Parser. The configuration may be nil.
func NewParser(conf *config.Config) *Parser {
	return &Parser{conf: conf}
}

// Parse parses text with a default configuration. See Parser.Parse.
func Parse(text string, objective bool) (Equation, error) {
	return NewParser(nil).Parse(text, objective)
}

// Parse parses the text of one equation. An objective function
// ("z = 120x + 100y") may carry a leading label and has no right-hand
// side; a constraint ("2x + 2y <= 8") must have one. Terms are separated
// by + or - and may appear in either order; each of x and y must appear
// exactly once. The label may not be x or y.
// Any failure is returned as an *Error.
func (p *Parser) Parse(text string, objective bool) (Equation, error) {
	s := &state{
		text: text,
		toks: scan.New(p.conf, text).All(),
	}
	eq, err := s.equation(objective)
	if err != nil {
		return Equation{}, err
	}
	eq.Text = text
	if klog.V(4).Enabled() {
		klog.Infof("parsed %q as %v %s", text, eq.Terms, eq.Relation)
	}
	return eq, nil
}

// state is the cursor over the tokens of one equation.
type state struct {
	text string
	toks []scan.Token
	i    int
}

func (s *state) peek() scan.Token {
	return s.toks[s.i]
}

func (s *state) next() scan.Token {
	tok := s.toks[s.i]
	if s.i < len(s.toks)-1 {
		s.i++
	}
	return tok
}

func (s *state) errorf(pos int, format string, args ...interface{}) *Error {
	return &Error{
		Input: s.text,
		Pos:   pos,
		Msg:   fmt.Sprintf(format, args...),
	}
}

func (s *state) equation(objective bool) (Equation, error) {
	last := s.toks[len(s.toks)-1]
	if last.Type == scan.Error {
		return Equation{}, s.errorf(last.Pos, "%s", last.Text)
	}
	eq := Equation{
		Terms:     make([]value.Value, Terms),
		Relation:  Eq,
		Objective: objective,
	}
	if objective && len(s.toks) > 2 && s.toks[0].Type == scan.Identifier && s.toks[1].Type == scan.Relation {
		// A label such as "z =".
		if isVariable(s.toks[0].Text) {
			return Equation{}, s.errorf(s.toks[0].Pos, "objective function label %s names a variable", s.toks[0].Text)
		}
		if s.toks[1].Text != "=" {
			return Equation{}, s.errorf(s.toks[1].Pos, "objective function label must be followed by =")
		}
		s.next()
		s.next()
	}
	if err := s.variableTerms(eq.Terms); err != nil {
		return Equation{}, err
	}
	rhs := len(Variables)
	if objective {
		if tok := s.peek(); tok.Type != scan.EOF {
			return Equation{}, s.errorf(tok.Pos, "unexpected %s in objective function", tok.Text)
		}
		eq.Terms[rhs] = value.Int(0)
		return eq, nil
	}
	tok := s.next()
	if tok.Type != scan.Relation {
		return Equation{}, s.errorf(tok.Pos, "missing relational operator")
	}
	eq.Relation = relations[tok.Text]
	pos := s.peek().Pos
	coef, variable, err := s.term()
	if err != nil {
		return Equation{}, err
	}
	if variable != "" {
		return Equation{}, s.errorf(pos, "variable %s on right-hand side", variable)
	}
	eq.Terms[rhs] = coef
	if tok := s.peek(); tok.Type != scan.EOF {
		return Equation{}, s.errorf(tok.Pos, "unexpected %s after right-hand side", tok.Text)
	}
	return eq, nil
}

// variableTerms reads terms up to a relation or the end of input,
// storing each coefficient in the slot of its variable.
func (s *state) variableTerms(terms []value.Value) error {
	for n := 0; ; n++ {
		tok := s.peek()
		if tok.Type == scan.Relation || tok.Type == scan.EOF {
			break
		}
		if n > 0 && tok.Type != scan.Operator {
			return s.errorf(tok.Pos, "missing + or - before %s", tok.Text)
		}
		coef, variable, err := s.term()
		if err != nil {
			return err
		}
		slot := -1
		for i, v := range Variables {
			if v == variable {
				slot = i
			}
		}
		switch {
		case variable == "":
			return s.errorf(tok.Pos, "constant term %s where a variable term is expected", coef)
		case slot < 0:
			return s.errorf(tok.Pos, "unknown variable %q", variable)
		case terms[slot] != nil:
			return s.errorf(tok.Pos, "duplicate term for %s", variable)
		}
		terms[slot] = coef
	}
	for i, v := range Variables {
		if terms[i] == nil {
			return s.errorf(s.peek().Pos, "missing term for %s: want exactly %d variable terms", v, len(Variables))
		}
	}
	return nil
}

func isVariable(name string) bool {
	for _, v := range Variables {
		if v == name {
			return true
		}
	}
	return false
}

// term reads one signed term: an optional run of signs, then a number,
// a variable, or a number followed by a variable. A bare variable has
// coefficient 1.
func (s *state) term() (value.Value, string, error) {
	negative := false
	start := s.peek().Pos
	for s.peek().Type == scan.Operator {
		if s.next().Text == "-" {
			negative = !negative
		}
	}
	var coef value.Value = value.Int(1)
	tok := s.next()
	switch tok.Type {
	case scan.Number:
		v, err := value.Parse(tok.Text)
		if err != nil {
			return nil, "", s.errorf(tok.Pos, "%v", err)
		}
		coef = v
	case scan.Identifier:
		s.i-- // Reread it below.
	case scan.EOF:
		return nil, "", s.errorf(start, "missing term")
	default:
		return nil, "", s.errorf(tok.Pos, "unexpected %s", tok.Text)
	}
	variable := ""
	if s.peek().Type == scan.Identifier {
		variable = s.next().Text
	}
	if negative {
		coef = value.Neg(coef)
	}
	return coef, variable, nil
}
