// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan splits the text of one linear equation or inequality,
// such as "3x - 2y <= 5" or "z = 120x + 100y", into tokens.
package scan // import "github.com/lpsteps/simplex/scan"

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lpsteps/simplex/config"
)

// Token represents a token or text string returned from the scanner.
type Token struct {
	Type Type   // The type of this item.
	Pos  int    // The byte offset of the item in the input.
	Text string // The text of this item.
}

// Type identifies the type of lex items.
type Type int

const (
	EOF        Type = iota // end of input
	Error                  // error occurred; value is text of error
	Identifier             // variable or label: x, y, z
	Number                 // 12, 0.5, 1/2
	Operator               // '+' or '-'
	Relation               // =, <, <=, >, >=
)

var typeNames = [...]string{
	EOF:        "EOF",
	Error:      "Error",
	Identifier: "Identifier",
	Number:     "Number",
	Operator:   "Operator",
	Relation:   "Relation",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

func (i Token) String() string {
	switch {
	case i.Type == EOF:
		return "EOF"
	case i.Type == Error:
		return "error: " + i.Text
	case len(i.Text) > 10:
		return fmt.Sprintf("%s: %.10q...", i.Type, i.Text)
	}
	return fmt.Sprintf("%s: %q", i.Type, i.Text)
}

const eof = -1

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*Scanner) stateFn

// Scanner holds the state of the scanner.
type Scanner struct {
	conf      *config.Config
	input     string // the text being scanned
	lastWidth int    // size of most recent rune from next()
	pos       int    // current position in the input
	start     int    // start position of this item
	token     Token
}

// New creates and returns a new scanner for the input text.
// The configuration is consulted only for debugging output and may be nil.
func New(conf *config.Config, input string) *Scanner {
	return &Scanner{
		conf:  conf,
		input: input,
	}
}

// Next returns the next token. After the input is exhausted,
// or after an error, it returns EOF.
func (l *Scanner) Next() Token {
	l.token = Token{EOF, l.pos, "EOF"}
	state := lexAny
	for {
		state = state(l)
		if state == nil {
			return l.token
		}
	}
}

// All returns the remaining tokens, stopping after EOF or the first error.
func (l *Scanner) All() []Token {
	var toks []Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Type == EOF || tok.Type == Error {
			return toks
		}
	}
}

// next returns the next rune in the input.
func (l *Scanner) next() rune {
	if l.pos >= len(l.input) {
		l.lastWidth = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.lastWidth = w
	l.pos += w
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *Scanner) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// backup steps back one rune. Should only be called once per call of next.
func (l *Scanner) backup() {
	l.pos -= l.lastWidth
	l.lastWidth = 0
}

// emit passes an item back to the client.
func (l *Scanner) emit(t Type) stateFn {
	return l.emitText(t, l.input[l.start:l.pos])
}

// emitText is like emit but replaces the token text.
func (l *Scanner) emitText(t Type, text string) stateFn {
	l.token = Token{t, l.start, text}
	if l.conf != nil && l.conf.Debug("tokens") > 0 {
		fmt.Fprintf(l.conf.Output(), "%d: emit %s\n", l.start, l.token)
	}
	l.start = l.pos
	return nil
}

// accept consumes the next rune if it's from the valid set.
func (l *Scanner) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// acceptRun consumes a run of runes from the valid set.
func (l *Scanner) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

// errorf returns an error token and empties the input.
func (l *Scanner) errorf(format string, args ...interface{}) stateFn {
	l.token = Token{Error, l.start, fmt.Sprintf(format, args...)}
	l.input = l.input[:l.start]
	l.pos = l.start
	return nil
}

// state functions

// lexAny scans non-space items.
func lexAny(l *Scanner) stateFn {
	switch r := l.next(); {
	case r == eof:
		return nil
	case isSpace(r):
		return lexSpace
	case r == '+' || r == '-':
		return l.emit(Operator)
	case r == '.' || isDigit(r):
		l.backup()
		return lexNumber
	case r == '<' || r == '>' || r == '=' || r == '≤' || r == '≥':
		l.backup()
		return lexRelation
	case unicode.IsLetter(r):
		l.backup()
		return lexIdentifier
	default:
		return l.errorf("unrecognized character: %#U", r)
	}
}

// lexSpace scans a run of space characters.
// One space has already been seen.
func lexSpace(l *Scanner) stateFn {
	for isSpace(l.peek()) {
		l.next()
	}
	l.start = l.pos
	return lexAny
}

// lexNumber scans an integer, a decimal or a fraction. Like any
// hand-written number scanner it accepts some bad input, such as "1.2/3";
// the numeric conversion will notice.
func lexNumber(l *Scanner) stateFn {
	const digits = "0123456789"
	l.acceptRun(digits)
	if l.accept(".") {
		l.acceptRun(digits)
	}
	if l.peek() == '/' {
		l.next()
		if !isDigit(l.peek()) {
			return l.errorf("bad number syntax: %s", l.input[l.start:l.pos])
		}
		l.acceptRun(digits)
	}
	if r := l.peek(); r == '.' || r == '/' {
		l.next()
		return l.errorf("bad number syntax: %s", l.input[l.start:l.pos])
	}
	return l.emit(Number)
}

// lexIdentifier scans a run of letters.
func lexIdentifier(l *Scanner) stateFn {
	for unicode.IsLetter(l.peek()) {
		l.next()
	}
	return l.emit(Identifier)
}

// lexRelation scans a relational operator. The token text is always
// one of "=", "<", "<=", ">", ">=", whatever spelling was used.
func lexRelation(l *Scanner) stateFn {
	text := ""
	switch r := l.next(); r {
	case '≤':
		text = "<="
	case '≥':
		text = ">="
	case '<', '>':
		text = string(r)
		if l.accept("=") {
			text += "="
		}
	case '=':
		text = "="
		switch {
		case l.accept("="):
		case l.accept("<"):
			text = "<="
		case l.accept(">"):
			text = ">="
		}
	}
	return l.emitText(Relation, text)
}

// isSpace reports whether r is a space character.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}
