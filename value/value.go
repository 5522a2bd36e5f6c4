// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package value implements the numbers held in a simplex tableau.
// A Value is an Int, a BigRat or a Decimal. All three are exact;
// a Decimal is a rational with a finite decimal expansion that prints
// in decimal notation, and arithmetic touching a Decimal yields a Decimal.
package value // import "github.com/lpsteps/simplex/value"

import (
	"fmt"
	"math/big"
)

type Value interface {
	String() string

	// Exact returns the value as a newly allocated big.Rat.
	// The caller may modify the result.
	Exact() *big.Rat

	// Sign returns -1, 0 or +1.
	Sign() int
}

type Error string

func (err Error) Error() string {
	return string(err)
}

// Errorf panics with an Error. Arithmetic errors are programming errors
// in the callers of this package, so they are not returned.
func Errorf(format string, args ...interface{}) {
	panic(Error(fmt.Sprintf(format, args...)))
}

// valueType orders the representations; binary operations promote
// both operands to the higher of the two.
type valueType int

const (
	intType valueType = iota
	bigRatType
	decimalType
)

func whichType(v Value) valueType {
	switch v.(type) {
	case Int:
		return intType
	case BigRat:
		return bigRatType
	case Decimal:
		return decimalType
	}
	Errorf("unknown value type %T", v)
	panic("not reached")
}

// IsDecimal reports whether v is in decimal representation.
func IsDecimal(v Value) bool {
	_, ok := v.(Decimal)
	return ok
}

// newValue returns z in the representation given by which,
// shrinking exact rationals to Int when possible.
func newValue(which valueType, z *big.Rat) Value {
	if which == decimalType {
		return Decimal{z}
	}
	return BigRat{z}.shrink()
}
