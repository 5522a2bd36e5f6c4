// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import "math/big"

func binary(u, v Value, op func(z, x, y *big.Rat) *big.Rat) Value {
	which := max(whichType(u), whichType(v))
	return newValue(which, op(new(big.Rat), u.Exact(), v.Exact()))
}

func Add(u, v Value) Value {
	return binary(u, v, (*big.Rat).Add)
}

func Sub(u, v Value) Value {
	return binary(u, v, (*big.Rat).Sub)
}

func Mul(u, v Value) Value {
	return binary(u, v, (*big.Rat).Mul)
}

// Quo returns u/v. It panics with an Error if v is zero.
func Quo(u, v Value) Value {
	if v.Sign() == 0 {
		Errorf("division by zero")
	}
	return binary(u, v, (*big.Rat).Quo)
}

func Neg(v Value) Value {
	return newValue(whichType(v), new(big.Rat).Neg(v.Exact()))
}

// Inv returns 1/v. The reciprocal of a Decimal is computed exactly.
func Inv(v Value) Value {
	return Quo(Int(1), v)
}

// Cmp compares u and v by their exact values, whatever their representation.
func Cmp(u, v Value) int {
	return u.Exact().Cmp(v.Exact())
}

// Equal reports whether u and v have the same exact value.
func Equal(u, v Value) bool {
	return Cmp(u, v) == 0
}

// Normalize returns v in the representation used inside a tableau.
// Whole numbers become Int (or a whole BigRat if too large). When decimal
// is set, the value is first rounded to places digits and any remaining
// fraction is a Decimal; otherwise fractions stay exact BigRats.
func Normalize(v Value, places int, decimal bool) Value {
	r := v.Exact()
	if decimal {
		r = round(r, places)
	}
	if r.IsInt() {
		return BigRat{r}.shrink()
	}
	if decimal {
		return Decimal{r}
	}
	return BigRat{r}
}
