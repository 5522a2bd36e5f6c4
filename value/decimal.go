// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/big"
	"strings"
)

// maxDecimalDigits bounds the digits printed after the point for a
// Decimal whose expansion does not terminate. Normalized decimals
// never reach it.
const maxDecimalDigits = 10

// Decimal is a number that was written, or has been rounded, in decimal
// notation, such as 0.5 or 1.33. It is held exactly.
type Decimal struct {
	*big.Rat
}

// See the comment on BigRat.Format.
func (d Decimal) Format() {}

func (d Decimal) String() string {
	n, exact := d.Rat.FloatPrec()
	if !exact || n > maxDecimalDigits {
		n = maxDecimalDigits
	}
	s := d.Rat.FloatString(n)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

func (d Decimal) Exact() *big.Rat {
	return new(big.Rat).Set(d.Rat)
}

var bigTen = big.NewInt(10)

// round rounds x to places digits after the decimal point,
// halves away from zero.
func round(x *big.Rat, places int) *big.Rat {
	if places < 0 {
		places = 0
	}
	scale := new(big.Int).Exp(bigTen, big.NewInt(int64(places)), nil)
	n := new(big.Int).Mul(x.Num(), scale)
	neg := n.Sign() < 0
	n.Abs(n)
	// q = (2|n| + d) / 2d
	d2 := new(big.Int).Lsh(x.Denom(), 1)
	n.Lsh(n, 1).Add(n, x.Denom())
	n.Quo(n, d2)
	if neg {
		n.Neg(n)
	}
	return new(big.Rat).SetFrac(n, scale)
}
