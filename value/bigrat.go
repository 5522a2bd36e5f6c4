// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"fmt"
	"math/big"
)

// BigRat is an exact fraction such as 3/5. Whole numbers too large
// for an Int are also held as a BigRat with denominator 1.
type BigRat struct {
	*big.Rat
}

// The fmt package looks for Formatter before Stringer, but we want
// to use Stringer only. big.Rat implements Formatter, and we embed it
// in BigRat. To make sure that our String gets called rather than the
// inner Format, we put a non-matching stub Format method here.
func (r BigRat) Format() {}

func (r BigRat) String() string {
	if r.IsInt() {
		return r.Num().String()
	}
	return fmt.Sprintf("%s/%s", r.Num(), r.Denom())
}

func (r BigRat) Exact() *big.Rat {
	return new(big.Rat).Set(r.Rat)
}

// shrink pulls, if possible, a BigRat down to an Int.
func (r BigRat) shrink() Value {
	if r.IsInt() && r.Num().IsInt64() {
		return Int(r.Num().Int64())
	}
	return r
}
