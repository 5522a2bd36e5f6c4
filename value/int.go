// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/big"
	"strconv"
)

// Int is the simplest representation. Every whole-valued result that fits
// in an int64 is shrunk to an Int.
type Int int64

func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

func (i Int) Exact() *big.Rat {
	return new(big.Rat).SetInt64(int64(i))
}

func (i Int) Sign() int {
	switch {
	case i < 0:
		return -1
	case i > 0:
		return 1
	}
	return 0
}
