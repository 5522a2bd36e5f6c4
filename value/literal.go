// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Parse converts a numeric literal to a Value. The literal may be an
// integer (12, -3), a decimal (0.5, -.25) or a fraction (1/2, -3/4).
// Decimals are held exactly as Decimal; fractions are reduced.
func Parse(s string) (Value, error) {
	switch {
	case s == "" || s == "-" || s == "+":
		return nil, errors.New("missing number")
	case strings.IndexByte(s, '.') >= 0:
		if strings.IndexByte(s, '/') >= 0 {
			return nil, errors.Errorf("bad number syntax: %s", s)
		}
		return parseDecimal(s)
	case strings.IndexByte(s, '/') >= 0:
		return parseFraction(s)
	}
	return parseInt(s)
}

func parseInt(s string) (Value, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err == nil {
		return Int(i), nil
	}
	if err, ok := err.(*strconv.NumError); !ok || err.Err != strconv.ErrRange {
		return nil, errors.Errorf("bad number syntax: %s", s)
	}
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("bad number syntax: %s", s)
	}
	return BigRat{new(big.Rat).SetInt(b)}, nil
}

func parseFraction(s string) (Value, error) {
	slash := strings.IndexByte(s, '/')
	num, ok1 := new(big.Int).SetString(s[:slash], 10)
	den, ok2 := new(big.Int).SetString(s[slash+1:], 10)
	if !ok1 || !ok2 {
		return nil, errors.Errorf("bad fraction syntax: %s", s)
	}
	if den.Sign() == 0 {
		return nil, errors.Errorf("zero denominator in fraction: %s", s)
	}
	return BigRat{new(big.Rat).SetFrac(num, den)}.shrink(), nil
}

func parseDecimal(s string) (Value, error) {
	digits := strings.TrimLeft(s, "+-")
	if strings.Count(digits, ".") != 1 || strings.Trim(digits, ".0123456789") != "" || digits == "." {
		return nil, errors.Errorf("bad decimal syntax: %s", s)
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, errors.Errorf("bad decimal syntax: %s", s)
	}
	return Decimal{r}, nil
}
