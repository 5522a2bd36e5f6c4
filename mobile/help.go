// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mobile

const help = `Simplex maximizes a linear objective function of x and y
subject to linear constraints, with x, y >= 0.

Objective function, with an optional label:

	z = 120x + 100y

Constraints, one per line, each with both variables and a
right-hand side:

	2x + 2y <= 8
	5x + 3y <= 15

Coefficients may be integers (3), fractions (2/3) or decimals (0.5).
Once a decimal enters a table, entries are rounded to two places.
Every constraint receives a slack variable S1, S2 and so on,
whatever its relation.
`
