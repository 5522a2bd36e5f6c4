// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Simplex solves small linear programs by the tableau simplex method and
shows its work. It maximizes an objective function of two variables, x
and y, subject to linear constraints and the implicit constraints
x, y >= 0, printing the tableau after every pivot.

Usage:

	simplex [flags]
	simplex solve [flags] objective constraint...
	simplex solve [flags] -f problems.yaml
	simplex demo [--print]

Without a subcommand, simplex asks for an objective function, the number
of constraints and each constraint in turn, solves the problem and asks
whether to continue. Questions are printed only when standard input is a
terminal, or with -i, so a file of answers may be piped in.

An objective function may carry a label:

	z = 120x + 100y

A constraint has both variable terms, a relation and a right-hand side:

	2x + 2y <= 8

Terms may be written in either order. Coefficients are integers (3),
fractions (2/3) or decimals (0.5); arithmetic is exact. Once a decimal
value enters a tableau the entries are printed in decimal and rounded
after every pivot to --places digits, by default 2.

Every constraint gets a slack variable S1, S2 and so on, whatever its
relation; relations other than <= are accepted with a warning. The
entering column is the one with the most negative entry in the objective
row, ties going to the leftmost, and the leaving row is chosen by the
minimum ratio test over all constraint rows. With --legacy-ratio only
the first two rows take part in the ratio test.

A problem file holds one or more YAML documents:

	name: bounded
	objective: z = 120x + 100y
	constraints:
	  - 2x + 2y <= 8
	  - 5x + 3y <= 15

Flags:

	--places n       decimal digits kept once a decimal enters a tableau
	--max-steps n    maximum pivots per problem; 0 means no limit
	--legacy-ratio   ratio test over the first two constraint rows only
	--prompt text    text printed before each question
	--debug name     enable a debug setting: pivot or tokens
	-v n             log verbosity; 2 traces each pivot, 4 each parse

The remaining logging flags are those of k8s.io/klog.
*/
package main // import "github.com/lpsteps/simplex"
