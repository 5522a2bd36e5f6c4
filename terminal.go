// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"golang.org/x/term"
)

// isTerminal reports whether r reads from a terminal. Only then are the
// questions of the interactive loop printed, so that a file of answers
// can be piped through without echoing them.
func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
