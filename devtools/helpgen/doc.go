// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Helpgen generates src/program_help.h, the header that holds the help text of
revf.

It renders the help screen of revf (the -h, -v and -r options) the way
Python's argparse lays it out, and writes it as the PROGRAM_HELP macro: one
string literal per line, joined by line continuations, followed by an
include guard. Run it from anywhere inside the repository after changing the
options of revf:

	$ go tool helpgen

The output is the same on every run and does not depend on the size of the
terminal. If the header on disk is already up to date, it is left untouched.

To verify in CI that the committed header matches the options, run:

	$ go tool helpgen -check

To inspect the header without writing it:

	$ go tool helpgen -stdout
*/
package main

import (
	_ "embed"

	"go.astrophena.name/revf/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
