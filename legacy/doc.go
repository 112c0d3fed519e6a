/*
Package legacy reads the built-in encoding of legacy Type 1 fonts.

Many of the KaTeX glyphs have been derived from the Computer Modern family
and its relatives. These fonts are distributed as PFB files, where the
cleartext part of the font program contains the encoding vector as a
sequence of PostScript directives

	dup 65 /A put

Package legacy reconstructs the 256-entry name table from these directives,
without interpreting the font program. Locating the PFB files is delegated
to a Locator, usually kpsewhich from a TeX distribution.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package legacy

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'katex.fonts'
func tracer() tracing.Trace {
	return tracing.Select("katex.fonts")
}
