/*
Package audit runs the KaTeX font consistency check.

An audit walks the KaTeX fonts named by the correspondence mapping in sorted
order. For every font it checks the union of the code-points with metrics and
the code-points of the font's cmap, streams findings to a Sink and writes an
HTML chart per font.

Findings never stop an audit. Structural problems, e.g. a missing font file or an
unresolvable legacy font, abort the run with a *StructuralError; charts of
fonts completed before are kept.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package audit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'katex.fonts'
func tracer() tracing.Trace {
	return tracing.Select("katex.fonts")
}
