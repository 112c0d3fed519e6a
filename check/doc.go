/*
Package check decides whether a single code-point of a KaTeX font is consistent.

Three sources are consulted for every code-point: the cmap of the outline font,
the metrics table and, if the glyph has a legacy ancestor, the encoding vector
of the legacy font. A Checker classifies the code-point and produces findings
for every inconsistency, together with the fields a font chart displays.

The policy, applied in order, is:

▪︎ No name: the cmap does not name the code-point.

▪︎ Ambiguous name: the cmap subtables name the code-point differently.

▪︎ Missing metrics: the metrics table has no entry, and the code-point is not
one of the few which legitimately lack metrics (spaces and private use sentinels).

▪︎ Name mismatch: with exactly one cmap name and a legacy ancestor, the
display name matches neither the Unicode name nor the legacy glyph name.
Glyph names starting with "uni" are auto-generated and display as the Unicode
name, which exempts them from this test. The ambiguity test does not know
about this exemption: two different "uni…" names still count as ambiguous.

Several findings may be produced for one code-point. Findings never stop a run.
*/
package check

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'katex.fonts'
func tracer() tracing.Trace {
	return tracing.Select("katex.fonts")
}
