/*
Package cmaptable collects the glyph names an outline font assigns to code-points.

An OpenType font may carry several character-map subtables, each one scoped to a
platform and an encoding. Fonts produced by a tool chain like KaTeX's usually
contain identical mappings in all of them, but nothing guarantees this. A Table
therefore maps every code-point to the set of glyph names found across all
Unicode subtables. Disagreement between subtables shows up as a set with more
than one element.

Subtables are accepted if they belong to
▪︎ the Unicode platform (platform ID 0), any encoding;
▪︎ the Windows platform (platform ID 3), encoding Unicode BMP (1) or UCS-4 (10).

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package cmaptable

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'katex.fonts'
func tracer() tracing.Trace {
	return tracing.Select("katex.fonts")
}
