/*
Package fontcheck audits the fonts of the KaTeX math renderer.

KaTeX ships its own outline fonts, most of them derived from Computer Modern
and its relatives, together with a hand-maintained metrics table. Three
sources therefore describe every glyph: the cmap of the outline font, the
metrics table and the encoding of the legacy Type 1 font the glyph has been
derived from. The packages of this module cross-check these sources:

▪︎ legacy reads the encoding vector of legacy PFB fonts.

▪︎ cmaptable collects the glyph names of the outline fonts per code-point.

▪︎ correspond knows which legacy glyph a KaTeX glyph stems from.

▪︎ check classifies a code-point and reports findings.

▪︎ report renders per-font HTML charts for manual review.

▪︎ audit drives a complete run. The command katex-fonts is its front end.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontcheck

// Version is the version of the font auditing tools.
const Version = "v0.1.0"
