/*
Package correspond links KaTeX glyphs to the legacy glyphs they were derived from.

The correspondence mapping is produced outside of this module, traditionally
by a Perl script which knows how each KaTeX font was assembled from the
Computer Modern and AMS fonts. It is a JSON document

	{ "Main-Regular": { "65": { "font": "cmr10", "char": "65" }, … }, … }

keyed by KaTeX font and code-point. Clients obtain it from a Provider and
query it through a Resolver.
*/
package correspond

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'katex.fonts'
func tracer() tracing.Trace {
	return tracing.Select("katex.fonts")
}
