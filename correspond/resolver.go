package correspond

import "strconv"

// Resolver answers correspondence queries from a Mapping.
type Resolver struct {
	mapping Mapping
}

// NewResolver creates a resolver for m. m must not be changed afterwards.
func NewResolver(m Mapping) *Resolver {
	return &Resolver{mapping: m}
}

// Resolve returns the legacy glyph KaTeX font font's code-point code was
// derived from. The second return value is false if the glyph has no legacy
// ancestor, which is not an error.
func (r *Resolver) Resolve(font string, code rune) (Correspondence, bool) {
	chars, ok := r.mapping[font]
	if !ok {
		return Correspondence{}, false
	}
	c, ok := chars[strconv.Itoa(int(code))]
	if !ok || c.Font == "" {
		return Correspondence{}, false
	}
	return c, true
}
