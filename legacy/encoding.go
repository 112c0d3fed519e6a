package legacy

import (
	"bytes"
	"regexp"
	"strconv"
)

// NotDef is the glyph name of encoding slots without a glyph.
const NotDef = ".notdef"

// EncodingSize is the number of slots of a Type 1 encoding vector.
const EncodingSize = 256

// encodingMarker starts the encoding section of the cleartext font program.
const encodingMarker = "/Encoding"

// directive matches a single slot assignment. Several directives may share a line.
var directive = regexp.MustCompile(`\bdup\s+(\d+)\s+/(\S+)\s+put\b`)

// Encoding is the encoding vector of a legacy font, i.e. a table of
// glyph names indexed by byte value. Encodings are immutable after construction.
type Encoding struct {
	names  [EncodingSize]string
	marked bool // did we find an encoding section?
}

func newEncoding() *Encoding {
	enc := &Encoding{}
	for i := range enc.names {
		enc.names[i] = NotDef
	}
	return enc
}

// ParseEncoding reconstructs the encoding vector from the raw bytes of a
// Type 1 font (PFA or PFB).
//
// Scanning starts at the first occurrence of "/Encoding". Each directive
// "dup <index> /<name> put" found from there on assigns name to slot index, in
// order of appearance, so a later directive for the same slot wins. Slots not
// mentioned by any directive hold NotDef.
//
// If the payload contains no encoding section, the result is an all-NotDef
// encoding for which HasEncoding reports false.
func ParseEncoding(payload []byte) *Encoding {
	enc := newEncoding()
	pos := bytes.Index(payload, []byte(encodingMarker))
	if pos < 0 {
		tracer().Debugf("legacy font has no %s section", encodingMarker)
		return enc
	}
	enc.marked = true
	for _, match := range directive.FindAllSubmatch(payload[pos:], -1) {
		inx, err := strconv.Atoi(string(match[1]))
		if err != nil || inx >= EncodingSize {
			tracer().Debugf("ignoring encoding directive for slot %s", match[1])
			continue
		}
		enc.names[inx] = string(match[2])
	}
	return enc
}

// HasEncoding reports whether the font program contained an encoding section.
func (enc *Encoding) HasEncoding() bool {
	return enc.marked
}

// Lookup returns the glyph name for slot code. It returns false if code
// is not a valid slot.
func (enc *Encoding) Lookup(code int) (string, bool) {
	if code < 0 || code >= EncodingSize {
		return "", false
	}
	return enc.names[code], true
}

// Name returns the glyph name for slot code, or NotDef for invalid slots.
func (enc *Encoding) Name(code int) string {
	if name, ok := enc.Lookup(code); ok {
		return name
	}
	return NotDef
}

// Names returns a copy of all slots.
func (enc *Encoding) Names() []string {
	names := make([]string, EncodingSize)
	copy(names, enc.names[:])
	return names
}

// Assigned returns the number of slots holding a glyph other than NotDef.
func (enc *Encoding) Assigned() int {
	n := 0
	for _, name := range enc.names {
		if name != NotDef {
			n++
		}
	}
	return n
}
