package check

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fontcheck/correspond"
	"github.com/npillmayer/fontcheck/legacy"
	"golang.org/x/text/unicode/runenames"
)

// Placeholder is displayed for legacy fields of glyphs without a legacy ancestor.
const Placeholder = "—"

// UnknownName is the Unicode name of unassigned code-points.
const UnknownName = "???"

// autoNamePrefix starts glyph names generated from a code-point, e.g. "uni2200".
const autoNamePrefix = "uni"

// NeedNoMetrics lists code-points which legitimately lack metrics.
var NeedNoMetrics = map[rune]bool{
	0x0020: true,
	0x00A0: true,
	0xEFFD: true,
	0xEFFE: true,
	0xEFFF: true,
}

// Metrics tells whether a font has metrics for a code-point.
type Metrics interface {
	Has(font string, code rune) bool
}

// Correspondences resolves the legacy ancestor of a glyph.
type Correspondences interface {
	Resolve(font string, code rune) (correspond.Correspondence, bool)
}

// Encodings provides the encoding vectors of legacy fonts.
type Encodings interface {
	Encoding(name string) (*legacy.Encoding, error)
}

// Row holds the display fields for a code-point in a font chart.
type Row struct {
	Codepoint   rune
	Names       []string // sorted glyph names from the cmap
	Display     string   // canonical name
	LegacyName  string
	LegacyFont  string
	UnicodeName string
}

// Result is the outcome of checking a code-point.
type Result struct {
	Row      Row
	Status   Status
	Findings []Finding
}

// Checker applies the consistency policy. All fields except UnicodeName
// must be set; UnicodeName defaults to UnicodeName.
type Checker struct {
	Metrics         Metrics
	Correspondences Correspondences
	Encodings       Encodings
	UnicodeName     func(rune) string
}

// Check classifies code-point code of KaTeX font font, given the sorted set
// of glyph names the font's cmap has for it.
//
// Findings are reported in the result. An error is returned only if the
// legacy side cannot be evaluated at all, i.e. the legacy font cannot be loaded
// or the legacy code-point is not a valid slot.
func (c *Checker) Check(font string, code rune, names []string) (Result, error) {
	uname := c.unicodeName(code)
	res := Result{
		Row: Row{
			Codepoint:   code,
			Names:       names,
			Display:     DisplayName(names, uname),
			LegacyName:  Placeholder,
			LegacyFont:  Placeholder,
			UnicodeName: uname,
		},
	}
	record := func(kind Kind, format string, args ...interface{}) {
		f := Finding{
			Kind:      kind,
			Font:      font,
			Codepoint: code,
			Message:   fmt.Sprintf(format, args...),
		}
		tracer().Debugf("%s: %s", kind, f.Message)
		res.Findings = append(res.Findings, f)
		res.Status |= statusOf(kind)
	}
	if len(names) == 0 {
		record(NoName, "Codepoint %s of font %s maps to no name", U(code), font)
	} else if len(names) > 1 {
		record(AmbiguousName, "Codepoint %s of font %s maps to multiple names: %s",
			U(code), font, strings.Join(names, ", "))
	}
	if !c.Metrics.Has(font, code) && !NeedNoMetrics[code] {
		record(MissingMetrics, "Codepoint %s of font %s has no metrics (%s)",
			U(code), font, res.Row.Display)
	}
	corr, ok := c.Correspondences.Resolve(font, code)
	if !ok {
		return res, nil
	}
	enc, err := c.Encodings.Encoding(corr.Font)
	if err != nil {
		return res, err
	}
	pfbName, ok := enc.Lookup(int(corr.Char))
	if !ok {
		return res, fmt.Errorf("font %s, %s: legacy code-point %d of %s out of range",
			font, U(code), corr.Char, corr.Font)
	}
	res.Row.LegacyName, res.Row.LegacyFont = pfbName, corr.Font
	display := res.Row.Display
	if len(names) == 1 && display != uname && display != pfbName {
		record(NameMismatch, "Verify name %s of KaTeX_%s glyph %s matches %s of %s glyph %d=0x%02x",
			display, font, U(code), pfbName, corr.Font, corr.Char, int(corr.Char))
	}
	return res, nil
}

func (c *Checker) unicodeName(code rune) string {
	if c.UnicodeName != nil {
		return c.UnicodeName(code)
	}
	return UnicodeName(code)
}

// UnicodeName returns the name of code in the Unicode character database,
// or UnknownName for unassigned code-points and code-points without a proper
// name, such as control characters.
func UnicodeName(code rune) string {
	name := runenames.Name(code)
	if name == "" || strings.HasPrefix(name, "<") {
		return UnknownName
	}
	return name
}

// DisplayName is the canonical name of a code-point in charts and findings:
// the cmap names joined by ", ", unless there are none or all of them are
// auto-generated "uni…" names, in which case it is the Unicode name.
func DisplayName(names []string, uname string) string {
	if len(names) == 0 {
		return uname
	}
	for _, name := range names {
		if !strings.HasPrefix(name, autoNamePrefix) {
			return strings.Join(names, ", ")
		}
	}
	return uname
}
