package check

import (
	"fmt"
	"strings"
)

// Kind is the category of a finding.
type Kind int

const (
	// NoName flags code-points no cmap subtable maps to a glyph name.
	NoName Kind = iota
	// AmbiguousName flags code-points mapped to more than one glyph name.
	AmbiguousName
	// MissingMetrics flags code-points without an entry in the metrics table.
	MissingMetrics
	// NameMismatch suggests a manual check of the glyph name against the legacy font.
	NameMismatch
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case NoName:
		return "no-name"
	case AmbiguousName:
		return "ambiguous-name"
	case MissingMetrics:
		return "missing-metrics"
	case NameMismatch:
		return "name-mismatch"
	default:
		return "unknown"
	}
}

// Finding is a recorded inconsistency for a code-point of a font.
// Findings are immutable.
type Finding struct {
	Kind      Kind
	Font      string
	Codepoint rune
	Message   string
}

func (f Finding) String() string {
	return f.Message
}

// Status is the set of kinds of findings for a code-point. The zero value
// means the code-point is fine.
type Status uint8

func statusOf(kinds ...Kind) Status {
	var s Status
	for _, k := range kinds {
		s |= 1 << uint(k)
	}
	return s
}

// Has reports whether s contains kind k.
func (s Status) Has(k Kind) bool {
	return s&statusOf(k) != 0
}

// OK reports whether no finding has been recorded.
func (s Status) OK() bool {
	return s == 0
}

func (s Status) String() string {
	if s.OK() {
		return "ok"
	}
	var kinds []string
	for k := NoName; k <= NameMismatch; k++ {
		if s.Has(k) {
			kinds = append(kinds, k.String())
		}
	}
	return strings.Join(kinds, "|")
}

// U formats a code-point the way findings do, e.g. "U+0041".
func U(code rune) string {
	return fmt.Sprintf("U+%04x", code)
}
