package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
)

// ErrUnknownVariant is returned for font identifiers not following the
// <Family>-<Variant> convention.
var ErrUnknownVariant = errors.New("unknown font variant")

// Style is the CSS font selection for a KaTeX font.
type Style struct {
	Family string // e.g. KaTeX_Main
	Weight string // normal | bold
	Style  string // normal | italic
}

var variants = map[string]struct{ weight, style string }{
	"Regular":    {"normal", "normal"},
	"Italic":     {"normal", "italic"},
	"Bold":       {"bold", "normal"},
	"BoldItalic": {"bold", "italic"},
}

// StyleFor derives the CSS font selection from a KaTeX font identifier,
// e.g. "Main-BoldItalic" → KaTeX_Main, bold, italic.
func StyleFor(font string) (Style, error) {
	family, variant, ok := strings.Cut(font, "-")
	if !ok || family == "" {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownVariant, font)
	}
	v, ok := variants[variant]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownVariant, font)
	}
	return Style{Family: "KaTeX_" + family, Weight: v.weight, Style: v.style}, nil
}

// stylesheet renders the font selection as a rule for the chart's KaTeX column.
func (s Style) stylesheet() string {
	rule := css.NewRule(css.QualifiedRule)
	rule.Prelude = "table td:nth-child(2)"
	rule.Selectors = []string{rule.Prelude}
	rule.Declarations = []*css.Declaration{
		{Property: "font-family", Value: s.Family},
		{Property: "font-weight", Value: s.Weight},
		{Property: "font-style", Value: s.Style},
		{Property: "padding-left", Value: "1em"},
	}
	sheet := css.NewStylesheet()
	sheet.Rules = append(sheet.Rules, rule)
	return sheet.String()
}
