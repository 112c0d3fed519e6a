package correspond

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Codepoint is a code-point of a legacy font. In JSON it may be written as a
// number or as a decimal string.
type Codepoint int

// UnmarshalJSON accepts 65 as well as "65".
func (c *Codepoint) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(s)
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("invalid legacy code-point %s", b)
	}
	*c = Codepoint(n)
	return nil
}

// Correspondence names the legacy font and code-point a KaTeX glyph was
// derived from.
type Correspondence struct {
	Font string    `json:"font"`
	Char Codepoint `json:"char"`
}

func (c Correspondence) String() string {
	return fmt.Sprintf("%s[%d]", c.Font, c.Char)
}

// Mapping maps KaTeX font → code-point (decimal string) → Correspondence.
type Mapping map[string]map[string]Correspondence

// Decode reads a mapping document.
func Decode(r io.Reader) (Mapping, error) {
	var m Mapping
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("cannot decode correspondence mapping: %w", err)
	}
	return m, nil
}

// Fonts returns the KaTeX fonts of the mapping, sorted.
func (m Mapping) Fonts() []string {
	fonts := make([]string, 0, len(m))
	for font := range m {
		fonts = append(fonts, font)
	}
	sort.Strings(fonts)
	return fonts
}

// LegacyFonts returns the distinct legacy fonts referenced by KaTeX font
// font, sorted. If font is empty, the legacy fonts of all KaTeX fonts are
// returned.
func (m Mapping) LegacyFonts(font string) []string {
	seen := make(map[string]bool)
	collect := func(chars map[string]Correspondence) {
		for _, c := range chars {
			seen[c.Font] = true
		}
	}
	if font == "" {
		for _, chars := range m {
			collect(chars)
		}
	} else {
		collect(m[font])
	}
	legacy := make([]string, 0, len(seen))
	for name := range seen {
		legacy = append(legacy, name)
	}
	sort.Strings(legacy)
	return legacy
}
