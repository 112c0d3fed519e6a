/*
Package metrics gives access to the hand-maintained KaTeX font metrics table.

The table is a JSON document keyed by font and code-point (as a decimal string).
Only the presence of an entry matters for auditing; the records themselves are
kept as raw JSON.
*/
package metrics

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// Table maps KaTeX font → code-point (decimal string) → metrics record.
type Table map[string]map[string]json.RawMessage

// Load reads a metrics table from a file.
func Load(path string) (Table, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return Decode(fd)
}

// Decode reads a metrics table.
func Decode(r io.Reader) (Table, error) {
	var t Table
	if err := json.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("cannot decode metrics table: %w", err)
	}
	return t, nil
}

// Has reports whether font has a metrics record for code.
func (t Table) Has(font string, code rune) bool {
	_, ok := t[font][strconv.Itoa(int(code))]
	return ok
}

// Codepoints returns the code-points font has metrics for, in ascending order.
// It is an error if font is not part of the table or a key is not a
// non-negative decimal number.
func (t Table) Codepoints(font string) ([]rune, error) {
	glyphs, ok := t[font]
	if !ok {
		return nil, fmt.Errorf("no metrics for font %s", font)
	}
	codes := make([]rune, 0, len(glyphs))
	for key := range glyphs {
		n, err := strconv.Atoi(key)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("font %s: invalid metrics key %q", font, key)
		}
		codes = append(codes, rune(n))
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes, nil
}

// Fonts returns the fonts of the table, sorted.
func (t Table) Fonts() []string {
	fonts := make([]string, 0, len(t))
	for font := range t {
		fonts = append(fonts, font)
	}
	sort.Strings(fonts)
	return fonts
}
