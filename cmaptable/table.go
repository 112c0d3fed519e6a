package cmaptable

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
)

// ErrNoUnicodeCmap is returned for fonts without any acceptable cmap subtable.
var ErrNoUnicodeCmap = errors.New("font has no Unicode cmap subtable")

// Subtable is a decoded cmap subtable: its platform, its encoding and the
// glyph name for every code-point it maps.
type Subtable struct {
	Platform PlatformID
	Encoding EncodingID
	Format   uint16
	Mapping  map[rune]string
}

func (sub Subtable) String() string {
	return fmt.Sprintf("cmap(platform=%d, encoding=%d, format=%d)", sub.Platform, sub.Encoding, sub.Format)
}

// Table maps code-points to the set of glyph names found for them in the
// accepted subtables of a font. A Table is read-only after construction.
type Table struct {
	names    map[rune]*treeset.Set
	accepted int
	rejected int
}

// Build unites the mappings of all accepted subtables. Glyph names for a
// code-point are collected, never overwritten; identical names collapse
// into one.
//
// If none of the subtables is accepted, Build returns ErrNoUnicodeCmap.
func Build(subtables []Subtable) (*Table, error) {
	t := &Table{names: make(map[rune]*treeset.Set)}
	for _, sub := range subtables {
		if !Accepts(sub.Platform, sub.Encoding) {
			tracer().Debugf("skipping %s", sub)
			t.rejected++
			continue
		}
		t.accepted++
		for code, name := range sub.Mapping {
			t.add(code, name)
		}
	}
	if t.accepted == 0 {
		return nil, ErrNoUnicodeCmap
	}
	tracer().Debugf("cmap: %d code-points from %d subtables", len(t.names), t.accepted)
	return t, nil
}

func (t *Table) add(code rune, name string) {
	set, ok := t.names[code]
	if !ok {
		set = treeset.NewWithStringComparator()
		t.names[code] = set
	}
	set.Add(name)
}

// Names returns the sorted glyph names for code. The result is empty if no
// accepted subtable maps code.
func (t *Table) Names(code rune) []string {
	set, ok := t.names[code]
	if !ok {
		return nil
	}
	names := make([]string, 0, set.Size())
	for _, v := range set.Values() {
		names = append(names, v.(string))
	}
	return names
}

// Codepoints returns all mapped code-points in ascending order.
func (t *Table) Codepoints() []rune {
	set := treeset.NewWithIntComparator()
	for code := range t.names {
		set.Add(int(code))
	}
	codes := make([]rune, 0, set.Size())
	for _, v := range set.Values() {
		codes = append(codes, rune(v.(int)))
	}
	return codes
}

// Len returns the number of mapped code-points.
func (t *Table) Len() int {
	return len(t.names)
}

// Subtables returns the number of accepted and rejected subtables.
func (t *Table) Subtables() (accepted, rejected int) {
	return t.accepted, t.rejected
}
