package cmaptable

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/npillmayer/fontcheck/internal/fontload"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/header"
)

// cmapFormatVariations is the format of Unicode variation sequence subtables.
// They map sequences, not code-points, to glyphs.
const cmapFormatVariations = 14

// Extract builds the Table of an outline font.
func Extract(otf *fontload.ScalableFont) (*Table, error) {
	subtables, err := Subtables(otf)
	if err != nil {
		return nil, err
	}
	t, err := Build(subtables)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", otf.Fontname, err)
	}
	return t, nil
}

// Subtables decodes all cmap subtables of an outline font, ordered by
// platform and encoding. Only accepted subtables carry a mapping; the others
// are listed for diagnostic purposes. Subtables which cannot be decoded are
// skipped.
func Subtables(otf *fontload.ScalableFont) ([]Subtable, error) {
	r := bytes.NewReader(otf.Binary)
	info, err := header.Read(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read font header: %w", err)
	}
	data, err := info.ReadTableBytes(r, "cmap")
	if err != nil {
		return nil, fmt.Errorf("cannot read cmap table: %w", err)
	}
	tables, err := cmap.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("cannot decode cmap table: %w", err)
	}
	keys := make([]cmap.Key, 0, len(tables))
	for key := range tables {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].PlatformID != keys[j].PlatformID {
			return keys[i].PlatformID < keys[j].PlatformID
		}
		if keys[i].EncodingID != keys[j].EncodingID {
			return keys[i].EncodingID < keys[j].EncodingID
		}
		return keys[i].Language < keys[j].Language
	})
	subtables := make([]Subtable, 0, len(keys))
	for _, key := range keys {
		raw := tables[key]
		sub := Subtable{
			Platform: PlatformID(key.PlatformID),
			Encoding: EncodingID(key.EncodingID),
			Format:   uint16(raw[0])<<8 | uint16(raw[1]),
		}
		if Accepts(sub.Platform, sub.Encoding) {
			if sub.Format == cmapFormatVariations {
				tracer().Debugf("skipping variation sequences %s", sub)
				continue
			}
			decoded, err := tables.Get(key)
			if err != nil {
				tracer().Infof("cannot decode %s: %v", sub, err)
				continue
			}
			sub.Mapping = make(map[rune]string)
			low, high := decoded.CodeRange()
			for code := low; code <= high; code++ {
				if gid := decoded.Lookup(code); gid != 0 {
					sub.Mapping[code] = otf.GlyphName(uint16(gid))
				}
			}
		}
		subtables = append(subtables, sub)
	}
	return subtables, nil
}
