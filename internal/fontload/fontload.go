/*
Package fontload loads the compiled outline fonts under audit.
*/
package fontload

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed outline font together with its original bytes.
type ScalableFont struct {
	Fontname string
	Filepath string
	Binary   []byte
	SFNT     *sfnt.Font
	buf      sfnt.Buffer // not thread safe
}

// KaTeXFontPath returns the location of the TrueType file for KaTeX font id,
// e.g. "Main-Regular" → <dir>/KaTeX_Main-Regular.ttf.
func KaTeXFontPath(dir, id string) string {
	return filepath.Join(dir, "KaTeX_"+id+".ttf")
}

// LoadOpenTypeFont loads an OpenType font (TTF or OTF) from a file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, fmt.Errorf("cannot parse font %s: %w", fontfile, err)
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont loads an OpenType font (TTF or OTF) from memory.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	if f.Fontname, err = f.SFNT.Name(&f.buf, sfnt.NameIDFull); err != nil {
		f.Fontname = "" // the name table is optional for our purposes
	}
	return f, nil
}

// GlyphName returns the PostScript name of glyph gid as stored in table 'post'.
// Glyphs without a stored name get a synthetic name "glyphNNNNN".
func (f *ScalableFont) GlyphName(gid uint16) string {
	name, err := f.SFNT.GlyphName(&f.buf, sfnt.GlyphIndex(gid))
	if err != nil || name == "" {
		return fmt.Sprintf("glyph%05d", gid)
	}
	return name
}
