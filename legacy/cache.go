package legacy

import (
	"fmt"
	"os"
)

// Cache holds the encodings of legacy fonts, keyed by font name.
// An encoding is built on first request and kept for the lifetime of the
// cache; entries are never invalidated.
//
// Cache is not safe for concurrent use.
type Cache struct {
	locator   Locator
	encodings map[string]*Encoding
}

// NewCache creates an empty cache which finds font files with locator.
func NewCache(locator Locator) *Cache {
	return &Cache{
		locator:   locator,
		encodings: make(map[string]*Encoding),
	}
}

// Encoding returns the encoding of legacy font name, loading and parsing the
// font file on the first call for name.
func (c *Cache) Encoding(name string) (*Encoding, error) {
	if enc, ok := c.encodings[name]; ok {
		return enc, nil
	}
	if c.locator == nil {
		return nil, fmt.Errorf("%w: %s (no locator configured)", ErrNotFound, name)
	}
	path, err := c.locator.Locate(name)
	if err != nil {
		return nil, err
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read legacy font %s: %w", name, err)
	}
	enc := ParseEncoding(payload)
	tracer().Infof("legacy font %s: %d encoded glyphs", name, enc.Assigned())
	c.encodings[name] = enc
	return enc, nil
}

// Preload makes sure the encodings of all fonts in names are present.
// It returns the names of fonts without an encoding section.
func (c *Cache) Preload(names []string) (unencoded []string, err error) {
	for _, name := range names {
		enc, err := c.Encoding(name)
		if err != nil {
			return unencoded, err
		}
		if !enc.HasEncoding() {
			unencoded = append(unencoded, name)
		}
	}
	return unencoded, nil
}

// Insert puts an encoding into the cache, replacing an existing one.
func (c *Cache) Insert(name string, enc *Encoding) {
	c.encodings[name] = enc
}

// Len returns the number of cached encodings.
func (c *Cache) Len() int {
	return len(c.encodings)
}
