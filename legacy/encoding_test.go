package legacy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEncodingSingleLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "katex.fonts")
	defer teardown()
	//
	payload := []byte("%!PS-AdobeFont-1.0: CMR10\n/Encoding dup 65 /A put dup 66 /B put\nreadonly def\n")
	enc := ParseEncoding(payload)
	require.True(t, enc.HasEncoding())
	want := make([]string, EncodingSize)
	for i := range want {
		want[i] = NotDef
	}
	want[65], want[66] = "A", "B"
	if diff := cmp.Diff(want, enc.Names()); diff != "" {
		t.Errorf("encoding mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 2, enc.Assigned())
}

func TestParseEncodingLastDirectiveWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "katex.fonts")
	defer teardown()
	//
	payload := []byte(`/Encoding 256 array
0 1 255 {1 index exch /.notdef put} for
dup 0 /Gamma put
dup 161 /Gamma put
dup 0 /Delta put
readonly def
`)
	enc := ParseEncoding(payload)
	assert.Equal(t, "Delta", enc.Name(0))
	assert.Equal(t, "Gamma", enc.Name(161))
	assert.Equal(t, NotDef, enc.Name(1))
}

func TestParseEncodingIgnoresDirectivesBeforeMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "katex.fonts")
	defer teardown()
	//
	payload := []byte("dup 65 /Z put\n/Encoding StandardEncoding\ndup 66 /B put\n")
	enc := ParseEncoding(payload)
	assert.Equal(t, NotDef, enc.Name(65))
	assert.Equal(t, "B", enc.Name(66))
}

func TestParseEncodingWithoutMarker(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "katex.fonts")
	defer teardown()
	//
	enc := ParseEncoding([]byte("dup 65 /A put\n"))
	assert.False(t, enc.HasEncoding())
	assert.Equal(t, 0, enc.Assigned())
	assert.Equal(t, NotDef, enc.Name(65))
}

func TestParseEncodingSlotRange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "katex.fonts")
	defer teardown()
	//
	enc := ParseEncoding([]byte("/Encoding\ndup 255 /ydieresis put\ndup 256 /overflow put\n"))
	assert.Equal(t, "ydieresis", enc.Name(255))
	assert.Equal(t, 1, enc.Assigned())
	_, ok := enc.Lookup(256)
	assert.False(t, ok)
	_, ok = enc.Lookup(-1)
	assert.False(t, ok)
	assert.Equal(t, NotDef, enc.Name(300))
}

func TestParseEncodingInBinaryPayload(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "katex.fonts")
	defer teardown()
	//
	// PFB segment header in front of the cleartext part, binary garbage behind it
	payload := []byte{0x80, 0x01, 0x2a, 0x00, 0x00, 0x00}
	payload = append(payload, []byte("/Encoding 256 array\ndup 97 /a put\ncurrentfile eexec\n")...)
	payload = append(payload, 0x80, 0x02, 0xff, 0xfe, 0x00, 0x9c)
	enc := ParseEncoding(payload)
	assert.Equal(t, "a", enc.Name(97))
	assert.Equal(t, 1, enc.Assigned())
}

func TestCacheBuildsEncodingOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "katex.fonts")
	defer teardown()
	//
	dir := t.TempDir()
	path := filepath.Join(dir, "cmr10.pfb")
	require.NoError(t, os.WriteFile(path, []byte("/Encoding\ndup 65 /A put\n"), 0o644))
	cache := NewCache(Dir(dir))
	enc1, err := cache.Encoding("cmr10")
	require.NoError(t, err)
	assert.Equal(t, "A", enc1.Name(65))
	// the file is gone, but the encoding is cached
	require.NoError(t, os.Remove(path))
	enc2, err := cache.Encoding("cmr10")
	require.NoError(t, err)
	assert.Same(t, enc1, enc2)
	assert.Equal(t, 1, cache.Len())
}

func TestCacheUnresolvableFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "katex.fonts")
	defer teardown()
	//
	cache := NewCache(Locators{Dir(t.TempDir())})
	_, err := cache.Encoding("cmunknown")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, cache.Len())
}

func TestCachePreloadReportsUnencodedFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "katex.fonts")
	defer teardown()
	//
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cmr10.pfb"), []byte("/Encoding\ndup 65 /A put\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cmex10.pfb"), []byte("no encoding here"), 0o644))
	cache := NewCache(Dir(dir))
	unencoded, err := cache.Preload([]string{"cmr10", "cmex10"})
	require.NoError(t, err)
	assert.Equal(t, []string{"cmex10"}, unencoded)
	assert.Equal(t, 2, cache.Len())
}

func TestLocatorsFirstHitWins(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(second, "cmmi10.pfb"), nil, 0o644))
	path, err := Locators{Dir(first), Dir(second)}.Locate("cmmi10")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(second, "cmmi10.pfb"), path)
	_, err = Locators{}.Locate("cmmi10")
	assert.ErrorIs(t, err, ErrNotFound)
}
