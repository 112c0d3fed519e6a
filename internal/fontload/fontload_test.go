package fontload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestKaTeXFontPath(t *testing.T) {
	p := KaTeXFontPath("static/fonts", "Main-BoldItalic")
	assert.Equal(t, filepath.Join("static", "fonts", "KaTeX_Main-BoldItalic.ttf"), p)
}

func TestLoadOpenTypeFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "KaTeX_Main-Regular.ttf")
	require.NoError(t, os.WriteFile(path, goregular.TTF, 0o644))
	f, err := LoadOpenTypeFont(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Filepath)
	assert.NotEmpty(t, f.Fontname)
	assert.NotEmpty(t, f.GlyphName(1))
}

func TestLoadMissingFont(t *testing.T) {
	_, err := LoadOpenTypeFont(filepath.Join(t.TempDir(), "KaTeX_Nope-Regular.ttf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseGarbage(t *testing.T) {
	_, err := ParseOpenTypeFont([]byte("not a font"))
	assert.Error(t, err)
}
