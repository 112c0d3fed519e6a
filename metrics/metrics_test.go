package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const metricsDoc = `{
	"Main-Regular": {
		"32": [0, 0, 0, 0, 0.25],
		"65": [0, 0.68333, 0, 0, 0.75],
		"8704": [0, 0.69444, 0, 0, 0.55556]
	},
	"AMS-Regular": {}
}`

func TestDecodeAndQuery(t *testing.T) {
	table, err := Decode(strings.NewReader(metricsDoc))
	require.NoError(t, err)
	assert.True(t, table.Has("Main-Regular", 'A'))
	assert.False(t, table.Has("Main-Regular", 'B'))
	assert.False(t, table.Has("Caligraphic-Regular", 'A'))
	assert.Equal(t, []string{"AMS-Regular", "Main-Regular"}, table.Fonts())
}

func TestCodepointsAscending(t *testing.T) {
	table, err := Decode(strings.NewReader(metricsDoc))
	require.NoError(t, err)
	codes, err := table.Codepoints("Main-Regular")
	require.NoError(t, err)
	assert.Equal(t, []rune{' ', 'A', 0x2200}, codes)
	codes, err = table.Codepoints("AMS-Regular")
	require.NoError(t, err)
	assert.Empty(t, codes)
}

func TestCodepointsErrors(t *testing.T) {
	table, err := Decode(strings.NewReader(`{"Main-Regular": {"x41": []}}`))
	require.NoError(t, err)
	_, err = table.Codepoints("Main-Regular")
	assert.ErrorContains(t, err, "invalid metrics key")
	_, err = table.Codepoints("Script-Regular")
	assert.ErrorContains(t, err, "no metrics for font")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fontMetricsData.json")
	require.NoError(t, os.WriteFile(path, []byte(metricsDoc), 0o644))
	table, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, table, 2)
	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = Decode(strings.NewReader("[1, 2"))
	assert.Error(t, err)
}
