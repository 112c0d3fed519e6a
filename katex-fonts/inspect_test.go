package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCodepointToken(t *testing.T) {
	tests := []struct {
		token    string
		expected rune
	}{
		{"U+2200", 0x2200},
		{"u+00a0", 0xa0},
		{"0x41", 'A'},
		{"A", 'A'},
		{"∀", 0x2200},
		{"8", '8'},
		{"65", 65},
	}
	for _, tt := range tests {
		r, err := parseCodepointToken(tt.token)
		require.NoError(t, err, tt.token)
		assert.Equal(t, tt.expected, r, tt.token)
	}
	for _, token := range []string{"", "U+", "0xzz", "abc", "U+110000"} {
		_, err := parseCodepointToken(token)
		assert.Error(t, err, token)
	}
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line     string
		expected Command
	}{
		{"quit", Command{op: QUIT}},
		{"Fonts", Command{op: FONTS}},
		{"font Math-Italic", Command{op: FONT, font: "Math-Italic"}},
		{"U+0041", Command{op: QUERY, code: 'A'}},
		{"Main-Regular U+2200", Command{op: QUERY, font: "Main-Regular", code: 0x2200}},
	}
	for _, tt := range tests {
		cmd, err := parseCommand(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.expected, cmd, tt.line)
	}
	for _, line := range []string{"font", "quit now", "Main-Regular U+0041 extra", "Main-Regular xyz"} {
		_, err := parseCommand(line)
		assert.Error(t, err, line)
	}
}

func TestLegacyFontPath(t *testing.T) {
	path, err := legacyFontPath("fonts/cmr10.pfb", nil)
	require.NoError(t, err)
	assert.Equal(t, "fonts/cmr10.pfb", path)
}
