package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/parser"
	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/fontcheck/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestStyleFor(t *testing.T) {
	tests := []struct {
		font     string
		expected Style
	}{
		{"Main-Regular", Style{"KaTeX_Main", "normal", "normal"}},
		{"Math-Italic", Style{"KaTeX_Math", "normal", "italic"}},
		{"SansSerif-Bold", Style{"KaTeX_SansSerif", "bold", "normal"}},
		{"Main-BoldItalic", Style{"KaTeX_Main", "bold", "italic"}},
	}
	for _, tt := range tests {
		s, err := StyleFor(tt.font)
		require.NoError(t, err, tt.font)
		assert.Equal(t, tt.expected, s, tt.font)
	}
	for _, font := range []string{"Main", "Main-Light", "-Regular"} {
		_, err := StyleFor(font)
		assert.ErrorIs(t, err, ErrUnknownVariant, font)
	}
}

func TestStylesheetParses(t *testing.T) {
	s, err := StyleFor("Main-BoldItalic")
	require.NoError(t, err)
	sheet, err := parser.Parse(s.stylesheet())
	require.NoError(t, err)
	require.Len(t, sheet.Rules, 1)
	rule := sheet.Rules[0]
	assert.Equal(t, []string{"table td:nth-child(2)"}, rule.Selectors)
	decls := make(map[string]string)
	for _, d := range rule.Declarations {
		decls[d.Property] = d.Value
	}
	want := map[string]string{
		"font-family":  "KaTeX_Main",
		"font-weight":  "bold",
		"font-style":   "italic",
		"padding-left": "1em",
	}
	if diff := cmp.Diff(want, decls); diff != "" {
		t.Errorf("declarations (-want +got):\n%s", diff)
	}
}

func render(t *testing.T, c *Chart) *html.Node {
	var buf bytes.Buffer
	n, err := c.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.True(t, strings.HasPrefix(buf.String(), "<!DOCTYPE html>"))
	doc, err := html.Parse(&buf)
	require.NoError(t, err)
	return doc
}

func cellTexts(tr *html.Node) []string {
	var cells []string
	for _, td := range cascadia.MustCompile("td, th").MatchAll(tr) {
		var sb strings.Builder
		for c := td.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
			}
		}
		cells = append(cells, sb.String())
	}
	return cells
}

func TestChartRowsAscending(t *testing.T) {
	c, err := NewChart("Main-Regular")
	require.NoError(t, err)
	c.Add(check.Row{Codepoint: 0x2200, Names: []string{"universal"}, Display: "universal",
		LegacyName: "universal", LegacyFont: "cmsy10", UnicodeName: "FOR ALL"})
	c.Add(check.Row{Codepoint: 'A', Names: []string{"A"}, Display: "A",
		LegacyName: check.Placeholder, LegacyFont: check.Placeholder, UnicodeName: "LATIN CAPITAL LETTER A"})
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "Main-Regular", c.Font())
	doc := render(t, c)
	rows := cascadia.MustCompile("tr").MatchAll(doc)
	require.Len(t, rows, 3)
	assert.Equal(t, columns, cellTexts(rows[0]))
	assert.Equal(t, []string{`\u0041`, "A", "A", "A", "—", "—", "LATIN CAPITAL LETTER A"}, cellTexts(rows[1]))
	assert.Equal(t, []string{`\u2200`, "∀", "∀", "universal", "universal", "cmsy10", "FOR ALL"}, cellTexts(rows[2]))
	title := cascadia.MustCompile("title").MatchFirst(doc)
	require.NotNil(t, title)
	assert.Equal(t, "KaTeX Main-Regular font chart", title.FirstChild.Data)
	link := cascadia.MustCompile(`link[rel="stylesheet"]`).MatchFirst(doc)
	require.NotNil(t, link)
}

func TestChartEscapesAngleBrackets(t *testing.T) {
	c, err := NewChart("Main-Regular")
	require.NoError(t, err)
	c.Add(check.Row{Codepoint: '<', Names: []string{"less"}, Display: "less",
		LegacyName: "<bad>", LegacyFont: "cmmi10", UnicodeName: "LESS-THAN SIGN"})
	var buf bytes.Buffer
	_, err = c.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "&lt;bad&gt;")
	assert.NotContains(t, out, "<bad>")
	assert.Contains(t, out, "<td>&lt;</td>")
}

func TestChartSave(t *testing.T) {
	c, err := NewChart("AMS-Regular")
	require.NoError(t, err)
	c.Add(check.Row{Codepoint: 0x2127, Names: []string{"mho"}, Display: "mho",
		LegacyName: check.Placeholder, LegacyFont: check.Placeholder, UnicodeName: "INVERTED OHM SIGN"})
	dir := filepath.Join(t.TempDir(), "build", "charts")
	path, err := c.Save(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "AMS-Regular.html"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "font-family: KaTeX_AMS")
}
