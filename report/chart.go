/*
Package report renders font charts for manual review.

A chart is a static HTML page with one table row per code-point of a font,
showing the character in the KaTeX font and in the browser's default font next
to the glyph names collected by the checker.
*/
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/npillmayer/fontcheck/check"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StylesheetLink is the KaTeX stylesheet, relative to the chart directory.
const StylesheetLink = "../katex.min.css"

var columns = []string{"Code", "KaTeX", "Def.", "TTF name", "PFB name", "TeX font", "Unicode name"}

// Chart collects the rows for a font.
type Chart struct {
	font  string
	style Style
	rows  []check.Row
}

// NewChart creates an empty chart for KaTeX font font.
func NewChart(font string) (*Chart, error) {
	style, err := StyleFor(font)
	if err != nil {
		return nil, err
	}
	return &Chart{font: font, style: style}, nil
}

// Font returns the KaTeX font identifier of the chart.
func (c *Chart) Font() string {
	return c.font
}

// Add appends a row.
func (c *Chart) Add(row check.Row) {
	c.rows = append(c.rows, row)
}

// Len returns the number of rows.
func (c *Chart) Len() int {
	return len(c.rows)
}

// Cells returns the text cells of a row, in column order.
func Cells(row check.Row) []string {
	char := string(row.Codepoint)
	return []string{
		fmt.Sprintf("\\u%04x", row.Codepoint),
		char,
		char,
		strings.Join(row.Names, ", "),
		row.LegacyName,
		row.LegacyFont,
		row.UnicodeName,
	}
}

// WriteTo renders the chart as an HTML page, rows in ascending code-point order.
func (c *Chart) WriteTo(w io.Writer) (int64, error) {
	rows := make([]check.Row, len(c.rows))
	copy(rows, c.rows)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Codepoint < rows[j].Codepoint })
	//
	table := element(atom.Table, newline())
	table.AppendChild(tableRow(atom.Th, columns))
	table.AppendChild(newline())
	for _, row := range rows {
		table.AppendChild(tableRow(atom.Td, Cells(row)))
		table.AppendChild(newline())
	}
	head := element(atom.Head,
		attr(element(atom.Meta), "charset", "UTF-8"),
		element(atom.Title, text(fmt.Sprintf("KaTeX %s font chart", c.font))),
		attr(attr(attr(element(atom.Link), "href", StylesheetLink), "rel", "stylesheet"), "type", "text/css"),
		attr(element(atom.Style, text(c.style.stylesheet())), "type", "text/css"),
	)
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(element(atom.Html, head, element(atom.Body, table)))
	cw := &countingWriter{w: w}
	if err := html.Render(cw, doc); err != nil {
		return cw.n, err
	}
	_, err := io.WriteString(cw, "\n")
	return cw.n, err
}

// Save writes the chart to <dir>/<font>.html, creating dir if necessary.
// It returns the path of the chart.
func (c *Chart) Save(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create chart directory: %w", err)
	}
	path := filepath.Join(dir, c.font+".html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("cannot create chart: %w", err)
	}
	bw := bufio.NewWriter(f)
	if _, err = c.WriteTo(bw); err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("cannot write chart %s: %w", path, err)
	}
	return path, nil
}

// --- HTML helpers ----------------------------------------------------------

func tableRow(cell atom.Atom, cells []string) *html.Node {
	tr := element(atom.Tr)
	for _, c := range cells {
		tr.AppendChild(element(cell, text(c)))
	}
	return tr
}

func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, child := range children {
		n.AppendChild(child)
	}
	return n
}

func attr(n *html.Node, key, val string) *html.Node {
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func newline() *html.Node {
	return text("\n")
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
