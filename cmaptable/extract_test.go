package cmaptable

import (
	"testing"

	"github.com/npillmayer/fontcheck/internal/fontload"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Test Suite Preparation ------------------------------------------------

type ExtractTestEnviron struct {
	suite.Suite
	otf *fontload.ScalableFont
}

// listen for 'go test' command --> run test methods
func TestExtractFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "katex.fonts")
	defer teardown()
	suite.Run(t, new(ExtractTestEnviron))
}

// run once, before test suite methods
func (env *ExtractTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("katex.fonts").SetTraceLevel(tracing.LevelError)
	otf, err := fontload.ParseOpenTypeFont(goregular.TTF)
	env.Require().NoError(err)
	env.otf = otf
	tracing.Select("katex.fonts").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *ExtractTestEnviron) TestSubtablesAreSorted() {
	subtables, err := Subtables(env.otf)
	env.Require().NoError(err)
	env.Require().NotEmpty(subtables)
	for i := 1; i < len(subtables); i++ {
		prev, cur := subtables[i-1], subtables[i]
		env.True(prev.Platform < cur.Platform ||
			(prev.Platform == cur.Platform && prev.Encoding <= cur.Encoding),
			"expected %s to precede %s", prev, cur)
	}
	for _, sub := range subtables {
		if !Accepts(sub.Platform, sub.Encoding) {
			env.Nil(sub.Mapping, "expected no mapping for rejected %s", sub)
		}
	}
}

func (env *ExtractTestEnviron) TestExtractLatinCapitals() {
	table, err := Extract(env.otf)
	env.Require().NoError(err)
	for r := 'A'; r <= 'Z'; r++ {
		names := table.Names(r)
		env.Len(names, 1, "expected exactly one glyph name for %#U", r)
		env.NotEmpty(names[0])
	}
	env.Empty(table.Names(0x10FFFD), "expected private use plane code-point to be unmapped")
}

func (env *ExtractTestEnviron) TestCodepointsCoverCmap() {
	table, err := Extract(env.otf)
	env.Require().NoError(err)
	codes := table.Codepoints()
	env.Equal(table.Len(), len(codes))
	env.Contains(codes, 'a')
	for _, code := range codes {
		env.NotEmpty(table.Names(code), "expected names for %#U", code)
	}
}
