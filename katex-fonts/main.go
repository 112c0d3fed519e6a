package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/fontcheck"
	"github.com/npillmayer/fontcheck/audit"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
	"golang.org/x/term"
)

// tracer traces with key 'katex.fonts'
func tracer() tracing.Trace {
	return tracing.Select("katex.fonts")
}

func main() {
	initDisplay()
	defaults := audit.DefaultConfig()

	commando.
		SetExecutableName("katex-fonts").
		SetVersion(fontcheck.Version).
		SetDescription("Audit the KaTeX fonts against their metrics and their Computer Modern ancestors.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("check").
		SetDescription("Check every code-point of the KaTeX fonts and write a chart per font.").
		SetShortDescription("audit fonts").
		AddFlag("metrics,m", "font metrics table (JSON)", commando.String, defaults.MetricsFile).
		AddFlag("fonts,f", "directory of the KaTeX_*.ttf files", commando.String, defaults.FontDir).
		AddFlag("charts,c", "output directory for charts", commando.String, defaults.ChartDir).
		AddFlag("mapping", "correspondence generator script", commando.String, defaults.MappingScript).
		AddFlag("mapping-file", "stored correspondence mapping (JSON), instead of running the generator", commando.String, "-").
		AddFlag("pfb-dir", "directory searched for legacy PFB files before kpsewhich", commando.String, "-").
		AddFlag("only,o", "comma separated list of fonts to check", commando.String, "-").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runCheckCommand)

	commando.
		Register("encoding").
		SetDescription("Print the built-in encoding of a legacy Type 1 font.").
		SetShortDescription("legacy encoding").
		AddArgument("font", "legacy font name (e.g. cmr10) or path of a PFB file", "").
		AddFlag("pfb-dir", "directory searched for legacy PFB files before kpsewhich", commando.String, "-").
		AddFlag("all,a", "include unassigned slots", commando.Bool, nil).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runEncodingCommand)

	commando.
		Register("cmap").
		SetDescription("Print the cmap subtables of an outline font and the glyph names per code-point.").
		SetShortDescription("outline font cmap").
		AddArgument("font", "path of a TrueType font", "").
		AddFlag("names,n", "list the glyph names of all code-points", commando.Bool, nil).
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runCmapCommand)

	commando.
		Register("inspect").
		SetDescription("Interactively query the checker for single code-points.").
		SetShortDescription("interactive shell").
		AddFlag("metrics,m", "font metrics table (JSON)", commando.String, defaults.MetricsFile).
		AddFlag("fonts,f", "directory of the KaTeX_*.ttf files", commando.String, defaults.FontDir).
		AddFlag("mapping", "correspondence generator script", commando.String, defaults.MappingScript).
		AddFlag("mapping-file", "stored correspondence mapping (JSON), instead of running the generator", commando.String, "-").
		AddFlag("pfb-dir", "directory searched for legacy PFB files before kpsewhich", commando.String, "-").
		AddFlag("trace,t", "trace level [Debug|Info|Error]", commando.String, "Error").
		SetAction(runInspectCommand)

	commando.Parse(nil)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableStyling()
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  " ! ",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " i ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// configure sets up tracing and collects the flags the sub-command knows
// about, together with the environment, into a configuration.
func configure(flags map[string]commando.FlagValue) testconfig.Conf {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.katex.fonts": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fatalf("error configuring tracing: %v", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	keys := map[string]string{
		"metrics":      audit.KeyMetrics,
		"fonts":        audit.KeyFonts,
		"charts":       audit.KeyCharts,
		"mapping":      audit.KeyMappingScript,
		"mapping-file": audit.KeyMappingFile,
		"pfb-dir":      audit.KeyLegacyDir,
		"only":         audit.KeyOnly,
	}
	for flag, key := range keys {
		if v, ok := flagString(flags, flag); ok {
			conf[key] = v
		}
	}
	if perl := os.Getenv("PERL"); perl != "" {
		conf[audit.KeyPerl] = perl
	}
	if kpsewhich := os.Getenv("KPSEWHICH"); kpsewhich != "" {
		conf[audit.KeyKpsewhich] = kpsewhich
	}
	level, _ := flagString(flags, "trace")
	setTraceLevel(level)
	return conf
}

func setTraceLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "", "error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		fatalf("invalid trace level: %s", level)
	}
}

// flagString returns the value of an optional string flag. "-" stands for
// an unset flag.
func flagString(flags map[string]commando.FlagValue, name string) (string, bool) {
	flag, ok := flags[name]
	if !ok {
		return "", false
	}
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return "", false
	}
	return s, true
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	pterm.Error.Println(fmt.Sprintf(format, args...))
	os.Exit(1)
}
