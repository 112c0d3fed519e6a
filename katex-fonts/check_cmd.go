package main

import (
	"errors"
	"os"

	"github.com/npillmayer/fontcheck/audit"
	"github.com/npillmayer/fontcheck/check"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runCheckCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	cfg := audit.ConfigFrom(configure(flags))
	tracer().Infof("metrics %s, fonts %s, charts %s", cfg.MetricsFile, cfg.FontDir, cfg.ChartDir)
	res, err := audit.Run(cfg, audit.Environment{Sink: console{}})
	if err != nil {
		var serr *audit.StructuralError
		if errors.As(err, &serr) && serr.Font != "" {
			pterm.Error.Printfln("font %s: %v", serr.Font, serr.Err)
		} else {
			pterm.Error.Println(err.Error())
		}
		os.Exit(1)
	}
	if res.Failed() {
		pterm.Error.Printfln("%d findings in %d fonts", len(res.Findings), len(res.Fonts))
	} else {
		pterm.Success.Printfln("%d fonts are consistent", len(res.Fonts))
	}
	os.Exit(res.ExitCode())
}

// console prints the progress of an audit: one line per finding and one
// summary line per font.
type console struct{}

func (console) Finding(f check.Finding) {
	pterm.Warning.Println(f.Message)
}

func (console) Warning(msg string) {
	tracer().Infof("%s", msg)
	pterm.Println("    " + msg)
}

func (console) FontChecked(font string, codepoints int, chart string) {
	pterm.Info.Printfln("%s: checked %d codepoints", font, codepoints)
	tracer().Debugf("chart for %s written to %s", font, chart)
}
