package audit

import (
	"strings"

	"github.com/npillmayer/schuko"
)

// Configuration keys understood by ConfigFrom.
const (
	KeyMetrics       = "metrics"
	KeyFonts         = "fonts"
	KeyCharts        = "charts"
	KeyMappingScript = "mapping.script"
	KeyMappingFile   = "mapping.file"
	KeyPerl          = "perl"
	KeyKpsewhich     = "kpsewhich"
	KeyLegacyDir     = "pfb.dir"
	KeyOnly          = "only"
)

// Config holds the locations of the audited assets.
type Config struct {
	MetricsFile   string   // JSON metrics table
	FontDir       string   // directory of KaTeX_<font>.ttf
	ChartDir      string   // output directory for charts
	MappingScript string   // correspondence generator, run by Interpreter
	MappingFile   string   // stored correspondence mapping; overrides MappingScript
	Interpreter   string   // interpreter for MappingScript
	Kpsewhich     string   // kpathsea lookup binary
	LegacyDir     string   // optional directory searched for PFB files first
	Fonts         []string // restrict the audit to these fonts; empty means all
}

// DefaultConfig returns the configuration for running from KaTeX's
// metrics directory.
func DefaultConfig() Config {
	return Config{
		MetricsFile:   "../src/fontMetricsData.json",
		FontDir:       "../static/fonts",
		ChartDir:      "../build/charts",
		MappingScript: "mapping.pl",
		Interpreter:   "perl",
		Kpsewhich:     "kpsewhich",
	}
}

// ConfigFrom overlays the keys set in conf onto DefaultConfig.
// KeyOnly holds a comma separated list of fonts.
func ConfigFrom(conf schuko.Configuration) Config {
	cfg := DefaultConfig()
	set := func(key string, target *string) {
		if conf.IsSet(key) {
			if v := strings.TrimSpace(conf.GetString(key)); v != "" {
				*target = v
			}
		}
	}
	set(KeyMetrics, &cfg.MetricsFile)
	set(KeyFonts, &cfg.FontDir)
	set(KeyCharts, &cfg.ChartDir)
	set(KeyMappingScript, &cfg.MappingScript)
	set(KeyMappingFile, &cfg.MappingFile)
	set(KeyPerl, &cfg.Interpreter)
	set(KeyKpsewhich, &cfg.Kpsewhich)
	set(KeyLegacyDir, &cfg.LegacyDir)
	var only string
	set(KeyOnly, &only)
	for _, font := range strings.Split(only, ",") {
		if font = strings.TrimSpace(font); font != "" {
			cfg.Fonts = append(cfg.Fonts, font)
		}
	}
	return cfg
}
