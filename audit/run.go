package audit

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/fontcheck/check"
	"github.com/npillmayer/fontcheck/cmaptable"
	"github.com/npillmayer/fontcheck/correspond"
	"github.com/npillmayer/fontcheck/internal/fontload"
	"github.com/npillmayer/fontcheck/legacy"
	"github.com/npillmayer/fontcheck/metrics"
	"github.com/npillmayer/fontcheck/report"
)

// Sink receives the progress of an audit as it happens.
type Sink interface {
	Finding(f check.Finding)
	Warning(msg string)
	FontChecked(font string, codepoints int, chart string)
}

// Environment holds the collaborators of an audit. Fields left nil are
// derived from the Config.
type Environment struct {
	Sink        Sink
	Mapping     correspond.Provider
	Locator     legacy.Locator
	UnicodeName func(rune) string
}

// FontSummary describes a completed font.
type FontSummary struct {
	Font       string
	Codepoints int
	Findings   int
	Chart      string // path of the chart
}

// Result collects the findings of all fonts checked.
type Result struct {
	Findings []check.Finding
	Fonts    []FontSummary
}

// Failed reports whether there were any findings.
func (r *Result) Failed() bool {
	return len(r.Findings) > 0
}

// ExitCode is the process exit status for the audit: 0 without findings,
// 1 otherwise.
func (r *Result) ExitCode() int {
	if r.Failed() {
		return 1
	}
	return 0
}

// Auditor holds the shared inputs of an audit: the metrics table, the
// correspondence mapping and the caches of legacy encodings and cmap tables.
type Auditor struct {
	cfg       Config
	sink      Sink
	metrics   metrics.Table
	mapping   correspond.Mapping
	encodings *legacy.Cache
	cmaps     map[string]*cmaptable.Table
	checker   *check.Checker
}

// Run audits the fonts of cfg. See Auditor.Run.
func Run(cfg Config, env Environment) (*Result, error) {
	a, err := Open(cfg, env)
	if err != nil {
		return &Result{}, err
	}
	return a.Run()
}

// Open loads the metrics table and the correspondence mapping.
func Open(cfg Config, env Environment) (*Auditor, error) {
	table, err := metrics.Load(cfg.MetricsFile)
	if err != nil {
		return nil, structural("", fmt.Errorf("metrics: %w", err))
	}
	provider := env.Mapping
	if provider == nil {
		provider = MappingProvider(cfg)
	}
	mapping, err := provider.Mapping()
	if err != nil {
		return nil, structural("", err)
	}
	locator := env.Locator
	if locator == nil {
		locator = LegacyLocator(cfg)
	}
	return NewAuditor(cfg, table, mapping, locator, env), nil
}

// MappingProvider selects the source of the correspondence mapping: a stored
// mapping file if configured, the generator script otherwise.
func MappingProvider(cfg Config) correspond.Provider {
	if cfg.MappingFile != "" {
		return correspond.File(cfg.MappingFile)
	}
	return correspond.Command{Interpreter: cfg.Interpreter, Script: cfg.MappingScript}
}

// LegacyLocator searches LegacyDir (if configured), then asks kpsewhich, then
// looks into the system font directories.
func LegacyLocator(cfg Config) legacy.Locator {
	var locators legacy.Locators
	if cfg.LegacyDir != "" {
		locators = append(locators, legacy.Dir(cfg.LegacyDir))
	}
	return append(locators, legacy.Kpsewhich{Binary: cfg.Kpsewhich}, legacy.SystemFonts{})
}

// NewAuditor creates an auditor from inputs already loaded.
func NewAuditor(cfg Config, table metrics.Table, mapping correspond.Mapping,
	locator legacy.Locator, env Environment) *Auditor {
	//
	sink := env.Sink
	if sink == nil {
		sink = traceSink{}
	}
	a := &Auditor{
		cfg:       cfg,
		sink:      sink,
		metrics:   table,
		mapping:   mapping,
		encodings: legacy.NewCache(locator),
		cmaps:     make(map[string]*cmaptable.Table),
	}
	a.checker = &check.Checker{
		Metrics:         table,
		Correspondences: correspond.NewResolver(mapping),
		Encodings:       a.encodings,
		UnicodeName:     env.UnicodeName,
	}
	return a
}

// Fonts returns the fonts to audit, sorted: the fonts of the correspondence
// mapping, restricted to Config.Fonts if set.
func (a *Auditor) Fonts() ([]string, error) {
	all := a.mapping.Fonts()
	if len(a.cfg.Fonts) == 0 {
		return all, nil
	}
	known := make(map[string]bool, len(all))
	for _, font := range all {
		known[font] = true
	}
	wanted := make(map[string]bool, len(a.cfg.Fonts))
	for _, font := range a.cfg.Fonts {
		if !known[font] {
			return nil, structural(font, fmt.Errorf("font is not part of the correspondence mapping"))
		}
		wanted[font] = true
	}
	var fonts []string
	for _, font := range all {
		if wanted[font] {
			fonts = append(fonts, font)
		}
	}
	return fonts, nil
}

// Run checks all fonts in order. Findings are streamed to the sink and
// collected in the result.
//
// A structural error stops the run. The result returned alongside it holds
// the findings up to this point.
func (a *Auditor) Run() (*Result, error) {
	res := &Result{}
	fonts, err := a.Fonts()
	if err != nil {
		return res, err
	}
	for _, font := range fonts {
		if err := a.CheckFont(font, res); err != nil {
			return res, err
		}
	}
	tracer().Infof("audited %d fonts, %d findings", len(res.Fonts), len(res.Findings))
	return res, nil
}

// CheckFont checks every code-point of font, writes its chart and adds
// the outcome to res.
func (a *Auditor) CheckFont(font string, res *Result) error {
	tracer().Infof("checking font %s", font)
	chart, err := report.NewChart(font)
	if err != nil {
		return structural(font, err)
	}
	codes, err := a.codepoints(font)
	if err != nil {
		return structural(font, err)
	}
	count := len(res.Findings)
	for _, code := range codes {
		names, err := a.names(font, code)
		if err != nil {
			return structural(font, err)
		}
		r, err := a.checker.Check(font, code, names)
		if err != nil {
			return structural(font, err)
		}
		for _, f := range r.Findings {
			a.sink.Finding(f)
		}
		res.Findings = append(res.Findings, r.Findings...)
		chart.Add(r.Row)
	}
	path, err := chart.Save(a.cfg.ChartDir)
	if err != nil {
		return structural(font, err)
	}
	res.Fonts = append(res.Fonts, FontSummary{
		Font:       font,
		Codepoints: len(codes),
		Findings:   len(res.Findings) - count,
		Chart:      path,
	})
	a.sink.FontChecked(font, len(codes), path)
	return nil
}

// codepoints prepares font for checking and returns the union of the code-points
// with metrics and the code-points of the font's cmap, in ascending order.
// All legacy encodings font refers to are loaded up front, so an unresolvable
// legacy font is noticed before any finding for font is reported.
func (a *Auditor) codepoints(font string) ([]rune, error) {
	withMetrics, err := a.metrics.Codepoints(font)
	if err != nil {
		return nil, err
	}
	unencoded, err := a.encodings.Preload(a.mapping.LegacyFonts(font))
	if err != nil {
		return nil, err
	}
	for _, name := range unencoded {
		a.sink.Warning(fmt.Sprintf("legacy font %s has no encoding section", name))
	}
	cmap, err := a.Cmap(font)
	if err != nil {
		return nil, err
	}
	union := treeset.NewWithIntComparator()
	for _, code := range withMetrics {
		union.Add(int(code))
	}
	for _, code := range cmap.Codepoints() {
		union.Add(int(code))
	}
	codes := make([]rune, 0, union.Size())
	for _, v := range union.Values() {
		codes = append(codes, rune(v.(int)))
	}
	return codes, nil
}

// Cmap returns the cmap table of KaTeX font font, loading
// <FontDir>/KaTeX_<font>.ttf on first use.
func (a *Auditor) Cmap(font string) (*cmaptable.Table, error) {
	if t, ok := a.cmaps[font]; ok {
		return t, nil
	}
	otf, err := fontload.LoadOpenTypeFont(fontload.KaTeXFontPath(a.cfg.FontDir, font))
	if err != nil {
		return nil, err
	}
	t, err := cmaptable.Extract(otf)
	if err != nil {
		return nil, err
	}
	a.cmaps[font] = t
	return t, nil
}

func (a *Auditor) names(font string, code rune) ([]string, error) {
	cmap, err := a.Cmap(font)
	if err != nil {
		return nil, err
	}
	return cmap.Names(code), nil
}

// Inspect checks a single code-point of font without reporting to the sink.
func (a *Auditor) Inspect(font string, code rune) (check.Result, error) {
	if _, ok := a.mapping[font]; !ok {
		if _, ok = a.metrics[font]; !ok {
			return check.Result{}, fmt.Errorf("unknown font %s", font)
		}
	}
	names, err := a.names(font, code)
	if err != nil {
		return check.Result{}, err
	}
	return a.checker.Check(font, code, names)
}

// Resolve returns the legacy ancestor of a glyph, if any.
func (a *Auditor) Resolve(font string, code rune) (correspond.Correspondence, bool) {
	return a.checker.Correspondences.Resolve(font, code)
}

// traceSink reports to the trace log only.
type traceSink struct{}

func (traceSink) Finding(f check.Finding) { tracer().Errorf("%s", f.Message) }
func (traceSink) Warning(msg string)      { tracer().Infof("%s", msg) }
func (traceSink) FontChecked(font string, codepoints int, chart string) {
	tracer().Infof("%s: checked %d codepoints", font, codepoints)
}
