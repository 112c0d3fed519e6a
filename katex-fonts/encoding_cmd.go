package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/npillmayer/fontcheck/audit"
	"github.com/npillmayer/fontcheck/legacy"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runEncodingCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	name := strings.TrimSpace(args["font"].Value)
	if name == "" {
		fatalf("legacy font is required")
	}
	cfg := audit.ConfigFrom(configure(flags))
	path, err := legacyFontPath(name, audit.LegacyLocator(cfg))
	if err != nil {
		fatalf("%v", err)
	}
	payload, err := os.ReadFile(path)
	if err != nil {
		fatalf("cannot read %s: %v", path, err)
	}
	enc := legacy.ParseEncoding(payload)
	pterm.Printf("Path: %s\n", path)
	if !enc.HasEncoding() {
		pterm.Warning.Println("font has no encoding section")
		return
	}
	pterm.Printf("Encoded glyphs: %d\n", enc.Assigned())
	showAll := mustFlagBool(flags["all"], "all")
	data := pterm.TableData{{"Slot", "Hex", "Name"}}
	for i, glyph := range enc.Names() {
		if glyph == legacy.NotDef && !showAll {
			continue
		}
		data = append(data, []string{strconv.Itoa(i), fmt.Sprintf("0x%02x", i), glyph})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		fatalf("%v", err)
	}
}

// legacyFontPath accepts a path to a font file as well as a font name
// to be located.
func legacyFontPath(name string, locator legacy.Locator) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".pfb" || ext == ".pfa" || strings.ContainsRune(name, filepath.Separator) {
		return name, nil
	}
	return locator.Locate(name)
}
