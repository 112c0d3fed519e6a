package main

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fontcheck/check"
	"github.com/npillmayer/fontcheck/cmaptable"
	"github.com/npillmayer/fontcheck/internal/fontload"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runCmapCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	path := strings.TrimSpace(args["font"].Value)
	if path == "" {
		fatalf("font path is required")
	}
	configure(flags)
	otf, err := fontload.LoadOpenTypeFont(path)
	if err != nil {
		fatalf("%v", err)
	}
	subtables, err := cmaptable.Subtables(otf)
	if err != nil {
		fatalf("%v", err)
	}
	pterm.Printf("Font: %s\n", otf.Fontname)
	data := pterm.TableData{{"Platform", "Encoding", "Format", "Code-points", "Accepted"}}
	for _, sub := range subtables {
		accepted := cmaptable.Accepts(sub.Platform, sub.Encoding)
		count := "-"
		if accepted {
			count = fmt.Sprint(len(sub.Mapping))
		}
		data = append(data, []string{
			fmt.Sprint(sub.Platform), fmt.Sprint(sub.Encoding), fmt.Sprint(sub.Format),
			count, fmt.Sprint(accepted),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		fatalf("%v", err)
	}
	table, err := cmaptable.Build(subtables)
	if err != nil {
		fatalf("%v", err)
	}
	pterm.Printf("Code-points: %d\n", table.Len())
	if !mustFlagBool(flags["names"], "names") {
		return
	}
	data = pterm.TableData{{"Code", "Names", "Unicode name"}}
	for _, code := range table.Codepoints() {
		data = append(data, []string{
			check.U(code), strings.Join(table.Names(code), ", "), check.UnicodeName(code),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		fatalf("%v", err)
	}
}
