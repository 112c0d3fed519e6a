package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fontcheck/audit"
	"github.com/npillmayer/fontcheck/check"
	"github.com/pterm/pterm"
	"github.com/thatisuday/commando"
)

func runInspectCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	cfg := audit.ConfigFrom(configure(flags))
	auditor, err := audit.Open(cfg, audit.Environment{Sink: console{}})
	if err != nil {
		fatalf("%v", err)
	}
	repl, err := readline.New("katex > ")
	if err != nil {
		fatalf("%v", err)
	}
	defer repl.Close()
	intp := &Intp{repl: repl, auditor: auditor}
	pterm.Info.Println("Query with '<font> <code-point>', quit with <ctrl>D")
	intp.REPL()
}

// Intp is our interpreter object
type Intp struct {
	repl    *readline.Instance
	auditor *audit.Auditor
	font    string // current font
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is the operation of a command line.
type Op int

const (
	QUIT Op = iota
	HELP
	FONTS
	FONT
	QUERY
)

// Command is a parsed command line.
type Command struct {
	op   Op
	font string
	code rune
}

var opMap = map[string]Op{
	"quit":  QUIT,
	"exit":  QUIT,
	"help":  HELP,
	"?":     HELP,
	"fonts": FONTS,
	"font":  FONT,
}

// parseCommand understands
//
//	quit | help | fonts
//	font <font>
//	[<font>] <code-point>
func parseCommand(line string) (Command, error) {
	words := strings.Fields(line)
	if op, ok := opMap[strings.ToLower(words[0])]; ok {
		switch {
		case op == FONT && len(words) == 2:
			return Command{op: op, font: words[1]}, nil
		case op != FONT && len(words) == 1:
			return Command{op: op}, nil
		}
		return Command{}, fmt.Errorf("wrong number of arguments for %s", words[0])
	}
	var cmd Command
	switch len(words) {
	case 1:
	case 2:
		cmd.font, words = words[0], words[1:]
	default:
		return Command{}, errors.New("expected [<font>] <code-point>")
	}
	code, err := parseCodepointToken(words[0])
	if err != nil {
		return Command{}, err
	}
	cmd.op, cmd.code = QUERY, code
	return cmd, nil
}

// parseCodepointToken reads "U+2200" or "0x2200" as hexadecimal, a single
// character as itself and anything else as a decimal number.
func parseCodepointToken(token string) (rune, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, errors.New("empty codepoint token")
	}
	num, base := token, 10
	switch {
	case strings.HasPrefix(num, "U+"), strings.HasPrefix(num, "u+"):
		num, base = num[2:], 16
	case strings.HasPrefix(num, "0x"), strings.HasPrefix(num, "0X"):
		num, base = num[2:], 16
	case utf8.RuneCountInString(num) == 1:
		r, _ := utf8.DecodeRuneInString(num)
		return r, nil
	}
	u, err := strconv.ParseUint(num, base, 32)
	if err != nil || u > utf8.MaxRune {
		return 0, fmt.Errorf("invalid codepoint %q", token)
	}
	return rune(u), nil
}

func (intp *Intp) execute(cmd Command) (quit bool, err error) {
	switch cmd.op {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case FONTS:
		fonts, err := intp.auditor.Fonts()
		if err != nil {
			return false, err
		}
		pterm.Println(strings.Join(fonts, "\n"))
	case FONT:
		intp.font = cmd.font
		intp.repl.SetPrompt(fmt.Sprintf("katex %s > ", cmd.font))
	case QUERY:
		font := cmd.font
		if font == "" {
			font = intp.font
		}
		if font == "" {
			return false, errors.New("no font selected")
		}
		return false, intp.query(font, cmd.code)
	}
	return false, nil
}

func (intp *Intp) query(font string, code rune) error {
	tracer().Debugf("inspecting %s of %s", check.U(code), font)
	res, err := intp.auditor.Inspect(font, code)
	if err != nil {
		return err
	}
	row := res.Row
	data := pterm.TableData{
		{"Code", check.U(code)},
		{"TTF names", strings.Join(row.Names, ", ")},
		{"Display", row.Display},
		{"PFB name", row.LegacyName},
		{"TeX font", row.LegacyFont},
		{"Unicode name", row.UnicodeName},
		{"Status", res.Status.String()},
	}
	if corr, ok := intp.auditor.Resolve(font, code); ok {
		data = append(data, []string{"Derived from", corr.String()})
	}
	if err := pterm.DefaultTable.WithData(data).Render(); err != nil {
		return err
	}
	for _, f := range res.Findings {
		pterm.Warning.Println(f.Message)
	}
	return nil
}

func help() {
	pterm.Println(`
	fonts                      list the fonts of the correspondence mapping
	font <font>                select a font, e.g. font Main-Regular
	[<font>] <code-point>      check a code-point, e.g. Main-Regular U+2200
	                           code-points are U+hex, 0xhex, a character or decimal
	quit                       leave the shell
	`)
}
