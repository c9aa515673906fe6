package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/katalvlaran/gridword/fixtures"
)

type printer struct {
	w  io.Writer
	au aurora.Aurora
}

func newPrinter(w io.Writer) *printer {
	return &printer{w: w, au: aurora.NewAurora(!noColor)}
}

func (p *printer) line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) rule(ch string) {
	p.line("%s", strings.Repeat(ch, 60))
}

func (p *printer) matrix(title string, cells [][]rune) {
	p.line("\n%s:", title)
	if len(cells) == 0 || len(cells[0]) == 0 {
		p.line("  (empty)")
		return
	}
	for _, row := range cells {
		parts := make([]string, len(row))
		for i, ch := range row {
			parts[i] = string(ch)
		}
		p.line("  %s", strings.Join(parts, " "))
	}
}

func (p *printer) result(r fixtures.Result) {
	status := p.au.Green("PASS").String()
	if !r.Passed() {
		status = p.au.Red("FAIL").String()
	}
	p.line("%s: %s", status, r.Case.Description)
	p.line("  Search: %q in %s (%s)", r.Case.Target, r.Case.Matrix, r.Mode)
	p.line("  Expected: %t, Got: %t", r.Case.Want, r.Found)
	if r.Found && len(r.Path) > 0 {
		p.line("  Path: %s", r.Path)
	}
	if r.Invalid != nil {
		p.line("  Invalid path: %v", r.Invalid)
	}
	p.line("")
}
