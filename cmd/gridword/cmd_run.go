package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridword/fixtures"
)

var commandRun = &cobra.Command{
	Use:   "run",
	Short: "Run the sample case tables and print a summary",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		ok, err := runCases(os.Stdout)
		if err != nil {
			logger.Fatal("run cases", zap.Error(err))
		}
		if !ok {
			os.Exit(1)
		}
	},
}

func init() {
	mainCommand.AddCommand(commandRun)
}

// runCases prints every matrix, runs the main and edge tables and reports
// whether all cases passed.
func runCases(w io.Writer) (bool, error) {
	cat, err := loadCatalog()
	if err != nil {
		return false, err
	}
	mode, err := searchMode()
	if err != nil {
		return false, err
	}

	p := newPrinter(w)
	p.rule("=")
	p.line("GRIDWORD CASE RUNNER (%s)", mode)
	p.rule("=")

	p.line("\nSAMPLE MATRICES:")
	p.rule("-")
	for _, name := range cat.Names() {
		cells, err := cat.Matrix(name)
		if err != nil {
			return false, err
		}
		p.matrix(fmt.Sprintf("%s (%dx%d)", name, len(cells), width(cells)), cells)
	}

	var passed, total int
	sections := []struct {
		title string
		table []fixtures.Case
	}{
		{"MAIN TEST CASES:", cat.Cases()},
		{"EDGE CASE TESTS:", cat.EdgeCases()},
	}
	for _, section := range sections {
		p.line("\n%s", section.title)
		p.rule("-")
		for _, tc := range section.table {
			res, err := cat.Run(tc, mode, searchHooks(logger, tc.Target)...)
			if err != nil {
				return false, err
			}
			p.result(res)
			if !res.Passed() {
				logger.Warn("case failed",
					zap.String("matrix", tc.Matrix),
					zap.String("target", tc.Target),
					zap.Bool("want", tc.Want),
					zap.Bool("found", res.Found),
					zap.Error(res.Invalid))
			}
			total++
			if res.Passed() {
				passed++
			}
		}
	}

	p.rule("=")
	p.line("TEST SUMMARY: %d/%d tests passed", passed, total)
	if passed == total {
		p.line("%s", p.au.Green("All tests passed."))
	} else {
		p.line("%s", p.au.Red(fmt.Sprintf("%d tests failed.", total-passed)))
	}
	p.rule("=")
	logger.Info("run finished", zap.Stringer("mode", mode), zap.Int("passed", passed), zap.Int("total", total))

	return passed == total, nil
}

func width(cells [][]rune) int {
	if len(cells) == 0 {
		return 0
	}
	return len(cells[0])
}
