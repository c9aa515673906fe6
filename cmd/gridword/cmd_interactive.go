package main

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridword/fixtures"
	"github.com/katalvlaran/gridword/wordsearch"
)

var commandInteractive = &cobra.Command{
	Use:   "interactive",
	Short: "Search matrices from a prompt",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := interactive(os.Stdin, os.Stdout); err != nil {
			logger.Fatal("interactive", zap.Error(err))
		}
	},
}

func init() {
	mainCommand.AddCommand(commandInteractive)
}

// interactive reads commands from r until "quit" or EOF. The mode command
// only affects the current session.
//
//	show <matrix>
//	list
//	mode greedy|exhaustive
//	<matrix> <target>
func interactive(r io.Reader, w io.Writer) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	mode, err := searchMode()
	if err != nil {
		return err
	}
	p := newPrinter(w)
	p.line("\nINTERACTIVE MODE")
	p.rule("-")
	p.line("Available matrices: %s", strings.Join(cat.Names(), ", "))
	p.line("Type 'quit' to exit, 'show <matrix>' to display a matrix, 'mode <name>' to switch search mode")

	scanner := bufio.NewScanner(r)
	for {
		p.line("\nEnter command:")
		if !scanner.Scan() {
			return scanner.Err()
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch cmd := strings.ToLower(fields[0]); {
		case cmd == "quit" || cmd == "exit":
			return nil
		case cmd == "list" && len(fields) == 1:
			for _, name := range cat.Names() {
				p.line("  %s", name)
			}
		case cmd == "show" && len(fields) == 2:
			cells, err := cat.Matrix(fields[1])
			if err != nil {
				p.line("Matrix %q not found", fields[1])
				continue
			}
			p.matrix(fields[1], cells)
		case cmd == "mode" && len(fields) == 2:
			next, err := wordsearch.ParseMode(fields[1])
			if err != nil {
				p.line("%v", err)
				continue
			}
			mode = next
			p.line("Search mode: %s", mode)
		case len(fields) == 2:
			if _, err := lookupAndSearch(p.w, cat, fields[0], fields[1], mode); err != nil {
				if errors.Is(err, fixtures.ErrUnknownMatrix) {
					p.line("Matrix %q not found", fields[0])
					continue
				}
				return err
			}
		default:
			p.line("Usage: <matrix> <target>")
			p.line("Example: simple ABC")
		}
	}
}

func lookupAndSearch(w io.Writer, cat *fixtures.Catalog, name, target string, mode wordsearch.Mode) (bool, error) {
	cells, err := cat.Matrix(name)
	if err != nil {
		return false, err
	}
	logger.Debug("interactive search", zap.String("matrix", name), zap.String("target", target), zap.Stringer("mode", mode))
	return search(w, name, cells, target, mode)
}
