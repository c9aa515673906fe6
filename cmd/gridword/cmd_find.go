package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridword/wordsearch"
)

var commandFindFlagRows []string

var commandFind = &cobra.Command{
	Use:   "find <matrix> <target> | find --rows ABC,DEF <target>",
	Short: "Search one target in a catalog matrix or in rows given on the command line",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var err error
		if len(commandFindFlagRows) > 0 {
			if len(args) != 1 {
				logger.Fatal("find: with --rows pass only the target")
			}
			_, err = findInRows(os.Stdout, commandFindFlagRows, args[0])
		} else {
			if len(args) != 2 {
				logger.Fatal("find: need a matrix name and a target")
			}
			_, err = findInCatalog(os.Stdout, args[0], args[1])
		}
		if err != nil {
			logger.Fatal("find", zap.Error(err))
		}
	},
}

func init() {
	commandFind.Flags().StringSliceVarP(&commandFindFlagRows, "rows", "r", nil, "matrix rows, one string per row")
	mainCommand.AddCommand(commandFind)
}

func findInCatalog(w io.Writer, name, target string) (bool, error) {
	cat, err := loadCatalog()
	if err != nil {
		return false, err
	}
	cells, err := cat.Matrix(name)
	if err != nil {
		return false, err
	}
	mode, err := searchMode()
	if err != nil {
		return false, err
	}
	return search(w, name, cells, target, mode)
}

func findInRows(w io.Writer, rows []string, target string) (bool, error) {
	cells := make([][]rune, len(rows))
	for i, row := range rows {
		cells[i] = []rune(row)
		if len(cells[i]) != len(cells[0]) {
			return false, errors.New("rows must all have the same length")
		}
	}
	mode, err := searchMode()
	if err != nil {
		return false, err
	}
	return search(w, "rows", cells, target, mode)
}

// search prints the matrix, the outcome and, when found, the path.
func search(w io.Writer, title string, cells [][]rune, target string, mode wordsearch.Mode) (bool, error) {
	p := newPrinter(w)
	p.matrix(title, cells)

	opts := append(searchHooks(logger, target), wordsearch.WithMode(mode))
	path, found := wordsearch.Find(cells, target, opts...)
	if !found {
		p.line("\nSearching for %q: %s", target, p.au.Red("Not found"))
		return false, nil
	}
	p.line("\nSearching for %q: %s", target, p.au.Green("Found"))
	p.line("Path: %s", path)

	return true, nil
}
