package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var commandShow = &cobra.Command{
	Use:   "show <matrix>",
	Short: "Print a catalog matrix",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := showMatrix(os.Stdout, args[0]); err != nil {
			logger.Fatal("show", zap.Error(err))
		}
	},
}

var commandList = &cobra.Command{
	Use:   "list",
	Short: "List catalog matrix names",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := listMatrices(os.Stdout); err != nil {
			logger.Fatal("list", zap.Error(err))
		}
	},
}

func init() {
	mainCommand.AddCommand(commandShow)
	mainCommand.AddCommand(commandList)
}

func showMatrix(w io.Writer, name string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	cells, err := cat.Matrix(name)
	if err != nil {
		return err
	}
	newPrinter(w).matrix(name, cells)
	return nil
}

func listMatrices(w io.Writer) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	p := newPrinter(w)
	for _, name := range cat.Names() {
		p.line("%s", name)
	}
	return nil
}
