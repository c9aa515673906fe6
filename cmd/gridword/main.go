package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridword/fixtures"
	"github.com/katalvlaran/gridword/wordsearch"
)

var (
	fixturesPath string
	modeName     string
	verbose      bool
	noColor      bool
)

var logger = zap.NewNop()

var mainCommand = &cobra.Command{
	Use:              "gridword",
	Short:            "Trace strings through character grids",
	PersistentPreRun: preRun,
	SilenceUsage:     true,
}

func init() {
	mainCommand.PersistentFlags().StringVarP(&fixturesPath, "fixtures", "f", "", "load matrices and cases from a YAML file instead of the built-in catalog")
	mainCommand.PersistentFlags().StringVarP(&modeName, "mode", "m", "greedy", "search mode: greedy or exhaustive")
	mainCommand.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every placement attempt and step")
	mainCommand.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		logger.Fatal("command failed", zap.Error(err))
	}
}

func preRun(cmd *cobra.Command, args []string) {
	logger = newLogger(os.Stderr, verbose)
}

func loadCatalog() (*fixtures.Catalog, error) {
	if fixturesPath != "" {
		return fixtures.LoadFile(fixturesPath)
	}
	return fixtures.Default()
}

func searchMode() (wordsearch.Mode, error) {
	return wordsearch.ParseMode(modeName)
}
