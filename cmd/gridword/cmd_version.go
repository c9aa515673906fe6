package main

import (
	"os"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

var commandVersion = &cobra.Command{
	Use:   "version",
	Short: "Print current version of gridword",
	Run:   printVersion,
	Args:  cobra.NoArgs,
}

var nameOnly bool

func init() {
	commandVersion.Flags().BoolVarP(&nameOnly, "name", "n", false, "print version name only")
	mainCommand.AddCommand(commandVersion)
}

func printVersion(cmd *cobra.Command, args []string) {
	var version string
	if !nameOnly {
		version = "gridword "
	}
	version += Version
	if !nameOnly {
		version += " (" + runtime.Version() + ", " + runtime.GOOS + ", " + runtime.GOARCH + ")"
	}
	version += "\n"
	os.Stdout.WriteString(version)
}
