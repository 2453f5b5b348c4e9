package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// appFs is where theme files are read and written. Tests swap in a MemMapFs.
var appFs afero.Fs = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:   "surpluslink-cli",
	Short: "SurplusLink CLI tool",
	Long: `SurplusLink CLI inspects and operates a SurplusLink installation.

Available commands:
  version          Print the CLI version
  routes           List the HTTP routes the server registers
  notifications    Show the mock notification table
  theme            Show or toggle the stored theme preference

Use "surpluslink-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
