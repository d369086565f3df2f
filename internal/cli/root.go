// Package cli provides the Cobra command structure for golst.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	chdir      string
	configPath string
	debug      bool
	color      string
	dryRun     bool
	diff       bool
	jobs       int
}

// NewRootCommand creates the root golst command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "golst",
		Short: "Lossless source tree rewriting for Java",
		Long: `golst parses source files into lossless semantic trees, edits them and
prints them back. Everything an edit does not touch, down to the last comment
and blank, comes out exactly as it went in.

Edits are applied atomically per file: a file is either rewritten with every
edit applied and the edited regions re-formatted, or left alone. Use
--dry-run and --diff to review changes before writing them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.chdir, "chdir", "C", "", "run as if golst was started in this directory")
	pf.StringVar(&flags.configPath, "config", "", "path to config file")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	pf.StringVar(&flags.color, "color", "auto", "colorize output: auto, always, never")
	pf.BoolVar(&flags.dryRun, "dry-run", false, "compute rewrites without writing files")
	pf.BoolVar(&flags.diff, "diff", false, "print a unified diff for every rewritten file")
	pf.IntVar(&flags.jobs, "jobs", 0, "number of files processed at once (0 = auto)")

	rootCmd.AddCommand(newPrintCommand(flags))
	rootCmd.AddCommand(newFormatCommand(flags))
	rootCmd.AddCommand(newChangeTypeCommand(flags))
	rootCmd.AddCommand(newRenameCommand(flags))
	rootCmd.AddCommand(newDeleteCommand(flags))
	rootCmd.AddCommand(newStylesCommand(flags))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	helpFormatter := NewHelpFormatter(flags.color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
