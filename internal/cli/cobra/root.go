// Package cobra provides the Cobra-based CLI command tree for jsoncheck.
package cobra

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/jsoncheck/internal/version"
)

// GlobalOpts holds global options parsed before subcommand dispatch.
type GlobalOpts struct {
	Verbose bool
	Config  string
}

// globalOpts stores the parsed global options for access by subcommands.
var globalOpts GlobalOpts

// GetGlobalOpts returns the parsed global options.
func GetGlobalOpts() GlobalOpts {
	return globalOpts
}

// NewRootCmd creates the root cobra command for jsoncheck.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jsoncheck",
		Short: "CI gate for JSON syntax and canonical layout",
		Long: `jsoncheck - CI gate for JSON syntax and canonical layout

jsoncheck reads candidate paths (arguments, or one per line on stdin), skips
anything that is not an existing .json file, and reports every file that is
not valid JSON or not laid out with 4-space indentation and one token per line.

Typical use:
  git diff --name-only origin/main | jsoncheck check`,
		Version:       version.FullVersion(),
		SilenceErrors: true, // We handle error printing in main.go
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().BoolVar(&globalOpts.Verbose, "verbose", false, "log per-file decisions and show layout failure details")
	rootCmd.PersistentFlags().StringVar(&globalOpts.Config, "config", "", "config file (default: ./.jsoncheck.yaml if present)")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newCheckCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command with the given streams.
// This is the main entry point from main.go.
func Execute(stdin io.Reader, stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}
