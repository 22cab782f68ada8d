// Command jsoncheck is a CI gate for JSON syntax and canonical layout.
package main

import (
	"os"

	"github.com/NielsdaWheelz/jsoncheck/internal/cli/cobra"
	"github.com/NielsdaWheelz/jsoncheck/internal/errors"
)

func main() {
	err := cobra.Execute(os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		opts := errors.PrintOptions{
			Verbose: cobra.GetGlobalOpts().Verbose,
		}
		errors.PrintWithOptions(os.Stderr, err, opts)
		os.Exit(errors.ExitCode(err))
	}
}
