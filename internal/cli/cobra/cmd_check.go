package cobra

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/jsoncheck/internal/commands"
	"github.com/NielsdaWheelz/jsoncheck/internal/errors"
	"github.com/NielsdaWheelz/jsoncheck/internal/fs"
	"github.com/NielsdaWheelz/jsoncheck/internal/logging"
	"github.com/NielsdaWheelz/jsoncheck/internal/tty"
)

func newCheckCmd() *cobra.Command {
	var workers int
	var strict bool
	var rawStrings bool
	var noGroup bool

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check JSON files for syntax errors and canonical layout",
		Long: `Check JSON files for syntax errors and canonical layout.

Arguments:
  path    files to check; when omitted, paths are read from stdin, one per line

Paths that do not exist, are not regular files, or do not have a configured
extension are skipped silently. Each remaining file is reported as one of:
  SyntaxError   not valid JSON
  EoFError      input ends before the JSON value is complete
  WrongFormat   valid JSON, but not 4-space indented with one token per line

Exit codes:
  0    no issues
  65   at least one file has an issue
  1    a file could not be read or the parser failed; the batch is aborted
  2    usage error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(errors.EInternal, "failed to get working directory", err)
			}

			if len(args) == 0 && tty.IsTerminal(cmd.InOrStdin()) {
				return errors.NewWithDetails(errors.EUsage, "no paths given", map[string]string{
					"hint": "pass paths as arguments or pipe them on stdin, e.g. git diff --name-only | jsoncheck check",
				})
			}

			opts := commands.CheckOpts{
				Paths:      args,
				ConfigPath: globalOpts.Config,
				Verbose:    globalOpts.Verbose,
				NoGroup:    noGroup,
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers = &workers
			}
			if cmd.Flags().Changed("strict") {
				opts.Strict = &strict
			}
			if cmd.Flags().Changed("raw-strings") {
				opts.RawStrings = &rawStrings
			}

			logger := logging.New(cmd.ErrOrStderr(), globalOpts.Verbose)
			defer func() { _ = logger.Sync() }()

			// Cancel the batch on SIGINT
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			return commands.Check(ctx, fs.NewRealFS(), cwd, opts, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "files checked in parallel (default: config value or number of CPUs)")
	cmd.Flags().BoolVar(&strict, "strict", false, "also require matching bracket kinds, all structures closed, and keys only on object members")
	cmd.Flags().BoolVar(&rawStrings, "raw-strings", false, "treat every '\"' as a string terminator (legacy behavior)")
	cmd.Flags().BoolVar(&noGroup, "no-group", false, "omit the ::group:: CI log markers")

	return cmd
}
