// Package commands implements jsoncheck CLI commands.
package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"

	"github.com/NielsdaWheelz/jsoncheck/internal/checker"
	"github.com/NielsdaWheelz/jsoncheck/internal/config"
	"github.com/NielsdaWheelz/jsoncheck/internal/errors"
	"github.com/NielsdaWheelz/jsoncheck/internal/format"
	"github.com/NielsdaWheelz/jsoncheck/internal/fs"
	"github.com/NielsdaWheelz/jsoncheck/internal/render"
)

// CheckOpts holds options for the check command.
type CheckOpts struct {
	// Paths to check. When empty, paths are read from stdin, one per line.
	Paths []string

	// ConfigPath is an explicit config file. Empty means .jsoncheck.yaml in
	// the working directory, which may be absent.
	ConfigPath string

	// Overrides from flags; nil means "use the config value".
	Workers    *int
	Strict     *bool
	RawStrings *bool

	Verbose bool
	NoGroup bool
}

// Check classifies every candidate JSON file and writes the report to stdout.
// Returns E_ISSUES_FOUND (exit 65) when any file has an issue.
func Check(ctx context.Context, fsys fs.FS, cwd string, opts CheckOpts, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg, err := loadConfig(fsys, cwd, opts, logger)
	if err != nil {
		return err
	}

	paths := opts.Paths
	if len(paths) == 0 {
		paths, err = readPaths(stdin)
		if err != nil {
			return err
		}
	}
	logger.Debug("checking paths", zap.Int("count", len(paths)), zap.Int("workers", cfg.Workers))

	c := checker.New(fsys, checker.Options{
		Filter:  cfg.Filter(),
		Format:  format.Options{Strict: cfg.Strict, RawStrings: cfg.RawStrings},
		Workers: cfg.Workers,
	}, logger)

	summary, err := c.Run(ctx, paths)
	if err != nil {
		return err
	}

	if err := render.WriteReport(stdout, summary, render.ReportOptions{Verbose: opts.Verbose, NoGroup: opts.NoGroup}); err != nil {
		return errors.Wrap(errors.EInternal, "failed to write report", err)
	}

	if n := summary.Issues(); n > 0 {
		details := map[string]string{"issues": strconv.Itoa(n)}
		if summary.FormatErrors > 0 && !opts.Verbose {
			details["hint"] = "run with --verbose to see the first misformatted line of each WrongFormat file"
		}
		return errors.NewWithDetails(errors.EIssuesFound, fmt.Sprintf("%d of %d file(s) have issues", n, summary.Checked), details)
	}
	return nil
}

func loadConfig(fsys fs.FS, cwd string, opts CheckOpts, logger *zap.Logger) (config.Config, error) {
	path := opts.ConfigPath
	explicit := path != ""
	if !explicit {
		path = filepath.Join(cwd, config.DefaultFileName)
	}

	cfg, found, err := config.Load(fsys, path)
	if err != nil {
		return config.Config{}, err
	}
	if explicit && !found {
		return config.Config{}, errors.NewWithDetails(errors.EInvalidConfig, "config file not found",
			map[string]string{
				"config": path,
				"hint":   "omit --config to use ./" + config.DefaultFileName + " or the built-in defaults",
			})
	}
	logger.Debug("config resolved", zap.String("path", path), zap.Bool("found", found))

	if opts.Workers != nil {
		cfg.Workers = *opts.Workers
	}
	if opts.Strict != nil {
		cfg.Strict = *opts.Strict
	}
	if opts.RawStrings != nil {
		cfg.RawStrings = *opts.RawStrings
	}
	if cfg.Workers < 1 {
		return config.Config{}, errors.NewWithDetails(errors.EUsage, "--workers must be at least 1",
			map[string]string{"hint": "use --workers 1 or more, or omit it to use the config value"})
	}
	return cfg, nil
}

// readPaths reads one path per line. Blank lines are ignored; other
// whitespace is part of the path.
func readPaths(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, nil
	}
	var paths []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapWithDetails(errors.EReadFailed, "failed to read paths from stdin", err,
			map[string]string{"op": "read stdin"})
	}
	return paths, nil
}
