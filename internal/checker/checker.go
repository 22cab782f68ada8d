// Package checker runs the per-file pipeline (candidate filter, read, syntax
// classification, layout check) over a batch of paths.
package checker

import (
	"context"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/NielsdaWheelz/jsoncheck/internal/errors"
	"github.com/NielsdaWheelz/jsoncheck/internal/format"
	"github.com/NielsdaWheelz/jsoncheck/internal/fs"
	"github.com/NielsdaWheelz/jsoncheck/internal/syntax"
)

// Issue is the per-file classification.
type Issue int

const (
	Clean Issue = iota
	SyntaxIssue
	EOFIssue
	FormatIssue
)

// String returns the tag printed in the report.
func (i Issue) String() string {
	switch i {
	case Clean:
		return "Clean"
	case SyntaxIssue:
		return "SyntaxError"
	case EOFIssue:
		return "EoFError"
	case FormatIssue:
		return "WrongFormat"
	default:
		return "Unknown"
	}
}

// IsJSON reports whether the issue is a JSON encoding (syntax) problem.
func (i Issue) IsJSON() bool {
	return i == SyntaxIssue || i == EOFIssue
}

// Result is the outcome for one candidate file.
type Result struct {
	Path  string
	Issue Issue

	// Detail explains a FormatIssue, e.g. "line 2: indentation 2, want 4".
	Detail string
}

// Options configures a Checker.
type Options struct {
	Filter  fs.Filter
	Format  format.Options
	Workers int
}

// Checker classifies files. It holds no per-file state and is safe for
// concurrent use.
type Checker struct {
	FS     fs.FS
	Opts   Options
	Logger *zap.Logger

	classify func(contents []byte) (syntax.Outcome, error)
	validate func(text string, opts format.Options) error
}

// New creates a checker. A nil logger discards diagnostics.
func New(filesystem fs.FS, opts Options, logger *zap.Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{
		FS:       filesystem,
		Opts:     opts,
		Logger:   logger,
		classify: syntax.Classify,
		validate: format.Validate,
	}
}

// CheckContents classifies in-memory contents. The layout grammar only runs
// when the contents are valid JSON. The error is non-nil only for
// E_UNRECOVERABLE parser failures.
func (c *Checker) CheckContents(contents []byte) (Issue, string, error) {
	outcome, err := c.classify(contents)
	if err != nil {
		return Clean, "", err
	}
	switch outcome {
	case syntax.SyntaxError:
		return SyntaxIssue, "", nil
	case syntax.UnexpectedEnd:
		return EOFIssue, "", nil
	}

	if err := c.validate(string(contents), c.Opts.Format); err != nil {
		return FormatIssue, err.Error(), nil
	}
	return Clean, "", nil
}

// CheckFile checks one path. ok is false when the path is not a candidate and
// was skipped. Read failures, non-UTF-8 contents and unrecoverable parser
// failures are returned as errors.
func (c *Checker) CheckFile(path string) (res Result, ok bool, err error) {
	if !fs.IsCandidate(c.FS, path, c.Opts.Filter) {
		c.Logger.Debug("skipping path", zap.String("path", path))
		return Result{}, false, nil
	}

	data, err := c.FS.ReadFile(path)
	if err != nil {
		return Result{}, true, errors.WrapWithDetails(errors.EReadFailed, "failed to read file", err,
			map[string]string{"op": "read", "path": path})
	}
	if !utf8.Valid(data) {
		return Result{}, true, errors.NewWithDetails(errors.EReadFailed, "file is not valid UTF-8 text",
			map[string]string{"op": "read", "path": path})
	}

	issue, detail, err := c.CheckContents(data)
	if err != nil {
		code, msg, cause := errors.EUnrecoverable, "json parser failed", err
		if ce, ok := errors.AsCheckError(err); ok {
			code, msg, cause = ce.Code, ce.Msg, ce.Cause
		}
		return Result{}, true, errors.WrapWithDetails(code, msg, cause,
			map[string]string{"op": "parse", "path": path})
	}

	c.Logger.Debug("checked file",
		zap.String("path", path),
		zap.Stringer("issue", issue),
		zap.String("detail", detail))
	return Result{Path: path, Issue: issue, Detail: detail}, true, nil
}

// Run checks paths with at most Opts.Workers files in flight. Results keep the
// input order. The first fatal error cancels the remaining work and is returned.
func (c *Checker) Run(ctx context.Context, paths []string) (*Summary, error) {
	results := make([]Result, len(paths))
	checked := make([]bool, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.Opts.Workers, 1))
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, ok, err := c.CheckFile(path)
			if err != nil {
				return err
			}
			results[i], checked[i] = res, ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		c.Logger.Debug("aborting batch", zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s := &Summary{}
	for i, res := range results {
		if checked[i] {
			s.add(res)
		}
	}
	return s, nil
}
