// Package render writes the human and CI facing check report.
package render

import (
	"fmt"
	"io"

	"github.com/NielsdaWheelz/jsoncheck/internal/checker"
)

// GitHub Actions log grouping markers.
const (
	GroupStart = "::group::errors_and_warnings"
	GroupEnd   = "::endgroup::"
)

// ReportOptions controls report output.
type ReportOptions struct {
	// Verbose appends the layout failure detail to WrongFormat lines.
	Verbose bool

	// NoGroup omits the CI group markers.
	NoGroup bool
}

// WriteReport writes one line per file with an issue, wrapped in group
// markers, followed by the totals when there is at least one issue:
//
//	::group::errors_and_warnings
//	"a.json" SyntaxError
//	"b.json" WrongFormat
//	::endgroup::
//	Found
//	     1 JSON encoding errors and
//	     1 format errors.
func WriteReport(w io.Writer, s *checker.Summary, opts ReportOptions) error {
	if !opts.NoGroup {
		if _, err := fmt.Fprintln(w, GroupStart); err != nil {
			return err
		}
	}

	for _, r := range s.WithIssues() {
		line := fmt.Sprintf("%q %s", r.Path, r.Issue)
		if opts.Verbose && r.Detail != "" {
			line += " (" + r.Detail + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	if !opts.NoGroup {
		if _, err := fmt.Fprintln(w, GroupEnd); err != nil {
			return err
		}
	}

	if s.Issues() == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "Found\n     %d JSON encoding errors and\n     %d format errors.\n",
		s.JSONErrors, s.FormatErrors)
	return err
}
