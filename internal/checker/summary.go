package checker

// Summary aggregates the results of a batch.
type Summary struct {
	// Results holds one entry per candidate file, clean ones included, in input order.
	Results []Result

	Checked      int
	JSONErrors   int
	FormatErrors int
}

// Issues returns the combined issue count.
func (s *Summary) Issues() int {
	return s.JSONErrors + s.FormatErrors
}

// WithIssues returns the results that carry an issue.
func (s *Summary) WithIssues() []Result {
	var out []Result
	for _, r := range s.Results {
		if r.Issue != Clean {
			out = append(out, r)
		}
	}
	return out
}

func (s *Summary) add(r Result) {
	s.Results = append(s.Results, r)
	s.Checked++
	switch {
	case r.Issue.IsJSON():
		s.JSONErrors++
	case r.Issue == FormatIssue:
		s.FormatErrors++
	}
}
