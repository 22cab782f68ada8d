// Package errors provides error formatting for jsoncheck CLI output.
package errors

import (
	"io"
	"sort"
	"strings"
)

// PrintOptions controls error output formatting.
type PrintOptions struct {
	// Verbose adds the cause chain and any details outside the default key list.
	Verbose bool
}

// Context keys printed in default mode, in order.
var defaultContextKeys = []string{
	"op",
	"path",
	"config",
	"issues",
}

const (
	maxValueLen      = 256 // Max chars for single-line context values
	maxExtraValueLen = 128 // Max chars for extra section values
)

// Format formats an error for display without I/O.
func Format(err error, opts PrintOptions) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	ce, ok := AsCheckError(err)
	if !ok {
		sb.WriteString(err.Error())
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString("error_code: ")
	sb.WriteString(string(ce.Code))
	sb.WriteString("\n")
	sb.WriteString(ce.Msg)
	sb.WriteString("\n")

	printed := make(map[string]bool)
	var context strings.Builder
	for _, key := range defaultContextKeys {
		val := ce.Details[key]
		if val == "" {
			continue
		}
		printed[key] = true
		context.WriteString(key)
		context.WriteString(": ")
		context.WriteString(sanitizeValue(val, maxValueLen))
		context.WriteString("\n")
	}
	if opts.Verbose && ce.Cause != nil {
		context.WriteString("cause: ")
		context.WriteString(sanitizeValue(ce.Cause.Error(), maxValueLen))
		context.WriteString("\n")
	}
	if context.Len() > 0 {
		sb.WriteString("\n")
		sb.WriteString(context.String())
	}

	if opts.Verbose {
		var extraKeys []string
		for key, val := range ce.Details {
			if !printed[key] && key != "hint" && val != "" {
				extraKeys = append(extraKeys, key)
			}
		}
		if len(extraKeys) > 0 {
			sort.Strings(extraKeys)
			sb.WriteString("\nextra:\n")
			for _, key := range extraKeys {
				sb.WriteString("  ")
				sb.WriteString(key)
				sb.WriteString(": ")
				sb.WriteString(sanitizeValue(ce.Details[key], maxExtraValueLen))
				sb.WriteString("\n")
			}
		}
	}

	if hint := ce.Details["hint"]; hint != "" {
		sb.WriteString("\n")
		sb.WriteString("hint: ")
		sb.WriteString(hint)
		sb.WriteString("\n")
	}

	return sb.String()
}

// PrintWithOptions writes a formatted error to w with the given options.
func PrintWithOptions(w io.Writer, err error, opts PrintOptions) {
	if err == nil {
		return
	}
	_, _ = io.WriteString(w, Format(err, opts))
}

// sanitizeValue flattens a value onto one line:
// - Trims trailing whitespace first
// - Normalizes CRLF to LF
// - Replaces newlines with literal \n
// - Truncates to maxLen chars
func sanitizeValue(val string, maxLen int) string {
	val = strings.TrimRight(val, " \t\r\n")
	val = strings.ReplaceAll(val, "\r\n", "\n")
	val = strings.ReplaceAll(val, "\n", "\\n")
	if len(val) > maxLen {
		return val[:maxLen] + "…"
	}
	return val
}
