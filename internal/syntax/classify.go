// Package syntax decides whether file contents are syntactically valid JSON
// and, when they are not, what kind of failure it is.
package syntax

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/NielsdaWheelz/jsoncheck/internal/errors"
)

// Outcome is the result of classifying a document.
type Outcome int

const (
	// Valid means the contents parse as exactly one JSON value.
	Valid Outcome = iota
	// SyntaxError means a malformed token or structure, or trailing data.
	SyntaxError
	// UnexpectedEnd means the input ended before the value was complete.
	UnexpectedEnd
	// Unrecoverable means the parser failed for a reason unrelated to the
	// contents. It is returned together with an E_UNRECOVERABLE error.
	Unrecoverable
)

func (o Outcome) String() string {
	switch o {
	case Valid:
		return "Valid"
	case SyntaxError:
		return "SyntaxError"
	case UnexpectedEnd:
		return "UnexpectedEnd"
	case Unrecoverable:
		return "Unrecoverable"
	default:
		return "Unknown"
	}
}

// Classify parses contents into a generic JSON value.
func Classify(contents []byte) (Outcome, error) {
	return classifyReader(bytes.NewReader(contents))
}

func classifyReader(r io.Reader) (Outcome, error) {
	dec := json.NewDecoder(r)

	var v any
	if err := dec.Decode(&v); err != nil {
		return classifyErr(err)
	}

	// Only whitespace may follow the value.
	var trailing any
	switch err := dec.Decode(&trailing); {
	case err == io.EOF:
		return Valid, nil
	case err == nil, isContentErr(err):
		return SyntaxError, nil
	default:
		return Unrecoverable, errors.Wrap(errors.EUnrecoverable, "json parser failed", err)
	}
}

func classifyErr(err error) (Outcome, error) {
	if err == io.EOF || stderrors.Is(err, io.ErrUnexpectedEOF) {
		return UnexpectedEnd, nil
	}
	if isContentErr(err) {
		return SyntaxError, nil
	}
	return Unrecoverable, errors.Wrap(errors.EUnrecoverable, "json parser failed", err)
}

// isContentErr reports whether err describes the document rather than the reader.
// Out of range numbers surface as *json.UnmarshalTypeError when decoding into any.
func isContentErr(err error) bool {
	var se *json.SyntaxError
	var te *json.UnmarshalTypeError
	return stderrors.As(err, &se) || stderrors.As(err, &te) || stderrors.Is(err, io.ErrUnexpectedEOF)
}
