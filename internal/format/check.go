package format

import (
	"fmt"
	"strings"
)

// Options adjusts how strictly a document is checked. The zero value checks
// indentation against nesting depth only and honors backslash escapes.
type Options struct {
	// RawStrings disables escape handling inside strings: any '"' ends the
	// string, so a value containing \" fails the layout check.
	RawStrings bool

	// Strict also requires every bracket to be closed by the matching kind,
	// the nesting depth to be zero at the end of the document, and keys on
	// exactly the lines directly inside an object.
	Strict bool
}

// Check reports whether text is in the canonical layout using default options.
// text must already be syntactically valid JSON.
func Check(text string) bool {
	return Validate(text, Options{}) == nil
}

// Validate parses text line by line and checks the indentation of every line
// against its nesting depth. It returns a *LayoutError on the first failure.
func Validate(text string, opts Options) error {
	lines, err := Parse(text, opts)
	if err != nil {
		return err
	}
	return checkNesting(lines, opts.Strict)
}

// Parse splits text into lines and classifies each one. The whole input must
// be consumed; an unrecognized line stops the parse.
func Parse(text string, opts Options) ([]Line, error) {
	g := grammar{rawStrings: opts.RawStrings}

	var lines []Line
	rest := text
	for n := 1; rest != ""; n++ {
		l, next, ok := g.line(rest)
		if !ok {
			return nil, &LayoutError{Line: n, Reason: fmt.Sprintf("unrecognized line %q", firstLine(rest))}
		}
		l.Number = n
		lines = append(lines, l)
		rest = next
	}
	if len(lines) == 0 {
		return nil, &LayoutError{Line: 1, Reason: "empty document"}
	}
	return lines, nil
}

func checkNesting(lines []Line, strict bool) error {
	depth := 0
	var open []Token
	for _, l := range lines {
		switch {
		case l.Token.isOpen():
			if err := expectIndent(l, depth); err != nil {
				return err
			}
			if strict {
				if err := expectKey(l, open); err != nil {
					return err
				}
			}
			depth++
			open = append(open, l.Token)
		case l.Token == ObjectClose || l.Token == ArrayClose:
			depth--
			if depth < 0 {
				return &LayoutError{Line: l.Number, Reason: "closing bracket without an open structure"}
			}
			if err := expectIndent(l, depth); err != nil {
				return err
			}
			opener := open[len(open)-1]
			open = open[:len(open)-1]
			if strict && opener.closer() != l.Token {
				return &LayoutError{Line: l.Number, Reason: fmt.Sprintf("%s closes %s", l.Token, opener)}
			}
		default:
			if err := expectIndent(l, depth); err != nil {
				return err
			}
			if strict {
				if err := expectKey(l, open); err != nil {
					return err
				}
			}
		}
	}
	if strict && depth != 0 {
		return &LayoutError{Line: lines[len(lines)-1].Number, Reason: fmt.Sprintf("%d structure(s) left open", depth)}
	}
	return nil
}

func expectIndent(l Line, depth int) error {
	if want := IndentWidth * depth; l.Indent != want {
		return &LayoutError{Line: l.Number, Reason: fmt.Sprintf("indentation %d, want %d", l.Indent, want)}
	}
	return nil
}

// expectKey checks a value line against its enclosing structure: object
// members carry a key, array elements and the top-level value do not.
func expectKey(l Line, open []Token) error {
	inObject := len(open) > 0 && open[len(open)-1] == ObjectOpen
	switch {
	case inObject && !l.Keyed:
		return &LayoutError{Line: l.Number, Reason: "object member without a key"}
	case !inObject && l.Keyed:
		return &LayoutError{Line: l.Number, Reason: fmt.Sprintf("key %q outside an object", l.Key)}
	}
	return nil
}

const maxQuoted = 60

func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	if len(s) > maxQuoted {
		s = s[:maxQuoted] + "…"
	}
	return s
}
