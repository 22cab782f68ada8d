// Package format checks that syntactically valid JSON text is laid out in the
// canonical pretty-printed form: 4 spaces of indentation per nesting level and
// one structural token per line.
package format

import "fmt"

// IndentWidth is the number of spaces per nesting level.
const IndentWidth = 4

// Token is the structural classification of a parsed line.
type Token int

const (
	ObjectOpen Token = iota
	ObjectClose
	ArrayOpen
	ArrayClose
	ScalarValue
)

func (t Token) String() string {
	switch t {
	case ObjectOpen:
		return "ObjectOpen"
	case ObjectClose:
		return "ObjectClose"
	case ArrayOpen:
		return "ArrayOpen"
	case ArrayClose:
		return "ArrayClose"
	case ScalarValue:
		return "ScalarValue"
	default:
		return fmt.Sprintf("Token(%d)", int(t))
	}
}

// isOpen reports whether t starts a nested structure.
func (t Token) isOpen() bool {
	return t == ObjectOpen || t == ArrayOpen
}

// closer returns the closing token matching an open token.
func (t Token) closer() Token {
	if t == ArrayOpen {
		return ArrayClose
	}
	return ObjectClose
}

// Line is one parsed line of a document.
type Line struct {
	// Number is the 1-based line number in the document.
	Number int

	// Indent is the count of leading space characters.
	Indent int

	// Token is the structural content of the line.
	Token Token

	// Key is the raw (unescaped) member key; only set when Keyed is true.
	Key   string
	Keyed bool
}

// LayoutError describes the first place a document departs from the canonical layout.
type LayoutError struct {
	Line   int
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}
