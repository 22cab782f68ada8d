package format

// grammar holds the line recognizers. Every recognizer consumes exactly one
// line, including the terminator it owns, and never reads past it.
type grammar struct {
	rawStrings bool
}

type lineParser func(in string) (Line, string, bool)

// line tries each line shape in order; the first full match wins.
func (g grammar) line(in string) (Line, string, bool) {
	for _, p := range []lineParser{g.openLine, g.closeLine, g.memberLine} {
		if l, rest, ok := p(in); ok {
			return l, rest, true
		}
	}
	return Line{}, in, false
}

// openLine := Indentation [MemberKey] ('{' | '[') LineEnding
func (g grammar) openLine(in string) (Line, string, bool) {
	indent, rest := indentation(in)
	key, rest, keyed := g.memberKey(rest)

	var tok Token
	switch {
	case len(rest) > 0 && rest[0] == '{':
		tok = ObjectOpen
	case len(rest) > 0 && rest[0] == '[':
		tok = ArrayOpen
	default:
		return Line{}, in, false
	}

	rest, ok := lineEnding(rest[1:])
	if !ok {
		return Line{}, in, false
	}
	return Line{Indent: indent, Token: tok, Key: key, Keyed: keyed}, rest, true
}

// closeLine := Indentation ('}' | ']') ([","] LineEnding | EndOfInput)
func (g grammar) closeLine(in string) (Line, string, bool) {
	indent, rest := indentation(in)

	var tok Token
	switch {
	case len(rest) > 0 && rest[0] == '}':
		tok = ObjectClose
	case len(rest) > 0 && rest[0] == ']':
		tok = ArrayClose
	default:
		return Line{}, in, false
	}

	rest, ok := valueEnd(rest[1:])
	if !ok {
		return Line{}, in, false
	}
	return Line{Indent: indent, Token: tok}, rest, true
}

// memberLine := Indentation [MemberKey] ScalarValue ([","] LineEnding | EndOfInput)
//
// The key is optional so bare array elements and top-level scalars parse too.
func (g grammar) memberLine(in string) (Line, string, bool) {
	indent, rest := indentation(in)
	key, rest, keyed := g.memberKey(rest)

	rest, ok := g.scalar(rest)
	if !ok {
		return Line{}, in, false
	}
	rest, ok = valueEnd(rest)
	if !ok {
		return Line{}, in, false
	}
	return Line{Indent: indent, Token: ScalarValue, Key: key, Keyed: keyed}, rest, true
}

// memberKey := String ": "
func (g grammar) memberKey(in string) (string, string, bool) {
	key, rest, ok := lexString(in, g.rawStrings)
	if !ok {
		return "", in, false
	}
	rest, ok = lexLiteral(rest, ": ")
	if !ok {
		return "", in, false
	}
	return key, rest, true
}

// scalar := String | Number | null | true | false | {} | []
//
// Alternatives are tried in order and the first that recognizes a lexeme is
// taken; a later mismatch at the line end does not fall back to the others.
func (g grammar) scalar(in string) (string, bool) {
	if _, rest, ok := lexString(in, g.rawStrings); ok {
		return rest, true
	}
	if rest, ok := lexNumber(in); ok {
		return rest, true
	}
	for _, lit := range []string{"null", "true", "false", "{}", "[]"} {
		if rest, ok := lexLiteral(in, lit); ok {
			return rest, true
		}
	}
	return in, false
}

// valueEnd accepts an optional trailing comma followed by a line ending, or the
// end of input directly after the value.
func valueEnd(in string) (string, bool) {
	if in == "" {
		return "", true
	}
	rest, _ := lexLiteral(in, ",")
	return lineEnding(rest)
}
