package format

import "strings"

// Sub-lexers. Each takes the remaining input and returns what it recognized,
// the input left after it, and whether it matched. On a miss the input is
// returned unchanged so callers can try the next alternative.

// indentation counts leading spaces.
func indentation(in string) (int, string) {
	n := 0
	for n < len(in) && in[n] == ' ' {
		n++
	}
	return n, in[n:]
}

// lexString recognizes a double-quoted string that ends on the current line.
// With raw set every '"' terminates the string; otherwise a backslash escapes
// the following character.
func lexString(in string, raw bool) (string, string, bool) {
	if !strings.HasPrefix(in, `"`) {
		return "", in, false
	}
	for i := 1; i < len(in); i++ {
		switch in[i] {
		case '"':
			return in[1:i], in[i+1:], true
		case '\n', '\r':
			return "", in, false
		case '\\':
			if raw {
				continue
			}
			if i+1 >= len(in) || in[i+1] == '\n' || in[i+1] == '\r' {
				return "", in, false
			}
			i++
		}
	}
	return "", in, false
}

// lexNumber recognizes a floating point literal:
// [+-]? (digits ['.' digits*] | '.' digits) ([eE] [+-]? digits)?
func lexNumber(in string) (string, bool) {
	i := 0
	if i < len(in) && (in[i] == '+' || in[i] == '-') {
		i++
	}
	intDigits := countDigits(in[i:])
	i += intDigits
	if i < len(in) && in[i] == '.' {
		fracDigits := countDigits(in[i+1:])
		if intDigits == 0 && fracDigits == 0 {
			return in, false
		}
		i += 1 + fracDigits
	} else if intDigits == 0 {
		return in, false
	}
	if i < len(in) && (in[i] == 'e' || in[i] == 'E') {
		j := i + 1
		if j < len(in) && (in[j] == '+' || in[j] == '-') {
			j++
		}
		if n := countDigits(in[j:]); n > 0 {
			i = j + n
		}
	}
	return in[i:], true
}

func countDigits(in string) int {
	n := 0
	for n < len(in) && in[n] >= '0' && in[n] <= '9' {
		n++
	}
	return n
}

// lexLiteral recognizes an exact keyword.
func lexLiteral(in, lit string) (string, bool) {
	if strings.HasPrefix(in, lit) {
		return in[len(lit):], true
	}
	return in, false
}

// lineEnding recognizes "\n" or "\r\n".
func lineEnding(in string) (string, bool) {
	switch {
	case strings.HasPrefix(in, "\n"):
		return in[1:], true
	case strings.HasPrefix(in, "\r\n"):
		return in[2:], true
	}
	return in, false
}
