package parsec

import "strings"

// Tag matches the exact literal lit and yields it.
func Tag(lit string) Rule[string] {
	return func(s State) (string, State, error) {
		if strings.HasPrefix(s.Rest(), lit) {
			return lit, s.advance(len(lit)), nil
		}
		return "", s, errAt(s, "literal "+quote(lit))
	}
}

// Char matches the single byte c.
func Char(c byte) Rule[byte] {
	return func(s State) (byte, State, error) {
		if !s.AtEOF() && s.src[s.pos] == c {
			return c, s.advance(1), nil
		}
		return 0, s, errAt(s, "character "+quote(string(c)))
	}
}

// OneOf matches any single byte contained in set and yields it.
func OneOf(set string) Rule[byte] {
	return func(s State) (byte, State, error) {
		if !s.AtEOF() && strings.IndexByte(set, s.src[s.pos]) >= 0 {
			return s.src[s.pos], s.advance(1), nil
		}
		return 0, s, errAt(s, "one of "+quote(set))
	}
}

// TakeWhile1 consumes one or more leading bytes satisfying pred,
// failing with the given label if none match.
func TakeWhile1(label string, pred func(byte) bool) Rule[string] {
	return func(s State) (string, State, error) {
		n := 0
		for s.pos+n < len(s.src) && pred(s.src[s.pos+n]) {
			n++
		}
		if n == 0 {
			return "", s, errAt(s, label)
		}
		return s.src[s.pos : s.pos+n], s.advance(n), nil
	}
}

// Alpha1 matches one or more ASCII letters.
func Alpha1(s State) (string, State, error) {
	return TakeWhile1("letters", func(c byte) bool {
		return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	})(s)
}

// Digit1 matches one or more ASCII digits.
func Digit1(s State) (string, State, error) {
	return TakeWhile1("digits", isDigit)(s)
}

// Space1 matches one or more spaces or tabs.
func Space1(s State) (string, State, error) {
	return TakeWhile1("whitespace", func(c byte) bool {
		return c == ' ' || c == '\t'
	})(s)
}

// Newline matches a single line ending, either "\n" or "\r\n".
func Newline(s State) (string, State, error) {
	rest := s.Rest()
	switch {
	case strings.HasPrefix(rest, "\r\n"):
		return "\r\n", s.advance(2), nil
	case strings.HasPrefix(rest, "\n"):
		return "\n", s.advance(1), nil
	}
	return "", s, errAt(s, "line ending")
}

// EOF succeeds only when all input has been consumed.
func EOF(s State) (struct{}, State, error) {
	if s.AtEOF() {
		return struct{}{}, s, nil
	}
	return struct{}{}, s, errAt(s, "end of input")
}

// RestOfLine consumes everything up to (but not including) the next
// line ending or end of input. The empty remainder is a valid match.
func RestOfLine(s State) (string, State, error) {
	rest := s.Rest()
	n := strings.IndexByte(rest, '\n')
	if n < 0 {
		return rest, s.advance(len(rest)), nil
	}
	if n > 0 && rest[n-1] == '\r' {
		return rest[:n-1], s.advance(n - 1), nil
	}
	return rest[:n], s.advance(n), nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// quote renders a literal for error messages, keeping it short.
func quote(lit string) string {
	if len(lit) > 16 {
		lit = lit[:16] + "…"
	}
	return "\"" + lit + "\""
}
