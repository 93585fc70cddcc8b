package parsec

import "strconv"

// The numeric rules are deliberately width- and signedness-explicit.
// Several puzzle inputs exceed 32-bit range, and parsing them with the
// narrow variant truncates silently in languages that wrap; here the
// strconv bitSize check turns that mistake into a ParseError instead.

// Int64 matches an optionally signed decimal integer in int64 range.
func Int64(s State) (int64, State, error) {
	return parseSigned(s, 64)
}

// Int32 matches an optionally signed decimal integer in int32 range.
func Int32(s State) (int32, State, error) {
	v, rest, err := parseSigned(s, 32)
	return int32(v), rest, err
}

// Uint64 matches an unsigned decimal integer in uint64 range.
func Uint64(s State) (uint64, State, error) {
	return parseUnsigned(s, 64)
}

// Uint32 matches an unsigned decimal integer in uint32 range.
func Uint32(s State) (uint32, State, error) {
	v, rest, err := parseUnsigned(s, 32)
	return uint32(v), rest, err
}

// parseSigned consumes [+-]?[0-9]+ and converts it with the given
// bitSize; out-of-range text fails at the number's starting offset.
func parseSigned(s State, bitSize int) (int64, State, error) {
	n := 0
	if s.pos < len(s.src) && (s.src[s.pos] == '-' || s.src[s.pos] == '+') {
		n = 1
	}
	d := digitSpan(s, n)
	if d == 0 {
		return 0, s, errAt(s, label(true, bitSize))
	}
	text := s.src[s.pos : s.pos+n+d]
	v, err := strconv.ParseInt(text, 10, bitSize)
	if err != nil {
		return 0, s, errAt(s, label(true, bitSize))
	}
	return v, s.advance(n + d), nil
}

// parseUnsigned consumes [0-9]+ with the given bitSize.
func parseUnsigned(s State, bitSize int) (uint64, State, error) {
	d := digitSpan(s, 0)
	if d == 0 {
		return 0, s, errAt(s, label(false, bitSize))
	}
	text := s.src[s.pos : s.pos+d]
	v, err := strconv.ParseUint(text, 10, bitSize)
	if err != nil {
		return 0, s, errAt(s, label(false, bitSize))
	}
	return v, s.advance(d), nil
}

// digitSpan counts consecutive digits starting at offset pos+skip.
func digitSpan(s State, skip int) int {
	n := 0
	for s.pos+skip+n < len(s.src) && isDigit(s.src[s.pos+skip+n]) {
		n++
	}
	return n
}

func label(signed bool, bitSize int) string {
	switch {
	case signed && bitSize == 64:
		return "64-bit integer"
	case signed:
		return "32-bit integer"
	case bitSize == 64:
		return "64-bit unsigned integer"
	default:
		return "32-bit unsigned integer"
	}
}
