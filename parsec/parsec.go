// Package parsec core types: State, Rule, ParseError, and the
// top-level Parse / ParseAll drivers.
package parsec

import (
	"errors"
	"fmt"
)

// ErrTrailingInput is returned by ParseAll when a rule succeeds but
// leaves unconsumed input behind.
var ErrTrailingInput = errors.New("parsec: trailing input")

// State is an immutable view into the input: the full source plus the
// current byte offset. Advancing produces a new State; the source is
// never copied or mutated.
type State struct {
	src string
	pos int
}

// NewState returns a State positioned at the start of src.
func NewState(src string) State {
	return State{src: src}
}

// Rest returns the unconsumed remainder of the input.
func (s State) Rest() string { return s.src[s.pos:] }

// Pos returns the absolute byte offset from the start of the input.
func (s State) Pos() int { return s.pos }

// AtEOF reports whether all input has been consumed.
func (s State) AtEOF() bool { return s.pos >= len(s.src) }

// advance returns a State moved forward by n bytes.
func (s State) advance(n int) State {
	return State{src: s.src, pos: s.pos + n}
}

// Rule is a pure parsing function: given an input State it returns the
// matched value, the remaining State, and nil — or a *ParseError.
// Rules must not carry partial side effects on failure; callers may
// always discard a failed attempt.
type Rule[T any] func(State) (T, State, error)

// ParseError reports a failed match: the absolute byte offset where
// matching stopped and a short label for what was expected there.
type ParseError struct {
	Offset   int
	Expected string
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsec: expected %s at offset %d", e.Expected, e.Offset)
}

// errAt builds a *ParseError anchored at the current state.
func errAt(s State, expected string) error {
	return &ParseError{Offset: s.pos, Expected: expected}
}

// Parse runs r against input from the beginning. Trailing unconsumed
// input is allowed; use ParseAll to require full consumption.
func Parse[T any](r Rule[T], input string) (T, error) {
	v, _, err := r(NewState(input))
	return v, err
}

// ParseAll runs r against input and additionally requires that the
// whole input was consumed, returning ErrTrailingInput otherwise.
func ParseAll[T any](r Rule[T], input string) (T, error) {
	v, rest, err := r(NewState(input))
	if err != nil {
		return v, err
	}
	if !rest.AtEOF() {
		var zero T
		return zero, fmt.Errorf("%w: %d bytes left at offset %d", ErrTrailingInput, len(rest.Rest()), rest.Pos())
	}
	return v, nil
}
