// Package parsec provides small composable parsing rules for turning
// line- and record-oriented puzzle text into typed values.
//
// A Rule[T] is a pure function from an input State to a value, the
// remaining State, and an error. Rules never mutate the input and a
// failed attempt leaves no trace, so callers may freely speculate:
// try a rule, discard the result, try another.
//
// Composition mirrors the usual combinator vocabulary:
//
//   - Seq2, SeparatedPair, Preceded, Terminated, Delimited — sequencing
//   - Alt — ordered choice, first success wins
//   - SepBy1, Many1 — repetition requiring at least one element
//   - Map — transform a successful value
//
// Failures carry the absolute byte offset and a short "expected" label
// via *ParseError, so a top-level caller can report a meaningful
// location inside the original input.
//
// Numeric primitives come in explicit width/signedness variants
// (Int64, Int32, Uint64, Uint32); several puzzle inputs overflow
// 32-bit range, and picking the wrong width is a reproducible bug
// class, so the width is part of the rule's name and contract.
package parsec
