package parsec

// Pair holds the two values produced by a sequencing combinator.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Maybe holds an optional parse result; OK is false when the wrapped
// rule did not match.
type Maybe[T any] struct {
	Value T
	OK    bool
}

// Map transforms the value of a successful rule, leaving failures and
// the remaining input untouched.
func Map[A, B any](r Rule[A], f func(A) B) Rule[B] {
	return func(s State) (B, State, error) {
		a, rest, err := r(s)
		if err != nil {
			var zero B
			return zero, s, err
		}
		return f(a), rest, nil
	}
}

// Seq2 applies a then b, keeping both values. It short-circuits on the
// first failure, propagating that sub-rule's error and position.
func Seq2[A, B any](a Rule[A], b Rule[B]) Rule[Pair[A, B]] {
	return func(s State) (Pair[A, B], State, error) {
		var zero Pair[A, B]
		av, rest, err := a(s)
		if err != nil {
			return zero, s, err
		}
		bv, rest, err := b(rest)
		if err != nil {
			return zero, s, err
		}
		return Pair[A, B]{First: av, Second: bv}, rest, nil
	}
}

// Alt tries each rule in the order given from the same starting
// position and returns the first success. The listing order is a
// correctness-relevant tie-break: a more specific pattern must be
// listed before a bare one that would also match its prefix. If every
// alternative fails, the last alternative's error is returned.
func Alt[T any](rules ...Rule[T]) Rule[T] {
	return func(s State) (T, State, error) {
		var zero T
		var lastErr error
		for _, r := range rules {
			v, rest, err := r(s)
			if err == nil {
				return v, rest, nil
			}
			lastErr = err
		}
		if lastErr == nil {
			lastErr = errAt(s, "one of zero alternatives")
		}
		return zero, s, lastErr
	}
}

// SepBy1 matches item (sep item)* and requires at least one element;
// zero matches is a failure. A trailing sep with no following item is
// not consumed — the speculative sep+item attempt is discarded.
func SepBy1[T, S any](sep Rule[S], item Rule[T]) Rule[[]T] {
	return func(s State) ([]T, State, error) {
		first, rest, err := item(s)
		if err != nil {
			return nil, s, err
		}
		out := []T{first}
		for {
			_, afterSep, err := sep(rest)
			if err != nil {
				return out, rest, nil
			}
			v, afterItem, err := item(afterSep)
			if err != nil {
				return out, rest, nil
			}
			out = append(out, v)
			rest = afterItem
		}
	}
}

// Many1 matches one or more consecutive items.
func Many1[T any](item Rule[T]) Rule[[]T] {
	return func(s State) ([]T, State, error) {
		first, rest, err := item(s)
		if err != nil {
			return nil, s, err
		}
		out := []T{first}
		for {
			v, next, err := item(rest)
			if err != nil {
				return out, rest, nil
			}
			out = append(out, v)
			rest = next
		}
	}
}

// Opt makes a rule optional: a failed match yields Maybe{OK: false}
// without consuming input.
func Opt[T any](r Rule[T]) Rule[Maybe[T]] {
	return func(s State) (Maybe[T], State, error) {
		v, rest, err := r(s)
		if err != nil {
			return Maybe[T]{}, s, nil
		}
		return Maybe[T]{Value: v, OK: true}, rest, nil
	}
}

// Preceded applies prefix then r, discarding the prefix value.
func Preceded[P, T any](prefix Rule[P], r Rule[T]) Rule[T] {
	return func(s State) (T, State, error) {
		var zero T
		_, rest, err := prefix(s)
		if err != nil {
			return zero, s, err
		}
		v, rest, err := r(rest)
		if err != nil {
			return zero, s, err
		}
		return v, rest, nil
	}
}

// Terminated applies r then suffix, discarding the suffix value.
func Terminated[T, S any](r Rule[T], suffix Rule[S]) Rule[T] {
	return func(s State) (T, State, error) {
		var zero T
		v, rest, err := r(s)
		if err != nil {
			return zero, s, err
		}
		_, rest, err = suffix(rest)
		if err != nil {
			return zero, s, err
		}
		return v, rest, nil
	}
}

// Delimited applies open, r, end and keeps only r's value.
func Delimited[L, T, R any](open Rule[L], r Rule[T], end Rule[R]) Rule[T] {
	return Preceded(open, Terminated(r, end))
}

// SeparatedPair applies a, sep, b and keeps the outer two values.
func SeparatedPair[A, S, B any](a Rule[A], sep Rule[S], b Rule[B]) Rule[Pair[A, B]] {
	return Seq2(Terminated(a, sep), b)
}

// Lines parses a newline-separated list of items, at least one.
func Lines[T any](item Rule[T]) Rule[[]T] {
	return SepBy1[T, string](Newline, item)
}
