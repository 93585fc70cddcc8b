package interval

import (
	"errors"
	"fmt"
)

// ErrInverted is returned by New when Start > End.
var ErrInverted = errors.New("interval: start exceeds end")

// Interval is an inclusive integer range [Start, End], Start <= End.
type Interval struct {
	Start, End int64
}

// New constructs an Interval, rejecting inverted bounds with
// ErrInverted. Use Normalize to swap instead of reject.
func New(start, end int64) (Interval, error) {
	if start > end {
		return Interval{}, fmt.Errorf("%w: [%d,%d]", ErrInverted, start, end)
	}
	return Interval{Start: start, End: end}, nil
}

// Normalize returns an Interval with the bounds swapped if inverted.
func Normalize(a, b int64) Interval {
	if a > b {
		a, b = b, a
	}
	return Interval{Start: a, End: b}
}

// Len returns the number of integer points covered, End-Start+1.
func (iv Interval) Len() int64 { return iv.End - iv.Start + 1 }

// Contains reports whether p lies within the inclusive bounds.
func (iv Interval) Contains(p int64) bool {
	return p >= iv.Start && p <= iv.End
}

// Overlaps reports whether iv and other share at least one point.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start <= other.End && other.Start <= iv.End
}

// Touches reports whether iv and other overlap or are adjacent, i.e.
// their union covers a single contiguous run of integers.
func (iv Interval) Touches(other Interval) bool {
	return iv.Start <= other.End+1 && other.Start <= iv.End+1
}

// String renders the interval as "[start,end]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d]", iv.Start, iv.End)
}
