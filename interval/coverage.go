package interval

import "sort"

// CoverageSet is the minimal disjoint-interval representation of a set
// of covered integer points: sorted ascending by Start, no two members
// overlapping or adjacent. Build one with Merge; the zero value is the
// empty set.
type CoverageSet []Interval

// Merge folds an arbitrary interval slice into a CoverageSet.
// The input is not mutated. Intervals are sorted by Start, then a left
// fold keeps a current accumulator: the next interval extends it when
// next.Start <= acc.End+1 (overlap or adjacency), otherwise the
// accumulator is closed and a new one starts.
// Complexity: O(n log n) time, O(n) memory.
func Merge(intervals []Interval) CoverageSet {
	if len(intervals) == 0 {
		return nil
	}
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	out := make(CoverageSet, 0, len(sorted))
	acc := sorted[0]
	for _, next := range sorted[1:] {
		if next.Start <= acc.End+1 {
			if next.End > acc.End {
				acc.End = next.End
			}
			continue
		}
		out = append(out, acc)
		acc = next
	}
	return append(out, acc)
}

// Covers reports whether point p is covered by the set.
// Complexity: O(log n) via binary search.
func (cs CoverageSet) Covers(p int64) bool {
	i := sort.Search(len(cs), func(i int) bool { return cs[i].End >= p })
	return i < len(cs) && cs[i].Contains(p)
}

// Count returns the total number of integer points covered.
func (cs CoverageSet) Count() int64 {
	var total int64
	for _, iv := range cs {
		total += iv.Len()
	}
	return total
}

// FirstGap returns the first integer within bounds (inclusive) not
// covered by the set, scanning merged intervals in order. The second
// result is false when bounds is fully covered.
func (cs CoverageSet) FirstGap(bounds Interval) (int64, bool) {
	cursor := bounds.Start
	for _, iv := range cs {
		if iv.End < cursor {
			continue
		}
		if iv.Start > cursor {
			// cursor sits in a gap before this interval
			break
		}
		cursor = iv.End + 1
		if cursor > bounds.End {
			return 0, false
		}
	}
	if cursor > bounds.End {
		return 0, false
	}
	return cursor, true
}

// Clamp intersects the set with bounds, dropping points outside it.
// The receiver is not mutated.
func (cs CoverageSet) Clamp(bounds Interval) CoverageSet {
	var out CoverageSet
	for _, iv := range cs {
		if iv.End < bounds.Start || iv.Start > bounds.End {
			continue
		}
		clipped := iv
		if clipped.Start < bounds.Start {
			clipped.Start = bounds.Start
		}
		if clipped.End > bounds.End {
			clipped.End = bounds.End
		}
		out = append(out, clipped)
	}
	return out
}
