package interval_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solventlabs/solvent/interval"
)

// TestNew_Inverted rejects Start > End, Normalize swaps instead.
func TestNew_Inverted(t *testing.T) {
	_, err := interval.New(5, 2)
	if !errors.Is(err, interval.ErrInverted) {
		t.Fatalf("New(5,2) error = %v; want ErrInverted", err)
	}
	iv := interval.Normalize(5, 2)
	if iv.Start != 2 || iv.End != 5 {
		t.Errorf("Normalize(5,2) = %v; want [2,5]", iv)
	}
}

// TestInterval_InclusiveBounds pins down the inclusive-both-ends
// semantics at the exact boundary points.
func TestInterval_InclusiveBounds(t *testing.T) {
	iv := interval.Interval{Start: 2, End: 4}

	assert.True(t, iv.Contains(2), "start is inside")
	assert.True(t, iv.Contains(4), "end is inside")
	assert.False(t, iv.Contains(1))
	assert.False(t, iv.Contains(5))
	assert.Equal(t, int64(3), iv.Len())

	// [2,4] and [5,7] are adjacent: they touch but do not overlap.
	next := interval.Interval{Start: 5, End: 7}
	assert.False(t, iv.Overlaps(next))
	assert.True(t, iv.Touches(next))
	assert.True(t, next.Touches(iv))
}

// TestMerge_SpecScenario is the coverage end-to-end scenario:
// [2,4],[6,8] plus [3,5] merge to [2,5],[6,8].
func TestMerge_SpecScenario(t *testing.T) {
	got := interval.Merge([]interval.Interval{
		{Start: 2, End: 4},
		{Start: 6, End: 8},
		{Start: 3, End: 5},
	})
	want := interval.CoverageSet{{Start: 2, End: 5}, {Start: 6, End: 8}}
	assert.Equal(t, want, got)
}

// TestMerge_AdjacencyFusion merges intervals touching at end+1==start.
func TestMerge_AdjacencyFusion(t *testing.T) {
	got := interval.Merge([]interval.Interval{
		{Start: 1, End: 3},
		{Start: 4, End: 6},
	})
	assert.Equal(t, interval.CoverageSet{{Start: 1, End: 6}}, got)

	// One point of daylight must stay split.
	got = interval.Merge([]interval.Interval{
		{Start: 1, End: 3},
		{Start: 5, End: 6},
	})
	assert.Len(t, got, 2)
}

// TestMerge_Containment keeps the wider interval when one swallows
// another.
func TestMerge_Containment(t *testing.T) {
	got := interval.Merge([]interval.Interval{
		{Start: 0, End: 10},
		{Start: 2, End: 4},
	})
	assert.Equal(t, interval.CoverageSet{{Start: 0, End: 10}}, got)
}

// TestMerge_Idempotent checks merge(merge(X)) == merge(X) and input
// order independence over randomized interval sets.
func TestMerge_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		ivs := make([]interval.Interval, 0, 20)
		for i := 0; i < 20; i++ {
			start := rng.Int63n(100)
			ivs = append(ivs, interval.Interval{Start: start, End: start + rng.Int63n(10)})
		}

		merged := interval.Merge(ivs)
		again := interval.Merge(merged)
		require.Equal(t, merged, again, "merge must be idempotent")

		shuffled := make([]interval.Interval, len(ivs))
		copy(shuffled, ivs)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		require.Equal(t, merged, interval.Merge(shuffled), "merge must be order-independent")
	}
}

// TestMerge_Conservation verifies point-coverage conservation: the
// merged set covers exactly the points the inputs covered.
func TestMerge_Conservation(t *testing.T) {
	ivs := []interval.Interval{
		{Start: 2, End: 4}, {Start: 6, End: 8}, {Start: 3, End: 5}, {Start: 8, End: 8},
	}
	merged := interval.Merge(ivs)

	covered := func(p int64) bool {
		for _, iv := range ivs {
			if iv.Contains(p) {
				return true
			}
		}
		return false
	}
	for p := int64(0); p <= 10; p++ {
		assert.Equal(t, covered(p), merged.Covers(p), "point %d", p)
	}
}

// TestCoverageSet_Count sums the lengths of disjoint members.
func TestCoverageSet_Count(t *testing.T) {
	cs := interval.Merge([]interval.Interval{{Start: 2, End: 5}, {Start: 8, End: 8}})
	assert.Equal(t, int64(5), cs.Count())
	assert.Equal(t, int64(0), interval.CoverageSet(nil).Count())
}

// TestFirstGap scans for the first uncovered point within bounds.
func TestFirstGap(t *testing.T) {
	cases := []struct {
		name   string
		set    []interval.Interval
		bounds interval.Interval
		want   int64
		ok     bool
	}{
		{"GapBetween", []interval.Interval{{0, 3}, {5, 9}}, interval.Interval{0, 9}, 4, true},
		{"FullyCovered", []interval.Interval{{0, 9}}, interval.Interval{0, 9}, 0, false},
		{"GapAtStart", []interval.Interval{{2, 9}}, interval.Interval{0, 9}, 0, true},
		{"GapAtEnd", []interval.Interval{{0, 8}}, interval.Interval{0, 9}, 9, true},
		{"EmptySet", nil, interval.Interval{3, 5}, 3, true},
		{"CoverageOutsideBounds", []interval.Interval{{-50, -10}}, interval.Interval{0, 4}, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := interval.Merge(tc.set).FirstGap(tc.bounds)
			if tc.set == nil {
				got, ok = interval.CoverageSet(nil).FirstGap(tc.bounds)
			}
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

// TestClamp intersects a coverage set with bounds.
func TestClamp(t *testing.T) {
	cs := interval.Merge([]interval.Interval{{-5, 2}, {4, 20}})
	got := cs.Clamp(interval.Interval{Start: 0, End: 10})
	assert.Equal(t, interval.CoverageSet{{Start: 0, End: 2}, {Start: 4, End: 10}}, got)
}
