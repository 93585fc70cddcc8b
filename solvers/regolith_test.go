package solvers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const regolithSample = `498,4 -> 498,6 -> 496,6
503,4 -> 502,4 -> 502,9 -> 494,9`

func TestRegolith_Sample(t *testing.T) {
	got, err := Solve(14, 1, regolithSample)
	require.NoError(t, err)
	assert.Equal(t, "24", got)

	got, err = Solve(14, 2, regolithSample)
	require.NoError(t, err)
	assert.Equal(t, "93", got)
}

func TestParseRockPaths(t *testing.T) {
	paths, err := parseRockPaths(regolithSample)
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, []rockPoint{{498, 4}, {498, 6}, {496, 6}}, paths[0])
	assert.Len(t, paths[1], 4)
}

func TestRegolith_Malformed(t *testing.T) {
	_, err := Solve(14, 1, "498,4 -> nope")
	assert.Error(t, err)

	// Diagonal segments are not valid scan data.
	_, err = Solve(14, 1, "1,1 -> 3,3")
	assert.ErrorIs(t, err, ErrMalformedInput)

	// A single vertex draws nothing.
	_, err = Solve(14, 1, "5,5")
	assert.ErrorIs(t, err, ErrMalformedInput)
}
