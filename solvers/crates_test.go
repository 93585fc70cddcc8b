package solvers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cratesSample = `    [D]
[N] [C]
[Z] [M] [P]
 1   2   3

move 1 from 2 to 1
move 3 from 1 to 3
move 2 from 2 to 1
move 1 from 1 to 2`

func TestCrates_Sample(t *testing.T) {
	got, err := Solve(5, 1, cratesSample)
	require.NoError(t, err)
	assert.Equal(t, "CMZ", got)

	got, err = Solve(5, 2, cratesSample)
	require.NoError(t, err)
	assert.Equal(t, "MCD", got)
}

func TestCrates_Parse(t *testing.T) {
	p, err := parseCrates(cratesSample)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("ZN"), []byte("MCD"), []byte("P")}, p.stacks)
	require.Len(t, p.moves, 4)
	assert.Equal(t, crateMove{count: 3, from: 1, to: 3}, p.moves[1])
}

// TestCrates_TrimmedDrawing: inputs with trailing blanks stripped off
// the drawing rows still line up by column.
func TestCrates_TrimmedDrawing(t *testing.T) {
	input := "    [D]\n[N] [C]\n[Z] [M] [P]\n 1   2   3 \n\nmove 1 from 3 to 1"
	got, err := Solve(5, 1, input)
	require.NoError(t, err)
	// Stack 3 empties out and contributes nothing to the answer.
	assert.Equal(t, "PD", got)
}

func TestCrates_BadMoves(t *testing.T) {
	base := "[A] [B]\n 1   2 \n\n"

	_, err := Solve(5, 1, base+"move 1 from 9 to 1")
	assert.ErrorIs(t, err, ErrMalformedInput)

	_, err = Solve(5, 1, base+"move 5 from 1 to 2")
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestCrates_MalformedDrawing(t *testing.T) {
	_, err := Solve(5, 1, "[A [B]\n 1   2 \n\nmove 1 from 1 to 2")
	assert.Error(t, err)
}
