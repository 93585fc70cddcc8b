package solvers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solventlabs/solvent/exprgraph"
)

const monkeySample = `root: pppw + sjmn
dbpl: 5
cczh: sllz + lgvd
zpqm: 3
ptdq: humn - dvpt
dvpt: 3
lfqf: 4
humn: 5
ljgn: 2
sjmn: drzm * dbpl
sllz: 4
pppw: cczh / lfqf
lgvd: ljgn * ptdq
drzm: hmdt - zczc
zczc: 2
hmdt: 32`

func TestMonkeyMath_Sample(t *testing.T) {
	got, err := Solve(21, 1, monkeySample)
	require.NoError(t, err)
	assert.Equal(t, "152", got)

	got, err = Solve(21, 2, monkeySample)
	require.NoError(t, err)
	assert.Equal(t, "301", got)
}

func TestMonkeyMath_Errors(t *testing.T) {
	_, err := Solve(21, 1, "root pppw")
	assert.Error(t, err, "missing colon")

	_, err = Solve(21, 1, "root: gone + missing")
	assert.ErrorIs(t, err, exprgraph.ErrUndefinedReference)

	_, err = Solve(21, 2, "root: a + a\na: 1")
	assert.ErrorIs(t, err, exprgraph.ErrUndefinedReference, "no humn node")
}
