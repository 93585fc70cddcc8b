package solvers

import (
	"fmt"
	"strconv"

	"github.com/solventlabs/solvent/exprgraph"
)

// Day 21: a troop of monkeys yelling numbers and operations, one
// definition per line ("root: pppw + sjmn", "dbpl: 5"). Part 1
// evaluates root; part 2 treats humn as the unknown and root as an
// equality, solving for the number humn must yell.

func solveMonkeyRoot(input string) (string, error) {
	g, err := exprgraph.ParseGraph(input)
	if err != nil {
		return "", fmt.Errorf("monkeymath: %w", err)
	}
	v, err := g.Value("root")
	if err != nil {
		return "", fmt.Errorf("monkeymath: %w", err)
	}
	return strconv.FormatInt(v, 10), nil
}

func solveMonkeyHuman(input string) (string, error) {
	g, err := exprgraph.ParseGraph(input)
	if err != nil {
		return "", fmt.Errorf("monkeymath: %w", err)
	}
	v, err := g.SolveUnknown("root", "humn")
	if err != nil {
		return "", fmt.Errorf("monkeymath: %w", err)
	}
	return strconv.FormatInt(v, 10), nil
}
