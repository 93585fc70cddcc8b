package solvers

import (
	"fmt"
	"strconv"

	"github.com/solventlabs/solvent/grid"
)

// Day 8: a rectangular field of tree heights '0'..'9'. Part 1 counts
// trees visible from outside the field; part 2 finds the best scenic
// score (product of viewing distances in the four directions).

func solveTreetopVisible(input string) (string, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return "", fmt.Errorf("treetop: %w", err)
	}
	return strconv.Itoa(g.CountVisibleFromEdge()), nil
}

func solveTreetopScenic(input string) (string, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return "", fmt.Errorf("treetop: %w", err)
	}
	return strconv.Itoa(g.BestScenicScore()), nil
}
