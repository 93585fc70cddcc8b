package solvers

import (
	"fmt"
	"strconv"

	"github.com/solventlabs/solvent/grid"
)

// Day 12: a heightmap of elevations 'a'..'z' with a marked start 'S'
// (elevation a) and summit 'E' (elevation z). A step may climb at most
// one unit but descend freely. Part 1 walks S→E; part 2 searches
// backwards from E to the nearest cell of elevation a, which flips the
// climb rule instead of running one search per candidate start.

func elevation(c byte) byte {
	switch c {
	case 'S':
		return 'a'
	case 'E':
		return 'z'
	}
	return c
}

func solveHillclimbFromStart(input string) (string, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return "", fmt.Errorf("hillclimb: %w", err)
	}
	start, err := g.Find('S')
	if err != nil {
		return "", fmt.Errorf("hillclimb: %w", err)
	}
	end, err := g.Find('E')
	if err != nil {
		return "", fmt.Errorf("hillclimb: %w", err)
	}

	dist, err := grid.ShortestPath(g, start,
		grid.WithGoal(end),
		grid.WithEdgeFunc(func(g *grid.Grid, from, to grid.Point) bool {
			return elevation(g.At(to)) <= elevation(g.At(from))+1
		}))
	if err != nil {
		return "", fmt.Errorf("hillclimb: %w", err)
	}
	return strconv.Itoa(dist), nil
}

func solveHillclimbFromLowest(input string) (string, error) {
	g, err := grid.Parse(input)
	if err != nil {
		return "", fmt.Errorf("hillclimb: %w", err)
	}
	end, err := g.Find('E')
	if err != nil {
		return "", fmt.Errorf("hillclimb: %w", err)
	}

	// Searching downhill from E: an edge is legal when the original
	// uphill walk could take it in the other direction.
	dist, err := grid.ShortestPath(g, end,
		grid.WithGoalFunc(func(g *grid.Grid, p grid.Point) bool {
			return elevation(g.At(p)) == 'a'
		}),
		grid.WithEdgeFunc(func(g *grid.Grid, from, to grid.Point) bool {
			return elevation(g.At(from)) <= elevation(g.At(to))+1
		}))
	if err != nil {
		return "", fmt.Errorf("hillclimb: %w", err)
	}
	return strconv.Itoa(dist), nil
}
