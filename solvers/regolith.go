package solvers

import (
	"fmt"
	"strconv"

	"github.com/solventlabs/solvent/grid"
	"github.com/solventlabs/solvent/parsec"
)

// Day 14: rock structures scanned as polylines of x,y vertices
// ("498,4 -> 498,6 -> 496,6"), sand pouring from (500,0). Part 1
// counts units at rest before one falls past the lowest rock; part 2
// adds an infinite floor two rows below it and fills to the source.

const pourX = 500

type rockPoint struct {
	x, y int64
}

// pathRule matches one polyline: "x,y -> x,y -> ...".
func pathRule(s parsec.State) ([]rockPoint, parsec.State, error) {
	point := parsec.Map(
		parsec.SeparatedPair(
			parsec.Rule[int64](parsec.Int64),
			parsec.Char(','),
			parsec.Rule[int64](parsec.Int64),
		),
		func(p parsec.Pair[int64, int64]) rockPoint {
			return rockPoint{x: p.First, y: p.Second}
		},
	)
	return parsec.SepBy1(parsec.Tag(" -> "), point)(s)
}

func parseRockPaths(input string) ([][]rockPoint, error) {
	rule := parsec.Terminated(
		parsec.Lines(parsec.Rule[[]rockPoint](pathRule)),
		parsec.Opt(parsec.Rule[string](parsec.Newline)),
	)
	return parsec.ParseAll(rule, input)
}

// buildCave rasterizes the rock paths into a grid wide enough for a
// floored pile (half-width maxY+1 around the pour column) and returns
// the pour origin in grid coordinates.
func buildCave(paths [][]rockPoint) (*grid.Grid, grid.Point, error) {
	var maxY int64
	for _, path := range paths {
		for _, p := range path {
			if p.y > maxY {
				maxY = p.y
			}
		}
	}
	minX, maxX := int64(pourX-maxY-2), int64(pourX+maxY+2)
	for _, path := range paths {
		for _, p := range path {
			if p.x < minX {
				minX = p.x
			}
			if p.x > maxX {
				maxX = p.x
			}
		}
	}

	g, err := grid.New(int(maxX-minX+1), int(maxY+3), '.')
	if err != nil {
		return nil, grid.Point{}, err
	}
	for _, path := range paths {
		if len(path) < 2 {
			return nil, grid.Point{}, fmt.Errorf("%w: rock path needs two vertices", ErrMalformedInput)
		}
		for i := 1; i < len(path); i++ {
			a, b := path[i-1], path[i]
			if a.x != b.x && a.y != b.y {
				return nil, grid.Point{}, fmt.Errorf("%w: diagonal rock segment", ErrMalformedInput)
			}
			dx, dy := signOf(b.x-a.x), signOf(b.y-a.y)
			for p := a; ; p.x, p.y = p.x+dx, p.y+dy {
				g.Set(grid.Point{X: int(p.x - minX), Y: int(p.y)}, '#')
				if p == b {
					break
				}
			}
		}
	}
	return g, grid.Point{X: int(pourX - minX), Y: 0}, nil
}

func signOf(v int64) int64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func solveRegolithAbyss(input string) (string, error) {
	return solveRegolith(input)
}

func solveRegolithFloor(input string) (string, error) {
	return solveRegolith(input, grid.WithFloor())
}

func solveRegolith(input string, opts ...grid.SettleOption) (string, error) {
	paths, err := parseRockPaths(input)
	if err != nil {
		return "", fmt.Errorf("regolith: %w", err)
	}
	g, origin, err := buildCave(paths)
	if err != nil {
		return "", fmt.Errorf("regolith: %w", err)
	}
	n, err := grid.Settle(g, origin, opts...)
	if err != nil {
		return "", fmt.Errorf("regolith: %w", err)
	}
	return strconv.Itoa(n), nil
}
