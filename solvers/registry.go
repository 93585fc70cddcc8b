package solvers

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownSolver means no solver is registered for the day/part.
	ErrUnknownSolver = errors.New("solvers: unknown day or part")
	// ErrMalformedInput wraps semantic input problems a parser cannot
	// catch, such as a crane move addressing a missing stack.
	ErrMalformedInput = errors.New("solvers: malformed input")
)

// Func computes one puzzle answer from the raw input text.
type Func func(input string) (string, error)

// Key addresses a solver: puzzle day plus part (1 or 2).
type Key struct {
	Day  int
	Part int
}

// Registration describes one table entry, for listings.
type Registration struct {
	Day  int
	Part int
	Name string
}

type entry struct {
	name string
	run  Func
}

var table = map[Key]entry{
	{Day: 5, Part: 1}:  {name: "crates", run: solveCratesSingle},
	{Day: 5, Part: 2}:  {name: "crates", run: solveCratesBulk},
	{Day: 8, Part: 1}:  {name: "treetop", run: solveTreetopVisible},
	{Day: 8, Part: 2}:  {name: "treetop", run: solveTreetopScenic},
	{Day: 12, Part: 1}: {name: "hillclimb", run: solveHillclimbFromStart},
	{Day: 12, Part: 2}: {name: "hillclimb", run: solveHillclimbFromLowest},
	{Day: 14, Part: 1}: {name: "regolith", run: solveRegolithAbyss},
	{Day: 14, Part: 2}: {name: "regolith", run: solveRegolithFloor},
	{Day: 15, Part: 1}: {name: "beacon", run: solveBeaconRow},
	{Day: 15, Part: 2}: {name: "beacon", run: solveBeaconTuning},
	{Day: 21, Part: 1}: {name: "monkeymath", run: solveMonkeyRoot},
	{Day: 21, Part: 2}: {name: "monkeymath", run: solveMonkeyHuman},
}

// Lookup returns the solver registered for day/part.
func Lookup(day, part int) (Func, error) {
	e, ok := table[Key{Day: day, Part: part}]
	if !ok {
		return nil, fmt.Errorf("%w: day %d part %d", ErrUnknownSolver, day, part)
	}
	return e.run, nil
}

// Solve looks up and runs the solver for day/part in one call.
func Solve(day, part int, input string) (string, error) {
	fn, err := Lookup(day, part)
	if err != nil {
		return "", err
	}
	return fn(input)
}

// Registered returns every table entry sorted by day, then part.
func Registered() []Registration {
	out := make([]Registration, 0, len(table))
	for k, e := range table {
		out = append(out, Registration{Day: k.Day, Part: k.Part, Name: e.name})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].Part < out[j].Part
	})
	return out
}
