// Package grid core types, sentinel errors and direction constants.
package grid

import "errors"

// Sentinel errors for grid construction and search.
var (
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrRaggedRows indicates rows of differing lengths.
	ErrRaggedRows = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside [0,width)x[0,height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrNoPath indicates the search space was exhausted without
	// reaching a goal. Callers often treat this as a valid "no" answer
	// rather than a failure.
	ErrNoPath = errors.New("grid: no path to goal")
	// ErrNotFound indicates a label lookup matched no cell.
	ErrNotFound = errors.New("grid: label not found")
	// ErrOptionViolation indicates an invalid or missing option.
	ErrOptionViolation = errors.New("grid: invalid option")
)

// Point is an (x, y) cell coordinate; x grows rightward, y downward.
type Point struct {
	X, Y int
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Cardinal direction offsets in N, E, S, W order.
var (
	North = Point{X: 0, Y: -1}
	East  = Point{X: 1, Y: 0}
	South = Point{X: 0, Y: 1}
	West  = Point{X: -1, Y: 0}
)

// Directions4 lists the four orthogonal neighbor offsets.
var Directions4 = []Point{North, East, South, West}
