package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular field of byte labels stored row-major. The
// grid exclusively owns its cells: constructors deep-copy their input
// and accessors never hand out aliasing views.
type Grid struct {
	width, height int
	cells         []byte
}

// Parse builds a Grid from newline-separated rows of equal length.
// Both "\n" and "\r\n" line endings are accepted; a trailing newline
// is tolerated. Returns ErrEmptyGrid or ErrRaggedRows on bad shape.
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	rows := strings.Split(text, "\n")
	w := len(rows[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{width: w, height: len(rows), cells: make([]byte, 0, w*len(rows))}
	for _, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: want %d columns, got %d", ErrRaggedRows, w, len(row))
		}
		g.cells = append(g.cells, row...)
	}
	return g, nil
}

// New builds a width×height grid with every cell set to fill.
func New(width, height int, fill byte) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{width: width, height: height, cells: make([]byte, width*height)}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// At returns the label at p; the caller must ensure p is in bounds.
func (g *Grid) At(p Point) byte { return g.cells[p.Y*g.width+p.X] }

// Set writes the label at p; the caller must ensure p is in bounds.
func (g *Grid) Set(p Point, label byte) { g.cells[p.Y*g.width+p.X] = label }

// Index maps p to its row-major index: y*width + x.
func (g *Grid) Index(p Point) int { return p.Y*g.width + p.X }

// Coord converts a row-major index back to a Point.
func (g *Grid) Coord(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}

// Clone returns an independent deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]byte, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Find returns the first cell (row-major order) carrying label.
// Returns ErrNotFound if no cell matches.
func (g *Grid) Find(label byte) (Point, error) {
	for i, c := range g.cells {
		if c == label {
			return g.Coord(i), nil
		}
	}
	return Point{}, fmt.Errorf("%w: %q", ErrNotFound, label)
}

// FindAll returns every cell carrying label, in row-major order.
func (g *Grid) FindAll(label byte) []Point {
	var out []Point
	for i, c := range g.cells {
		if c == label {
			out = append(out, g.Coord(i))
		}
	}
	return out
}

// String renders the grid back to its newline-separated text form.
// Parsing the result yields an equal grid.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(len(g.cells) + g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.Write(g.cells[y*g.width : (y+1)*g.width])
	}
	return b.String()
}
