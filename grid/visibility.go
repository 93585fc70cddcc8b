package grid

// VisibleFromEdge computes, for every cell, whether it can be seen
// from outside the grid along at least one of the four axis
// directions. A cell is hidden in a direction when any cell between it
// and the border carries an equal-or-taller label; border cells are
// always visible. Labels compare by byte order.
//
// Implemented as four running-maximum sweeps, one per direction.
// Complexity: O(W×H) time, O(W×H) memory for the result.
func (g *Grid) VisibleFromEdge() [][]bool {
	visible := make([][]bool, g.height)
	for y := range visible {
		visible[y] = make([]bool, g.width)
		visible[y][0] = true
		visible[y][g.width-1] = true
	}
	for x := 0; x < g.width; x++ {
		visible[0][x] = true
		visible[g.height-1][x] = true
	}

	// West→east and east→west sweeps per row.
	for y := 0; y < g.height; y++ {
		tallest := g.At(Point{X: 0, Y: y})
		for x := 1; x < g.width; x++ {
			if c := g.At(Point{X: x, Y: y}); c > tallest {
				tallest = c
				visible[y][x] = true
			}
		}
		tallest = g.At(Point{X: g.width - 1, Y: y})
		for x := g.width - 2; x >= 0; x-- {
			if c := g.At(Point{X: x, Y: y}); c > tallest {
				tallest = c
				visible[y][x] = true
			}
		}
	}
	// North→south and south→north sweeps per column.
	for x := 0; x < g.width; x++ {
		tallest := g.At(Point{X: x, Y: 0})
		for y := 1; y < g.height; y++ {
			if c := g.At(Point{X: x, Y: y}); c > tallest {
				tallest = c
				visible[y][x] = true
			}
		}
		tallest = g.At(Point{X: x, Y: g.height - 1})
		for y := g.height - 2; y >= 0; y-- {
			if c := g.At(Point{X: x, Y: y}); c > tallest {
				tallest = c
				visible[y][x] = true
			}
		}
	}
	return visible
}

// CountVisibleFromEdge returns the number of cells visible from
// outside the grid.
func (g *Grid) CountVisibleFromEdge() int {
	count := 0
	for _, row := range g.VisibleFromEdge() {
		for _, v := range row {
			if v {
				count++
			}
		}
	}
	return count
}

// ViewingDistance counts the cells visible from p along direction dir
// before the ray is blocked: cells strictly shorter than p's label are
// counted and passed, the first equal-or-taller cell is counted and
// stops the ray, the border stops it without an extra count.
// Complexity: O(max(W,H)) per call.
func (g *Grid) ViewingDistance(p Point, dir Point) int {
	own := g.At(p)
	dist := 0
	for cur := p.Add(dir); g.InBounds(cur); cur = cur.Add(dir) {
		dist++
		if g.At(cur) >= own {
			break
		}
	}
	return dist
}

// ScenicScore multiplies the four directional viewing distances of p.
func (g *Grid) ScenicScore(p Point) int {
	score := 1
	for _, dir := range Directions4 {
		score *= g.ViewingDistance(p, dir)
	}
	return score
}

// BestScenicScore scans every cell for the highest scenic score.
// Complexity: O(W×H×max(W,H)) — the naive ray scan is fine at puzzle
// scale.
func (g *Grid) BestScenicScore() int {
	best := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if s := g.ScenicScore(Point{X: x, Y: y}); s > best {
				best = s
			}
		}
	}
	return best
}
