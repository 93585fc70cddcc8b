// Package grid provides 2D byte-label grids and the three search
// primitives the puzzle solvers compose:
//
//   - Shortest path: breadth-first search over the 4-connected
//     neighbor graph, with traversability decided by a pure edge
//     predicate and the goal given either as a fixed point or as a
//     first-match predicate. SearchPath generalizes the walk to nodes
//     carrying extra state beyond (x, y), for traversal rules that
//     distinguish otherwise-identical coordinates.
//
//   - Visibility: directional sweeps answering "is this cell visible
//     from outside the grid" (strictly-taller blocking) and "how far
//     can this cell see before an equal-or-taller obstruction"
//     (blocker included in the count).
//
//   - Settling: drop particles from an origin, trying down, down-left,
//     down-right in fixed preference order, freezing them into the
//     grid where no move remains. Termination is configurable: abyss
//     mode stops when a particle falls past the lowest obstruction,
//     floor mode adds an implicit floor and stops when the origin
//     itself settles.
//
// A Grid owns its cells exclusively: construction deep-copies, search
// never mutates, and the settling simulation operates on a private
// clone. Cell labels are plain bytes; height comparisons use byte
// order, which matches digit and letter labels alike.
package grid
