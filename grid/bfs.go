package grid

import (
	"context"
	"fmt"
)

// PathOption configures ShortestPath via functional arguments.
// An invalid combination is recorded internally and surfaced as
// ErrOptionViolation when the search runs.
type PathOption func(*pathOptions)

// pathOptions holds the goal condition, edge predicate and context.
type pathOptions struct {
	ctx      context.Context
	goal     func(g *Grid, p Point) bool
	hasGoal  bool
	edge     func(g *Grid, from, to Point) bool
	maxSteps int
	err      error
}

func defaultPathOptions() pathOptions {
	return pathOptions{
		ctx:  context.Background(),
		edge: func(*Grid, Point, Point) bool { return true },
	}
}

// WithContext sets a cancellation context for the search loop.
func WithContext(ctx context.Context) PathOption {
	return func(o *pathOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithGoal sets a single fixed goal cell.
func WithGoal(goal Point) PathOption {
	return func(o *pathOptions) {
		o.goal = func(_ *Grid, p Point) bool { return p == goal }
		o.hasGoal = true
	}
}

// WithGoalLabel stops at the nearest cell carrying label.
func WithGoalLabel(label byte) PathOption {
	return func(o *pathOptions) {
		o.goal = func(g *Grid, p Point) bool { return g.At(p) == label }
		o.hasGoal = true
	}
}

// WithGoalFunc stops at the nearest cell satisfying fn.
func WithGoalFunc(fn func(g *Grid, p Point) bool) PathOption {
	return func(o *pathOptions) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil goal predicate", ErrOptionViolation)
			return
		}
		o.goal = fn
		o.hasGoal = true
	}
}

// WithEdgeFunc restricts traversability: a step from→to is taken only
// when fn returns true. The predicate must be a pure function of the
// two cells; the grid is never mutated during search.
func WithEdgeFunc(fn func(g *Grid, from, to Point) bool) PathOption {
	return func(o *pathOptions) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil edge predicate", ErrOptionViolation)
			return
		}
		o.edge = fn
	}
}

// ShortestPath runs breadth-first search from start over 4-connected
// neighbors and returns the number of steps to the nearest goal cell.
// Exactly one goal option (WithGoal, WithGoalLabel or WithGoalFunc)
// must be supplied. An unreachable goal yields ErrNoPath; whether that
// is fatal is the caller's call.
// Complexity: O(W×H) time and memory (uniform edge cost).
func ShortestPath(g *Grid, start Point, opts ...PathOption) (int, error) {
	if g == nil {
		return 0, fmt.Errorf("%w: nil grid", ErrOptionViolation)
	}
	o := defaultPathOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if !o.hasGoal {
		return 0, fmt.Errorf("%w: no goal condition supplied", ErrOptionViolation)
	}
	if !g.InBounds(start) {
		return 0, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}

	return SearchPath(
		o.ctx,
		[]SearchNode[struct{}]{{P: start}},
		func(n SearchNode[struct{}]) []SearchNode[struct{}] {
			out := make([]SearchNode[struct{}], 0, len(Directions4))
			for _, d := range Directions4 {
				next := n.P.Add(d)
				if g.InBounds(next) && o.edge(g, n.P, next) {
					out = append(out, SearchNode[struct{}]{P: next})
				}
			}
			return out
		},
		func(n SearchNode[struct{}]) bool { return o.goal(g, n.P) },
	)
}

// SearchNode identifies a position in a search space that may be wider
// than the 2D grid: the coordinate crossed with any rule-relevant
// extra state (facing, run length, carried key...). Two nodes at the
// same Point but different State are distinct frontier entries.
type SearchNode[S comparable] struct {
	P     Point
	State S
}

// queueItem pairs a search node with its BFS depth.
type queueItem[S comparable] struct {
	node  SearchNode[S]
	depth int
}

// SearchPath is the generalized uniform-cost BFS underlying
// ShortestPath. It explores from the given start nodes in parallel
// (multi-source), expands each node through neighbors, and returns the
// depth of the first node satisfying goal. The neighbor function must
// be pure; no shared state is mutated during the walk.
// Returns ErrNoPath when the frontier empties without a goal.
func SearchPath[S comparable](
	ctx context.Context,
	starts []SearchNode[S],
	neighbors func(SearchNode[S]) []SearchNode[S],
	goal func(SearchNode[S]) bool,
) (int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	visited := make(map[SearchNode[S]]bool, len(starts))
	queue := make([]queueItem[S], 0, len(starts))
	for _, s := range starts {
		if visited[s] {
			continue
		}
		visited[s] = true
		queue = append(queue, queueItem[S]{node: s})
	}

	for len(queue) > 0 {
		// cancellation check once per dequeue
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]
		if goal(item.node) {
			return item.depth, nil
		}
		for _, next := range neighbors(item.node) {
			if visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, queueItem[S]{node: next, depth: item.depth + 1})
		}
	}
	return 0, ErrNoPath
}
