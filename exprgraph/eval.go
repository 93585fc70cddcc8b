package exprgraph

import (
	"fmt"
	"math"
)

// Evaluate resolves every node to its integer value in topological
// (Kahn) order: literals seed the queue, a binary node is computed
// only once both operand slots have resolved.
// Returns ErrCycle if the walk stalls before covering all nodes,
// ErrDivisionByZero or ErrOverflow on fatal arithmetic.
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) Evaluate() (map[string]int64, error) {
	adj, indegree := g.dependents()

	values := make([]int64, len(g.nodes))
	queue := make([]int, 0, len(g.nodes))
	for i, n := range g.nodes {
		if n.kind == KindLiteral {
			values[i] = n.value
			queue = append(queue, i)
		}
	}

	resolved := 0
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		resolved++

		n := g.nodes[i]
		if n.kind == KindBinary {
			v, err := apply(n.op, values[n.left], values[n.right])
			if err != nil {
				return nil, fmt.Errorf("at node %q: %w", g.names[i], err)
			}
			values[i] = v
		}
		for _, dep := range adj[i] {
			indegree[dep]--
			if indegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if resolved != len(g.nodes) {
		return nil, fmt.Errorf("%w: %d nodes unresolved", ErrCycle, len(g.nodes)-resolved)
	}

	out := make(map[string]int64, len(g.nodes))
	for i, name := range g.names {
		out[name] = values[i]
	}
	return out, nil
}

// Value evaluates the whole graph and returns a single node's value.
func (g *Graph) Value(id string) (int64, error) {
	if !g.Has(id) {
		return 0, fmt.Errorf("%w: %q", ErrUndefinedReference, id)
	}
	values, err := g.Evaluate()
	if err != nil {
		return 0, err
	}
	return values[id], nil
}

// apply computes a op b with overflow and zero-divisor checks; results
// never silently wrap.
func apply(op Op, a, b int64) (int64, error) {
	switch op {
	case OpAdd:
		if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
			return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
		}
		return a + b, nil
	case OpSub:
		if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
			return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
		}
		return a - b, nil
	case OpMul:
		if a == 0 || b == 0 {
			return 0, nil
		}
		if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
		}
		if r := a * b; r/b == a {
			return r, nil
		}
		return 0, fmt.Errorf("%w: %d * %d", ErrOverflow, a, b)
	case OpDiv:
		if b == 0 {
			return 0, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, a)
		}
		if a == math.MinInt64 && b == -1 {
			return 0, fmt.Errorf("%w: %d / %d", ErrOverflow, a, b)
		}
		return a / b, nil
	default:
		return 0, fmt.Errorf("exprgraph: unknown operator %q", byte(op))
	}
}
