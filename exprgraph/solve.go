package exprgraph

import "fmt"

// SolveUnknown treats the literal leaf unknownID as a free variable
// and the binary node rootID as an equality constraint between its two
// operands, returning the unknown value that satisfies it.
//
// Phase 1 forward-evaluates everything not transitively dependent on
// the unknown; the unknown's side of the graph stays unresolved. At
// the root exactly one operand must have resolved — its value becomes
// the target for the other side. Phase 2 walks the unresolved spine
// from the root toward the unknown, inverting each operator
// algebraically (add→sub, sub→add or negate, mul→div, div→mul or div
// depending on which operand is unknown) and propagating the target
// until the unknown leaf is reached.
//
// At every spine node exactly one of {left, right} may be unresolved;
// zero or two unresolved operands — or a non-integer intermediate —
// fails with ErrUnsolvable. A cyclic graph fails with ErrCycle.
func (g *Graph) SolveUnknown(rootID, unknownID string) (int64, error) {
	root, ok := g.index[rootID]
	if !ok {
		return 0, fmt.Errorf("%w: root %q", ErrUndefinedReference, rootID)
	}
	unknown, ok := g.index[unknownID]
	if !ok {
		return 0, fmt.Errorf("%w: unknown %q", ErrUndefinedReference, unknownID)
	}
	if g.nodes[root].kind != KindBinary {
		return 0, fmt.Errorf("%w: root %q is not a binary constraint", ErrUnsolvable, rootID)
	}
	if g.nodes[unknown].kind != KindLiteral {
		return 0, fmt.Errorf("%w: unknown %q is not a leaf", ErrUnsolvable, unknownID)
	}

	values, known, err := g.partialEvaluate(unknown)
	if err != nil {
		return 0, err
	}
	if known[root] {
		return 0, fmt.Errorf("%w: root %q does not depend on %q", ErrUnsolvable, rootID, unknownID)
	}

	// Root is an equality, not an operation: the resolved side's value
	// is the target for the unresolved branch.
	rn := g.nodes[root]
	var target int64
	var cur int
	switch {
	case known[rn.left] && known[rn.right]:
		return 0, fmt.Errorf("%w: both sides of root %q resolved", ErrUnsolvable, rootID)
	case known[rn.left]:
		target, cur = values[rn.left], rn.right
	case known[rn.right]:
		target, cur = values[rn.right], rn.left
	default:
		return 0, fmt.Errorf("%w: neither side of root %q resolved", ErrUnsolvable, rootID)
	}

	// Phase 2: descend the unresolved spine, solving one operand per
	// step. The spine is acyclic (checked above), so this terminates.
	for cur != unknown {
		n := g.nodes[cur]
		if n.kind != KindBinary {
			// An unresolved literal other than the unknown cannot occur.
			return 0, fmt.Errorf("%w: unresolved leaf %q is not the unknown", ErrUnsolvable, g.names[cur])
		}
		switch {
		case known[n.left] && known[n.right]:
			return 0, fmt.Errorf("%w: node %q fully resolved on the unknown spine", ErrUnsolvable, g.names[cur])
		case !known[n.left] && !known[n.right]:
			return 0, fmt.Errorf("%w: two unknowns under node %q", ErrUnsolvable, g.names[cur])
		case known[n.right]:
			target, err = invertLeft(n.op, target, values[n.right])
			cur = n.left
		default:
			target, err = invertRight(n.op, target, values[n.left])
			cur = n.right
		}
		if err != nil {
			return 0, err
		}
	}
	return target, nil
}

// partialEvaluate runs the Kahn walk with the unknown leaf excluded,
// returning per-index values and a resolved flag. It distinguishes a
// genuine cycle from nodes merely waiting on the unknown by checking
// overall acyclicity first.
func (g *Graph) partialEvaluate(unknown int) (values []int64, known []bool, err error) {
	adj, indegree := g.dependents()

	// Acyclicity check: a plain topological count with every literal
	// (including the unknown) seeded. A stall here is a true cycle.
	if stalled := g.topoStalls(adj, append([]int(nil), indegree...)); stalled > 0 {
		return nil, nil, fmt.Errorf("%w: %d nodes unresolved", ErrCycle, stalled)
	}

	values = make([]int64, len(g.nodes))
	known = make([]bool, len(g.nodes))
	queue := make([]int, 0, len(g.nodes))
	for i, n := range g.nodes {
		if n.kind == KindLiteral && i != unknown {
			values[i] = n.value
			known[i] = true
			queue = append(queue, i)
		}
	}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]

		n := g.nodes[i]
		if n.kind == KindBinary {
			v, aerr := apply(n.op, values[n.left], values[n.right])
			if aerr != nil {
				return nil, nil, fmt.Errorf("at node %q: %w", g.names[i], aerr)
			}
			values[i] = v
			known[i] = true
		}
		for _, dep := range adj[i] {
			indegree[dep]--
			if indegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	return values, known, nil
}

// topoStalls counts nodes a full Kahn walk cannot reach; nonzero means
// the dependency graph has a cycle.
func (g *Graph) topoStalls(adj [][]int, indegree []int) int {
	queue := make([]int, 0, len(g.nodes))
	for i := range g.nodes {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}
	seen := 0
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		seen++
		for _, dep := range adj[i] {
			indegree[dep]--
			if indegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	return len(g.nodes) - seen
}

// invertLeft solves left from "left op right = target" given right.
func invertLeft(op Op, target, right int64) (int64, error) {
	switch op {
	case OpAdd:
		return apply(OpSub, target, right)
	case OpSub:
		return apply(OpAdd, target, right)
	case OpMul:
		if right == 0 {
			return 0, fmt.Errorf("%w: inverting multiplication by zero", ErrDivisionByZero)
		}
		if target%right != 0 {
			return 0, fmt.Errorf("%w: %d not divisible by %d", ErrUnsolvable, target, right)
		}
		return apply(OpDiv, target, right)
	case OpDiv:
		return apply(OpMul, target, right)
	default:
		return 0, fmt.Errorf("exprgraph: unknown operator %q", byte(op))
	}
}

// invertRight solves right from "left op right = target" given left.
func invertRight(op Op, target, left int64) (int64, error) {
	switch op {
	case OpAdd:
		return apply(OpSub, target, left)
	case OpSub:
		// left - right = target  =>  right = left - target
		return apply(OpSub, left, target)
	case OpMul:
		if left == 0 {
			return 0, fmt.Errorf("%w: inverting multiplication by zero", ErrDivisionByZero)
		}
		if target%left != 0 {
			return 0, fmt.Errorf("%w: %d not divisible by %d", ErrUnsolvable, target, left)
		}
		return apply(OpDiv, target, left)
	case OpDiv:
		// left / right = target  =>  right = left / target
		if target == 0 {
			return 0, fmt.Errorf("%w: inverting division with zero target", ErrDivisionByZero)
		}
		if left%target != 0 {
			return 0, fmt.Errorf("%w: %d not divisible by %d", ErrUnsolvable, left, target)
		}
		return apply(OpDiv, left, target)
	default:
		return 0, fmt.Errorf("exprgraph: unknown operator %q", byte(op))
	}
}
