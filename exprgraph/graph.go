package exprgraph

import (
	"fmt"
	"strings"
)

// node is the index-resolved form of an Expr: operand names replaced
// by dense indices into the graph's node arrays.
type node struct {
	kind        ExprKind
	value       int64
	left, right int
	op          Op
}

// Graph is an immutable DAG of named expressions. Names are interned
// to dense indices at construction so evaluation runs over
// index-addressed arrays rather than string-keyed maps.
type Graph struct {
	names []string       // index -> name, in definition order
	index map[string]int // name -> index
	nodes []node
}

// NewGraph builds a Graph from node definitions, validating that every
// name is defined exactly once and every operand reference resolves.
// Acyclicity is not checked here; Evaluate and SolveUnknown report
// ErrCycle when the topological walk stalls.
// Complexity: O(V) time and memory.
func NewGraph(defs []Node) (*Graph, error) {
	g := &Graph{
		names: make([]string, 0, len(defs)),
		index: make(map[string]int, len(defs)),
		nodes: make([]node, len(defs)),
	}
	for _, d := range defs {
		if _, dup := g.index[d.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNode, d.ID)
		}
		g.index[d.ID] = len(g.names)
		g.names = append(g.names, d.ID)
	}
	for i, d := range defs {
		n := node{kind: d.Expr.Kind, value: d.Expr.Value, op: d.Expr.Op, left: -1, right: -1}
		if d.Expr.Kind == KindBinary {
			li, ok := g.index[d.Expr.Left]
			if !ok {
				return nil, fmt.Errorf("%w: %q (left operand of %q)", ErrUndefinedReference, d.Expr.Left, d.ID)
			}
			ri, ok := g.index[d.Expr.Right]
			if !ok {
				return nil, fmt.Errorf("%w: %q (right operand of %q)", ErrUndefinedReference, d.Expr.Right, d.ID)
			}
			n.left, n.right = li, ri
		}
		g.nodes[i] = n
	}
	return g, nil
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int { return len(g.nodes) }

// Has reports whether a node with the given name is defined.
func (g *Graph) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

// dependents builds the reverse adjacency (operand -> dependent) and
// per-node unresolved-operand counts. Operand slots are counted
// individually, so a node whose operands coincide has indegree 2.
func (g *Graph) dependents() (adj [][]int, indegree []int) {
	adj = make([][]int, len(g.nodes))
	indegree = make([]int, len(g.nodes))
	for i, n := range g.nodes {
		if n.kind != KindBinary {
			continue
		}
		adj[n.left] = append(adj[n.left], i)
		adj[n.right] = append(adj[n.right], i)
		indegree[i] = 2
	}
	return adj, indegree
}

// Render produces the canonical text form, one "name: expr" line per
// node in definition order. Parsing the result with ParseGraph yields
// an equal graph.
func (g *Graph) Render() string {
	var b strings.Builder
	for i, n := range g.nodes {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(g.names[i])
		b.WriteString(": ")
		if n.kind == KindLiteral {
			fmt.Fprintf(&b, "%d", n.value)
		} else {
			fmt.Fprintf(&b, "%s %s %s", g.names[n.left], n.op, g.names[n.right])
		}
	}
	return b.String()
}
