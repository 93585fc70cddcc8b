// Package exprgraph evaluates a DAG of named integer expressions in
// dependency order, and solves the inverse problem of finding the one
// leaf value that makes a designated root equality hold.
//
// Each node is either a literal int64 or a binary operation over two
// other named nodes. The graph is built once — names are interned to
// dense indices at construction — and is immutable afterwards; both
// evaluation modes are read-only walks.
//
// Forward mode (Evaluate) resolves every node via Kahn's topological
// order. Cycles, references to undefined names, division by zero and
// 64-bit overflow are all fatal, surfaced as sentinel errors rather
// than silently wrapped or clamped results.
//
// Inverse mode (SolveUnknown) runs in two phases: a forward pass
// resolves everything not transitively dependent on the unknown leaf,
// then the unresolved spine is walked from the root outward, applying
// the algebraic inverse of each operator until the unknown is reached.
// At every step exactly one of {target, left, right} may be
// unresolved; anything else means the input is malformed and solving
// fails with ErrUnsolvable instead of guessing.
package exprgraph
