// Package solvent is a toolkit for text-puzzle pipelines: parse a
// bespoke line format, compute over the resulting structure, print a
// single answer.
//
// The module is organized as small, composable packages:
//
//	parsec/    — parser-combinator primitives: typed rules over an
//	             immutable input state, offset-carrying errors
//	exprgraph/ — named-expression dependency graph: topological
//	             evaluation with checked arithmetic, plus an inverse
//	             mode that solves for one unknown leaf
//	interval/  — inclusive int64 intervals and merged coverage sets
//	grid/      — byte grids: BFS shortest paths, sightline visibility,
//	             and a falling-particle settling simulation
//	parallel/  — bounded worker pool: commutative map-reduce and a
//	             stop-on-first-hit candidate scan
//	solvers/   — complete puzzle solutions composing the above,
//	             registered by day and part
//
// The solvent command (cmd/solvent) runs a registered solver against
// an input file; see internal/cli.
package solvent
