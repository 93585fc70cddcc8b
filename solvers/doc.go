// Package solvers wires the core packages (parsec, exprgraph,
// interval, grid, parallel) into complete puzzle solutions, registered
// in a static table keyed by day and part.
//
// Every solver has the same shape: func(input string) (string, error).
// Input is the raw puzzle text; the answer comes back as a string so
// letter answers (crate tops) and numeric ones share one signature.
// Parse failures and semantic errors propagate wrapped; a solver never
// panics on malformed input.
package solvers
