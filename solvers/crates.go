package solvers

import (
	"fmt"

	"github.com/solventlabs/solvent/parsec"
)

// Day 5: a crate-stack drawing followed by crane instructions.
//
//	    [D]
//	[N] [C]
//	[Z] [M] [P]
//	 1   2   3
//
//	move 1 from 2 to 1
//
// Part 1 moves crates one at a time (lifted runs arrive reversed);
// part 2 lifts whole runs, preserving order. The answer is the top
// crate of each stack, read left to right.

type crateMove struct {
	count, from, to int
}

type cratePuzzle struct {
	stacks [][]byte // bottom to top
	moves  []crateMove
}

// crateRow matches one drawing line: "[X]" or three-space blanks,
// separated by single spaces. A blank slot parses as byte zero.
func crateRow(s parsec.State) ([]byte, parsec.State, error) {
	cell := parsec.Alt(
		parsec.Delimited(
			parsec.Char('['),
			parsec.OneOf("ABCDEFGHIJKLMNOPQRSTUVWXYZ"),
			parsec.Char(']'),
		),
		parsec.Map(parsec.Tag("   "), func(string) byte { return 0 }),
	)
	return parsec.SepBy1(parsec.Char(' '), cell)(s)
}

// labelRow matches the stack numbers under the drawing.
func labelRow(s parsec.State) ([]uint64, parsec.State, error) {
	return parsec.Delimited(
		parsec.Opt(parsec.Rule[string](parsec.Space1)),
		parsec.SepBy1(parsec.Rule[string](parsec.Space1), parsec.Rule[uint64](parsec.Uint64)),
		parsec.Opt(parsec.Rule[string](parsec.Space1)),
	)(s)
}

// moveRule matches "move N from X to Y".
func moveRule(s parsec.State) (crateMove, parsec.State, error) {
	return parsec.Map(
		parsec.Seq2(
			parsec.Preceded(parsec.Tag("move "), parsec.Rule[int64](parsec.Int64)),
			parsec.Seq2(
				parsec.Preceded(parsec.Tag(" from "), parsec.Rule[int64](parsec.Int64)),
				parsec.Preceded(parsec.Tag(" to "), parsec.Rule[int64](parsec.Int64)),
			),
		),
		func(p parsec.Pair[int64, parsec.Pair[int64, int64]]) crateMove {
			return crateMove{
				count: int(p.First),
				from:  int(p.Second.First),
				to:    int(p.Second.Second),
			}
		},
	)(s)
}

// crateFile matches the whole input: drawing, label row, blank line,
// then the move list.
func crateFile(s parsec.State) (cratePuzzle, parsec.State, error) {
	var zero cratePuzzle

	rows, rest, err := parsec.Lines(parsec.Rule[[]byte](crateRow))(s)
	if err != nil {
		return zero, s, err
	}
	if _, rest, err = parsec.Newline(rest); err != nil {
		return zero, s, err
	}
	labels, rest, err := labelRow(rest)
	if err != nil {
		return zero, s, err
	}
	if _, rest, err = parsec.Newline(rest); err != nil {
		return zero, s, err
	}
	if _, rest, err = parsec.Newline(rest); err != nil {
		return zero, s, err
	}
	moves, rest, err := parsec.Lines(parsec.Rule[crateMove](moveRule))(rest)
	if err != nil {
		return zero, s, err
	}

	width := len(labels)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	stacks := make([][]byte, width)
	for i := len(rows) - 1; i >= 0; i-- {
		for j, c := range rows[i] {
			if c != 0 {
				stacks[j] = append(stacks[j], c)
			}
		}
	}
	return cratePuzzle{stacks: stacks, moves: moves}, rest, nil
}

func parseCrates(input string) (cratePuzzle, error) {
	rule := parsec.Terminated(
		parsec.Rule[cratePuzzle](crateFile),
		parsec.Opt(parsec.Rule[string](parsec.Newline)),
	)
	return parsec.ParseAll(rule, input)
}

// rearrange applies the moves. bulk selects whether a lifted run keeps
// its order (true) or arrives crate by crate, reversed (false).
func (p *cratePuzzle) rearrange(bulk bool) error {
	for _, m := range p.moves {
		if m.from < 1 || m.from > len(p.stacks) || m.to < 1 || m.to > len(p.stacks) {
			return fmt.Errorf("%w: move addresses stack outside 1..%d", ErrMalformedInput, len(p.stacks))
		}
		if m.from == m.to {
			continue
		}
		src := p.stacks[m.from-1]
		if m.count < 0 || m.count > len(src) {
			return fmt.Errorf("%w: lifting %d crates from a stack of %d", ErrMalformedInput, m.count, len(src))
		}
		cut := len(src) - m.count
		if bulk {
			p.stacks[m.to-1] = append(p.stacks[m.to-1], src[cut:]...)
		} else {
			for i := len(src) - 1; i >= cut; i-- {
				p.stacks[m.to-1] = append(p.stacks[m.to-1], src[i])
			}
		}
		p.stacks[m.from-1] = src[:cut]
	}
	return nil
}

// tops reads the answer string off the stack tops; empty stacks are
// skipped.
func (p *cratePuzzle) tops() string {
	out := make([]byte, 0, len(p.stacks))
	for _, st := range p.stacks {
		if len(st) > 0 {
			out = append(out, st[len(st)-1])
		}
	}
	return string(out)
}

func solveCratesSingle(input string) (string, error) {
	return solveCrates(input, false)
}

func solveCratesBulk(input string) (string, error) {
	return solveCrates(input, true)
}

func solveCrates(input string, bulk bool) (string, error) {
	puzzle, err := parseCrates(input)
	if err != nil {
		return "", fmt.Errorf("crates: %w", err)
	}
	if err := puzzle.rearrange(bulk); err != nil {
		return "", fmt.Errorf("crates: %w", err)
	}
	return puzzle.tops(), nil
}
