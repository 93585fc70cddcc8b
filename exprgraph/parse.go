package exprgraph

import (
	"github.com/solventlabs/solvent/parsec"
)

// Text format, one node per line:
//
//	root: pppw + sjmn
//	dbpl: 5
//
// Names are runs of ASCII letters; literals are signed 64-bit.

// exprRule matches a literal or "left op right". The literal
// alternative is listed first: a leading digit or sign can only start
// a literal, a leading letter only an operand name, so the order is
// unambiguous, but it keeps the error for malformed lines pointing at
// the operand form, which is the more common input.
func exprRule(s parsec.State) (Expr, parsec.State, error) {
	return parsec.Alt(
		parsec.Map(parsec.Rule[int64](parsec.Int64), Literal),
		parsec.Map(
			parsec.Seq2(
				parsec.Rule[string](parsec.Alpha1),
				parsec.Seq2(
					parsec.Delimited(parsec.Char(' '), parsec.OneOf("+-*/"), parsec.Char(' ')),
					parsec.Rule[string](parsec.Alpha1),
				),
			),
			func(p parsec.Pair[string, parsec.Pair[byte, string]]) Expr {
				return Binary(p.First, Op(p.Second.First), p.Second.Second)
			},
		),
	)(s)
}

// nodeRule matches a full "name: expr" line.
func nodeRule(s parsec.State) (Node, parsec.State, error) {
	return parsec.Map(
		parsec.SeparatedPair(
			parsec.Rule[string](parsec.Alpha1),
			parsec.Tag(": "),
			parsec.Rule[Expr](exprRule),
		),
		func(p parsec.Pair[string, Expr]) Node {
			return Node{ID: p.First, Expr: p.Second}
		},
	)(s)
}

// ParseGraph parses newline-separated node definitions and builds the
// graph. A trailing newline is tolerated. Malformed lines surface as
// *parsec.ParseError with the offending offset; semantic problems
// (duplicates, dangling references) as exprgraph sentinels.
func ParseGraph(input string) (*Graph, error) {
	rule := parsec.Terminated(
		parsec.Lines(parsec.Rule[Node](nodeRule)),
		parsec.Opt(parsec.Rule[string](parsec.Newline)),
	)
	defs, err := parsec.ParseAll(rule, input)
	if err != nil {
		return nil, err
	}
	return NewGraph(defs)
}
