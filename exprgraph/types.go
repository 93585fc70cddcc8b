// Package exprgraph type definitions and sentinel errors.
package exprgraph

import "errors"

// Sentinel errors for graph construction, evaluation and solving.
var (
	// ErrDuplicateNode indicates the same name was defined twice.
	ErrDuplicateNode = errors.New("exprgraph: duplicate node definition")
	// ErrUndefinedReference indicates an operand or lookup names a node
	// that was never defined.
	ErrUndefinedReference = errors.New("exprgraph: reference to undefined node")
	// ErrCycle indicates the dependency graph is not acyclic.
	ErrCycle = errors.New("exprgraph: dependency cycle")
	// ErrDivisionByZero indicates a division whose divisor evaluated to zero.
	ErrDivisionByZero = errors.New("exprgraph: division by zero")
	// ErrOverflow indicates 64-bit arithmetic overflow during evaluation.
	ErrOverflow = errors.New("exprgraph: integer overflow")
	// ErrUnsolvable indicates inverse mode found zero or two unknowns
	// where exactly one was required, or no integer solution exists.
	ErrUnsolvable = errors.New("exprgraph: equation not solvable for a single unknown")
)

// Op is a binary arithmetic operator.
type Op byte

// Supported operators; integer division truncates toward zero.
const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
	OpDiv Op = '/'
)

// String returns the operator's single-character form.
func (op Op) String() string { return string(byte(op)) }

// ExprKind discriminates the Expr variants.
type ExprKind uint8

const (
	// KindLiteral is a constant int64 leaf.
	KindLiteral ExprKind = iota
	// KindBinary is an operation over two named operands.
	KindBinary
)

// Expr is a tagged variant: a literal value or a binary operation over
// two named operands. Left/Right/Op are meaningful only for
// KindBinary, Value only for KindLiteral.
type Expr struct {
	Kind        ExprKind
	Value       int64
	Left, Right string
	Op          Op
}

// Literal builds a constant expression.
func Literal(v int64) Expr {
	return Expr{Kind: KindLiteral, Value: v}
}

// Binary builds an operation expression over two named operands.
func Binary(left string, op Op, right string) Expr {
	return Expr{Kind: KindBinary, Left: left, Op: op, Right: right}
}

// Node pairs a unique name with its expression.
type Node struct {
	ID   string
	Expr Expr
}
