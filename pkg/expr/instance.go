package expr

import (
	"fmt"
	"iter"
	"strings"

	"github.com/wildfunctions/reach_target/pkg/rational"
	"github.com/wildfunctions/reach_target/pkg/seq"
	"github.com/wildfunctions/reach_target/pkg/shape"
)

// Instance pairs a shape with an ordered value list and an ordered operator
// list. It borrows all three; nothing is copied until Build is called.
//
// Operators bind to internal nodes in pre-order: a node takes Ops[0], its
// left subtree with k leaves takes the next k-1 operators, and its right
// subtree takes the rest. Values bind to leaves left to right. Evaluate,
// String, LaTeX and Build all follow this rule, so a rendered instance always
// shows the grouping that was evaluated.
type Instance struct {
	Values []rational.Rational
	Ops    []BinaryOp
	Shape  *shape.Shape
}

// NewInstance validates that values and ops fit s.
func NewInstance(values []rational.Rational, ops []BinaryOp, s *shape.Shape) (*Instance, error) {
	if len(values) != s.Leaves() {
		return nil, fmt.Errorf("%w: %d values for %d leaves", ErrLeafCount, len(values), s.Leaves())
	}
	if len(ops) != s.Internal() {
		return nil, fmt.Errorf("%w: %d operators for %d internal nodes", ErrOperatorCount, len(ops), s.Internal())
	}
	return &Instance{Values: values, Ops: ops, Shape: s}, nil
}

// Assignments yields every length-m operator sequence in canonical order,
// the rightmost position varying fastest.
func Assignments(m int) iter.Seq[[]BinaryOp] {
	return seq.Product(Operators(), m)
}

// split returns the instances bound to the left and right subtrees. It
// panics when the lengths do not fit the shape; that is a caller bug, not a
// search outcome.
func (in *Instance) split() (Instance, Instance) {
	in.check()
	k := in.Shape.Left().Leaves()
	left := Instance{Values: in.Values[:k], Ops: in.Ops[1:k], Shape: in.Shape.Left()}
	right := Instance{Values: in.Values[k:], Ops: in.Ops[k:], Shape: in.Shape.Right()}
	return left, right
}

func (in *Instance) check() {
	if len(in.Values) != in.Shape.Leaves() || len(in.Ops) != in.Shape.Internal() {
		panic(fmt.Sprintf("expr: instance with %d values and %d operators does not fit shape %s",
			len(in.Values), len(in.Ops), in.Shape))
	}
}

// Evaluate computes the value of the instance. It returns false if any
// subtree divides by zero or overflows.
func (in *Instance) Evaluate() (rational.Rational, bool) {
	if in.Shape.IsLeaf() {
		in.check()
		return in.Values[0], true
	}
	left, right := in.split()
	lv, ok := left.Evaluate()
	if !ok {
		return rational.Rational{}, false
	}
	rv, ok := right.Evaluate()
	if !ok {
		return rational.Rational{}, false
	}
	return in.Ops[0].Apply(lv, rv)
}

// String renders fully parenthesized infix, e.g. "((1 + 2) * 3)".
func (in *Instance) String() string {
	var sb strings.Builder
	in.write(&sb)
	return sb.String()
}

func (in *Instance) write(sb *strings.Builder) {
	if in.Shape.IsLeaf() {
		in.check()
		sb.WriteString(in.Values[0].String())
		return
	}
	left, right := in.split()
	sb.WriteByte('(')
	left.write(sb)
	sb.WriteByte(' ')
	sb.WriteString(in.Ops[0].String())
	sb.WriteByte(' ')
	right.write(sb)
	sb.WriteByte(')')
}

func (in *Instance) LaTeX() string {
	return in.Build().LaTeX()
}

// Build materializes the instance as an expression tree.
func (in *Instance) Build() ExprNode {
	if in.Shape.IsLeaf() {
		in.check()
		return &ValueNode{Val: in.Values[0]}
	}
	left, right := in.split()
	return &BinaryNode{
		Op:    in.Ops[0],
		Left:  left.Build(),
		Right: right.Build(),
	}
}
