package expr

import "github.com/wildfunctions/reach_target/pkg/rational"

// ExprNode is the interface for all expression tree nodes.
type ExprNode interface {
	Eval() (rational.Rational, bool)
	String() string
	LaTeX() string
	Clone() ExprNode
	NodeCount() int
	Depth() int
}

// BinaryOp identifies a binary operation.
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
)

// Operators returns the canonical listing order used by every generator
// that enumerates operator choices.
func Operators() []BinaryOp {
	return []BinaryOp{OpAdd, OpSub, OpMul, OpDiv}
}

// ValueNode holds a single rational value.
type ValueNode struct {
	Val rational.Rational
}

// BinaryNode applies a binary operation to two child expressions.
type BinaryNode struct {
	Op          BinaryOp
	Left, Right ExprNode
}

func (v *ValueNode) Clone() ExprNode {
	return &ValueNode{Val: v.Val}
}

func (b *BinaryNode) Clone() ExprNode {
	return &BinaryNode{
		Op:    b.Op,
		Left:  b.Left.Clone(),
		Right: b.Right.Clone(),
	}
}

func (v *ValueNode) NodeCount() int { return 1 }
func (b *BinaryNode) NodeCount() int {
	return 1 + b.Left.NodeCount() + b.Right.NodeCount()
}

func (v *ValueNode) Depth() int { return 1 }
func (b *BinaryNode) Depth() int {
	return 1 + max(b.Left.Depth(), b.Right.Depth())
}
