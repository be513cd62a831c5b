package expr

import (
	"fmt"

	"github.com/wildfunctions/reach_target/pkg/rational"
)

var binaryOpSymbols = map[BinaryOp]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

func (op BinaryOp) String() string {
	if s, ok := binaryOpSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

// String methods

func (v *ValueNode) String() string {
	return v.Val.String()
}

func (b *BinaryNode) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}

// LaTeX methods

func (v *ValueNode) LaTeX() string {
	return latexValue(v.Val)
}

func (b *BinaryNode) LaTeX() string {
	left := b.Left.LaTeX()
	right := b.Right.LaTeX()
	switch b.Op {
	case OpAdd:
		return fmt.Sprintf("\\left(%s + %s\\right)", left, right)
	case OpSub:
		return fmt.Sprintf("\\left(%s - %s\\right)", left, right)
	case OpMul:
		return fmt.Sprintf("\\left(%s \\cdot %s\\right)", left, right)
	case OpDiv:
		return fmt.Sprintf("\\frac{%s}{%s}", left, right)
	default:
		return ""
	}
}

func latexValue(r rational.Rational) string {
	if r.Den == 1 {
		return r.String()
	}
	return fmt.Sprintf("\\frac{%d}{%d}", r.Num, r.Den)
}
