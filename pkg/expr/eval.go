package expr

import "github.com/wildfunctions/reach_target/pkg/rational"

func (v *ValueNode) Eval() (rational.Rational, bool) {
	return v.Val, true
}

func (b *BinaryNode) Eval() (rational.Rational, bool) {
	left, ok := b.Left.Eval()
	if !ok {
		return rational.Rational{}, false
	}
	right, ok := b.Right.Eval()
	if !ok {
		return rational.Rational{}, false
	}
	return b.Op.Apply(left, right)
}

// Apply computes left op right. It returns false when the result has no
// value: a division by zero or an int64 overflow.
func (op BinaryOp) Apply(left, right rational.Rational) (rational.Rational, bool) {
	switch op {
	case OpAdd:
		return rational.Add(left, right)
	case OpSub:
		return rational.Sub(left, right)
	case OpMul:
		return rational.Mul(left, right)
	case OpDiv:
		return rational.Div(left, right)
	default:
		return rational.Rational{}, false
	}
}
