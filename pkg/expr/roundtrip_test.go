package expr

import (
	"math/big"
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/reach_target/pkg/rational"
	"github.com/wildfunctions/reach_target/pkg/seq"
	"github.com/wildfunctions/reach_target/pkg/shape"
)

// infix is an independent grammar for the fully parenthesized output of
// Instance.String, evaluated with math/big so it shares no code with the
// engine's own arithmetic.
type infix struct {
	Left  *term  `@@`
	Op    string `( @("+" | "-" | "*" | "/")`
	Right *term  `  @@ )?`
}

type term struct {
	Group  *infix  `  "(" @@ ")"`
	Number *number `| @@`
}

type number struct {
	Neg   bool  `@"-"?`
	Value int64 `@Int`
}

var infixParser = participle.MustBuild[infix](participle.UseLookahead(2))

func (e *infix) eval() *big.Rat {
	left := e.Left.eval()
	if e.Right == nil {
		return left
	}
	right := e.Right.eval()
	out := new(big.Rat)
	switch e.Op {
	case "+":
		return out.Add(left, right)
	case "-":
		return out.Sub(left, right)
	case "*":
		return out.Mul(left, right)
	default:
		return out.Quo(left, right)
	}
}

func (t *term) eval() *big.Rat {
	if t.Group != nil {
		return t.Group.eval()
	}
	v := new(big.Rat).SetInt64(t.Number.Value)
	if t.Number.Neg {
		v.Neg(v)
	}
	return v
}

func TestRenderedExpressionReevaluates(t *testing.T) {
	inputs := [][]int64{
		{1, 2, 3, 4},
		{3, 3, 8, 8},
		{-2, 0, 7},
	}
	for _, values := range inputs {
		vals := rational.FromInts(values)
		shapes := shape.Enumerate(len(values))
		checked := 0
		for order := range seq.Permutations(seq.Indices(len(values))) {
			for ops := range Assignments(len(values) - 1) {
				for _, s := range shapes {
					in, err := NewInstance(seq.Apply(order, vals), ops, s)
					require.NoError(t, err)
					want, ok := in.Evaluate()
					if !ok {
						continue
					}
					src := in.String()
					parsed, err := infixParser.ParseString("", src)
					require.NoError(t, err, "parse %q", src)
					got := parsed.eval()
					require.Zero(t, got.Cmp(want.Rat()), "%s: parsed %s, evaluated %s", src, got.RatString(), want)
					checked++
				}
			}
		}
		require.Positive(t, checked)
	}
}
