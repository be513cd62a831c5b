package expr

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildfunctions/reach_target/pkg/rational"
	"github.com/wildfunctions/reach_target/pkg/shape"
)

func leaf() *shape.Shape { return shape.Leaf() }

func join(l, r *shape.Shape) *shape.Shape { return shape.Join(l, r) }

func TestInstanceEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		values []int64
		ops    []BinaryOp
		shape  *shape.Shape
		want   rational.Rational
		render string
	}{
		{
			name:   "right nested",
			values: []int64{1, 2, 3},
			ops:    []BinaryOp{OpAdd, OpMul},
			shape:  join(leaf(), join(leaf(), leaf())),
			want:   rational.FromInt(7),
			render: "(1 + (2 * 3))",
		},
		{
			name:   "left nested",
			values: []int64{1, 2, 3},
			ops:    []BinaryOp{OpMul, OpAdd},
			shape:  join(join(leaf(), leaf()), leaf()),
			want:   rational.FromInt(9),
			render: "((1 + 2) * 3)",
		},
		{
			name:   "left subtree consumes k-1 operators",
			values: []int64{1, 2, 3, 4, 5},
			ops:    []BinaryOp{OpSub, OpAdd, OpMul, OpDiv},
			shape:  join(join(leaf(), join(leaf(), leaf())), join(leaf(), leaf())),
			want:   rational.New(31, 5),
			render: "((1 + (2 * 3)) - (4 / 5))",
		},
		{
			name:   "classic 24",
			values: []int64{8, 3, 8, 3},
			ops:    []BinaryOp{OpDiv, OpSub, OpDiv},
			shape:  join(leaf(), join(leaf(), join(leaf(), leaf()))),
			want:   rational.FromInt(24),
			render: "(8 / (3 - (8 / 3)))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, err := NewInstance(rational.FromInts(tt.values), tt.ops, tt.shape)
			require.NoError(t, err)

			got, ok := in.Evaluate()
			require.True(t, ok)
			assert.True(t, rational.Equal(got, tt.want), "got %s, want %s", got, tt.want)
			assert.Equal(t, tt.render, in.String())

			tree := in.Build()
			built, ok := tree.Eval()
			require.True(t, ok)
			assert.Equal(t, got, built)
			assert.Equal(t, in.String(), tree.String())
			assert.Equal(t, 2*len(tt.values)-1, tree.NodeCount())
			assert.Equal(t, tree.LaTeX(), in.LaTeX())
		})
	}
}

func TestInstanceLeaf(t *testing.T) {
	in, err := NewInstance([]rational.Rational{rational.FromInt(5)}, nil, leaf())
	require.NoError(t, err)

	got, ok := in.Evaluate()
	require.True(t, ok)
	assert.Equal(t, rational.FromInt(5), got)
	assert.Equal(t, "5", in.String())
}

func TestInstanceDivisionByZeroPrunes(t *testing.T) {
	in, err := NewInstance(rational.FromInts([]int64{5, 0}), []BinaryOp{OpDiv}, join(leaf(), leaf()))
	require.NoError(t, err)

	_, ok := in.Evaluate()
	assert.False(t, ok)
	assert.Equal(t, "(5 / 0)", in.String(), "rendering does not depend on evaluation")

	_, ok = in.Build().Eval()
	assert.False(t, ok)
}

func TestInstanceOverflowPrunes(t *testing.T) {
	big := int64(1) << 40
	in, err := NewInstance(rational.FromInts([]int64{big, big}), []BinaryOp{OpMul}, join(leaf(), leaf()))
	require.NoError(t, err)

	_, ok := in.Evaluate()
	assert.False(t, ok)
}

func TestNewInstanceLengthMismatch(t *testing.T) {
	s := join(leaf(), leaf())

	_, err := NewInstance(rational.FromInts([]int64{1, 2, 3}), []BinaryOp{OpAdd}, s)
	assert.ErrorIs(t, err, ErrLeafCount)

	_, err = NewInstance(rational.FromInts([]int64{1, 2}), []BinaryOp{OpAdd, OpSub}, s)
	assert.ErrorIs(t, err, ErrOperatorCount)
}

func TestInstanceMismatchPanics(t *testing.T) {
	in := &Instance{
		Values: rational.FromInts([]int64{1, 2}),
		Ops:    nil,
		Shape:  join(leaf(), leaf()),
	}
	assert.Panics(t, func() { in.Evaluate() })
	assert.Panics(t, func() { _ = in.String() })
}

func TestAssignments(t *testing.T) {
	got := slices.Collect(Assignments(2))
	require.Len(t, got, 16)
	assert.Equal(t, []BinaryOp{OpAdd, OpAdd}, got[0])
	assert.Equal(t, []BinaryOp{OpAdd, OpSub}, got[1])
	assert.Equal(t, []BinaryOp{OpSub, OpAdd}, got[4])
	assert.Equal(t, []BinaryOp{OpDiv, OpDiv}, got[15])

	assert.Len(t, slices.Collect(Assignments(3)), 64)
}
