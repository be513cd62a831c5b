package strategy

import (
	"iter"

	"github.com/wildfunctions/reach_target/pkg/expr"
	"github.com/wildfunctions/reach_target/pkg/rational"
	"github.com/wildfunctions/reach_target/pkg/seq"
	"github.com/wildfunctions/reach_target/pkg/shape"
)

func init() {
	Register("values", func() Strategy { return &ValuesFirst{} })
	Register("operators", func() Strategy { return &OperatorsFirst{} })
	Register("shapes", func() Strategy { return &ShapesFirst{} })
}

// ValuesFirst varies the value permutation slowest, then the operator
// assignment, then the shape.
type ValuesFirst struct{}

func (s *ValuesFirst) Name() string { return "values" }

func (s *ValuesFirst) Instances(values []rational.Rational, shapes []*shape.Shape) iter.Seq[*expr.Instance] {
	return func(yield func(*expr.Instance) bool) {
		for order := range seq.Permutations(seq.Indices(len(values))) {
			vals := seq.Apply(order, values)
			for ops := range expr.Assignments(operatorSlots(values)) {
				for _, sh := range shapes {
					if !yield(&expr.Instance{Values: vals, Ops: ops, Shape: sh}) {
						return
					}
				}
			}
		}
	}
}

// OperatorsFirst varies the operator assignment slowest, then the value
// permutation, then the shape.
type OperatorsFirst struct{}

func (s *OperatorsFirst) Name() string { return "operators" }

func (s *OperatorsFirst) Instances(values []rational.Rational, shapes []*shape.Shape) iter.Seq[*expr.Instance] {
	return func(yield func(*expr.Instance) bool) {
		for ops := range expr.Assignments(operatorSlots(values)) {
			for order := range seq.Permutations(seq.Indices(len(values))) {
				vals := seq.Apply(order, values)
				for _, sh := range shapes {
					if !yield(&expr.Instance{Values: vals, Ops: ops, Shape: sh}) {
						return
					}
				}
			}
		}
	}
}

// ShapesFirst varies the shape slowest, then the value permutation, then
// the operator assignment.
type ShapesFirst struct{}

func (s *ShapesFirst) Name() string { return "shapes" }

func (s *ShapesFirst) Instances(values []rational.Rational, shapes []*shape.Shape) iter.Seq[*expr.Instance] {
	return func(yield func(*expr.Instance) bool) {
		for _, sh := range shapes {
			for order := range seq.Permutations(seq.Indices(len(values))) {
				vals := seq.Apply(order, values)
				for ops := range expr.Assignments(operatorSlots(values)) {
					if !yield(&expr.Instance{Values: vals, Ops: ops, Shape: sh}) {
						return
					}
				}
			}
		}
	}
}
