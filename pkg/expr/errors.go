package expr

import "errors"

var (
	// ErrLeafCount indicates a value list whose length differs from the
	// shape's leaf count.
	ErrLeafCount = errors.New("expr: value count does not match shape leaves")

	// ErrOperatorCount indicates an operator list whose length differs from
	// the shape's internal node count.
	ErrOperatorCount = errors.New("expr: operator count does not match shape internal nodes")
)
