package strategy

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/wildfunctions/reach_target/pkg/expr"
	"github.com/wildfunctions/reach_target/pkg/rational"
	"github.com/wildfunctions/reach_target/pkg/shape"
)

// Strategy decides the nesting order of the search product
// {value permutations} x {operator assignments} x {shapes}. Every strategy
// visits each combination exactly once; only the order differs.
type Strategy interface {
	Name() string
	Instances(values []rational.Rational, shapes []*shape.Shape) iter.Seq[*expr.Instance]
}

// Default is the strategy used when none is configured.
const Default = "values"

var registry = map[string]func() Strategy{}

// Register adds a strategy constructor to the registry.
func Register(name string, constructor func() Strategy) {
	registry[name] = constructor
}

// Get returns a strategy by name.
func Get(name string) (Strategy, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	return ctor(), nil
}

// Names returns all registered strategy names, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// operatorSlots is the number of operators an expression over n values needs.
func operatorSlots(values []rational.Rational) int {
	return len(values) - 1
}
