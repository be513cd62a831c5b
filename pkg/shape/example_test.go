package shape_test

import (
	"fmt"

	"github.com/wildfunctions/reach_target/pkg/shape"
)

func ExampleEnumerate() {
	for _, s := range shape.Enumerate(3) {
		fmt.Println(s, s.Leaves())
	}
	// Output:
	// (x (x x)) 3
	// ((x x) x) 3
}
