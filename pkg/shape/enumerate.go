package shape

import (
	"fmt"
	"slices"
)

// Enumerate returns every distinct shape with exactly the given number of
// leaves, sorted by Compare. It panics if leaves < 2; a single value has no
// operator to bind and must be handled by the caller.
//
// Shapes with k+1 leaves are grown from those with k leaves by replacing each
// leaf position in turn with a two-leaf node. Different replacement paths
// reach the same shape, so results are collected into an ordered set.
func Enumerate(leaves int) []*Shape {
	if leaves < 2 {
		panic(fmt.Sprintf("shape: Enumerate needs at least 2 leaves, got %d", leaves))
	}
	current := []*Shape{Join(Leaf(), Leaf())}
	for k := 2; k < leaves; k++ {
		var next set
		for _, s := range current {
			for _, grown := range s.expand() {
				next.insert(grown)
			}
		}
		current = next.items
	}
	return current
}

// expand returns the shapes obtained by splitting each leaf of s, one at a
// time, in left-to-right leaf order.
func (s *Shape) expand() []*Shape {
	if s.IsLeaf() {
		return []*Shape{Join(Leaf(), Leaf())}
	}
	var out []*Shape
	for _, l := range s.left.expand() {
		out = append(out, Join(l, s.right.Clone()))
	}
	for _, r := range s.right.expand() {
		out = append(out, Join(s.left.Clone(), r))
	}
	return out
}

// set is an ordered set of shapes backed by a sorted slice.
type set struct {
	items []*Shape
}

// insert adds s unless a structurally equal shape is present and reports
// whether it was added.
func (st *set) insert(s *Shape) bool {
	i, found := slices.BinarySearchFunc(st.items, s, Compare)
	if found {
		return false
	}
	st.items = slices.Insert(st.items, i, s)
	return true
}
