// Package shape enumerates the distinct grouping structures (ordered binary
// trees) an expression over n values can take.
package shape

import "strings"

// Shape is an immutable ordered binary tree. A Shape with no children is a
// leaf; otherwise it owns exactly two subtrees.
type Shape struct {
	left, right *Shape
	leaves      int
}

// Leaf returns a new leaf.
func Leaf() *Shape {
	return &Shape{leaves: 1}
}

// Join returns an internal node owning l and r.
func Join(l, r *Shape) *Shape {
	if l == nil || r == nil {
		panic("shape: Join with nil subtree")
	}
	return &Shape{left: l, right: r, leaves: l.leaves + r.leaves}
}

func (s *Shape) IsLeaf() bool { return s.left == nil }

// Left returns the left subtree, or nil for a leaf.
func (s *Shape) Left() *Shape { return s.left }

// Right returns the right subtree, or nil for a leaf.
func (s *Shape) Right() *Shape { return s.right }

// Leaves returns the number of leaves, i.e. how many values the shape binds.
func (s *Shape) Leaves() int { return s.leaves }

// Internal returns the number of internal nodes, i.e. how many operators the
// shape binds.
func (s *Shape) Internal() int { return s.leaves - 1 }

// Clone returns a deep copy.
func (s *Shape) Clone() *Shape {
	if s.IsLeaf() {
		return Leaf()
	}
	return Join(s.left.Clone(), s.right.Clone())
}

// Compare orders shapes: a leaf sorts before any internal node, and two
// internal nodes compare by left subtree, then right subtree.
func Compare(a, b *Shape) int {
	switch {
	case a.IsLeaf() && b.IsLeaf():
		return 0
	case a.IsLeaf():
		return -1
	case b.IsLeaf():
		return 1
	}
	if c := Compare(a.left, b.left); c != 0 {
		return c
	}
	return Compare(a.right, b.right)
}

// Equal reports structural equality.
func Equal(a, b *Shape) bool { return Compare(a, b) == 0 }

// String renders a leaf as "x" and an internal node as "(L R)".
func (s *Shape) String() string {
	var sb strings.Builder
	s.write(&sb)
	return sb.String()
}

func (s *Shape) write(sb *strings.Builder) {
	if s.IsLeaf() {
		sb.WriteByte('x')
		return
	}
	sb.WriteByte('(')
	s.left.write(sb)
	sb.WriteByte(' ')
	s.right.write(sb)
	sb.WriteByte(')')
}
