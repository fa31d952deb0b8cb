package Trees

import "golang.org/x/exp/constraints"

// A node in the OrderedTree.
// l holds values strictly less than v, r holds values greater than or equal to v.
type node[T constraints.Ordered] struct {
	v    T
	l, r nodePtr[T]
}

// Pointer to a node. nil means an absent child.
type nodePtr[T constraints.Ordered] *node[T]

// leftmost node of the subtree rooting at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func leftmost[T constraints.Ordered](n nodePtr[T]) nodePtr[T] {
	for n.l != nil {
		n = n.l
	}
	return n
}

// rightmost node of the subtree rooting at n. n mustn't be nil.
// Time: O(D); Space: O(1)
func rightmost[T constraints.Ordered](n nodePtr[T]) nodePtr[T] {
	for n.r != nil {
		n = n.r
	}
	return n
}
