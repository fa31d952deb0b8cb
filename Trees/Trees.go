package Trees

// Tree represents A binary search tree like structure implemented using nodes.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// If an implementation didn't specify anything special, then the implemented
// receivers follows the behaviors defined here. Methods implemented recursively
// should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Repeated values are allowed.
	Insert(v T)
	//Delete one occurrence of v from the Tree. Returning true if something
	//was removed, false if v isn't in the Tree, in which case the Tree is unchanged.
	Delete(v T) bool
	//Search returns whether v is in the Tree.
	Search(v T) bool
	//Count the occurrences of v.
	Count(v T) uint
	//Height of the tree. -1 for an empty tree, 0 for a single node.
	Height() int
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree, repeated values included.
	Size() uint
	//InOrder returns all elements in non-decreasing order. The returned slice
	//is a copy; later modifications to the tree don't affect it.
	InOrder() []T
	//LevelOrder returns all elements breadth first, left before right on each level.
	LevelOrder() []T
	//Ascend calls f on the elements in in-order until f returns false.
	//The tree must not be modified during the iteration.
	Ascend(f func(T) bool)
	//Clear removes all elements.
	Clear()
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the ordering of the tree.
	Corrupt() bool
}
