package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/ordered-tree/Queues"
	"golang.org/x/exp/constraints"
)

// OrderedTree is an unbalanced binary search tree that allows repeated values.
// A value equal to the value at some node is always placed in the right subtree
// of that node, so the left subtree of a node holds values strictly less than it
// and the right subtree holds values greater than or equal to it.
// No rebalancing is done, so the height D of the tree depends only on the order
// of insertions and deletions: it is O(log n) on random input and n-1 on sorted input.
// The zero value is an empty tree ready to use.
// OrderedTree isn't safe for concurrent use.
type OrderedTree[T constraints.Ordered] struct {
	root nodePtr[T] //nil when the tree is empty.
	sz   uint
}

// New returns an empty OrderedTree.
func New[T constraints.Ordered]() *OrderedTree[T] {
	return &OrderedTree[T]{}
}

// From builds an OrderedTree by inserting the elements of sli one by one in
// the order they appear. The shape of the result is exactly the shape obtained by
// calling Insert with the same sequence.
// Time: O(n*D)
func From[T constraints.Ordered](sli []T) *OrderedTree[T] {
	u := New[T]()
	for _, v := range sli {
		u.Insert(v)
	}
	return u
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *OrderedTree[T]) Size() uint {
	return u.sz
}

// Insert [Tree.Insert]
// Descends from the root going left when v is less than the value of the current node
// and right otherwise, then attaches a new leaf at the first absent slot.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T]) Insert(v T) {
	u.sz++
	curPtr := &u.root
	for *curPtr != nil {
		if cur := *curPtr; v < cur.v {
			curPtr = &cur.l
		} else {
			curPtr = &cur.r
		}
	}
	*curPtr = &node[T]{v: v}
}

// Search [Tree.Search]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T]) Search(v T) bool {
	for cur := u.root; cur != nil; {
		if v == cur.v {
			return true
		} else if v < cur.v {
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return false
}

// Count [Tree.Count]
// All the occurrences of v lie on the search path of v, so one descent is enough.
// Time: O(D); Space: O(1)
func (u *OrderedTree[T]) Count(v T) (c uint) {
	for cur := u.root; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else {
			if v == cur.v {
				c++
			}
			cur = cur.r
		}
	}
	return
}

// remove one occurrence of v from the subtree rooting at cur recursively.
// Returns the new root of the subtree, which the caller stores back into the
// link it came from, and whether anything was removed.
// A node with two children takes the value of its in-order successor,
// after which the successor is removed from the right subtree; the successor
// has no left child, so that removal just splices it out.
// Time: O(D)
func (u *OrderedTree[T]) remove(cur nodePtr[T], v T) (nodePtr[T], bool) {
	if cur == nil {
		return nil, false
	}
	removed := false
	if v < cur.v {
		cur.l, removed = u.remove(cur.l, v)
	} else if v == cur.v {
		if cur.l == nil {
			return cur.r, true
		} else if cur.r == nil {
			return cur.l, true
		}
		cur.v = leftmost(cur.r).v
		cur.r, removed = u.remove(cur.r, cur.v)
	} else {
		cur.r, removed = u.remove(cur.r, v)
	}
	return cur, removed
}

// Delete [Tree.Delete]. Recursive.
// It is a wrapper for remove.
// Time: O(D)
func (u *OrderedTree[T]) Delete(v T) bool {
	var removed bool
	if u.root, removed = u.remove(u.root, v); removed {
		u.sz--
	}
	return removed
}

func height[T constraints.Ordered](n nodePtr[T]) int {
	if n == nil {
		return -1
	}
	return 1 + max(height(n.l), height(n.r))
}

// Height [Tree.Height]. Recursive.
// Nothing is cached, every node is visited.
// Time: O(n); Space: O(D)
func (u *OrderedTree[T]) Height() int {
	return height(u.root)
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T]) Minimum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return leftmost(u.root).v, true
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T]) Maximum() (T, bool) {
	if u.root == nil {
		return *new(T), false
	}
	return rightmost(u.root).v, true
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T]) Predecessor(v T) (T, bool) {
	var p nodePtr[T]
	for cur := u.root; cur != nil; {
		if v <= cur.v {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *OrderedTree[T]) Successor(v T) (T, bool) {
	var p nodePtr[T]
	for cur := u.root; cur != nil; {
		if v < cur.v {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

func inOrder[T constraints.Ordered](n nodePtr[T], s []T) []T {
	if n != nil {
		s = inOrder(n.l, s)
		s = append(s, n.v)
		s = inOrder(n.r, s)
	}
	return s
}

// InOrder [Tree.InOrder]. Recursive.
// Equal values come out in the order they were inserted.
// Time: O(n); Space: O(n)
func (u *OrderedTree[T]) InOrder() []T {
	return inOrder(u.root, make([]T, 0, u.sz))
}

// LevelOrder [Tree.LevelOrder]
// Time: O(n); Space: O(n)
func (u *OrderedTree[T]) LevelOrder() []T {
	s := make([]T, 0, u.sz)
	if u.root == nil {
		return s
	}
	q := Queues.MakeArrayQueue[nodePtr[T]](u.sz/2 + 1)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		s = append(s, cur.v)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
	return s
}

// Ascend [Tree.Ascend]
// Uses an explicit stack instead of recursion, so it works on degenerate trees
// of any depth.
// Time: amortized O(1) for each call to f. Space: O(D)
func (u *OrderedTree[T]) Ascend(f func(T) bool) {
	st := arraystack.New()
	for cur := u.root; cur != nil; cur = cur.l {
		st.Push(cur)
	}
	for top, ok := st.Pop(); ok; top, ok = st.Pop() {
		cur := top.(nodePtr[T])
		if !f(cur.v) {
			return
		}
		for cur = cur.r; cur != nil; cur = cur.l {
			st.Push(cur)
		}
	}
}

// Clear [Tree.Clear]
// The nodes are released together with the root.
// Time: O(1)
func (u *OrderedTree[T]) Clear() {
	u.root, u.sz = nil, 0
}

// corrupt checks the subtree rooting at n against the bounds inherited from its
// ancestors: every value must be >= *lo and < *hi when those are present.
// Returns the number of nodes visited and whether a violation was found.
func corrupt[T constraints.Ordered](n nodePtr[T], lo, hi *T) (uint, bool) {
	if n == nil {
		return 0, false
	}
	if (lo != nil && n.v < *lo) || (hi != nil && !(n.v < *hi)) {
		return 0, true
	}
	lc, bad := corrupt(n.l, lo, &n.v)
	if bad {
		return 0, true
	}
	rc, bad := corrupt(n.r, &n.v, hi)
	return lc + rc + 1, bad
}

// Corrupt [Tree.Corrupt]. Recursive.
// Also reports a corrupt tree when the number of nodes doesn't match Size.
// Time: O(n)
func (u *OrderedTree[T]) Corrupt() bool {
	c, bad := corrupt(u.root, nil, nil)
	return bad || c != u.sz
}
