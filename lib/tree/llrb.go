package tree

import (
	"github.com/halcyonix/xst/lib/infra"
)

// References:
// https://algs4.cs.princeton.edu/33balanced
// Left-leaning red-black tree, the 2-3 version:
// p1. Every node is either red or black.
// p2. All nil leaves are considered black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant nil
//   leaves goes through the same number of black nodes. (black-violation)
// p5. The root is black at rest.
// p6. No node has a red right child, every 3-node leans left.
// Each mutation rewrites one root-to-leaf path bottom-up, every frame
// receives a subtree root and returns its (possibly restructured)
// replacement, the caller reassigns its child slot from the return value.

type llrbNode[K infra.OrderedKey, V any] struct {
	left  *llrbNode[K, V]
	right *llrbNode[K, V]
	key   K
	val   V
	color RBColor
	size  int64
}

func (node *llrbNode[K, V]) Key() K {
	return node.key
}

func (node *llrbNode[K, V]) Val() V {
	return node.val
}

func (node *llrbNode[K, V]) Color() RBColor {
	return node.color
}

func (node *llrbNode[K, V]) Left() LLRBNode[K, V] {
	if node == nil || node.left == nil {
		return nil
	}
	return node.left
}

func (node *llrbNode[K, V]) Right() LLRBNode[K, V] {
	if node == nil || node.right == nil {
		return nil
	}
	return node.right
}

func (node *llrbNode[K, V]) Size() int64 {
	if node == nil {
		return 0
	}
	return node.size
}

func (node *llrbNode[K, V]) isRed() bool {
	return node != nil && node.color == Red
}

func (node *llrbNode[K, V]) flipColor() {
	if node.color == Red {
		node.color = Black
	} else {
		node.color = Red
	}
}

func (node *llrbNode[K, V]) minimum() *llrbNode[K, V] {
	aux := node
	for ; aux != nil && aux.left != nil; aux = aux.left {
	}
	return aux
}

func (node *llrbNode[K, V]) maximum() *llrbNode[K, V] {
	aux := node
	for ; aux != nil && aux.right != nil; aux = aux.right {
	}
	return aux
}

type llrbTree[K infra.OrderedKey, V any] struct {
	root   *llrbNode[K, V]
	cmp    infra.OrderedKeyComparator[K]
	isDesc bool
}

var _ LLRBTree[uint64, uint64] = (*llrbTree[uint64, uint64])(nil)

func defaultKeyComparator[K infra.OrderedKey]() infra.OrderedKeyComparator[K] {
	return func(i, j K) int64 {
		if i == j {
			return 0
		} else if i < j {
			return -1
		}
		return 1
	}
}

func (tree *llrbTree[K, V]) keyCompare(k1, k2 K) int64 {
	res := tree.cmp(k1, k2)
	if tree.isDesc {
		return -res
	}
	return res
}

func (tree *llrbTree[K, V]) Len() int64 {
	return tree.root.Size()
}

func (tree *llrbTree[K, V]) IsEmpty() bool {
	return tree.root == nil
}

func (tree *llrbTree[K, V]) Root() LLRBNode[K, V] {
	if tree.root == nil {
		return nil
	}
	return tree.root
}

/*
	     |                          |
	     X                          S
	    / \     leftRotate(X)      / \
	   L  <S>   ============>     X   Sd
	      / \                    / \
	    Sc   Sd                 L   Sc
*/
func (tree *llrbTree[K, V]) leftRotate(h *llrbNode[K, V]) *llrbNode[K, V] {
	if h == nil || !h.right.isRed() {
		// impossible run to here
		panic( /* debug assertion */ "[x-llrb] left rotate requires a red right child")
	}

	x := h.right
	h.right = x.left
	x.left = h
	x.color = h.color
	h.color = Red
	x.size = h.size
	h.size = h.left.Size() + h.right.Size() + 1
	return x
}

/*
	     |                          |
	     X                          S
	    / \     rightRotate(X)     / \
	  <S>  R    =============>   Sc   X
	  / \                            / \
	Sc   Sd                        Sd   R
*/
func (tree *llrbTree[K, V]) rightRotate(h *llrbNode[K, V]) *llrbNode[K, V] {
	if h == nil || !h.left.isRed() {
		// impossible run to here
		panic( /* debug assertion */ "[x-llrb] right rotate requires a red left child")
	}

	x := h.left
	h.left = x.right
	x.right = h
	x.color = h.color
	h.color = Red
	x.size = h.size
	h.size = h.left.Size() + h.right.Size() + 1
	return x
}

// Split or merge a 4-node. h must have the opposite color of its two
// children.
func (tree *llrbTree[K, V]) flipColors(h *llrbNode[K, V]) {
	if h == nil || h.left == nil || h.right == nil {
		// impossible run to here
		panic( /* debug assertion */ "[x-llrb] color flip without both children")
	}
	h.flipColor()
	h.left.flipColor()
	h.right.flipColor()
}

// Put inserts the key-value pair, overwriting the old value if the key is
// already present. With ifNotPresent the overwrite is refused instead, the
// tree is left untouched and ErrXTreeDisabledValReplace is returned.
func (tree *llrbTree[K, V]) Put(key K, val V, ifNotPresent ...bool) error {
	if len(ifNotPresent) > 0 && ifNotPresent[0] && tree.Contains(key) {
		return ErrXTreeDisabledValReplace
	}
	tree.root = tree.put(tree.root, key, val)
	tree.root.color = Black
	return nil
}

// i1: Empty subtree, a new node is always red, it is a temporary 3-node
// extension of its parent.
// i2: Exact match, overwrite the value in place.
// i3: On the way back up, in order: rotate left on a right-leaning red
// link, rotate right on two consecutive left reds (a temporary 4-node),
// flip colors when both children are red (push the 4-node up one level),
// then recompute the cached subtree size.
func (tree *llrbTree[K, V]) put(h *llrbNode[K, V], key K, val V) *llrbNode[K, V] {
	if /* i1 */ h == nil {
		return &llrbNode[K, V]{key: key, val: val, color: Red, size: 1}
	}

	if res := tree.keyCompare(key, h.key); res < 0 {
		h.left = tree.put(h.left, key, val)
	} else if res > 0 {
		h.right = tree.put(h.right, key, val)
	} else /* i2 */ {
		h.val = val
		return h
	}

	if /* i3 */ h.right.isRed() && !h.left.isRed() {
		h = tree.leftRotate(h)
	}
	if h.left.isRed() && h.left.left.isRed() {
		h = tree.rightRotate(h)
	}
	if h.left.isRed() && h.right.isRed() {
		tree.flipColors(h)
	}
	h.size = h.left.Size() + h.right.Size() + 1
	return h
}

func (tree *llrbTree[K, V]) Get(key K) (V, bool) {
	for aux := tree.root; aux != nil; {
		res := tree.keyCompare(key, aux.key)
		if res == 0 {
			return aux.val, true
		} else if res < 0 {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return *new(V), false
}

func (tree *llrbTree[K, V]) Contains(key K) bool {
	_, ok := tree.Get(key)
	return ok
}

// Deletion never descends into a 2-node, a node whose incoming link is
// black with no red child. moveRedLeft/moveRedRight borrow redness from a
// sibling or push a red link down first, balance repairs the invariants on
// the unwind, and the root is recolored black at the end.

// Assuming that h is red and both h.left and h.left.left are black,
// make h.left or one of its children red.
func (tree *llrbTree[K, V]) moveRedLeft(h *llrbNode[K, V]) *llrbNode[K, V] {
	tree.flipColors(h)
	if h.right.left.isRed() {
		// The right sibling can donate a red link.
		h.right = tree.rightRotate(h.right)
		h = tree.leftRotate(h)
		tree.flipColors(h)
	}
	return h
}

// Assuming that h is red and both h.right and h.right.left are black,
// make h.right or one of its children red.
func (tree *llrbTree[K, V]) moveRedRight(h *llrbNode[K, V]) *llrbNode[K, V] {
	tree.flipColors(h)
	if h.left.left.isRed() {
		h = tree.rightRotate(h)
		tree.flipColors(h)
	}
	return h
}

// Restore p3, p4 and p6 for the returning frame, then recompute its size.
func (tree *llrbTree[K, V]) balance(h *llrbNode[K, V]) *llrbNode[K, V] {
	if h.right.isRed() {
		h = tree.leftRotate(h)
	}
	if h.left.isRed() && h.left.left.isRed() {
		h = tree.rightRotate(h)
	}
	if h.left.isRed() && h.right.isRed() {
		tree.flipColors(h)
	}
	h.size = h.left.Size() + h.right.Size() + 1
	return h
}

// RemoveMin removes the smallest key and returns the evicted pair.
func (tree *llrbTree[K, V]) RemoveMin() (K, V, error) {
	if tree.root == nil {
		return *new(K), *new(V), ErrXTreeUnderflow
	}
	_min := tree.root.minimum()
	key, val := _min.key, _min.val

	// A 2-node root borrows redness before the descent starts. Transient
	// violation of p5, repaired by the forced recoloring below.
	if !tree.root.left.isRed() && !tree.root.right.isRed() {
		tree.root.color = Red
	}
	tree.root = tree.removeMin(tree.root)
	if tree.root != nil {
		tree.root.color = Black
	}
	return key, val, nil
}

func (tree *llrbTree[K, V]) removeMin(h *llrbNode[K, V]) *llrbNode[K, V] {
	if h.left == nil {
		return nil
	}
	if !h.left.isRed() && !h.left.left.isRed() {
		h = tree.moveRedLeft(h)
	}
	h.left = tree.removeMin(h.left)
	return tree.balance(h)
}

// RemoveMax removes the largest key and returns the evicted pair.
func (tree *llrbTree[K, V]) RemoveMax() (K, V, error) {
	if tree.root == nil {
		return *new(K), *new(V), ErrXTreeUnderflow
	}
	_max := tree.root.maximum()
	key, val := _max.key, _max.val

	if !tree.root.left.isRed() && !tree.root.right.isRed() {
		tree.root.color = Red
	}
	tree.root = tree.removeMax(tree.root)
	if tree.root != nil {
		tree.root.color = Black
	}
	return key, val, nil
}

func (tree *llrbTree[K, V]) removeMax(h *llrbNode[K, V]) *llrbNode[K, V] {
	// The representation favors left-leaning links, the right spine has
	// to be prepared explicitly.
	if h.left.isRed() {
		h = tree.rightRotate(h)
	}
	if h.right == nil {
		return nil
	}
	if !h.right.isRed() && !h.right.left.isRed() {
		h = tree.moveRedRight(h)
	}
	h.right = tree.removeMax(h.right)
	return tree.balance(h)
}

// Remove deletes the key if present. An absent key is a no-op reported as
// (false, nil), the presence check happens before any mutation. Removing
// from an empty tree returns ErrXTreeUnderflow.
func (tree *llrbTree[K, V]) Remove(key K) (bool, error) {
	if tree.root == nil {
		return false, ErrXTreeUnderflow
	}
	if !tree.Contains(key) {
		return false, nil
	}

	if !tree.root.left.isRed() && !tree.root.right.isRed() {
		tree.root.color = Red
	}
	tree.root = tree.remove(tree.root, key)
	if tree.root != nil {
		tree.root.color = Black
	}
	return true, nil
}

// The key is known to be present below h, so the branch toward it is never
// empty.
func (tree *llrbTree[K, V]) remove(h *llrbNode[K, V], key K) *llrbNode[K, V] {
	if tree.keyCompare(key, h.key) < 0 {
		if !h.left.isRed() && !h.left.left.isRed() {
			h = tree.moveRedLeft(h)
		}
		h.left = tree.remove(h.left, key)
	} else {
		if h.left.isRed() {
			h = tree.rightRotate(h)
		}
		if tree.keyCompare(key, h.key) == 0 && h.right == nil {
			return nil
		}
		if !h.right.isRed() && !h.right.left.isRed() {
			h = tree.moveRedRight(h)
		}
		if tree.keyCompare(key, h.key) == 0 {
			// Replace with the in-order successor, then evict that
			// successor from the right subtree.
			x := h.right.minimum()
			h.key, h.val = x.key, x.val
			h.right = tree.removeMin(h.right)
		} else {
			h.right = tree.remove(h.right, key)
		}
	}
	return tree.balance(h)
}

// Foreach walks the tree in order without recursion. Returning false from
// the action stops the walk.
func (tree *llrbTree[K, V]) Foreach(action func(idx int64, color RBColor, key K, val V) bool) {
	aux := tree.root
	if aux == nil {
		return
	}

	stack := make([]*llrbNode[K, V], 0, aux.size>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size := int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.color, aux.key, aux.val) {
			return
		}
		idx++
		stack = stack[:size-1]
		if aux.right != nil {
			for aux = aux.right; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

// Release unlinks every node so individual subtrees do not keep each other
// reachable.
func (tree *llrbTree[K, V]) Release() {
	aux := tree.root
	tree.root = nil
	if aux == nil {
		return
	}

	stack := make([]*llrbNode[K, V], 0, aux.size>>1)
	defer func() {
		clear(stack)
	}()

	for ; aux != nil; aux = aux.left {
		stack = append(stack, aux)
	}

	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		stack = stack[:size-1]
		r := aux.right
		aux.left, aux.right, aux.size = nil, nil, 0
		if r != nil {
			for aux = r; aux != nil; aux = aux.left {
				stack = append(stack, aux)
			}
		}
	}
}

type LLRBTreeOpt[K infra.OrderedKey, V any] func(*llrbTree[K, V])

// WithLLRBDesc reverses the key order of the tree.
func WithLLRBDesc[K infra.OrderedKey, V any]() LLRBTreeOpt[K, V] {
	return func(tree *llrbTree[K, V]) {
		tree.isDesc = true
	}
}

// WithLLRBKeyComparator replaces the natural key order with a caller
// supplied total order.
func WithLLRBKeyComparator[K infra.OrderedKey, V any](cmp infra.OrderedKeyComparator[K]) LLRBTreeOpt[K, V] {
	return func(tree *llrbTree[K, V]) {
		tree.cmp = cmp
	}
}

func NewLLRBTree[K infra.OrderedKey, V any](opts ...LLRBTreeOpt[K, V]) LLRBTree[K, V] {
	tree := &llrbTree[K, V]{
		cmp:    defaultKeyComparator[K](),
		isDesc: false,
	}

	for _, o := range opts {
		o(tree)
	}
	return tree
}
