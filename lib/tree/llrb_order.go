package tree

// Ordered symbol-table queries. All of them are read-only descents guided
// by key comparison and the cached subtree sizes.

// Min returns the smallest key, ErrXTreeUnderflow on an empty tree.
func (tree *llrbTree[K, V]) Min() (K, error) {
	if tree.root == nil {
		return *new(K), ErrXTreeUnderflow
	}
	return tree.root.minimum().key, nil
}

// Max returns the largest key, ErrXTreeUnderflow on an empty tree.
func (tree *llrbTree[K, V]) Max() (K, error) {
	if tree.root == nil {
		return *new(K), ErrXTreeUnderflow
	}
	return tree.root.maximum().key, nil
}

// Floor returns the largest stored key less than or equal to key.
// ErrXTreeNotFound when every stored key is greater than key.
func (tree *llrbTree[K, V]) Floor(key K) (K, error) {
	if tree.root == nil {
		return *new(K), ErrXTreeUnderflow
	}
	x := tree.floor(tree.root, key)
	if x == nil {
		return *new(K), ErrXTreeNotFound
	}
	return x.key, nil
}

func (tree *llrbTree[K, V]) floor(h *llrbNode[K, V], key K) *llrbNode[K, V] {
	if h == nil {
		return nil
	}
	res := tree.keyCompare(key, h.key)
	if res == 0 {
		return h
	}
	if res < 0 {
		return tree.floor(h.left, key)
	}
	// h qualifies, a larger candidate may still sit in the right subtree.
	if t := tree.floor(h.right, key); t != nil {
		return t
	}
	return h
}

// Ceiling returns the smallest stored key greater than or equal to key.
// ErrXTreeNotFound when every stored key is less than key.
func (tree *llrbTree[K, V]) Ceiling(key K) (K, error) {
	if tree.root == nil {
		return *new(K), ErrXTreeUnderflow
	}
	x := tree.ceiling(tree.root, key)
	if x == nil {
		return *new(K), ErrXTreeNotFound
	}
	return x.key, nil
}

func (tree *llrbTree[K, V]) ceiling(h *llrbNode[K, V], key K) *llrbNode[K, V] {
	if h == nil {
		return nil
	}
	res := tree.keyCompare(key, h.key)
	if res == 0 {
		return h
	}
	if res > 0 {
		return tree.ceiling(h.right, key)
	}
	if t := tree.ceiling(h.left, key); t != nil {
		return t
	}
	return h
}

// Select returns the key of the given 0-based rank, the (rank+1)-st
// smallest stored key. ErrXTreeInvalidRank unless 0 <= rank < Len().
func (tree *llrbTree[K, V]) Select(rank int64) (K, error) {
	if rank < 0 || rank >= tree.Len() {
		return *new(K), ErrXTreeInvalidRank
	}
	return tree.selectNode(tree.root, rank).key, nil
}

// Precondition: rank is within [0, h.size).
func (tree *llrbTree[K, V]) selectNode(h *llrbNode[K, V], rank int64) *llrbNode[K, V] {
	leftSize := h.left.Size()
	if leftSize > rank {
		return tree.selectNode(h.left, rank)
	} else if leftSize < rank {
		return tree.selectNode(h.right, rank-leftSize-1)
	}
	return h
}

// Rank returns the number of stored keys strictly less than key, whether
// or not key itself is present.
func (tree *llrbTree[K, V]) Rank(key K) int64 {
	return tree.rank(tree.root, key)
}

func (tree *llrbTree[K, V]) rank(h *llrbNode[K, V], key K) int64 {
	if h == nil {
		return 0
	}
	res := tree.keyCompare(key, h.key)
	if res == 0 {
		return h.left.Size()
	} else if res < 0 {
		return tree.rank(h.left, key)
	}
	return 1 + h.left.Size() + tree.rank(h.right, key)
}

// Keys returns every stored key in ascending order. Each call re-traverses
// and returns a fresh slice.
func (tree *llrbTree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.Len())
	if tree.root == nil {
		return keys
	}
	tree.keysRange(tree.root, &keys, tree.root.minimum().key, tree.root.maximum().key)
	return keys
}

// KeysRange returns the stored keys within [lo, hi], both inclusive, in
// ascending order. An inverted range yields an empty sequence.
func (tree *llrbTree[K, V]) KeysRange(lo, hi K) []K {
	keys := make([]K, 0)
	tree.keysRange(tree.root, &keys, lo, hi)
	return keys
}

func (tree *llrbTree[K, V]) keysRange(h *llrbNode[K, V], keys *[]K, lo, hi K) {
	if h == nil {
		return
	}
	cmplo := tree.keyCompare(lo, h.key)
	cmphi := tree.keyCompare(hi, h.key)
	if cmplo < 0 {
		tree.keysRange(h.left, keys, lo, hi)
	}
	if cmplo <= 0 && cmphi >= 0 {
		*keys = append(*keys, h.key)
	}
	if cmphi > 0 {
		tree.keysRange(h.right, keys, lo, hi)
	}
}

// LenRange returns the number of stored keys within [lo, hi], both
// inclusive, derived from two rank queries.
func (tree *llrbTree[K, V]) LenRange(lo, hi K) int64 {
	if tree.keyCompare(hi, lo) < 0 {
		return 0
	}
	if tree.Contains(hi) {
		return tree.Rank(hi) - tree.Rank(lo) + 1
	}
	return tree.Rank(hi) - tree.Rank(lo)
}

// Height returns the height of the tree, a 1-node tree has height 0 and
// the empty tree -1 by convention. Bounded by 2*log2(n+1) thanks to the
// perfect black balance.
func (tree *llrbTree[K, V]) Height() int64 {
	return tree.height(tree.root)
}

func (tree *llrbTree[K, V]) height(x *llrbNode[K, V]) int64 {
	if x == nil {
		return -1
	}
	return 1 + max(tree.height(x.left), tree.height(x.right))
}
