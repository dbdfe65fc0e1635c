package tree

import (
	"errors"

	"github.com/halcyonix/xst/lib/infra"
)

// llrb rule validation utilities. Verification only: tests run them after
// every mutating call, the production path never does.

func isRedNode[K infra.OrderedKey, V any](node LLRBNode[K, V]) bool {
	return node != nil && node.Color() == Red
}

func nodeSize[K infra.OrderedKey, V any](node LLRBNode[K, V]) int64 {
	if node == nil {
		return 0
	}
	return node.Size()
}

// SymmetricOrderValidate checks that an in-order walk yields strictly
// increasing keys, which for a binary tree is equivalent to the symmetric
// order invariant. Assumes the natural ascending key order, trees built
// with WithLLRBDesc or a custom comparator are covered by the other
// validators only.
func SymmetricOrderValidate[K infra.OrderedKey, V any](tree LLRBTree[K, V]) error {
	var (
		err  error
		prev *K
	)
	tree.Foreach(func(idx int64, color RBColor, key K, val V) bool {
		if prev != nil && key <= *prev {
			err = errors.New("llrb symmetric order violation")
			return false
		}
		k := key
		prev = &k
		return true
	})
	return err
}

// SizeConsistencyValidate checks that every cached subtree size equals
// 1 + size(left) + size(right).
func SizeConsistencyValidate[K infra.OrderedKey, V any](tree LLRBTree[K, V]) error {
	return sizeConsistent[K, V](tree.Root())
}

func sizeConsistent[K infra.OrderedKey, V any](x LLRBNode[K, V]) error {
	if x == nil {
		return nil
	}
	if x.Size() != nodeSize[K, V](x.Left())+nodeSize[K, V](x.Right())+1 {
		return errors.New("llrb size violation")
	}
	if err := sizeConsistent[K, V](x.Left()); err != nil {
		return err
	}
	return sizeConsistent[K, V](x.Right())
}

// RankConsistencyValidate checks that Select and Rank are mutual inverses
// for every valid rank and every stored key.
func RankConsistencyValidate[K infra.OrderedKey, V any](tree LLRBTree[K, V]) error {
	for r := int64(0); r < tree.Len(); r++ {
		key, err := tree.Select(r)
		if err != nil {
			return err
		}
		if tree.Rank(key) != r {
			return errors.New("llrb rank violation")
		}
	}
	for _, key := range tree.Keys() {
		sel, err := tree.Select(tree.Rank(key))
		if err != nil {
			return err
		}
		if sel != key {
			return errors.New("llrb rank violation")
		}
	}
	return nil
}

// Left23Validate checks the left-leaning 2-3 encoding at rest: a black
// root, no red right link and no red node with a red left child.
func Left23Validate[K infra.OrderedKey, V any](tree LLRBTree[K, V]) error {
	root := tree.Root()
	if isRedNode[K, V](root) {
		return errors.New("llrb red root")
	}
	return left23[K, V](root)
}

func left23[K infra.OrderedKey, V any](x LLRBNode[K, V]) error {
	if x == nil {
		return nil
	}
	if isRedNode[K, V](x.Right()) {
		return errors.New("llrb right-leaning red link")
	}
	if isRedNode[K, V](x) && isRedNode[K, V](x.Left()) {
		return errors.New("llrb two consecutive red links")
	}
	if err := left23[K, V](x.Left()); err != nil {
		return err
	}
	return left23[K, V](x.Right())
}

// BlackBalanceValidate counts the black links along the left spine, then
// checks that every root-to-nil path crosses exactly that many.
func BlackBalanceValidate[K infra.OrderedKey, V any](tree LLRBTree[K, V]) error {
	black := int64(0)
	for x := tree.Root(); x != nil; x = x.Left() {
		if !isRedNode[K, V](x) {
			black++
		}
	}
	return blackBalanced[K, V](tree.Root(), black)
}

func blackBalanced[K infra.OrderedKey, V any](x LLRBNode[K, V], black int64) error {
	if x == nil {
		if black != 0 {
			return errors.New("llrb black violation")
		}
		return nil
	}
	if !isRedNode[K, V](x) {
		black--
	}
	if err := blackBalanced[K, V](x.Left(), black); err != nil {
		return err
	}
	return blackBalanced[K, V](x.Right(), black)
}

// llrbViolationValidate is the full verification sweep the tests run after
// every mutating operation.
func llrbViolationValidate[K infra.OrderedKey, V any](tree LLRBTree[K, V]) error {
	if err := SymmetricOrderValidate[K, V](tree); err != nil {
		return err
	}
	if err := SizeConsistencyValidate[K, V](tree); err != nil {
		return err
	}
	if err := RankConsistencyValidate[K, V](tree); err != nil {
		return err
	}
	if err := Left23Validate[K, V](tree); err != nil {
		return err
	}
	return BlackBalanceValidate[K, V](tree)
}
