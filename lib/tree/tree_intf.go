package tree

import (
	"errors"

	"github.com/halcyonix/xst/lib/infra"
)

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

var (
	ErrXTreeUnderflow          = errors.New("[x-llrb] there is no element")
	ErrXTreeNotFound           = errors.New("[x-llrb] no qualifying key")
	ErrXTreeInvalidRank        = errors.New("[x-llrb] rank out of range")
	ErrXTreeDisabledValReplace = errors.New("[x-llrb] value replace is disabled")
)

// LLRBNode is the read-only view of one stored key-value pair and the
// subtree rooted at it. There is no parent accessor, the ownership is
// strictly tree shaped and child links are the only references.
type LLRBNode[K infra.OrderedKey, V any] interface {
	Key() K
	Val() V
	Color() RBColor
	Left() LLRBNode[K, V]
	Right() LLRBNode[K, V]
	// Size is the count of nodes in the subtree rooted here,
	// always 1 + Size(left) + Size(right).
	Size() int64
}

// LLRBTree is an ordered symbol table backed by a left-leaning red-black
// tree, the binary encoding of a 2-3 tree. Every 3-node is represented by
// a left-leaning red link. All operations run in O(log n) comparisons.
// Not safe for concurrent mutation, callers must serialize externally.
type LLRBTree[K infra.OrderedKey, V any] interface {
	Len() int64
	IsEmpty() bool
	Height() int64
	Root() LLRBNode[K, V]
	Put(key K, val V, ifNotPresent ...bool) error
	Get(key K) (V, bool)
	Contains(key K) bool
	Remove(key K) (bool, error)
	RemoveMin() (K, V, error)
	RemoveMax() (K, V, error)
	Min() (K, error)
	Max() (K, error)
	Floor(key K) (K, error)
	Ceiling(key K) (K, error)
	Select(rank int64) (K, error)
	Rank(key K) int64
	Keys() []K
	KeysRange(lo, hi K) []K
	LenRange(lo, hi K) int64
	Foreach(action func(idx int64, color RBColor, key K, val V) bool)
	Release()
}
