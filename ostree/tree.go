// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ostree

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree where every node also caches the size of its right
// subtree, which makes rank queries O(log n).
//
// A Tree is not safe for concurrent use. Callers that share one across
// goroutines must guard the whole tree with a single lock.
type Tree[K, V any] struct {
	root    *node[K, V]
	size    int
	compare func(a, b K) int
}

// New returns an empty tree ordered by the natural ordering of K.
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return &Tree[K, V]{compare: cmp.Compare[K]}
}

// NewWithCompare returns an empty tree ordered by compare, which must return
// a negative number, zero or a positive number when a < b, a == b or a > b.
func NewWithCompare[K, V any](compare func(a, b K) int) *Tree[K, V] {
	return &Tree[K, V]{compare: compare}
}

// Len returns the number of keys stored in the tree.
func (tree *Tree[K, V]) Len() int {
	return tree.size
}

// Height returns the height of the root, 0 for an empty tree.
func (tree *Tree[K, V]) Height() int {
	return height(tree.root)
}

func (tree *Tree[K, V]) rotateLeft(n *node[K, V]) *node[K, V] {
	pivot := n.Right

	n.Right = pivot.Left
	pivot.Left = n

	// n keeps only what used to hang on pivot's left.
	n.RightCount -= 1 + pivot.RightCount

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

func (tree *Tree[K, V]) rotateRight(n *node[K, V]) *node[K, V] {
	pivot := n.Left

	n.Left = pivot.Right
	pivot.Right = n

	// pivot now also holds n and everything right of it.
	pivot.RightCount += 1 + n.RightCount

	updateHeight(n)
	updateHeight(pivot)

	return pivot
}

func (tree *Tree[K, V]) rebalance(n *node[K, V]) *node[K, V] {
	bf := balanceFactor(n)

	// Right-heavy
	if bf >= 2 {
		child := n.Right
		if height(child.Left) > height(child.Right) {
			// Right-Left case
			n.Right = tree.rotateRight(child)
		}
		return tree.rotateLeft(n)
	}

	// Left-heavy
	if bf <= -2 {
		child := n.Left
		if height(child.Right) > height(child.Left) {
			// Left-Right case
			n.Left = tree.rotateLeft(child)
		}
		return tree.rotateRight(n)
	}

	return n
}

// Insert stores value under key. It fails with ErrDuplicateKey, leaving the
// tree untouched, when key is already present.
func (tree *Tree[K, V]) Insert(key K, value V) error {
	root, err := tree.insertRecursive(tree.root, key, value)
	if err != nil {
		return err
	}
	tree.root = root
	return nil
}

func (tree *Tree[K, V]) insertRecursive(n *node[K, V], key K, value V) (*node[K, V], error) {
	if n == nil {
		tree.size++
		return newLeaf(key, value), nil
	}

	switch c := tree.compare(key, n.Key); {
	case c < 0:
		left, err := tree.insertRecursive(n.Left, key, value)
		if err != nil {
			return n, err
		}
		n.Left = left
	case c > 0:
		right, err := tree.insertRecursive(n.Right, key, value)
		if err != nil {
			return n, err
		}
		n.Right = right
		n.RightCount++
	default:
		return n, fmt.Errorf("insert %v: %w", key, ErrDuplicateKey)
	}

	updateHeight(n)
	return tree.rebalance(n), nil
}

// Delete removes key from the tree or fails with ErrKeyNotFound.
func (tree *Tree[K, V]) Delete(key K) error {
	root, err := tree.deleteRecursive(tree.root, key)
	if err != nil {
		return err
	}
	tree.root = root
	return nil
}

func (tree *Tree[K, V]) deleteRecursive(n *node[K, V], key K) (*node[K, V], error) {
	if n == nil {
		return nil, fmt.Errorf("delete %v: %w", key, ErrKeyNotFound)
	}

	switch c := tree.compare(key, n.Key); {
	case c < 0:
		left, err := tree.deleteRecursive(n.Left, key)
		if err != nil {
			return n, err
		}
		n.Left = left
	case c > 0:
		right, err := tree.deleteRecursive(n.Right, key)
		if err != nil {
			return n, err
		}
		n.Right = right
		n.RightCount--
	default: // Found the node to delete
		// Case 1 and 2: no children or only a right child
		if n.Left == nil {
			child := n.Right
			n.Right = nil
			tree.size--
			return child, nil
		}
		// Case 3: only a left child
		if n.Right == nil {
			child := n.Left
			n.Left = nil
			tree.size--
			return child, nil
		}
		// Case 4: two children, the successor has at most one child
		successor := findMin(n.Right)
		n.Key = successor.Key
		n.Value = successor.Value
		right, err := tree.deleteRecursive(n.Right, successor.Key)
		if err != nil {
			return n, err
		}
		n.Right = right
		n.RightCount--
	}

	updateHeight(n)
	return tree.rebalance(n), nil
}

func findMin[K, V any](n *node[K, V]) *node[K, V] {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

func findMax[K, V any](n *node[K, V]) *node[K, V] {
	for n.Right != nil {
		n = n.Right
	}
	return n
}

// Get returns the value stored under key or ErrKeyNotFound.
func (tree *Tree[K, V]) Get(key K) (V, error) {
	n := tree.root
	for n != nil {
		c := tree.compare(key, n.Key)
		if c == 0 {
			return n.Value, nil
		}
		if c < 0 {
			n = n.Left
		} else {
			n = n.Right
		}
	}

	var zero V
	return zero, fmt.Errorf("get %v: %w", key, ErrKeyNotFound)
}

// Contains reports whether key is stored in the tree.
func (tree *Tree[K, V]) Contains(key K) bool {
	_, err := tree.Get(key)
	return err == nil
}

// Min returns the smallest key and its value.
func (tree *Tree[K, V]) Min() (K, V, error) {
	if tree.root == nil {
		var (
			k K
			v V
		)
		return k, v, ErrEmptyTree
	}
	n := findMin(tree.root)
	return n.Key, n.Value, nil
}

// Max returns the largest key and its value.
func (tree *Tree[K, V]) Max() (K, V, error) {
	if tree.root == nil {
		var (
			k K
			v V
		)
		return k, v, ErrEmptyTree
	}
	n := findMax(tree.root)
	return n.Key, n.Value, nil
}
