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

import "fmt"

// KthLargest returns the k-th largest key and its value, k = 1 being the
// maximum. It fails with ErrInvalidRank when k is outside [1, Len()].
//
// At every node the k-th largest is in the right subtree when
// k <= RightCount, is the node itself when k == RightCount+1, and is
// otherwise the (k - RightCount - 1)-th largest of the left subtree.
func (tree *Tree[K, V]) KthLargest(k int) (K, V, error) {
	var (
		zeroK K
		zeroV V
	)
	if k < 1 || k > tree.size {
		return zeroK, zeroV, fmt.Errorf("kth largest %d of %d: %w", k, tree.size, ErrInvalidRank)
	}

	n := tree.root
	for n != nil {
		switch rc := n.RightCount; {
		case k <= rc:
			n = n.Right
		case k == rc+1:
			return n.Key, n.Value, nil
		default:
			k -= rc + 1
			n = n.Left
		}
	}

	// Only reachable if the right counts disagree with size.
	return zeroK, zeroV, fmt.Errorf("kth largest %d: right counts out of sync: %w", k, ErrCorrupt)
}

// KthSmallest returns the k-th smallest key, k = 1 being the minimum.
func (tree *Tree[K, V]) KthSmallest(k int) (K, V, error) {
	if k < 1 || k > tree.size {
		var (
			zeroK K
			zeroV V
		)
		return zeroK, zeroV, fmt.Errorf("kth smallest %d of %d: %w", k, tree.size, ErrInvalidRank)
	}
	return tree.KthLargest(tree.size - k + 1)
}

// Rank returns the 1-based descending rank of key, so that
// KthLargest(Rank(key)) yields key again.
func (tree *Tree[K, V]) Rank(key K) (int, error) {
	rank := 0
	n := tree.root
	for n != nil {
		c := tree.compare(key, n.Key)
		switch {
		case c < 0:
			// n and its whole right subtree are larger than key
			rank += n.RightCount + 1
			n = n.Left
		case c > 0:
			n = n.Right
		default:
			return rank + n.RightCount + 1, nil
		}
	}
	return 0, fmt.Errorf("rank %v: %w", key, ErrKeyNotFound)
}
