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
	"errors"
	"fmt"
)

// ErrCorrupt is returned by Validate when a structural invariant is broken.
var ErrCorrupt = errors.New("tree is corrupt")

// Validate walks the whole tree and checks key order, AVL balance, cached
// heights, cached right subtree sizes and the stored length.
func (tree *Tree[K, V]) Validate() error {
	count, _, err := tree.validate(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tree.size {
		return fmt.Errorf("length %d but %d nodes reachable: %w", tree.size, count, ErrCorrupt)
	}
	return nil
}

// validate returns the size and height of the subtree at n. Keys must lie
// strictly between lo and hi when those are set.
func (tree *Tree[K, V]) validate(n *node[K, V], lo, hi *K) (int, int, error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && tree.compare(n.Key, *lo) <= 0 {
		return 0, 0, fmt.Errorf("key %v not greater than %v: %w", n.Key, *lo, ErrCorrupt)
	}
	if hi != nil && tree.compare(n.Key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("key %v not less than %v: %w", n.Key, *hi, ErrCorrupt)
	}

	leftCount, leftHeight, err := tree.validate(n.Left, lo, &n.Key)
	if err != nil {
		return 0, 0, err
	}
	rightCount, rightHeight, err := tree.validate(n.Right, &n.Key, hi)
	if err != nil {
		return 0, 0, err
	}

	if d := rightHeight - leftHeight; d < -1 || d > 1 {
		return 0, 0, fmt.Errorf("node %v out of balance (left %d, right %d): %w", n.Key, leftHeight, rightHeight, ErrCorrupt)
	}
	if want := 1 + max(leftHeight, rightHeight); n.Height != want {
		return 0, 0, fmt.Errorf("node %v height %d, want %d: %w", n.Key, n.Height, want, ErrCorrupt)
	}
	if n.RightCount != rightCount {
		return 0, 0, fmt.Errorf("node %v right count %d, want %d: %w", n.Key, n.RightCount, rightCount, ErrCorrupt)
	}
	return leftCount + rightCount + 1, n.Height, nil
}
