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

type node[K, V any] struct {
	Key        K
	Value      V
	Height     int // 1 for a leaf
	RightCount int // Number of nodes in the right subtree
	Left       *node[K, V]
	Right      *node[K, V]
}

func newLeaf[K, V any](key K, value V) *node[K, V] {
	return &node[K, V]{Key: key, Value: value, Height: 1}
}

func height[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.Height
}

func rightCount[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return n.RightCount
}

func updateHeight[K, V any](n *node[K, V]) {
	n.Height = max(height(n.Left), height(n.Right)) + 1
}

// balanceFactor is right height minus left height.
func balanceFactor[K, V any](n *node[K, V]) int {
	if n == nil {
		return 0
	}
	return height(n.Right) - height(n.Left)
}
