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

import "iter"

// Ascend yields every key and value in increasing key order.
func (tree *Tree[K, V]) Ascend() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		ascend(tree.root, yield)
	}
}

// Descend yields every key and value in decreasing key order.
func (tree *Tree[K, V]) Descend() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		descend(tree.root, yield)
	}
}

// Keys returns the keys in increasing order.
func (tree *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, tree.size)
	for k := range tree.Ascend() {
		keys = append(keys, k)
	}
	return keys
}

func ascend[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return ascend(n.Left, yield) && yield(n.Key, n.Value) && ascend(n.Right, yield)
}

func descend[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	return descend(n.Right, yield) && yield(n.Key, n.Value) && descend(n.Left, yield)
}
