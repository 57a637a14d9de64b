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

// Package ostree implements an order-statistics tree: an AVL tree that maps
// unique ordered keys to values and answers "k-th largest key" queries in
// O(log n).
//
// Each node stores its height and the number of nodes in its right subtree.
// Both are fixed up on the way back from every insert or delete and inside
// the rotations themselves, so the rank query never has to walk a subtree to
// count it.
//
//	tree := ostree.New[int, string]()
//	_ = tree.Insert(20, "twenty")
//	_ = tree.Insert(5, "five")
//	k, v, err := tree.KthLargest(1) // 20, "twenty", nil
package ostree
