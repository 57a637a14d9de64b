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

import "errors"

var (
	// ErrDuplicateKey is returned by Insert when the key is already stored.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrKeyNotFound is returned by Get, Delete and Rank for an absent key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidRank is returned by KthLargest when k is outside [1, Len()].
	ErrInvalidRank = errors.New("invalid rank")
	// ErrEmptyTree is returned by Min and Max on an empty tree.
	ErrEmptyTree = errors.New("tree is empty")
)
