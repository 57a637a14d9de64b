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
	"math/rand/v2"
	"testing"
)

func TestKthLargest(t *testing.T) {
	tree := New[int, string]()
	for _, k := range []int{1, 5, 9, 12, 20} {
		_ = tree.Insert(k, "")
	}

	testCases := []struct {
		Name    string
		K       int
		WantKey int
		WantErr error
	}{
		{Name: "Largest", K: 1, WantKey: 20},
		{Name: "Second", K: 2, WantKey: 12},
		{Name: "Middle", K: 3, WantKey: 9},
		{Name: "Fourth", K: 4, WantKey: 5},
		{Name: "Smallest", K: 5, WantKey: 1},
		{Name: "Past the end", K: 6, WantErr: ErrInvalidRank},
		{Name: "Zero", K: 0, WantErr: ErrInvalidRank},
		{Name: "Negative", K: -3, WantErr: ErrInvalidRank},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			key, _, err := tree.KthLargest(tc.K)
			if tc.WantErr != nil {
				if !errors.Is(err, tc.WantErr) {
					t.Fatalf("KthLargest(%d): got %v; want %v", tc.K, err, tc.WantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("KthLargest(%d) returned error: %v", tc.K, err)
			}
			if key != tc.WantKey {
				t.Errorf("KthLargest(%d) = %d; want %d", tc.K, key, tc.WantKey)
			}
		})
	}
}

func TestKthLargestEmptyTree(t *testing.T) {
	tree := New[int, int]()
	if _, _, err := tree.KthLargest(1); !errors.Is(err, ErrInvalidRank) {
		t.Fatalf("KthLargest(1) on empty tree: got %v; want ErrInvalidRank", err)
	}
}

func TestKthSmallest(t *testing.T) {
	tree := New[int, string]()
	for _, k := range []int{1, 5, 9, 12, 20} {
		_ = tree.Insert(k, "")
	}
	for i, want := range []int{1, 5, 9, 12, 20} {
		key, _, err := tree.KthSmallest(i + 1)
		if err != nil || key != want {
			t.Errorf("KthSmallest(%d) = %d, %v; want %d", i+1, key, err, want)
		}
	}
	if _, _, err := tree.KthSmallest(6); !errors.Is(err, ErrInvalidRank) {
		t.Errorf("KthSmallest(6): got %v; want ErrInvalidRank", err)
	}
}

func TestRankMatchesKthLargest(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 9))
	tree := New[int, int]()
	for _, k := range r.Perm(500) {
		_ = tree.Insert(k, k)
	}
	// Remove a slice of keys so rotations on delete also get exercised.
	for k := 0; k < 500; k += 3 {
		if err := tree.Delete(k); err != nil {
			t.Fatalf("Delete(%d) returned error: %v", k, err)
		}
	}
	checkInvariants(t, tree)

	desc := make([]int, 0, tree.Len())
	for k := range tree.Descend() {
		desc = append(desc, k)
	}
	for i, want := range desc {
		key, value, err := tree.KthLargest(i + 1)
		if err != nil {
			t.Fatalf("KthLargest(%d) returned error: %v", i+1, err)
		}
		if key != want || value != want {
			t.Fatalf("KthLargest(%d) = %d; want %d", i+1, key, want)
		}
		rank, err := tree.Rank(key)
		if err != nil || rank != i+1 {
			t.Fatalf("Rank(%d) = %d, %v; want %d", key, rank, err, i+1)
		}
	}

	if _, err := tree.Rank(0); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Rank of a deleted key: got %v; want ErrKeyNotFound", err)
	}
}

func TestKthLargestAfterEveryMutation(t *testing.T) {
	tree := New[int, int]()
	// Ascending inserts keep rotating left, descending ones keep rotating right.
	for k := 1; k <= 64; k++ {
		_ = tree.Insert(k, k)
		if key, _, _ := tree.KthLargest(1); key != k {
			t.Fatalf("after inserting %d, KthLargest(1) = %d", k, key)
		}
		if key, _, _ := tree.KthLargest(k); key != 1 {
			t.Fatalf("after inserting %d, KthLargest(%d) = %d; want 1", k, k, key)
		}
	}
	for k := 200; k > 100; k-- {
		_ = tree.Insert(k, k)
	}
	checkInvariants(t, tree)

	for k := 64; k >= 1; k -= 2 {
		_ = tree.Delete(k)
		checkInvariants(t, tree)
	}
	if key, _, _ := tree.KthLargest(tree.Len()); key != 1 {
		t.Errorf("smallest remaining key = %d; want 1", key)
	}
}
