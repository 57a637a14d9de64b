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

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cybrota/potionrank/lcg"
	"github.com/cybrota/potionrank/ostree"
	"github.com/schollz/progressbar/v3"
)

// validateInterval is how many operations run between full tree validations
const validateInterval = 1000

type stressResult struct {
	Operations int
	Inserts    int
	Deletes    int
	Size       int
	Height     int
	Elapsed    time.Duration
}

// runStress applies ops random inserts and deletes to an order-statistics
// tree, checking it against a map and validating its structure along the
// way. Keys are drawn from [1, 2*ops] so both operations stay common.
// IntN carries 16 bits per call, so each key joins two draws.
func runStress(ops int, seed uint32, progress io.Writer) (stressResult, error) {
	if ops < 1 {
		return stressResult{}, fmt.Errorf("number of operations must be at least 1")
	}

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(ops,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("🌳 Stressing tree..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(progress, "\n✅ Stress run completed!\n")
			}),
		)
	}

	gen := lcg.New(seed)
	tree := ostree.New[int, int]()
	model := make(map[int]int)
	result := stressResult{Operations: ops}

	started := time.Now()
	for i := 1; i <= ops; i++ {
		key := stressKey(gen, 2*ops)
		if _, ok := model[key]; ok {
			if err := tree.Delete(key); err != nil {
				return result, fmt.Errorf("operation %d: %w", i, err)
			}
			delete(model, key)
			result.Deletes++
		} else {
			if err := tree.Insert(key, i); err != nil {
				return result, fmt.Errorf("operation %d: %w", i, err)
			}
			model[key] = i
			result.Inserts++
		}

		if tree.Len() != len(model) {
			return result, fmt.Errorf("operation %d: tree holds %d keys, want %d", i, tree.Len(), len(model))
		}
		if i%validateInterval == 0 || i == ops {
			if err := tree.Validate(); err != nil {
				return result, fmt.Errorf("operation %d: %w", i, err)
			}
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if err := checkRanks(tree, model); err != nil {
		return result, err
	}

	result.Elapsed = time.Since(started)
	result.Size = tree.Len()
	result.Height = tree.Height()
	return result, nil
}

// stressKey returns a key in [1, n] built from two 16 bit draws
func stressKey(gen *lcg.RandomGen, n int) int {
	high := gen.IntN(1<<16) - 1
	low := gen.IntN(1<<16) - 1
	return (high<<16|low)%n + 1
}

// checkRanks verifies that KthLargest walks the keys in descending order and
// that Rank inverts it
func checkRanks(tree *ostree.Tree[int, int], model map[int]int) error {
	prev := 0
	for k := 1; k <= tree.Len(); k++ {
		key, value, err := tree.KthLargest(k)
		if err != nil {
			return err
		}
		if k > 1 && key >= prev {
			return fmt.Errorf("kth largest %d = %d, not below %d", k, key, prev)
		}
		if model[key] != value {
			return fmt.Errorf("key %d holds %d, want %d", key, value, model[key])
		}
		rank, err := tree.Rank(key)
		if err != nil {
			return err
		}
		if rank != k {
			return fmt.Errorf("rank of %d = %d, want %d", key, rank, k)
		}
		prev = key
	}
	return nil
}

func printStressResult(w io.Writer, r stressResult) {
	fmt.Fprintf(w, "🌳 %sStress results%s\n", Green, Reset)
	fmt.Fprintf(w, "  • operations: %d (%d inserts, %d deletes)\n", r.Operations, r.Inserts, r.Deletes)
	fmt.Fprintf(w, "  • final size: %d, height: %d\n", r.Size, r.Height)
	fmt.Fprintf(w, "  • elapsed: %s\n", r.Elapsed.Round(time.Microsecond))
}

// stressProgressWriter is where the progress bar goes unless quiet
func stressProgressWriter(quiet bool) io.Writer {
	if quiet {
		return nil
	}
	return os.Stderr
}
