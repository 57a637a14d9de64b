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

package strategies

import "github.com/cybrota/potionrank/lcg"

// RandomStrategy picks ranks from a seeded deterministic stream
type RandomStrategy struct {
	gen *lcg.RandomGen
}

// NewRandomStrategy creates a random strategy seeded with seed
func NewRandomStrategy(seed uint32) *RandomStrategy {
	return &RandomStrategy{gen: lcg.New(seed)}
}

func (s *RandomStrategy) Name() string {
	return "random"
}

func (s *RandomStrategy) Pick(n int) int {
	return s.gen.IntN(n)
}

// TopStrategy always picks the highest ranked item
type TopStrategy struct{}

func (s *TopStrategy) Name() string {
	return "top"
}

func (s *TopStrategy) Pick(n int) int {
	return 1
}

// BottomStrategy always picks the lowest ranked item
type BottomStrategy struct{}

func (s *BottomStrategy) Name() string {
	return "bottom"
}

func (s *BottomStrategy) Pick(n int) int {
	return n
}
